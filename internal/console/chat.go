package console

import (
	"context"
	"fmt"
	"strings"

	"github.com/bnema/fishpi-cli/internal/application"
)

const (
	answerPrefix = "鸽 "
	rewardPhrase = "小冰 去打劫"
)

// ChatCommand sends its arguments to the chat room as one message. It is the
// registry fallback. Sending does not need a live chat-room handle, so chat
// still goes out after #cli stopped receiving.
type ChatCommand struct{}

func (ChatCommand) Exec(ctx context.Context, env *Env, args []string) error {
	text := strings.Join(args, " ")
	if env.State.AnswerMode() {
		text = answerPrefix + text
	}
	return sendChat(ctx, env, text)
}

func sendChat(ctx context.Context, env *Env, text string) error {
	session, err := env.current()
	if err != nil {
		return err
	}
	if session.APIKey == "" {
		env.println("请先进入聊天室")
		return nil
	}

	id, err := env.Forum.SendChat(ctx, session.APIKey, text)
	if err != nil {
		return fmt.Errorf("send chat message: %w", err)
	}
	env.Sessions.RecordMessage(id)
	return nil
}

// CLICommand stops every live connection of the current session.
type CLICommand struct{}

func (CLICommand) Exec(_ context.Context, env *Env, _ []string) error {
	if env.Sessions.StopConnections() == 0 {
		env.println("已在交互模式中")
		return nil
	}
	env.println("进入交互模式")
	return nil
}

type ChatRoomCommand struct{}

func (ChatRoomCommand) Exec(ctx context.Context, env *Env, _ []string) error {
	started, err := env.Sessions.StartConnection(ctx, application.ChatRoomEndpoint)
	if err != nil {
		return fmt.Errorf("enter chat room: %w", err)
	}
	if !started {
		env.println("已在聊天室中")
	}
	return nil
}

type SiguoCommand struct{}

func (SiguoCommand) Exec(ctx context.Context, env *Env, _ []string) error {
	session, err := env.current()
	if err != nil {
		return err
	}
	return env.Forum.Siguo(ctx, session.APIKey)
}

type AnswerModeCommand struct{}

func (AnswerModeCommand) Exec(ctx context.Context, env *Env, _ []string) error {
	if env.State.ToggleAnswerMode(ctx) {
		env.println("进入答题模式")
	} else {
		env.println("退出答题模式")
	}
	return nil
}

type RewardCommand struct{}

func (RewardCommand) Exec(ctx context.Context, env *Env, _ []string) error {
	return sendChat(ctx, env, rewardPhrase)
}

// RevokeCommand revokes the last chat message sent by the current session.
type RevokeCommand struct{}

func (RevokeCommand) Exec(ctx context.Context, env *Env, _ []string) error {
	session, err := env.current()
	if err != nil {
		return err
	}
	if session.LastMessageID == "" {
		return nil
	}
	if err := env.Forum.RevokeMessage(ctx, session.APIKey, session.LastMessageID); err != nil {
		return fmt.Errorf("revoke message: %w", err)
	}
	return nil
}

type BreezemoonCommand struct{}

func (BreezemoonCommand) Exec(ctx context.Context, env *Env, args []string) error {
	text := strings.Join(args, " ")
	if text == "" {
		env.println("非法指令, bm指令应该为: bm <内容>")
		return nil
	}

	session, err := env.current()
	if err != nil {
		return err
	}
	if err := env.Forum.SendBreezemoon(ctx, session.APIKey, text); err != nil {
		return fmt.Errorf("send breezemoon: %w", err)
	}
	return nil
}
