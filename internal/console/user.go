package console

import (
	"context"
	"fmt"
	"strconv"
	"strings"
)

type APIKeyCommand struct{}

func (APIKeyCommand) Exec(_ context.Context, env *Env, _ []string) error {
	session, err := env.current()
	if err != nil {
		return err
	}
	env.println(session.APIKey)
	return nil
}

type CheckedInCommand struct{}

func (CheckedInCommand) Exec(ctx context.Context, env *Env, _ []string) error {
	session, err := env.current()
	if err != nil {
		return err
	}

	checked, err := env.Forum.CheckedIn(ctx, session.APIKey)
	if err != nil {
		return fmt.Errorf("check-in status: %w", err)
	}
	if checked {
		env.println("今日你已签到！")
	} else {
		env.println("今日还未签到，摸鱼也要努力呀！")
	}
	return nil
}

type LivenessCommand struct{}

func (LivenessCommand) Exec(ctx context.Context, env *Env, _ []string) error {
	session, err := env.current()
	if err != nil {
		return err
	}

	liveness, err := env.Forum.Liveness(ctx, session.APIKey)
	if err != nil {
		return fmt.Errorf("liveness: %w", err)
	}
	env.println("当前活跃度: " + strconv.FormatFloat(liveness, 'f', -1, 64))
	return nil
}

type PointCommand struct{}

func (PointCommand) Exec(ctx context.Context, env *Env, _ []string) error {
	session, err := env.current()
	if err != nil {
		return err
	}

	profile, err := env.Forum.UserInfo(ctx, session.APIKey, session.Name)
	if err != nil {
		return fmt.Errorf("user info: %w", err)
	}
	if profile == nil {
		return nil
	}
	env.printf("当前积分: %d\n", profile.Points)
	return nil
}

// UserCommand prints a public profile; unknown users print nothing.
type UserCommand struct{}

func (UserCommand) Exec(ctx context.Context, env *Env, args []string) error {
	name := strings.Join(args, " ")
	if name == "" {
		return nil
	}

	session, err := env.current()
	if err != nil {
		return err
	}

	profile, err := env.Forum.UserInfo(ctx, session.APIKey, name)
	if err != nil {
		return fmt.Errorf("user info: %w", err)
	}
	if profile == nil {
		return nil
	}
	return env.render(env.Render.Profile(*profile))
}

type OnlineUsersCommand struct{}

func (OnlineUsersCommand) Exec(ctx context.Context, env *Env, _ []string) error {
	session, err := env.current()
	if err != nil {
		return err
	}

	users, err := env.Forum.OnlineUsers(ctx, session.APIKey)
	if err != nil {
		return fmt.Errorf("online users: %w", err)
	}
	return env.render(env.Render.OnlineUsers(users))
}
