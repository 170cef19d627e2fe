package console

import (
	"context"
	"strings"
)

const (
	targetKeyword = "keyword"
	targetUser    = "user"
)

type BlacklistCommand struct{}

func (BlacklistCommand) Exec(_ context.Context, env *Env, _ []string) error {
	users, keywords := env.State.Blacklists()
	return env.render(env.Render.Blacklist(users, keywords))
}

// BanCommand adds keywords (one per token) or a user (the remaining tokens
// joined) to the blacklists.
type BanCommand struct{}

func (BanCommand) Exec(ctx context.Context, env *Env, args []string) error {
	if len(args) == 0 {
		env.println("非法指令, ban指令应该为: ban keyword|user name")
		return nil
	}

	switch args[0] {
	case targetKeyword:
		if added := env.State.BanKeywords(ctx, args[1:]); len(added) > 0 {
			env.println("已屏蔽关键词: " + strings.Join(added, ", "))
		}
	case targetUser:
		name := strings.Join(args[1:], " ")
		if name == "" {
			env.println("非法指令, ban指令应该为: ban keyword|user name")
			return nil
		}
		if env.State.BanUser(ctx, name) {
			env.println("已将 " + name + " 关进小黑屋")
		}
	default:
		env.println("非法指令, ban指令应该为: ban keyword|user name")
	}
	return nil
}

type ReleaseCommand struct{}

func (ReleaseCommand) Exec(ctx context.Context, env *Env, args []string) error {
	if len(args) == 0 {
		env.println("非法指令, release指令应该为: release keyword|user name")
		return nil
	}

	switch args[0] {
	case targetKeyword:
		if removed := env.State.ReleaseKeywords(ctx, args[1:]); len(removed) > 0 {
			env.println("已解除屏蔽关键词: " + strings.Join(removed, ", "))
		}
	case targetUser:
		name := strings.Join(args[1:], " ")
		if name == "" {
			env.println("非法指令, release指令应该为: release keyword|user name")
			return nil
		}
		if env.State.ReleaseUser(ctx, name) {
			env.println("已将 " + name + " 放出小黑屋")
		}
	default:
		env.println("非法指令, release指令应该为: release keyword|user name")
	}
	return nil
}
