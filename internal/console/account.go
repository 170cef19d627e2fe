package console

import (
	"context"
	"strings"

	"github.com/bnema/fishpi-cli/internal/domain"
)

type MeCommand struct{}

func (MeCommand) Exec(_ context.Context, env *Env, _ []string) error {
	session, err := env.current()
	if err != nil {
		return err
	}

	env.println("当前用户")
	return env.render(env.Render.Sessions([]domain.Session{session}, session.Name))
}

type AccountsCommand struct{}

func (AccountsCommand) Exec(_ context.Context, env *Env, _ []string) error {
	current, _ := env.Sessions.Current()

	env.println("分身账户")
	return env.render(env.Render.Sessions(env.Sessions.List(), current.Name))
}

// ChangeCommand switches the current identity. An unknown name is logged in
// interactively and keeps prompting until the forum accepts a password.
type ChangeCommand struct{}

func (ChangeCommand) Exec(ctx context.Context, env *Env, args []string) error {
	target := strings.Join(args, " ")
	if target == "" {
		env.println("非法指令, change指令应该为: change <用户名>")
		return nil
	}

	current, _ := env.Sessions.Current()
	env.printf("账户切换 %s ===> %s\n", current.Name, target)

	return env.Sessions.Change(ctx, target)
}
