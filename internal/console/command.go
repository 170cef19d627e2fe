package console

import (
	"context"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/bnema/fishpi-cli/internal/application"
	"github.com/bnema/fishpi-cli/internal/domain"
	"github.com/bnema/fishpi-cli/internal/ports"
)

// Command is one operator action. Exec receives the arguments that follow the
// command token. Malformed arguments are reported on env.Out and are not an
// error; a returned error means a collaborator failed.
type Command interface {
	Exec(ctx context.Context, env *Env, args []string) error
}

type CommandFunc func(ctx context.Context, env *Env, args []string) error

func (f CommandFunc) Exec(ctx context.Context, env *Env, args []string) error {
	return f(ctx, env, args)
}

type Renderer interface {
	Sessions(sessions []domain.Session, current string) (string, error)
	Profile(profile domain.UserProfile) (string, error)
	OnlineUsers(users []domain.OnlineUser) (string, error)
	Blacklist(users, keywords []string) (string, error)
}

// Env is the handle every command runs against.
type Env struct {
	Out      io.Writer
	Sessions *application.SessionService
	State    *application.RuntimeState
	Forum    ports.Forum
	Render   Renderer

	// Gesture picks the hand for rock-paper-scissors packets; random when nil.
	Gesture func() domain.Gesture
}

func (e *Env) println(a ...any) {
	_, _ = fmt.Fprintln(e.Out, a...)
}

func (e *Env) printf(format string, a ...any) {
	_, _ = fmt.Fprintf(e.Out, format, a...)
}

func (e *Env) current() (domain.Session, error) {
	session, ok := e.Sessions.Current()
	if !ok {
		return domain.Session{}, domain.ErrNoCurrentSession
	}
	return session, nil
}

func (e *Env) gesture() domain.Gesture {
	if e.Gesture != nil {
		return e.Gesture()
	}
	return domain.Gesture(rand.IntN(3))
}

func (e *Env) render(out string, err error) error {
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}
	e.println(out)
	return nil
}
