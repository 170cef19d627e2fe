package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/fishpi-cli/internal/console"
)

type loginOptions struct {
	username string
	password string
	code     string
}

// runChat restores remembered identities, logs in the requested one and
// serves the command loop until input ends or ctx is cancelled.
func runChat(ctx context.Context, app *app, opts loginOptions) error {
	defer app.input.Close()

	remembered, err := app.creds.LoadAll(ctx)
	if err != nil {
		app.logger.Warnw("load remembered accounts", "error", err)
	}
	for _, creds := range remembered {
		app.sessions.Add(creds)
	}

	username := strings.TrimSpace(opts.username)
	if username == "" {
		username = app.state.Snapshot().Auth.Username
	}
	if username == "" {
		username, err = promptUsername(ctx, app)
		if err != nil {
			return err
		}
	}

	password := opts.password
	if password == "" {
		if known, ok := app.sessions.Get(username); ok {
			password = known.Password
		}
	}

	session, err := app.sessions.Login(ctx, username, password, opts.code)
	if err != nil {
		return fmt.Errorf("login %s: %w", username, err)
	}
	_, _ = fmt.Fprintf(app.out, "欢迎 %s, 输入 #help 查看命令\n", session.Name)

	env := &console.Env{
		Out:      app.out,
		Sessions: app.sessions,
		State:    app.state,
		Forum:    app.forum,
		Render:   app.renderer,
	}
	dispatcher := console.NewDispatcher(console.NewBuiltinRegistry(), env, app.logger)

	err = dispatcher.Run(ctx, app.input)
	for _, s := range app.sessions.List() {
		_ = app.sessions.Offline(s.Name)
	}
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

func promptUsername(ctx context.Context, app *app) (string, error) {
	for {
		_, _ = fmt.Fprintln(app.out, "请输入用户名:")
		line, err := app.input.ReadLine(ctx)
		if err != nil {
			return "", fmt.Errorf("read username: %w", err)
		}
		if username := strings.TrimSpace(line); username != "" {
			return username, nil
		}
	}
}
