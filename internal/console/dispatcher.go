package console

import (
	"context"
	"errors"
	"io"
	"strings"

	"github.com/bnema/fishpi-cli/internal/logging"
	"go.uber.org/zap"
)

const commandMarker = "#"

type LineSource interface {
	ReadLine(ctx context.Context) (string, error)
}

type Dispatcher struct {
	registry *Registry
	env      *Env
	logger   *zap.SugaredLogger
}

func NewDispatcher(registry *Registry, env *Env, logger *zap.SugaredLogger) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		env:      env,
		logger:   logging.OrDiscard(logger),
	}
}

// Dispatch runs a single input line. A line with one token and no command
// marker is chat text, as is any line whose first token is not registered;
// in both cases the fallback receives every token.
func (d *Dispatcher) Dispatch(ctx context.Context, line string) error {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return nil
	}

	if len(tokens) < 2 && !strings.HasPrefix(tokens[0], commandMarker) {
		return d.registry.Fallback().Exec(ctx, d.env, tokens)
	}

	cmd, ok := d.registry.Resolve(tokens[0])
	if !ok {
		return cmd.Exec(ctx, d.env, tokens)
	}
	return cmd.Exec(ctx, d.env, tokens[1:])
}

// Run reads and dispatches lines until the source is exhausted or ctx is
// cancelled. Command failures are reported and never stop the loop.
func (d *Dispatcher) Run(ctx context.Context, src LineSource) error {
	for {
		line, err := src.ReadLine(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		if err := d.Dispatch(ctx, line); err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			d.logger.Warnw("command failed", "command", firstToken(line), "error", err)
			d.env.printf("命令执行失败: %v\n", err)
		}
	}
}

func firstToken(line string) string {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return ""
	}
	return tokens[0]
}
