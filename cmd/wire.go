package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bnema/fishpi-cli/internal/adapters/forum/memory"
	"github.com/bnema/fishpi-cli/internal/adapters/render/view"
	tomlrepo "github.com/bnema/fishpi-cli/internal/adapters/repo/toml"
	chainstore "github.com/bnema/fishpi-cli/internal/adapters/secrets/chain"
	"github.com/bnema/fishpi-cli/internal/application"
	"github.com/bnema/fishpi-cli/internal/console"
	"github.com/bnema/fishpi-cli/internal/logging"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const secretsDir = ".fishpi/secrets"

type app struct {
	logger   *zap.SugaredLogger
	out      io.Writer
	state    *application.RuntimeState
	creds    *application.CredentialService
	sessions *application.SessionService
	forum    *memory.Forum
	input    *console.LineReader
	renderer *view.Renderer
}

func wireState(ctx context.Context, cfg *viper.Viper, logger *zap.SugaredLogger) (*application.RuntimeState, *application.CredentialService, error) {
	repo, err := tomlrepo.NewRepository(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("wire config repository: %w", err)
	}

	state, err := application.LoadRuntimeState(ctx, repo, logger)
	if err != nil {
		return nil, nil, err
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, nil, fmt.Errorf("resolve home directory: %w", err)
	}

	secretStore, err := chainstore.NewPassFirstWithFileFallback(filepath.Join(homeDir, secretsDir))
	if err != nil {
		return nil, nil, fmt.Errorf("wire secret store chain: %w", err)
	}

	return state, application.NewCredentialService(secretStore, state), nil
}

func wireApp(ctx context.Context, cfg *viper.Viper, in io.Reader, out, errOut io.Writer) (*app, error) {
	logger, err := logging.New(errOut, cfg.GetString(flagLogLevel))
	if err != nil {
		return nil, err
	}

	state, creds, err := wireState(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	forum := memory.NewForum(logger)
	input := console.NewLineReader(in, out)
	sessions := application.NewSessionService(
		newSpinnerAuthenticator(forum, errOut),
		forum,
		input,
		creds,
		logger,
	)

	return &app{
		logger:   logger,
		out:      out,
		state:    state,
		creds:    creds,
		sessions: sessions,
		forum:    forum,
		input:    input,
		renderer: view.NewRenderer(),
	}, nil
}
