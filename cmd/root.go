package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tomlrepo "github.com/bnema/fishpi-cli/internal/adapters/repo/toml"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	flagUsername = "username"
	flagPassword = "password"
	flagCode     = "code"
	flagFilePath = "file-path"
	flagLogLevel = "log-level"

	envPrefix = "FISHPI"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	cfg := viper.New()

	rootCmd := &cobra.Command{
		Use:   "fishpi",
		Short: "FishPi chat room terminal client",
		Long: "fishpi logs in to the FishPi forum, joins the chat room and reads commands from the terminal. " +
			"Plain lines are sent as chat messages; lines starting with # run client commands (#help lists them).",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return loadConfig(cmd, cfg)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := wireApp(cmd.Context(), cfg, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return runChat(cmd.Context(), app, loginOptions{
				username: cfg.GetString(flagUsername),
				password: cfg.GetString(flagPassword),
				code:     cfg.GetString(flagCode),
			})
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringP(flagUsername, "u", "", "forum username (defaults to the last login)")
	flags.StringP(flagPassword, "p", "", "forum password (prompted when missing)")
	flags.StringP(flagCode, "c", "", "two-factor authentication code")
	flags.StringP(flagFilePath, "f", "", "config file path (default ~/.fishpi/config.toml)")
	flags.String(flagLogLevel, "warn", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newVersionCmd(),
		newAccountCmd(cfg),
	)

	return rootCmd
}

// loadConfig layers .env, FISHPI_* environment variables and flags into cfg.
func loadConfig(cmd *cobra.Command, cfg *viper.Viper) error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load .env: %w", err)
	}

	cfg.SetEnvPrefix(envPrefix)
	cfg.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cfg.AutomaticEnv()

	if err := cfg.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if path := cfg.GetString(flagFilePath); path != "" {
		cfg.Set(tomlrepo.ConfigPathKey, path)
	}

	return nil
}
