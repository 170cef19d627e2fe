package cmd

import (
	"fmt"

	"github.com/bnema/fishpi-cli/internal/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newAccountCmd(cfg *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Manage remembered accounts",
	}

	cmd.AddCommand(
		newAccountListCmd(cfg),
	)

	return cmd
}

func newAccountListCmd(cfg *viper.Viper) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List remembered accounts",
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := logging.New(cmd.ErrOrStderr(), cfg.GetString(flagLogLevel))
			if err != nil {
				return err
			}

			state, _, err := wireState(cmd.Context(), cfg, logger)
			if err != nil {
				return err
			}

			snapshot := state.Snapshot()
			for _, account := range snapshot.Accounts {
				marker := " "
				if account.Name == snapshot.Auth.Username {
					marker = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\n", marker, account.Name, account.SecretRef)
			}

			return nil
		},
	}
}
