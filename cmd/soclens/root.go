package main

import (
	"github.com/spf13/cobra"

	"github.com/soclens/soclens/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "soclens",
	Short:         "Soclens serves security-operations dashboards from pre-shaped snapshots.",
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		structured := commandUsesStructuredLogging(cmd)
		setCommandExecutionContext(commandExecutionContext{
			CommandPath:       cmd.CommandPath(),
			UsesStructuredLog: structured,
		})
		if structured {
			if _, err := logging.BootstrapFromEnv(logging.BootstrapOptions{Command: cmd.CommandPath()}); err != nil {
				return err
			}
		}
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.AddCommand(serveCmd, refreshCmd, migrateCmd, usersCmd)
}
