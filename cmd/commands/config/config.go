package config

import (
	"nathanbeddoewebdev/hexpair/internal/config"

	"github.com/spf13/cobra"
)

// NewCommand returns the "config" parent command.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage hexpair configuration",
		Long: "View and modify persistent hexpair settings.\n\n" +
			"Configuration is stored at ~/.config/hexpair/config.json.\n\n" +
			config.KeysHelp(),
	}

	cmd.AddCommand(SetCommand())
	cmd.AddCommand(GetCommand())

	return cmd
}
