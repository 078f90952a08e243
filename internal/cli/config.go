package cli

import (
	"fmt"
	"strings"

	"github.com/clarinet-labs/clarinet/internal/branding"
	"github.com/clarinet-labs/clarinet/internal/config"
	"github.com/spf13/cobra"
)

func init() {
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configGetCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage user settings",
	Long:  configLong(),
}

// configLong lists the known keys with the environment variables that
// override them.
func configLong() string {
	return fmt.Sprintf(`Read and write settings stored at ~/%s/config.yaml.

Keys:
  %-10s  default telemetry flag written to new Clarinet.toml files (env: %s)
  %-10s  comma-separated optional directories for new projects (env: %s)`,
		branding.HomeDir(),
		config.KeyTelemetry, branding.EnvVar(config.KeyTelemetry),
		config.KeyNewWith, branding.EnvVar(strings.ReplaceAll(config.KeyNewWith, ".", "_")))
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, value := args[0], args[1]
		if err := config.Set(key, value); err != nil {
			return fmt.Errorf("setting config key %q: %w", key, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %s\n", key, value)
		return nil
	},
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), config.Get(args[0]))
		return nil
	},
}
