package cli

import (
	"os"

	"github.com/clarinet-labs/clarinet/internal/branding"
	"github.com/clarinet-labs/clarinet/internal/buildinfo"
	"github.com/clarinet-labs/clarinet/internal/config"
	"github.com/clarinet-labs/clarinet/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	build   buildinfo.Info
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` sets up and manages projects for Clarity smart contracts:
project scaffolding, network settings, and editor integration.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.New(os.Stderr, verbose)
		return config.Load()
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging on stderr")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	build = buildinfo.Info{Version: version, Commit: commit, Date: date}
	rootCmd.Version = build.Normalized()
	return rootCmd.Execute()
}
