package cli

import (
	"errors"
	"fmt"
	"io"
	"regexp"

	"github.com/clarinet-labs/clarinet/internal/branding"
	"github.com/clarinet-labs/clarinet/internal/changes"
	"github.com/clarinet-labs/clarinet/internal/config"
	"github.com/clarinet-labs/clarinet/internal/generate"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

var namePattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9_-]*$`)

var (
	newPath        string
	newTelemetry   bool
	newNoTelemetry bool
	newWith        []string
	newDryRun      bool
)

func init() {
	newCmd.Flags().StringVar(&newPath, "path", ".", "Parent directory of the new project")
	newCmd.Flags().BoolVar(&newTelemetry, "telemetry", false, "Enable telemetry in Clarinet.toml (default from config)")
	newCmd.Flags().BoolVar(&newNoTelemetry, "no-telemetry", false, "Disable telemetry in Clarinet.toml")
	newCmd.Flags().StringSliceVar(&newWith, "with", nil, "Optional directories to create: clients, notebooks, scripts")
	newCmd.Flags().BoolVar(&newDryRun, "dry-run", false, "Print the planned changes without writing anything")
	newCmd.MarkFlagsMutuallyExclusive("telemetry", "no-telemetry")
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Create a new project",
	Long: `Create a new Clarity project with contracts, settings, and tests directories,
network settings for devnet, testnet, and mainnet, and editor configuration.

Examples:
  clarinet new counter
  clarinet new nft --path ~/src --with scripts --no-telemetry`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := newOptions{
			path:      newPath,
			name:      args[0],
			telemetry: config.Telemetry(),
			with:      config.OptionalDirs(),
			dryRun:    newDryRun,
		}
		opts.telemetry = resolveTelemetry(cmd.Flags(), opts.telemetry)
		if cmd.Flags().Changed("with") {
			opts.with = newWith
		}

		return runNew(opts, afero.NewOsFs(), cmd.OutOrStdout(), logger)
	},
}

// resolveTelemetry applies the telemetry flags over def. --no-telemetry
// only ever turns telemetry off, so --no-telemetry=false keeps def.
func resolveTelemetry(flags *pflag.FlagSet, def bool) bool {
	if flags.Changed("telemetry") {
		v, _ := flags.GetBool("telemetry")
		return v
	}
	if off, _ := flags.GetBool("no-telemetry"); off && flags.Changed("no-telemetry") {
		return false
	}
	return def
}

type newOptions struct {
	path      string
	name      string
	telemetry bool
	with      []string
	dryRun    bool
}

func runNew(opts newOptions, fsys afero.Fs, out io.Writer, logger *zap.Logger) error {
	if err := validateName(opts.name); err != nil {
		return err
	}

	dirs := make([]generate.OptionalDir, 0, len(opts.with))
	for _, w := range opts.with {
		d, err := generate.ParseOptionalDir(w)
		if err != nil {
			return err
		}
		dirs = append(dirs, d)
	}

	g := generate.NewProject(opts.path, opts.name, opts.telemetry, generate.WithOptionalDirs(dirs...))
	list, err := g.Run()
	if err != nil {
		return fmt.Errorf("planning project %s: %w", opts.name, err)
	}
	if err := generate.Verify(list); err != nil {
		return fmt.Errorf("generated project failed verification: %w", err)
	}
	logger.Debug("project planned",
		zap.String("name", opts.name),
		zap.String("path", opts.path),
		zap.Bool("telemetry", opts.telemetry),
		zap.Int("changes", len(list)))

	if opts.dryRun {
		fmt.Fprintln(out, "Dry run, nothing written:")
		for _, c := range list {
			fmt.Fprintf(out, "  %s\n", changes.Comment(c))
		}
		return nil
	}

	if err := changes.NewExecutor(fsys, out, logger).Apply(list); err != nil {
		if errors.Is(err, changes.ErrExists) {
			return fmt.Errorf("cannot create project %s: %w", opts.name, err)
		}
		return err
	}

	printNextSteps(out, opts.name)
	return nil
}

func validateName(name string) error {
	if !namePattern.MatchString(name) {
		return fmt.Errorf("invalid project name %q: must match pattern [a-zA-Z0-9][a-zA-Z0-9_-]*", name)
	}
	return nil
}

func printNextSteps(w io.Writer, name string) {
	cli := branding.CLIName()
	fmt.Fprintln(w, "\nNext steps:")
	fmt.Fprintf(w, "  1. cd %s\n", name)
	fmt.Fprintln(w, "  2. Add contracts under contracts/ and list them in Clarinet.toml")
	fmt.Fprintf(w, "  3. Run '%s check' to analyze them\n", cli)
	fmt.Fprintf(w, "  4. Run '%s test' to run the tests under tests/\n", cli)
}
