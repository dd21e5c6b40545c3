package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/phanxgames/starwake"
)

var (
	version string
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version. The main
// package calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// globalOptions holds the persistent flags shared by every command.
type globalOptions struct {
	verbose bool
	config  string
	seed    uint64
}

// loadConfig returns the configuration named by --config, or the defaults.
func (o *globalOptions) loadConfig() (starwake.Config, error) {
	if o.config == "" {
		return starwake.DefaultConfig(), nil
	}
	return starwake.LoadConfig(o.config)
}

// newField builds a field from --config and --seed. Seed 0 uses the
// process-wide random source.
func (o *globalOptions) newField(opts ...starwake.Option) (*starwake.Field, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return nil, err
	}
	if o.seed != 0 {
		opts = append([]starwake.Option{starwake.WithSampler(starwake.NewSampler(o.seed))}, opts...)
	}
	return starwake.New(cfg, opts...)
}

// Execute runs the starwake CLI with ctx.
func Execute(ctx context.Context) error {
	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	root := &cobra.Command{
		Use:          "starwake",
		Short:        "Starwake animates engine flames and a starfield",
		Long:         `Starwake generates a flame trail behind a ship and a twinkling, slowly orbiting starfield, then animates them in a window or headlessly.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(os.Stderr, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("starwake %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "TOML config file (defaults built in)")
	root.PersistentFlags().Uint64Var(&opts.seed, "seed", 0, "random seed; 0 picks a fresh one")

	root.AddCommand(newRunCmd(opts))
	root.AddCommand(newSimulateCmd(opts))
	root.AddCommand(newInspectCmd(opts))

	return root
}
