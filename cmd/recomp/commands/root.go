// Package commands implements the CLI commands for recomp.
package commands

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/recomp/internal/adapters/detector" //nolint:depguard // Output mode selection
	"go.trai.ch/recomp/internal/app"
	"go.trai.ch/recomp/internal/build"
	"go.trai.ch/recomp/internal/core/ports"
)

// CLI represents the command line interface for recomp.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// New creates a new CLI instance with the given app.
func New(a *app.App, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "recomp",
		Short:         "Plans incremental Java recompilation from a class dependency analysis",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.String(),
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", ".", "Configuration file, or a directory to search upwards from")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")
	rootCmd.PersistentFlags().String("color", detector.ModeAuto.String(), "Color logs: auto, always or never")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		colorFlag, _ := cmd.Flags().GetString("color")
		mode := detector.ResolveMode(detector.DetectEnvironment(os.Stderr), colorFlag)
		if l, ok := c.logger.(interface{ SetColor(bool) }); ok {
			l.SetColor(mode == detector.ModeColor)
		}
		if enabled, _ := cmd.Flags().GetBool("log-json"); enabled {
			if l, ok := c.logger.(interface{ SetJSON(bool) }); ok {
				l.SetJSON(true)
			}
		}
	}

	rootCmd.AddCommand(c.newPlanCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newAnalysisCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
}

func configFlag(cmd *cobra.Command) string {
	cwd, _ := cmd.Flags().GetString("config")
	return cwd
}
