package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/recomp/internal/app"
	"go.trai.ch/recomp/internal/core/domain"
)

func (c *CLI) newPlanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan <source-set>",
		Short: "Print the classes to recompile since the previous run",
		Long: `Print the classes to recompile since the previous run.

Planning records the current source state, so the next plan compares against this one
even if the compilation is never run. Use --dry-run to plan without recording.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			asJSON, _ := cmd.Flags().GetBool("json")

			spec, err := c.app.Plan(cmd.Context(), configFlag(cmd), args[0], app.PlanOptions{DryRun: dryRun})
			if err != nil {
				return err
			}
			return printSpec(cmd.OutOrStdout(), spec, asJSON)
		},
	}
	cmd.Flags().BoolP("dry-run", "n", false, "Plan without recording the current source state")
	cmd.Flags().Bool("json", false, "Print the plan as JSON")
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <source-set>",
		Short: "Plan again whenever sources or the classpath change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Watch(cmd.Context(), configFlag(cmd), args[0], app.PlanOptions{})
		},
	}
}

func printSpec(w io.Writer, spec *domain.RecompilationSpec, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(spec)
	}

	if spec.IsFullRebuild() {
		_, err := fmt.Fprintf(w, "full rebuild: %s\n", spec.FullRebuildCause)
		return err
	}
	for _, className := range spec.Classes {
		if _, err := fmt.Fprintln(w, className); err != nil {
			return err
		}
	}
	return nil
}
