package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/recomp/internal/app"
)

func (c *CLI) newAnalysisCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analysis",
		Short: "Inspect and record class set analysis files",
	}
	cmd.AddCommand(c.newAnalysisShowCmd())
	cmd.AddCommand(c.newAnalysisConvertCmd())
	cmd.AddCommand(c.newAnalysisDiffCmd())
	cmd.AddCommand(c.newAnalysisRecordCmd())
	return cmd
}

func (c *CLI) newAnalysisShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print an analysis file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asYAML, _ := cmd.Flags().GetBool("yaml")
			out, err := c.app.ShowAnalysis(args[0], asYAML)
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().Bool("yaml", false, "Print the YAML document form")
	return cmd
}

func (c *CLI) newAnalysisConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert an analysis between its YAML (.yaml, .yml) and binary forms",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return c.app.ConvertAnalysis(args[0], args[1])
		},
	}
}

func (c *CLI) newAnalysisDiffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "diff <from> <to>",
		Short: "Print a unified diff of two analysis files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			diff, err := c.app.DiffAnalysis(args[0], args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprint(cmd.OutOrStdout(), diff)
			return err
		},
	}
}

func (c *CLI) newAnalysisRecordCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "record <source-set> <file>",
		Short: "Store the analysis produced by a compilation of a source set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			full, _ := cmd.Flags().GetBool("full")
			recompiled, _ := cmd.Flags().GetStringSlice("recompiled")

			delta, err := c.app.ReadAnalysis(args[1])
			if err != nil {
				return err
			}
			return c.app.RecordAnalysis(cmd.Context(), configFlag(cmd), args[0], delta, app.RecordOptions{
				Full:       full,
				Recompiled: recompiled,
			})
		},
	}
	cmd.Flags().Bool("full", false, "Replace the stored analysis instead of merging into it")
	cmd.Flags().StringSlice("recompiled", nil, "Classes whose stored entries the file replaces")
	return cmd
}
