package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/inputfix/internal/domain"
)

const fixLongDescription = `Add id and name attributes to every <input> that has neither.

Identifiers are derived from the bound variable, the placeholder, a
search/filter/select hint or the input type and line number, in that order.

Strategies:
  - contextual  prefix with the page or section name, at most 50 characters
  - batch       prefix bound and placeholder ids with "input-"

Files are rewritten only when at least one input changed. Paths that do not
exist are reported and skipped.`

var fixStrategyFlag string
var fixDryRunFlag bool
var fixInteractiveFlag bool

// fixCmd represents the fix command.
var fixCmd = newFixCmd()

func newFixCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fix [paths...]",
		Short: "Add missing id and name attributes",
		Long:  fixLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			strategy := domain.Strategy(fixStrategyFlag)
			if strategy != domain.StrategyBatch && strategy != domain.StrategyContextual {
				return fmt.Errorf("unknown strategy %q (want batch or contextual)", fixStrategyFlag)
			}

			return workflow.Fix(cmd.Context(), domain.FixArgs{
				SourceArgs:  sourceArgs(args),
				Pass:        domain.Pass(strategy),
				DryRun:      fixDryRunFlag,
				Interactive: fixInteractiveFlag,
			})
		},
	}
	cmd.Flags().StringVarP(&fixStrategyFlag, "strategy", "s", string(domain.StrategyContextual), "identifier strategy: contextual or batch")
	cmd.Flags().BoolVarP(&fixDryRunFlag, "dry-run", "n", false, "report what would change without writing files")
	cmd.Flags().BoolVarP(&fixInteractiveFlag, "interactive", "i", false, "confirm each file before writing it")

	return cmd
}

func init() {
	rootCmd.AddCommand(fixCmd)
}
