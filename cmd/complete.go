package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/inputfix/internal/domain"
)

const completeLongDescription = `Complete inputs that already carry an id.

Adds name="<id>" when name is missing, and autocomplete on password, email
and tel fields (and text fields whose id names a known address or person
field). New attributes are placed right after the id.`

var completeDryRunFlag bool
var completeInteractiveFlag bool

// completeCmd represents the complete command.
var completeCmd = newCompleteCmd()

func newCompleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "complete [paths...]",
		Short: "Add name from id and autocomplete on sensitive fields",
		Long:  completeLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Fix(cmd.Context(), domain.FixArgs{
				SourceArgs:  sourceArgs(args),
				Pass:        domain.PassComplete,
				DryRun:      completeDryRunFlag,
				Interactive: completeInteractiveFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&completeDryRunFlag, "dry-run", "n", false, "report what would change without writing files")
	cmd.Flags().BoolVarP(&completeInteractiveFlag, "interactive", "i", false, "confirm each file before writing it")

	return cmd
}

func init() {
	rootCmd.AddCommand(completeCmd)
}
