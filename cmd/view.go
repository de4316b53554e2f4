package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/inputfix/internal/domain"
	m "github.com/mouse-blink/inputfix/internal/model"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view",
		Short: "View the last saved scan report",
		Long:  "View the scan report saved by the last \"inputfix scan\" run (report.data_path).",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			return workflow.View(cmd.Context(), domain.ViewArgs{DataPath: m.Path(cfg.Report.DataPath)})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
