package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/inputfix/internal/domain"
	m "github.com/mouse-blink/inputfix/internal/model"
)

const scanLongDescription = `Scan template files for <input> elements that lack accessibility attributes.

By default only inputs missing both id and name are reported. With --enhanced
the scan also reports inputs missing only one of them, and password, email,
tel and username fields without autocomplete. Hidden inputs are skipped.

The plain-text report is written to report.path
(form_field_violations_report.txt by default); its data is kept for
"inputfix view".`

var scanEnhancedFlag bool
var scanReportFlag string

// scanCmd represents the scan command.
var scanCmd = newScanCmd()

func newScanCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scan [paths...]",
		Short: "Report inputs missing id, name or autocomplete",
		Long:  scanLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			mode := m.ScanBasic
			if scanEnhancedFlag {
				mode = m.ScanEnhanced
			}

			reportPath := cfg.Report.Path
			if scanReportFlag != "" {
				reportPath = scanReportFlag
			}

			return workflow.Scan(cmd.Context(), domain.ScanArgs{
				SourceArgs: sourceArgs(args),
				Mode:       mode,
				ReportPath: m.Path(reportPath),
				DataPath:   m.Path(cfg.Report.DataPath),
			})
		},
	}
	cmd.Flags().BoolVarP(&scanEnhancedFlag, "enhanced", "e", false, "also report partial id/name and missing autocomplete")
	cmd.Flags().StringVarP(&scanReportFlag, "report", "r", "", "path of the plain-text report (overrides report.path)")

	return cmd
}

func init() {
	rootCmd.AddCommand(scanCmd)
}
