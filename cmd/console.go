package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/inputfix/internal/domain"
	m "github.com/mouse-blink/inputfix/internal/model"
)

const consoleLongDescription = `Replace console.debug/error/warn/info/log calls with the wrapped logger.

console.log becomes logger.info; the other methods keep their name. The
logger import is inserted after the last import line when missing.

Without paths, the files come from the lint command (console.lint_command,
"npm run lint" by default) run in console.project_root: every output line
starting with the absolute project root names a file to fix.`

var consoleDryRunFlag bool

// consoleCmd represents the console command.
var consoleCmd = newConsoleCmd()

func newConsoleCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "console [paths...]",
		Short: "Rewrite console calls to the wrapped logger",
		Long:  consoleLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.RewriteConsole(cmd.Context(), domain.ConsoleArgs{
				SourceArgs: domain.SourceArgs{
					Paths:   parsePaths(args, ""),
					Include: cfg.Console.Include,
					Exclude: cfg.Exclude,
				},
				ProjectRoot:  m.Path(cfg.Console.ProjectRoot),
				LintCommand:  cfg.Console.LintCommand,
				LoggerImport: cfg.Console.LoggerImport,
				LoggerModule: cfg.Console.LoggerModule,
				DryRun:       consoleDryRunFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&consoleDryRunFlag, "dry-run", "n", false, "report what would change without writing files")

	return cmd
}

func init() {
	rootCmd.AddCommand(consoleCmd)
}
