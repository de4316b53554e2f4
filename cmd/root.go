// Package cmd provides the root command and CLI setup for inputfix.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mouse-blink/inputfix/internal/adapter"
	"github.com/mouse-blink/inputfix/internal/config"
	"github.com/mouse-blink/inputfix/internal/controller"
	"github.com/mouse-blink/inputfix/internal/domain"
	"github.com/mouse-blink/inputfix/internal/logger"
	m "github.com/mouse-blink/inputfix/internal/model"
)

var cfg *config.Config
var appLogger *zap.Logger
var workflow domain.Workflow

var configFlag string
var logLevelFlag string
var logFormatFlag string

// newWorkflow wires the production adapters. Tests replace it to inject a mock.
var newWorkflow = func(cmd *cobra.Command, _ *config.Config, log *zap.Logger) domain.Workflow {
	return domain.NewWorkflow(
		adapter.NewLocalSourceFSAdapter(),
		adapter.NewReportStore(),
		adapter.NewLocalLintRunner(),
		adapter.NewSurveyConfirmer(),
		controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout())),
		log,
	)
}

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inputfix",
		Short: "Form field accessibility fixer for template files",
		Long: `Inputfix scans template files for <input> elements and patches in the
attributes browsers and assistive technology rely on: id, name and
autocomplete. It can also replace console.* calls with a wrapped logger.

Every command is a single sequential pass that rewrites a file only when
something changed:
  - scan       report inputs missing id/name/autocomplete
  - fix        add id and name to inputs that have neither
  - complete   add name from an existing id, and autocomplete
  - console    rewrite console.* calls to logger.*
  - view       show the last saved scan report`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return setup(cmd)
		},
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default is ./.inputfix.yaml when present)")
	cmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&logFormatFlag, "log-format", "", "log format: console or json")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if appLogger != nil {
		_ = appLogger.Sync()
	}

	if err != nil {
		os.Exit(1)
	}
}

// setup loads configuration, builds the logger and wires the workflow.
func setup(cmd *cobra.Command) error {
	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}

	if logLevelFlag != "" {
		loaded.Log.Level = logLevelFlag
	}

	if logFormatFlag != "" {
		loaded.Log.Format = logFormatFlag
	}

	log, err := logger.New(loaded.Log.Level, loaded.Log.Format)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	cfg = loaded
	appLogger = log
	workflow = newWorkflow(cmd, loaded, log)

	return nil
}

// parsePaths converts arguments to paths, falling back to fallback when
// there are none. An empty fallback yields no paths.
func parsePaths(args []string, fallback string) []m.Path {
	if len(args) == 0 {
		if fallback == "" {
			return nil
		}

		return []m.Path{m.Path(fallback)}
	}

	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func sourceArgs(args []string) domain.SourceArgs {
	return domain.SourceArgs{
		Paths:   parsePaths(args, cfg.Root),
		Include: cfg.Include,
		Exclude: cfg.Exclude,
	}
}
