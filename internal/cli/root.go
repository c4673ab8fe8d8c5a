// Package cli is the projboard command line.
package cli

import (
	"log/slog"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/projboard/internal/surface"
	"github.com/idilsaglam/projboard/internal/tui"
	"github.com/idilsaglam/projboard/internal/ui"
)

// App carries the root flags shared by every subcommand.
type App struct {
	Theme     string
	NoColor   bool
	Templates string
	LogFile   string
	LogLevel  string

	log     *slog.Logger
	closeFn func() error
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "projboard",
		Short:        "Project board: add projects, see them sorted into active and finished",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Start the interactive board
  projboard

  # Submit projects from a file and print the resulting board
  projboard batch projects.yaml

  # Same, from stdin, as JSON
  cat projects.yaml | projboard batch --format json
`),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			ui.SetTheme(app.Theme)
			ui.ConfigureColor(app.NoColor)
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return app.close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand: interactive board, or batch when stdin is piped.
			fd := os.Stdin.Fd()
			if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
				return runBatch(cmd, app, batchFlags{format: "text"}, "-")
			}
			return runTUI(app)
		},
	}

	cmd.PersistentFlags().StringVar(&app.Theme, "theme", envOr("PROJBOARD_THEME", "classic"), "Colour theme (classic|neon|mono)")
	cmd.PersistentFlags().BoolVar(&app.NoColor, "no-color", false, "Disable colours")
	cmd.PersistentFlags().StringVar(&app.Templates, "templates", envOr("PROJBOARD_TEMPLATES", ""), "YAML file overriding the built-in view templates")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", envOr("PROJBOARD_LOG_FILE", ""), "Write logs to this file (the interactive board logs nowhere else)")
	cmd.PersistentFlags().StringVar(&app.LogLevel, "log-level", envOr("PROJBOARD_LOG_LEVEL", "info"), "Log level (debug|info|warn|error)")

	cmd.AddCommand(newBatchCmd(app))
	cmd.AddCommand(newTemplatesCmd(app))

	return cmd
}

func runTUI(app *App) error {
	lib, err := surface.LoadLibrary(app.Templates)
	if err != nil {
		return err
	}
	logger, err := app.logger(true)
	if err != nil {
		return err
	}
	return tui.Run(tui.Options{Templates: lib, Log: logger})
}

func envOr(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

// Execute runs the root command and returns the process exit code.
func Execute(args []string) int {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	cmd.SilenceErrors = true
	if err := cmd.Execute(); err != nil {
		ui.Fail(err.Error())
		return 1
	}
	return 0
}
