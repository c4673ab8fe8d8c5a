package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"
)

// logger builds the process logger once. A log file gets JSON records. Without
// one, logs go to stderr: text on a terminal, JSON when piped. The interactive
// board owns the terminal, so without a file it discards.
func (app *App) logger(interactive bool) (*slog.Logger, error) {
	if app.log != nil {
		return app.log, nil
	}
	level, err := parseLevel(app.LogLevel)
	if err != nil {
		return nil, err
	}
	options := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch {
	case app.LogFile != "":
		f, err := os.OpenFile(app.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		app.closeFn = f.Close
		handler = slog.NewJSONHandler(f, options)
	case interactive:
		handler = slog.NewTextHandler(io.Discard, options)
	case term.IsTerminal(int(os.Stderr.Fd())):
		handler = slog.NewTextHandler(os.Stderr, options)
	default:
		handler = slog.NewJSONHandler(os.Stderr, options)
	}
	app.log = slog.New(handler)
	return app.log, nil
}

func (app *App) close() error {
	if app.closeFn == nil {
		return nil
	}
	err := app.closeFn()
	app.closeFn = nil
	return err
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return 0, fmt.Errorf("log level %q: %w", s, err)
	}
	return level, nil
}
