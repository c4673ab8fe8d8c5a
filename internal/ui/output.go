package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// ConfigureColor drops to plain text when asked to, when NO_COLOR is set, or
// when stdout is not a terminal.
func ConfigureColor(noColor bool) {
	fd := os.Stdout.Fd()
	if noColor || strings.TrimSpace(os.Getenv("NO_COLOR")) != "" ||
		!(isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)) {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func OK(msg string)   { OKTo(os.Stdout, msg) }
func Fail(msg string) { FailTo(os.Stderr, msg) }

func OKTo(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Success.Render(current.SymOK+" "+msg))
}

func FailTo(w io.Writer, msg string) {
	fmt.Fprintln(w, current.Error.Render(current.SymFail+" "+msg))
}

// Summary is the one-line header with live counts.
func Summary(active, finished int) string {
	return fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		current.Title.Render("Projects"),
		current.Pending.Render(current.SymActive), active,
		current.Success.Render(current.SymFinished), finished,
		current.Accent.Render("Total"), active+finished,
	)
}
