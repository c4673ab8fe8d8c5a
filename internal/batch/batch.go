// Package batch drives the project form without a terminal: submissions are
// read from YAML, typed into the form one by one and submitted.
package batch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"gopkg.in/yaml.v3"

	"github.com/idilsaglam/projboard/internal/board"
	"github.com/idilsaglam/projboard/internal/export"
	"github.com/idilsaglam/projboard/internal/surface"
	"github.com/idilsaglam/projboard/internal/ui"
	"github.com/idilsaglam/projboard/internal/view"
)

// FormatText prints the rendered board.
const FormatText = "text"

// RawText keeps a scalar exactly as written, so `people: 3` and
// `people: three` both reach the form as typed text.
type RawText string

func (r *RawText) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected a scalar", n.Line)
	}
	*r = RawText(n.Value)
	return nil
}

// Submission is one filled-in form.
type Submission struct {
	Title       RawText `yaml:"title"`
	Description RawText `yaml:"description"`
	People      RawText `yaml:"people"`
}

// Options configure a run.
type Options struct {
	Templates *surface.Library
	Log       *slog.Logger
	Format    string    // text, json or yaml
	Errs      io.Writer // rejected submissions are reported here
	Width     int       // panel width for text output
}

// Result counts what happened to the submissions.
type Result struct {
	Submitted int
	Accepted  int
	Rejected  int
}

// Decode reads a YAML sequence of submissions. An empty document is no
// submissions.
func Decode(r io.Reader) ([]Submission, error) {
	var subs []Submission
	if err := yaml.NewDecoder(r).Decode(&subs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("decode submissions: %w", err)
	}
	return subs, nil
}

// Run submits every entry on a fresh board and writes the final board to w.
func Run(ctx context.Context, subs []Submission, w io.Writer, opt Options) (Result, error) {
	if opt.Log == nil {
		opt.Log = slog.New(slog.DiscardHandler)
	}
	if opt.Errs == nil {
		opt.Errs = io.Discard
	}
	if opt.Format == "" {
		opt.Format = FormatText
	}

	var res Result
	current := 0
	alert := view.AlertFunc(func(msg string) {
		res.Rejected++
		s := subs[current]
		ui.FailTo(opt.Errs, fmt.Sprintf("submission %d (%q): %s", current+1, string(s.Title), msg))
		opt.Log.Warn("submission rejected", "index", current+1, "title", string(s.Title))
	})

	b, err := board.New(board.Config{Templates: opt.Templates, Alert: alert, Log: opt.Log})
	if err != nil {
		return res, err
	}

	for i, s := range subs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		current = i
		before := b.Store.Len()
		b.Fill(string(s.Title), string(s.Description), string(s.People))
		if err := b.Submit(); err != nil {
			return res, err
		}
		res.Submitted++
		if b.Store.Len() > before {
			res.Accepted++
		}
	}
	opt.Log.Info("batch finished",
		"submitted", res.Submitted,
		"accepted", res.Accepted,
		"rejected", res.Rejected,
	)

	if opt.Format == FormatText {
		_, err := fmt.Fprintln(w, ui.Summary(len(b.Active.Projects()), len(b.Finished.Projects()))+"\n"+
			ui.Render(b.Page.Root, ui.RenderOptions{Width: opt.Width}))
		return res, err
	}
	return res, export.Write(w, opt.Format, b.Store.Projects())
}
