package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/idilsaglam/projboard/internal/batch"
	"github.com/idilsaglam/projboard/internal/export"
	"github.com/idilsaglam/projboard/internal/surface"
)

type batchFlags struct {
	format string
	strict bool
}

func newBatchCmd(app *App) *cobra.Command {
	var flags batchFlags
	cmd := &cobra.Command{
		Use:   "batch [file|-]",
		Short: "Submit projects from a YAML list and print the board",
		Long: `Reads a YAML list of {title, description, people} entries, submits each
through the project form exactly as typed and prints the final board.
Rejected entries are reported on stderr.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runBatch(cmd, app, flags, path)
		},
	}
	cmd.Flags().StringVar(&flags.format, "format", batch.FormatText, "Output format (text|json|yaml)")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Fail if any submission is rejected")
	return cmd
}

func runBatch(cmd *cobra.Command, app *App, flags batchFlags, path string) error {
	switch flags.format {
	case batch.FormatText, export.FormatJSON, export.FormatYAML:
	default:
		return fmt.Errorf("unknown format %q (want text, json or yaml)", flags.format)
	}

	lib, err := surface.LoadLibrary(app.Templates)
	if err != nil {
		return err
	}
	logger, err := app.logger(false)
	if err != nil {
		return err
	}

	var in io.Reader = cmd.InOrStdin()
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("open submissions: %w", err)
		}
		defer f.Close()
		in = f
	}
	subs, err := batch.Decode(in)
	if err != nil {
		return err
	}

	res, err := batch.Run(cmd.Context(), subs, cmd.OutOrStdout(), batch.Options{
		Templates: lib,
		Log:       logger,
		Format:    flags.format,
		Errs:      cmd.ErrOrStderr(),
		Width:     outputWidth(),
	})
	if err != nil {
		return err
	}
	if flags.strict && res.Rejected > 0 {
		return fmt.Errorf("%d of %d submissions rejected", res.Rejected, res.Submitted)
	}
	return nil
}

func outputWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		return w
	}
	return 0
}
