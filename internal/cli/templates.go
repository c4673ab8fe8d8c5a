package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/projboard/internal/surface"
)

func newTemplatesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "templates",
		Short: "List the view templates in use (checks a --templates file)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lib, err := surface.LoadLibrary(app.Templates)
			if err != nil {
				return err
			}
			for _, id := range lib.IDs() {
				t, _ := lib.Template(id)
				fmt.Fprintf(cmd.OutOrStdout(), "%-16s %s\n", id, t.Kind)
			}
			return nil
		},
	}
}
