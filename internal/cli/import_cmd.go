package cli

import (
	"errors"
	"fmt"

	"github.com/alexanderramin/carestock/internal/cli/formatter"
	"github.com/spf13/cobra"
)

var errImportWithWarehouse = errors.New("import replaces the local stock-health mirror, but the active feed is the MySQL warehouse (warehouse.driver=mysql)")

func newImportCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "import FILE",
		Short: "Replace the local stock-health snapshot from a JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.WarehouseFeed {
				return errImportWithWarehouse
			}
			res, err := app.Import.ImportSnapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatImportResult(res))
			return nil
		},
	}
}
