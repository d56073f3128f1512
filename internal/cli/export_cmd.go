package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/alexanderramin/carestock/internal/cli/formatter"
	"github.com/alexanderramin/carestock/internal/export"
	"github.com/spf13/cobra"
)

func newExportCmd(app *App, filters *snapshotFilters) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the priority reorder list as CSV",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Inventory.Snapshot(cmd.Context(), filters.request())
			if err != nil {
				return err
			}
			if resp.Unavailable {
				fmt.Fprint(cmd.OutOrStdout(), formatter.FormatUnavailable(resp.FeedState))
				return nil
			}

			if out == "-" {
				return export.WriteReorderCSV(cmd.OutOrStdout(), resp.Records)
			}
			if err := writeFile(out, func(w io.Writer) error {
				return export.WriteReorderCSV(w, resp.Records)
			}); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatter.Success(fmt.Sprintf("Wrote %d at-risk rows to %s", len(resp.AtRisk), out)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", export.ReorderFileName, `Output file ("-" for stdout)`)
	return cmd
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
