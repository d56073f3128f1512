package cli

import (
	"github.com/alexanderramin/carestock/internal/app"
	"github.com/spf13/cobra"
)

// snapshotFilters are the persistent --location/--item/--refresh flags.
type snapshotFilters struct {
	locations []string
	items     []string
	refresh   bool
}

func (f *snapshotFilters) register(cmd *cobra.Command) {
	flags := cmd.PersistentFlags()
	flags.StringSliceVarP(&f.locations, "location", "l", nil, "Only show these locations (repeatable or comma-separated)")
	flags.StringSliceVarP(&f.items, "item", "i", nil, "Only show these items (repeatable or comma-separated)")
	flags.BoolVar(&f.refresh, "refresh", false, "Bypass the snapshot cache")
}

func (f *snapshotFilters) request() app.SnapshotRequest {
	req := app.NewSnapshotRequest()
	if f == nil {
		return req
	}
	req.Locations = append([]string(nil), f.locations...)
	req.Items = append([]string(nil), f.items...)
	req.Refresh = f.refresh
	return req
}
