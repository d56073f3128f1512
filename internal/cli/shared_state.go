package cli

import (
	"strings"

	"github.com/alexanderramin/carestock/internal/app"
	"github.com/alexanderramin/carestock/internal/cli/formatter"
)

// SharedState holds context shared across all views via pointer.
type SharedState struct {
	App *App

	// Sidebar filters. Empty means all.
	Locations []string
	Items     []string

	// LastUser prefills the name field of the action form.
	LastUser string

	// Terminal dimensions
	Width  int
	Height int
}

func newSharedState(a *App, filters *snapshotFilters) *SharedState {
	s := &SharedState{App: a}
	if filters != nil {
		s.Locations = append([]string(nil), filters.locations...)
		s.Items = append([]string(nil), filters.items...)
	}
	return s
}

// Request builds a snapshot request from the active filters.
func (s *SharedState) Request(refresh bool) app.SnapshotRequest {
	req := app.NewSnapshotRequest()
	req.Locations = s.Locations
	req.Items = s.Items
	req.Refresh = refresh
	return req
}

// FilterSummary describes the active filters for the header.
func (s *SharedState) FilterSummary() string {
	if len(s.Locations) == 0 && len(s.Items) == 0 {
		return ""
	}
	var parts []string
	if len(s.Locations) > 0 {
		parts = append(parts, "locations: "+strings.Join(s.Locations, ", "))
	}
	if len(s.Items) > 0 {
		parts = append(parts, "items: "+strings.Join(s.Items, ", "))
	}
	return formatter.Dim("[" + strings.Join(parts, "; ") + "]")
}

// ContentHeight returns the available height for view content,
// accounting for the header and status bar (2 lines each).
func (s *SharedState) ContentHeight() int {
	h := s.Height - 4
	if h < 1 {
		return 1
	}
	return h
}
