package app

import (
	"time"

	"github.com/alexanderramin/carestock/internal/stockhealth"
)

// SnapshotRequest selects which records to derive. Empty filters select all.
type SnapshotRequest struct {
	Now       *time.Time
	Locations []string
	Items     []string
	// Refresh bypasses the snapshot cache.
	Refresh bool
}

func NewSnapshotRequest() SnapshotRequest {
	return SnapshotRequest{}
}

// Selection converts the request filters to a stockhealth.Selection.
func (r SnapshotRequest) Selection() stockhealth.Selection {
	return stockhealth.Selection{Locations: r.Locations, Items: r.Items}
}

// FeedState describes where a snapshot came from.
type FeedState struct {
	GeneratedAt time.Time
	FromCache   bool
	// Unavailable is set when the stock-health table does not exist. The
	// response is then empty and Reason explains why.
	Unavailable bool
	Reason      string
}

type SnapshotResponse struct {
	FeedState
	HorizonDays int
	Records     []stockhealth.AugmentedRecord
	AtRisk      []stockhealth.AugmentedRecord
	Overstocked []stockhealth.AugmentedRecord
	Counts      stockhealth.StatusCounts

	// AllLocations and AllItems list every value in the unfiltered feed,
	// for filter pickers.
	AllLocations []string
	AllItems     []string
}

// ForecastMethod describes how the forecast columns were produced.
func (r *SnapshotResponse) ForecastMethod() string {
	return stockhealth.MethodDescription(r.HorizonDays)
}
