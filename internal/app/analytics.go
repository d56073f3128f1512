package app

import (
	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/alexanderramin/carestock/internal/stockhealth"
)

type AnalyticsResponse struct {
	FeedState
	Counts           stockhealth.StatusCounts
	LocationRisk     []stockhealth.LocationRisk
	Heatmap          stockhealth.CoverHeatmap
	LifeSavingAtRisk []stockhealth.AugmentedRecord
}

type ImpactResponse struct {
	FeedState
	Impact stockhealth.Impact
}

type AlertPreviewResponse struct {
	FeedState
	Preferences domain.AlertPreferences
	Alerts      []stockhealth.Alert
	Channels    []string
}
