package service

import (
	"context"
	"time"

	"github.com/alexanderramin/carestock/internal/app"
	"github.com/alexanderramin/carestock/internal/stockhealth"
)

type analyticsService struct {
	loader      *SnapshotLoader
	session     *Session
	horizonDays int
	observer    UseCaseObserver
}

// NewAnalyticsService builds the analytics, impact and alert-preview use
// cases. Alert previews read preferences from session.
func NewAnalyticsService(loader *SnapshotLoader, session *Session, horizonDays int, observers ...UseCaseObserver) AnalyticsService {
	if horizonDays <= 0 {
		horizonDays = stockhealth.DefaultHorizonDays
	}
	if session == nil {
		session = NewSession()
	}
	return &analyticsService{
		loader:      loader,
		session:     session,
		horizonDays: horizonDays,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *analyticsService) derive(ctx context.Context, req app.SnapshotRequest, fields map[string]any) ([]stockhealth.AugmentedRecord, app.FeedState, error) {
	feed, err := s.loader.load(ctx, req.Refresh)
	if err != nil {
		return nil, app.FeedState{}, err
	}
	feed.annotate(fields)
	recs := stockhealth.AugmentWithHorizon(req.Selection().Apply(feed.records), s.horizonDays)
	return recs, feedState(feed, req.Now), nil
}

func (s *analyticsService) Analyze(ctx context.Context, req app.SnapshotRequest) (resp *app.AnalyticsResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "analytics", startedAt, fields, &err)

	recs, state, err := s.derive(ctx, req, fields)
	if err != nil {
		return nil, err
	}
	return &app.AnalyticsResponse{
		FeedState:        state,
		Counts:           stockhealth.CountByStatus(recs),
		LocationRisk:     stockhealth.RankLocationsByRisk(recs),
		Heatmap:          stockhealth.BuildCoverHeatmap(recs),
		LifeSavingAtRisk: stockhealth.LifeSavingAtRisk(recs),
	}, nil
}

func (s *analyticsService) Estimate(ctx context.Context, req app.SnapshotRequest) (resp *app.ImpactResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "impact", startedAt, fields, &err)

	recs, state, err := s.derive(ctx, req, fields)
	if err != nil {
		return nil, err
	}
	return &app.ImpactResponse{FeedState: state, Impact: stockhealth.EstimateImpact(recs)}, nil
}

func (s *analyticsService) Preview(ctx context.Context, req app.SnapshotRequest) (resp *app.AlertPreviewResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "alert_preview", startedAt, fields, &err)

	recs, state, err := s.derive(ctx, req, fields)
	if err != nil {
		return nil, err
	}
	prefs := s.session.Preferences()
	alerts := stockhealth.PreviewAlerts(recs, prefs)
	fields["alerts"] = len(alerts)
	return &app.AlertPreviewResponse{
		FeedState:   state,
		Preferences: prefs,
		Alerts:      alerts,
		Channels:    stockhealth.Channels(prefs),
	}, nil
}
