package service

import (
	"context"
	"time"

	"github.com/alexanderramin/carestock/internal/app"
	"github.com/alexanderramin/carestock/internal/stockhealth"
)

type inventoryService struct {
	loader      *SnapshotLoader
	horizonDays int
	observer    UseCaseObserver
}

func NewInventoryService(loader *SnapshotLoader, horizonDays int, observers ...UseCaseObserver) InventoryService {
	if horizonDays <= 0 {
		horizonDays = stockhealth.DefaultHorizonDays
	}
	return &inventoryService{
		loader:      loader,
		horizonDays: horizonDays,
		observer:    useCaseObserverOrNoop(observers),
	}
}

func (s *inventoryService) Snapshot(ctx context.Context, req app.SnapshotRequest) (resp *app.SnapshotResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"locations": len(req.Locations),
		"items":     len(req.Items),
		"refresh":   req.Refresh,
	}
	defer observe(ctx, s.observer, "snapshot", startedAt, fields, &err)

	feed, err := s.loader.load(ctx, req.Refresh)
	if err != nil {
		return nil, err
	}
	feed.annotate(fields)

	recs := stockhealth.AugmentWithHorizon(req.Selection().Apply(feed.records), s.horizonDays)
	resp = &app.SnapshotResponse{
		FeedState:    feedState(feed, req.Now),
		HorizonDays:  s.horizonDays,
		Records:      recs,
		AtRisk:       stockhealth.AtRisk(recs),
		Overstocked:  stockhealth.Overstocked(recs),
		Counts:       stockhealth.CountByStatus(recs),
		AllLocations: stockhealth.Locations(feed.records),
		AllItems:     stockhealth.Items(feed.records),
	}
	fields["at_risk"] = len(resp.AtRisk)
	return resp, nil
}

func feedState(feed *loadedFeed, now *time.Time) app.FeedState {
	return app.FeedState{
		GeneratedAt: resolveNow(now),
		FromCache:   feed.fromCache,
		Unavailable: feed.unavailable,
		Reason:      feed.reason,
	}
}
