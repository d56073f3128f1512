package service

import (
	"context"

	"github.com/alexanderramin/carestock/internal/app"
	"github.com/alexanderramin/carestock/internal/domain"
)

type InventoryService interface {
	app.SnapshotUseCase
}

type AnalyticsService interface {
	app.AnalyticsUseCase
	app.ImpactUseCase
	app.AlertPreviewUseCase
}

type ActionService interface {
	app.LogActionUseCase
	Recent(ctx context.Context) (*app.RecentActionsResponse, error)
}

type SettingsService interface {
	Load(ctx context.Context) error
	Current() domain.AlertPreferences
	Save(ctx context.Context, p domain.AlertPreferences) error
}

type ImportService interface {
	app.ImportSnapshotUseCase
}
