package app

import (
	"context"

	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/alexanderramin/carestock/internal/importer"
)

type SnapshotUseCase interface {
	Snapshot(ctx context.Context, req SnapshotRequest) (*SnapshotResponse, error)
}

type AnalyticsUseCase interface {
	Analyze(ctx context.Context, req SnapshotRequest) (*AnalyticsResponse, error)
}

type ImpactUseCase interface {
	Estimate(ctx context.Context, req SnapshotRequest) (*ImpactResponse, error)
}

type AlertPreviewUseCase interface {
	Preview(ctx context.Context, req SnapshotRequest) (*AlertPreviewResponse, error)
}

type LogActionUseCase interface {
	LogAction(ctx context.Context, req LogActionRequest) (*domain.ActionLogEntry, error)
}

type ImportSnapshotUseCase interface {
	ImportSnapshot(ctx context.Context, filePath string) (*ImportResult, error)
	ImportSnapshotFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (*ImportResult, error)
}
