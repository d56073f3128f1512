package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/carestock/internal/app"
	"github.com/alexanderramin/carestock/internal/db"
	"github.com/alexanderramin/carestock/internal/importer"
	"github.com/alexanderramin/carestock/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	loader   *SnapshotLoader
	observer UseCaseObserver
}

// NewImportService replaces the local stock-health snapshot from JSON
// files. loader may be nil; when set its cache is dropped after an import.
func NewImportService(uow db.UnitOfWork, loader *SnapshotLoader, observers ...UseCaseObserver) ImportService {
	return &importService{
		uow:      uow,
		loader:   loader,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *importService) ImportSnapshot(ctx context.Context, filePath string) (*app.ImportResult, error) {
	schema, err := importer.LoadSnapshotSchema(filePath)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSnapshotFromSchema(ctx, schema)
}

func (s *importService) ImportSnapshotFromSchema(ctx context.Context, schema *importer.SnapshotSchema) (res *app.ImportResult, err error) {
	startedAt := time.Now()
	fields := map[string]any{}
	defer observe(ctx, s.observer, "import_snapshot", startedAt, fields, &err)

	if errs := importer.ValidateSnapshotSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors("import validation failed", errs)
	}

	snap, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	syncedAt := time.Now().UTC()
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLiteStockHealthRepo(tx).ReplaceAll(ctx, snap.Records, syncedAt)
	})
	if err != nil {
		return nil, fmt.Errorf("replacing stock health snapshot: %w", err)
	}
	fields["records"] = len(snap.Records)

	if s.loader != nil {
		if cerr := s.loader.Invalidate(ctx); cerr != nil {
			fields["cache_error"] = cerr.Error()
		}
	}

	return &app.ImportResult{
		RecordCount:     len(snap.Records),
		UnknownStatuses: snap.Unknown,
		SyncedAt:        syncedAt,
	}, nil
}
