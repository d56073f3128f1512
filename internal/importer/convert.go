package importer

import (
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/carestock/internal/domain"
)

// Snapshot is a validated import ready for persistence.
type Snapshot struct {
	Records    []domain.InventoryRecord
	ExportedAt *time.Time
	// Unknown lists statuses outside Critical/Warning/Healthy. They are kept
	// and rendered without a badge.
	Unknown []string
}

// Convert transforms a validated SnapshotSchema into domain records.
// Call ValidateSnapshotSchema first; Convert assumes the schema is valid.
func Convert(schema *SnapshotSchema) (*Snapshot, error) {
	out := &Snapshot{Records: make([]domain.InventoryRecord, 0, len(schema.Records))}

	if schema.ExportedAt != nil {
		t, err := parseExportedAt(*schema.ExportedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing exported_at: %w", err)
		}
		out.ExportedAt = &t
	}

	unknown := make(map[string]bool)
	for _, r := range schema.Records {
		rec := domain.InventoryRecord{
			Location:       strings.TrimSpace(r.Location),
			Item:           strings.TrimSpace(r.Item),
			ClosingStock:   *r.ClosingStock,
			AvgDailyDemand: *r.AvgDailyDemand,
			StockStatus:    domain.StockStatus(strings.TrimSpace(r.StockStatus)),
		}
		if r.LeadTimeDays != nil {
			rec.LeadTimeDays = *r.LeadTimeDays
		}
		if r.DaysToStockout != nil {
			rec.DaysToStockout = *r.DaysToStockout
		} else {
			rec.DaysToStockout = domain.EstimateDaysToStockout(rec.ClosingStock, rec.AvgDailyDemand)
		}

		if !rec.StockStatus.IsKnown() && !unknown[string(rec.StockStatus)] {
			unknown[string(rec.StockStatus)] = true
			out.Unknown = append(out.Unknown, string(rec.StockStatus))
		}
		out.Records = append(out.Records, rec)
	}
	return out, nil
}
