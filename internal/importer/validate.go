package importer

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// ValidateSnapshotSchema checks the snapshot for errors before conversion.
// Returns a slice of all validation errors found.
func ValidateSnapshotSchema(schema *SnapshotSchema) []error {
	var errs []error

	if schema.ExportedAt != nil {
		if _, err := parseExportedAt(*schema.ExportedAt); err != nil {
			errs = append(errs, fmt.Errorf("exported_at: invalid timestamp %q (expected RFC3339 or YYYY-MM-DD)", *schema.ExportedAt))
		}
	}

	if len(schema.Records) == 0 {
		errs = append(errs, fmt.Errorf("records: at least one record is required"))
	}

	seen := make(map[string]int)
	for i, r := range schema.Records {
		prefix := fmt.Sprintf("records[%d]", i)
		errs = append(errs, validateRecord(prefix, r)...)

		// Keys are compared as stored, after trimming.
		location, item := strings.TrimSpace(r.Location), strings.TrimSpace(r.Item)
		if location == "" || item == "" {
			continue
		}
		key := location + "\x00" + item
		if first, dup := seen[key]; dup {
			errs = append(errs, fmt.Errorf("%s: duplicate location/item %q/%q (first at records[%d])", prefix, location, item, first))
			continue
		}
		seen[key] = i
	}

	return errs
}

func validateRecord(prefix string, r RecordImport) []error {
	var errs []error

	if strings.TrimSpace(r.Location) == "" {
		errs = append(errs, fmt.Errorf("%s.location is required", prefix))
	}
	if strings.TrimSpace(r.Item) == "" {
		errs = append(errs, fmt.Errorf("%s.item is required", prefix))
	}
	if strings.TrimSpace(r.StockStatus) == "" {
		errs = append(errs, fmt.Errorf("%s.stock_status is required", prefix))
	}

	if r.ClosingStock == nil {
		errs = append(errs, fmt.Errorf("%s.closing_stock is required", prefix))
	} else if !finite(*r.ClosingStock) {
		errs = append(errs, fmt.Errorf("%s.closing_stock must be a finite number", prefix))
	}

	if r.AvgDailyDemand == nil {
		errs = append(errs, fmt.Errorf("%s.avg_daily_demand is required", prefix))
	} else if !finite(*r.AvgDailyDemand) || *r.AvgDailyDemand < 0 {
		errs = append(errs, fmt.Errorf("%s.avg_daily_demand must be >= 0, got %v", prefix, *r.AvgDailyDemand))
	}

	if r.LeadTimeDays != nil && (!finite(*r.LeadTimeDays) || *r.LeadTimeDays < 0) {
		errs = append(errs, fmt.Errorf("%s.lead_time_days must be >= 0, got %v", prefix, *r.LeadTimeDays))
	}
	if r.DaysToStockout != nil && *r.DaysToStockout < 0 {
		errs = append(errs, fmt.Errorf("%s.days_to_stockout must be >= 0, got %v", prefix, *r.DaysToStockout))
	}

	return errs
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

func parseExportedAt(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
