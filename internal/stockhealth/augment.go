package stockhealth

import (
	"math"

	"github.com/alexanderramin/carestock/internal/domain"
)

// OverstockThresholdDays is the days-of-cover above which a record is
// flagged as a wastage risk.
const OverstockThresholdDays = 90

// OverstockBadge is shown next to records with OverstockRisk set.
const OverstockBadge = "🟣 Overstock risk"

// LifeSavingItems is the fixed set of items prioritised above everything else.
var LifeSavingItems = map[string]bool{
	"Insulin":    true,
	"Oxygen":     true,
	"Blood":      true,
	"Ventilator": true,
}

var statusBadges = map[domain.StockStatus]string{
	domain.StatusCritical: "🔴 Critical",
	domain.StatusWarning:  "🟡 Warning",
	domain.StatusHealthy:  "🟢 Healthy",
}

// AugmentedRecord is an InventoryRecord with its presentation fields.
type AugmentedRecord struct {
	domain.InventoryRecord
	Forecast ForecastResult

	DaysOfCover   float64
	StatusBadge   string
	ItemPriority  domain.ItemPriority
	OverstockRisk bool
}

// IsLifeSaving reports whether the record's item is in LifeSavingItems.
func (r AugmentedRecord) IsLifeSaving() bool {
	return r.ItemPriority == domain.PriorityLifeSaving
}

// OverstockLabel returns OverstockBadge when the record is overstocked.
func (r AugmentedRecord) OverstockLabel() string {
	if r.OverstockRisk {
		return OverstockBadge
	}
	return ""
}

// Augment derives the presentation fields for every record, independently
// and in input order, using the default 7-day horizon.
func Augment(records []domain.InventoryRecord) []AugmentedRecord {
	return AugmentWithHorizon(records, DefaultHorizonDays)
}

// AugmentWithHorizon is Augment with a caller-chosen forecast horizon.
func AugmentWithHorizon(records []domain.InventoryRecord, horizonDays int) []AugmentedRecord {
	out := make([]AugmentedRecord, len(records))
	for i, r := range records {
		out[i] = augmentOne(r, horizonDays)
	}
	return out
}

func augmentOne(r domain.InventoryRecord, horizonDays int) AugmentedRecord {
	cover := DaysOfCover(r.ClosingStock, r.LeadTimeDays)
	return AugmentedRecord{
		InventoryRecord: r,
		Forecast:        Forecast(r.AvgDailyDemand, r.LeadTimeDays, horizonDays),
		DaysOfCover:     cover,
		StatusBadge:     StatusBadge(r.StockStatus),
		ItemPriority:    Priority(r.Item),
		OverstockRisk:   cover > OverstockThresholdDays,
	}
}

// DaysOfCover returns closingStock / max(leadTimeDays, 1). Negative or NaN
// stock counts as zero so the result is never negative.
func DaysOfCover(closingStock, leadTimeDays float64) float64 {
	if math.IsNaN(closingStock) || closingStock < 0 {
		closingStock = 0
	}
	if math.IsNaN(leadTimeDays) || leadTimeDays < 1 {
		leadTimeDays = 1
	}
	return closingStock / leadTimeDays
}

// StatusBadge maps a status to its display label. Unknown statuses map to "".
func StatusBadge(s domain.StockStatus) string {
	return statusBadges[s]
}

// Priority classifies an item as life-saving or essential.
func Priority(item string) domain.ItemPriority {
	if LifeSavingItems[item] {
		return domain.PriorityLifeSaving
	}
	return domain.PriorityEssential
}
