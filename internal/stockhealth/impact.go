package stockhealth

import (
	"github.com/shopspring/decimal"
)

// Impact assumptions. These are illustrative planning figures, not measured
// outcomes.
const (
	PatientsPerItemPerDay   = 3
	DaysOfStockoutPrevented = 5
	CostPerStockoutINR      = 2500
	WasteReductionPercent   = 15
)

// Impact summarises the estimated effect of acting on the current at-risk
// records.
type Impact struct {
	PatientsProtected     int
	CostSavedINR          decimal.Decimal
	WasteReductionPercent int
	LocationsCovered      int
	ItemsMonitored        int
	CriticalCount         int
	WarningCount          int
}

// EstimateImpact applies the impact assumptions to a batch of records.
func EstimateImpact(recs []AugmentedRecord) Impact {
	counts := CountByStatus(recs)

	locs := make(map[string]bool)
	items := make(map[string]bool)
	for _, r := range recs {
		locs[r.Location] = true
		items[r.Item] = true
	}

	return Impact{
		PatientsProtected:     counts.AtRisk() * PatientsPerItemPerDay * DaysOfStockoutPrevented,
		CostSavedINR:          decimal.NewFromInt(int64(counts.Critical)).Mul(decimal.NewFromInt(CostPerStockoutINR)),
		WasteReductionPercent: WasteReductionPercent,
		LocationsCovered:      len(locs),
		ItemsMonitored:        len(items),
		CriticalCount:         counts.Critical,
		WarningCount:          counts.Warning,
	}
}
