package stockhealth

import "github.com/alexanderramin/carestock/internal/domain"

// AtRisk returns the Critical and Warning records in input order.
func AtRisk(recs []AugmentedRecord) []AugmentedRecord {
	return filter(recs, func(r AugmentedRecord) bool {
		return r.StockStatus.IsAtRisk()
	})
}

// Overstocked returns the records flagged with OverstockRisk.
func Overstocked(recs []AugmentedRecord) []AugmentedRecord {
	return filter(recs, func(r AugmentedRecord) bool {
		return r.OverstockRisk
	})
}

// LifeSavingAtRisk returns at-risk records whose item is life-saving.
func LifeSavingAtRisk(recs []AugmentedRecord) []AugmentedRecord {
	return filter(recs, func(r AugmentedRecord) bool {
		return r.IsLifeSaving() && r.StockStatus.IsAtRisk()
	})
}

// StatusCounts tallies records per stock status.
type StatusCounts struct {
	Critical int
	Warning  int
	Healthy  int
	Unknown  int
}

func (c StatusCounts) AtRisk() int { return c.Critical + c.Warning }

func (c StatusCounts) Total() int { return c.Critical + c.Warning + c.Healthy + c.Unknown }

// CountByStatus counts records in each stock status.
func CountByStatus(recs []AugmentedRecord) StatusCounts {
	var c StatusCounts
	for _, r := range recs {
		switch r.StockStatus {
		case domain.StatusCritical:
			c.Critical++
		case domain.StatusWarning:
			c.Warning++
		case domain.StatusHealthy:
			c.Healthy++
		default:
			c.Unknown++
		}
	}
	return c
}

func filter(recs []AugmentedRecord, keep func(AugmentedRecord) bool) []AugmentedRecord {
	var out []AugmentedRecord
	for _, r := range recs {
		if keep(r) {
			out = append(out, r)
		}
	}
	return out
}
