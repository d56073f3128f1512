package domain

import "math"

// InventoryRecord is one row of the warehouse stock-health view, keyed by
// (Location, Item). DaysToStockout is +Inf when the warehouse reports no
// value, which happens when average demand is zero.
type InventoryRecord struct {
	Location       string
	Item           string
	ClosingStock   float64
	AvgDailyDemand float64
	DaysToStockout float64
	StockStatus    StockStatus
	LeadTimeDays   float64
}

// RecordKey identifies an inventory record. Records carry no other identity.
type RecordKey struct {
	Location string
	Item     string
}

func (r InventoryRecord) Key() RecordKey {
	return RecordKey{Location: r.Location, Item: r.Item}
}

// HasStockoutEstimate reports whether DaysToStockout is a finite number.
func (r InventoryRecord) HasStockoutEstimate() bool {
	return !math.IsInf(r.DaysToStockout, 0) && !math.IsNaN(r.DaysToStockout)
}

// EstimateDaysToStockout returns stock divided by demand, or +Inf when demand
// is not positive.
func EstimateDaysToStockout(closingStock, avgDailyDemand float64) float64 {
	if avgDailyDemand <= 0 {
		return math.Inf(1)
	}
	return closingStock / avgDailyDemand
}
