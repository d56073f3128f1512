package stockhealth

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"
)

const (
	// DefaultHorizonDays is the projection window used by Augment.
	DefaultHorizonDays = 7

	// ConfidenceFraction is the half-width of the forecast band relative to
	// the forecast itself.
	ConfidenceFraction = 0.15
)

// ForecastResult is a naive demand projection with a symmetric band.
type ForecastResult struct {
	ForecastUnits float64
	LowerBound    float64
	UpperBound    float64
	Explanation   string
}

// Forecast projects demand as avgDailyDemand × horizonDays, rounded to one
// decimal place, with a ±ConfidenceFraction band. leadTimeDays is only
// quoted in the explanation and is never used as a divisor.
//
// Negative or NaN demand is treated as zero and a non-positive horizon falls
// back to DefaultHorizonDays, so the function is total.
func Forecast(avgDailyDemand, leadTimeDays float64, horizonDays int) ForecastResult {
	if math.IsNaN(avgDailyDemand) || math.IsInf(avgDailyDemand, 0) || avgDailyDemand < 0 {
		avgDailyDemand = 0
	}
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}

	units := decimal.NewFromFloat(avgDailyDemand).
		Mul(decimal.NewFromInt(int64(horizonDays))).
		Round(1)

	k := decimal.NewFromFloat(ConfidenceFraction)
	one := decimal.NewFromInt(1)
	lower := units.Mul(one.Sub(k)).Round(1)
	upper := units.Mul(one.Add(k)).Round(1)
	if lower.IsNegative() {
		lower = decimal.Zero
	}

	return ForecastResult{
		ForecastUnits: units.InexactFloat64(),
		LowerBound:    lower.InexactFloat64(),
		UpperBound:    upper.InexactFloat64(),
		Explanation:   explain(avgDailyDemand, leadTimeDays, horizonDays),
	}
}

func explain(avgDailyDemand, leadTimeDays float64, horizonDays int) string {
	lead := "unknown"
	if !math.IsNaN(leadTimeDays) && !math.IsInf(leadTimeDays, 0) && leadTimeDays >= 0 {
		lead = fmt.Sprintf("%g days", leadTimeDays)
	}
	return fmt.Sprintf(
		"Average daily demand of %.1f units projected over the next %d days "+
			"(supplier lead time %s); band of ±%.0f%% reflects uncertainty.",
		avgDailyDemand, horizonDays, lead, ConfidenceFraction*100,
	)
}

// MethodDescription summarises the forecasting method for display next to
// a forecast table.
func MethodDescription(horizonDays int) string {
	if horizonDays <= 0 {
		horizonDays = DefaultHorizonDays
	}
	return fmt.Sprintf(
		"Forecast = average daily demand × %d days, rounded to one decimal. "+
			"Low/high = forecast ∓ %.0f%%. Supplier lead time is shown for context only.",
		horizonDays, ConfidenceFraction*100,
	)
}
