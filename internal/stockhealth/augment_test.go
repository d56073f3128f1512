package stockhealth

import (
	"math"
	"testing"

	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(loc, item string, stock, demand, lead float64, status domain.StockStatus) domain.InventoryRecord {
	return domain.InventoryRecord{
		Location:       loc,
		Item:           item,
		ClosingStock:   stock,
		AvgDailyDemand: demand,
		DaysToStockout: domain.EstimateDaysToStockout(stock, demand),
		StockStatus:    status,
		LeadTimeDays:   lead,
	}
}

func TestAugment_OneOutputPerInputInOrder(t *testing.T) {
	in := []domain.InventoryRecord{
		rec("Ward A", "Insulin", 5, 2, 3, domain.StatusCritical),
		rec("Ward B", "Gauze", 40, 4, 2, domain.StatusWarning),
		rec("Ward C", "Saline", 80, 1, 4, domain.StatusHealthy),
	}

	out := Augment(in)

	require.Len(t, out, 3)
	for i := range in {
		assert.Equal(t, in[i], out[i].InventoryRecord)
	}
}

func TestAugment_EmptyBatch(t *testing.T) {
	assert.Empty(t, Augment(nil))
}

func TestAugment_CoverWithZeroLeadTime(t *testing.T) {
	out := Augment([]domain.InventoryRecord{
		rec("Ward A", "Gauze", 100, 1, 0, domain.StatusHealthy),
	})

	require.Len(t, out, 1)
	assert.Equal(t, 100.0, out[0].DaysOfCover)
	assert.True(t, out[0].OverstockRisk)
	assert.Equal(t, OverstockBadge, out[0].OverstockLabel())
}

func TestAugment_OverstockThresholdIsStrict(t *testing.T) {
	out := Augment([]domain.InventoryRecord{
		rec("Ward A", "Gauze", 90, 1, 1, domain.StatusHealthy),
		rec("Ward A", "Masks", 91, 1, 1, domain.StatusHealthy),
	})

	assert.False(t, out[0].OverstockRisk)
	assert.Empty(t, out[0].OverstockLabel())
	assert.True(t, out[1].OverstockRisk)
}

func TestAugment_NegativeStockGivesZeroCover(t *testing.T) {
	out := Augment([]domain.InventoryRecord{
		rec("Ward A", "Gauze", -12, 1, 2, domain.StatusCritical),
	})
	assert.Equal(t, 0.0, out[0].DaysOfCover)
}

func TestAugment_BadgesAndPriority(t *testing.T) {
	out := Augment([]domain.InventoryRecord{
		rec("Ward A", "Oxygen", 5, 2, 3, domain.StatusCritical),
		rec("Ward A", "Gauze", 5, 2, 3, domain.StatusWarning),
		rec("Ward A", "Blood", 5, 2, 3, domain.StatusHealthy),
		rec("Ward A", "Ventilator", 5, 2, 3, domain.StockStatus("Unknown")),
	})

	assert.Equal(t, "🔴 Critical", out[0].StatusBadge)
	assert.Equal(t, "🟡 Warning", out[1].StatusBadge)
	assert.Equal(t, "🟢 Healthy", out[2].StatusBadge)
	assert.Equal(t, "", out[3].StatusBadge)

	assert.Equal(t, domain.PriorityLifeSaving, out[0].ItemPriority)
	assert.Equal(t, domain.PriorityEssential, out[1].ItemPriority)
	assert.True(t, out[2].IsLifeSaving())
	assert.True(t, out[3].IsLifeSaving())
}

func TestAugment_PriorityIsCaseSensitive(t *testing.T) {
	assert.Equal(t, domain.PriorityEssential, Priority("insulin"))
	assert.Equal(t, domain.PriorityLifeSaving, Priority("Insulin"))
}

func TestAugment_Idempotent(t *testing.T) {
	in := []domain.InventoryRecord{
		rec("Ward A", "Insulin", 5, 2, 3, domain.StatusCritical),
		rec("Ward B", "Gauze", 400, 0, 2, domain.StatusHealthy),
	}

	first := Augment(in)
	again := make([]domain.InventoryRecord, len(first))
	for i, a := range first {
		again[i] = a.InventoryRecord
	}
	second := Augment(again)

	assert.Equal(t, first, second)
}

func TestAugment_InfiniteStockoutCarriedThrough(t *testing.T) {
	out := Augment([]domain.InventoryRecord{
		rec("Ward B", "Gauze", 40, 0, 2, domain.StatusHealthy),
	})
	assert.True(t, math.IsInf(out[0].DaysToStockout, 1))
	assert.Equal(t, 0.0, out[0].Forecast.ForecastUnits)
}

func TestAugmentWithHorizon_UsesHorizon(t *testing.T) {
	out := AugmentWithHorizon([]domain.InventoryRecord{
		rec("Ward A", "Gauze", 10, 2, 1, domain.StatusWarning),
	}, 14)
	assert.Equal(t, 28.0, out[0].Forecast.ForecastUnits)
}

func TestDaysOfCover_NeverNegative(t *testing.T) {
	for _, c := range []struct{ stock, lead float64 }{
		{0, 0}, {-1, 5}, {math.NaN(), 2}, {10, math.NaN()}, {10, 0.5}, {10, -4},
	} {
		assert.GreaterOrEqual(t, DaysOfCover(c.stock, c.lead), 0.0, "stock=%v lead=%v", c.stock, c.lead)
	}
	assert.Equal(t, 10.0, DaysOfCover(10, 0.5))
}
