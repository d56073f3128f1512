package stockhealth

import (
	"testing"

	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankLocationsByRisk(t *testing.T) {
	batch := Augment([]domain.InventoryRecord{
		rec("Ward B", "Insulin", 5, 2, 3, domain.StatusCritical),
		rec("Ward B", "Gauze", 5, 2, 3, domain.StatusWarning),
		rec("Ward A", "Gauze", 5, 2, 3, domain.StatusWarning),
		rec("Ward C", "Gauze", 5, 2, 3, domain.StatusCritical),
		rec("Ward D", "Gauze", 5, 2, 3, domain.StatusHealthy),
	})

	got := RankLocationsByRisk(batch)

	assert.Equal(t, []LocationRisk{
		{Location: "Ward B", AtRiskCount: 2},
		{Location: "Ward A", AtRiskCount: 1},
		{Location: "Ward C", AtRiskCount: 1},
	}, got)
}

func TestBuildCoverHeatmap_FillsMissingWithZero(t *testing.T) {
	batch := Augment([]domain.InventoryRecord{
		rec("Ward A", "Insulin", 30, 2, 3, domain.StatusHealthy),
		rec("Ward B", "Gauze", 8, 2, 2, domain.StatusHealthy),
	})

	h := BuildCoverHeatmap(batch)

	assert.Equal(t, []string{"Ward A", "Ward B"}, h.Locations)
	assert.Equal(t, []string{"Gauze", "Insulin"}, h.Items)
	require.Len(t, h.Cells, 2)
	assert.Equal(t, []float64{0, 10}, h.Cells[0])
	assert.Equal(t, []float64{4, 0}, h.Cells[1])
	assert.Equal(t, 10.0, h.Max())
}

func TestBuildCoverHeatmap_Empty(t *testing.T) {
	h := BuildCoverHeatmap(nil)
	assert.Empty(t, h.Locations)
	assert.Equal(t, 0.0, h.Max())
}

func TestEstimateImpact(t *testing.T) {
	batch := Augment([]domain.InventoryRecord{
		rec("Ward A", "Insulin", 5, 2, 3, domain.StatusCritical),
		rec("Ward A", "Gauze", 5, 2, 3, domain.StatusCritical),
		rec("Ward B", "Gauze", 5, 2, 3, domain.StatusWarning),
		rec("Ward C", "Saline", 50, 2, 3, domain.StatusHealthy),
	})

	imp := EstimateImpact(batch)

	assert.Equal(t, 45, imp.PatientsProtected)
	assert.Equal(t, "5000", imp.CostSavedINR.String())
	assert.Equal(t, 15, imp.WasteReductionPercent)
	assert.Equal(t, 3, imp.LocationsCovered)
	assert.Equal(t, 3, imp.ItemsMonitored)
}

func TestPreviewAlerts_FollowsSubscribedLevels(t *testing.T) {
	batch := Augment([]domain.InventoryRecord{
		rec("Ward A", "Insulin", 5, 2, 3, domain.StatusCritical),
		rec("Ward B", "Gauze", 5, 2, 3, domain.StatusWarning),
		rec("Ward C", "Saline", 500, 2, 3, domain.StatusHealthy),
	})

	defaults := PreviewAlerts(batch, domain.DefaultAlertPreferences())
	require.Len(t, defaults, 2)
	assert.Equal(t, domain.AlertCritical, defaults[0].Level)
	assert.Equal(t, domain.AlertWarning, defaults[1].Level)

	overOnly := PreviewAlerts(batch, domain.AlertPreferences{Levels: []domain.AlertLevel{domain.AlertOverstock}})
	require.Len(t, overOnly, 1)
	assert.Equal(t, "Saline", overOnly[0].Record.Item)

	assert.Empty(t, PreviewAlerts(batch, domain.AlertPreferences{}))
}

func TestChannels(t *testing.T) {
	p := domain.AlertPreferences{EmailEnabled: true, Email: "ops@example.org", SMSEnabled: false, Phone: "+91 99"}
	assert.Equal(t, []string{"email:ops@example.org"}, Channels(p))
}
