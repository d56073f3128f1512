package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/carestock/internal/app"
	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/alexanderramin/carestock/internal/stockhealth"
	"github.com/alexanderramin/carestock/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatAnalytics(t *testing.T) {
	recs := stockhealth.Augment(testutil.SampleSnapshot())
	out := FormatAnalytics(&app.AnalyticsResponse{
		Counts:           stockhealth.CountByStatus(recs),
		LocationRisk:     stockhealth.RankLocationsByRisk(recs),
		Heatmap:          stockhealth.BuildCoverHeatmap(recs),
		LifeSavingAtRisk: stockhealth.LifeSavingAtRisk(recs),
	})

	assert.Contains(t, out, "STATUS DISTRIBUTION")
	assert.Contains(t, out, "RISK CONCENTRATION BY LOCATION")
	assert.Contains(t, out, "City Hospital")
	assert.Contains(t, out, "DAYS OF COVER")
	assert.Contains(t, out, "Saline")
	assert.Contains(t, out, "Scale: 0 – 250 days")
	assert.Contains(t, out, "LIFE-SAVING ITEMS AT RISK")
}

func TestFormatAnalytics_NoRisk(t *testing.T) {
	out := FormatAnalytics(&app.AnalyticsResponse{})
	assert.Contains(t, out, "No location has at-risk items")
	assert.Contains(t, out, "No records to chart")
}

func TestFormatImpact(t *testing.T) {
	recs := stockhealth.Augment(testutil.SampleSnapshot())
	out := FormatImpact(&app.ImpactResponse{Impact: stockhealth.EstimateImpact(recs)})

	assert.Contains(t, out, "Patients protected")
	assert.Contains(t, out, "30")
	assert.Contains(t, out, "₹2,500")
	assert.Contains(t, out, "15%")
}

func TestFormatAlertPreview(t *testing.T) {
	recs := stockhealth.Augment(testutil.SampleSnapshot())
	prefs := domain.DefaultAlertPreferences()
	prefs.EmailEnabled = true
	prefs.Email = "stores@cityhospital.in"

	out := FormatAlertPreview(&app.AlertPreviewResponse{
		FeedState:   app.FeedState{GeneratedAt: time.Now()},
		Preferences: prefs,
		Alerts:      stockhealth.PreviewAlerts(recs, prefs),
		Channels:    stockhealth.Channels(prefs),
	})

	assert.Contains(t, out, "email:stores@cityhospital.in")
	assert.Contains(t, out, "Hospital procurement team")
	assert.Contains(t, out, "Insulin")
	assert.Contains(t, out, "Gauze")
	assert.NotContains(t, out, "Saline")
}

func TestFormatAlertPreview_NoAlerts(t *testing.T) {
	out := FormatAlertPreview(&app.AlertPreviewResponse{})
	assert.Contains(t, out, "No delivery channel enabled")
	assert.Contains(t, out, "No alerts would fire")
}
