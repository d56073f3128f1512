package stockhealth

import "github.com/alexanderramin/carestock/internal/domain"

// Alert is a notification that would be sent for one record.
type Alert struct {
	Level  domain.AlertLevel
	Record AugmentedRecord
}

// PreviewAlerts lists the alerts the given preferences would trigger. A
// record can raise both a stock-level alert and an overstock alert. Nothing
// is dispatched.
func PreviewAlerts(recs []AugmentedRecord, prefs domain.AlertPreferences) []Alert {
	var out []Alert
	for _, r := range recs {
		switch {
		case r.StockStatus == domain.StatusCritical && prefs.Subscribed(domain.AlertCritical):
			out = append(out, Alert{Level: domain.AlertCritical, Record: r})
		case r.StockStatus == domain.StatusWarning && prefs.Subscribed(domain.AlertWarning):
			out = append(out, Alert{Level: domain.AlertWarning, Record: r})
		}
		if r.OverstockRisk && prefs.Subscribed(domain.AlertOverstock) {
			out = append(out, Alert{Level: domain.AlertOverstock, Record: r})
		}
	}
	return out
}

// Channels returns the enabled delivery channels with their destinations.
func Channels(prefs domain.AlertPreferences) []string {
	var out []string
	if prefs.EmailEnabled {
		out = append(out, "email:"+prefs.Email)
	}
	if prefs.SMSEnabled {
		out = append(out, "sms:"+prefs.Phone)
	}
	return out
}
