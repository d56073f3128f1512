package domain

import (
	"fmt"
	"strings"
)

// AlertPreferences holds per-session notification settings.
type AlertPreferences struct {
	EmailEnabled bool
	Email        string
	SMSEnabled   bool
	Phone        string
	Levels       []AlertLevel
	Recipients   []RecipientGroup
}

// DefaultAlertPreferences returns the settings a fresh session starts with.
func DefaultAlertPreferences() AlertPreferences {
	return AlertPreferences{
		Levels:     []AlertLevel{AlertCritical, AlertWarning},
		Recipients: []RecipientGroup{RecipientProcurement},
	}
}

// Subscribed reports whether level is among the selected severity levels.
func (p AlertPreferences) Subscribed(level AlertLevel) bool {
	for _, l := range p.Levels {
		if l == level {
			return true
		}
	}
	return false
}

// Validate returns every problem found with the preferences.
func (p AlertPreferences) Validate() []error {
	var errs []error

	if p.EmailEnabled && strings.TrimSpace(p.Email) == "" {
		errs = append(errs, fmt.Errorf("email alerts are enabled but no email address is set"))
	}
	if p.SMSEnabled && strings.TrimSpace(p.Phone) == "" {
		errs = append(errs, fmt.Errorf("SMS alerts are enabled but no mobile number is set"))
	}

	for _, l := range p.Levels {
		if !validAlertLevel(l) {
			errs = append(errs, fmt.Errorf("unknown alert level %q", l))
		}
	}
	for _, r := range p.Recipients {
		if !validRecipient(r) {
			errs = append(errs, fmt.Errorf("unknown recipient group %q", r))
		}
	}

	return errs
}

func validAlertLevel(l AlertLevel) bool {
	for _, known := range AlertLevels {
		if known == l {
			return true
		}
	}
	return false
}

func validRecipient(r RecipientGroup) bool {
	for _, known := range RecipientGroups {
		if known == r {
			return true
		}
	}
	return false
}
