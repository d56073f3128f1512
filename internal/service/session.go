package service

import (
	"sync"

	"github.com/alexanderramin/carestock/internal/domain"
)

// Session holds the state of one CLI or TUI run. It starts with the
// default alert preferences.
type Session struct {
	mu    sync.RWMutex
	prefs domain.AlertPreferences
}

func NewSession() *Session {
	return &Session{prefs: domain.DefaultAlertPreferences()}
}

// Preferences returns a copy of the current alert preferences.
func (s *Session) Preferences() domain.AlertPreferences {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return clonePreferences(s.prefs)
}

func (s *Session) setPreferences(p domain.AlertPreferences) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prefs = clonePreferences(p)
}

func clonePreferences(p domain.AlertPreferences) domain.AlertPreferences {
	p.Levels = append([]domain.AlertLevel(nil), p.Levels...)
	p.Recipients = append([]domain.RecipientGroup(nil), p.Recipients...)
	return p
}
