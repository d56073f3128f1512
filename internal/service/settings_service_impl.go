package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/alexanderramin/carestock/internal/repository"
)

var ErrInvalidPreferences = errors.New("invalid alert preferences")

type settingsService struct {
	session  *Session
	store    repository.PreferencesRepo
	observer UseCaseObserver
}

// NewSettingsService manages alert preferences for session. store may be
// nil, in which case preferences live only as long as the session.
func NewSettingsService(session *Session, store repository.PreferencesRepo, observers ...UseCaseObserver) SettingsService {
	return &settingsService{
		session:  session,
		store:    store,
		observer: useCaseObserverOrNoop(observers),
	}
}

// Load copies persisted preferences into the session. A missing row keeps
// the defaults.
func (s *settingsService) Load(ctx context.Context) (err error) {
	startedAt := time.Now()
	fields := map[string]any{"persistent": s.store != nil}
	defer observe(ctx, s.observer, "settings_load", startedAt, fields, &err)

	if s.store == nil {
		return nil
	}
	p, err := s.store.Get(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("loading alert preferences: %w", err)
	}
	s.session.setPreferences(*p)
	return nil
}

func (s *settingsService) Current() domain.AlertPreferences {
	return s.session.Preferences()
}

func (s *settingsService) Save(ctx context.Context, p domain.AlertPreferences) (err error) {
	startedAt := time.Now()
	fields := map[string]any{
		"email_enabled": p.EmailEnabled,
		"sms_enabled":   p.SMSEnabled,
		"levels":        len(p.Levels),
	}
	defer observe(ctx, s.observer, "settings_save", startedAt, fields, &err)

	if errs := p.Validate(); len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidPreferences, errors.Join(errs...))
	}
	if s.store != nil {
		if err := s.store.Save(ctx, &p); err != nil {
			return fmt.Errorf("saving alert preferences: %w", err)
		}
	}
	s.session.setPreferences(p)
	return nil
}
