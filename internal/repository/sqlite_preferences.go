package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/carestock/internal/db"
	"github.com/alexanderramin/carestock/internal/domain"
)

// SQLitePreferencesRepo stores the single set of alert preferences.
type SQLitePreferencesRepo struct {
	db db.DBTX
}

func NewSQLitePreferencesRepo(conn db.DBTX) *SQLitePreferencesRepo {
	return &SQLitePreferencesRepo{db: conn}
}

func (r *SQLitePreferencesRepo) Get(ctx context.Context) (*domain.AlertPreferences, error) {
	query := `SELECT email_enabled, email, sms_enabled, phone, levels, recipients
		FROM alert_preferences WHERE id = 'default'`

	var p domain.AlertPreferences
	var emailEnabled, smsEnabled int
	var levels, recipients string
	err := r.db.QueryRowContext(ctx, query).Scan(
		&emailEnabled,
		&p.Email,
		&smsEnabled,
		&p.Phone,
		&levels,
		&recipients,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("alert preferences: %w", ErrNotFound)
		}
		return nil, wrapTableErr("scanning", "alert_preferences", err)
	}
	p.EmailEnabled = intToBool(emailEnabled)
	p.SMSEnabled = intToBool(smsEnabled)
	p.Levels = splitList[domain.AlertLevel](levels)
	p.Recipients = splitList[domain.RecipientGroup](recipients)
	return &p, nil
}

func (r *SQLitePreferencesRepo) Save(ctx context.Context, p *domain.AlertPreferences) error {
	query := `INSERT OR REPLACE INTO alert_preferences
		(id, email_enabled, email, sms_enabled, phone, levels, recipients, updated_at)
		VALUES ('default', ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		boolToInt(p.EmailEnabled),
		p.Email,
		boolToInt(p.SMSEnabled),
		p.Phone,
		joinList(p.Levels),
		joinList(p.Recipients),
		formatTimestamp(nowFunc()),
	)
	if err != nil {
		return wrapTableErr("saving", "alert_preferences", err)
	}
	return nil
}
