package app

import (
	"time"

	"github.com/alexanderramin/carestock/internal/domain"
)

type LogActionRequest struct {
	Now        *time.Time
	Location   string
	Item       string
	ActionType string
	Notes      string
	UserName   string
}

type RecentActionsResponse struct {
	Entries []*domain.ActionLogEntry
	// Unavailable is set when the action log could not be read. The state
	// is retryable; Reason carries the underlying error text.
	Unavailable bool
	Reason      string
}

type ImportResult struct {
	RecordCount     int
	UnknownStatuses []string
	SyncedAt        time.Time
}
