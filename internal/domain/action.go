package domain

import "time"

// ActionLogEntry records a human action taken against an at-risk item.
// Entries are append-only.
type ActionLogEntry struct {
	ID         string
	Timestamp  time.Time
	Location   string
	Item       string
	ActionType ActionType
	Notes      string
	UserName   string
}
