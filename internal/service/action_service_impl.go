package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/carestock/internal/app"
	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/alexanderramin/carestock/internal/repository"
	"github.com/google/uuid"
)

var (
	ErrUserRequired      = errors.New("please enter your name or team before saving")
	ErrInvalidActionType = errors.New("unknown action type")
	ErrTargetRequired    = errors.New("location and item are required")
)

// DefaultRecentLimit is how many entries Recent returns.
const DefaultRecentLimit = 20

type actionService struct {
	sink        repository.ActionLogRepo
	recentLimit int
	observer    UseCaseObserver
}

func NewActionService(sink repository.ActionLogRepo, recentLimit int, observers ...UseCaseObserver) ActionService {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &actionService{
		sink:        sink,
		recentLimit: recentLimit,
		observer:    useCaseObserverOrNoop(observers),
	}
}

// LogAction validates req and appends one entry. Nothing is written when
// validation fails.
func (s *actionService) LogAction(ctx context.Context, req app.LogActionRequest) (entry *domain.ActionLogEntry, err error) {
	startedAt := time.Now()
	fields := map[string]any{"action_type": req.ActionType}
	defer observe(ctx, s.observer, "log_action", startedAt, fields, &err)

	user := strings.TrimSpace(req.UserName)
	if user == "" {
		return nil, ErrUserRequired
	}
	location := strings.TrimSpace(req.Location)
	item := strings.TrimSpace(req.Item)
	if location == "" || item == "" {
		return nil, ErrTargetRequired
	}
	if !domain.ValidActionType(req.ActionType) {
		return nil, ErrInvalidActionType
	}

	entry = &domain.ActionLogEntry{
		ID:         uuid.New().String(),
		Timestamp:  resolveNow(req.Now),
		Location:   location,
		Item:       item,
		ActionType: domain.ActionType(req.ActionType),
		Notes:      strings.TrimSpace(req.Notes),
		UserName:   user,
	}
	if err := s.sink.Append(ctx, entry); err != nil {
		return nil, err
	}
	fields["entry_id"] = entry.ID
	return entry, nil
}

// Recent lists the newest entries. A missing action log is returned as an
// unavailable response so the caller can show it and retry later; other
// read failures are errors.
func (s *actionService) Recent(ctx context.Context) (resp *app.RecentActionsResponse, err error) {
	startedAt := time.Now()
	fields := map[string]any{"limit": s.recentLimit}
	defer observe(ctx, s.observer, "recent_actions", startedAt, fields, &err)

	entries, readErr := s.sink.ListRecent(ctx, s.recentLimit)
	if readErr != nil {
		fields["read_error"] = readErr.Error()
		if errors.Is(readErr, repository.ErrUnavailable) {
			return &app.RecentActionsResponse{Unavailable: true, Reason: readErr.Error()}, nil
		}
		return nil, fmt.Errorf("reading action log: %w", readErr)
	}
	fields["entries"] = len(entries)
	return &app.RecentActionsResponse{Entries: entries}, nil
}
