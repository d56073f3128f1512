package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alexanderramin/carestock/internal/app"
	"github.com/alexanderramin/carestock/internal/domain"
	"github.com/alexanderramin/carestock/internal/repository"
	"github.com/alexanderramin/carestock/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validActionRequest() app.LogActionRequest {
	return app.LogActionRequest{
		Location:   "City Hospital",
		Item:       "Insulin",
		ActionType: string(domain.ActionPurchaseOrder),
		Notes:      "PO-1182 raised with district supplier",
		UserName:   "Ward 3 pharmacy",
	}
}

func TestLogAction_RejectsBlankUserBeforeWrite(t *testing.T) {
	for _, user := range []string{"", "   ", "\t\n"} {
		sink := &testutil.CountingActionSink{}
		svc := NewActionService(sink, 0)

		req := validActionRequest()
		req.UserName = user
		_, err := svc.LogAction(context.Background(), req)

		require.ErrorIs(t, err, ErrUserRequired)
		assert.Equal(t, "please enter your name or team before saving", err.Error())
		assert.Equal(t, 0, sink.Writes, "sink must not be touched for user %q", user)
	}
}

func TestLogAction_RejectsUnknownType(t *testing.T) {
	sink := &testutil.CountingActionSink{}
	svc := NewActionService(sink, 0)

	req := validActionRequest()
	req.ActionType = "Called a friend"
	_, err := svc.LogAction(context.Background(), req)

	require.ErrorIs(t, err, ErrInvalidActionType)
	assert.Equal(t, 0, sink.Writes)
}

func TestLogAction_RequiresTarget(t *testing.T) {
	sink := &testutil.CountingActionSink{}
	svc := NewActionService(sink, 0)

	req := validActionRequest()
	req.Item = " "
	_, err := svc.LogAction(context.Background(), req)

	require.ErrorIs(t, err, ErrTargetRequired)
	assert.Equal(t, 0, sink.Writes)
}

func TestLogAction_AppendsTrimmedEntry(t *testing.T) {
	sink := &testutil.CountingActionSink{}
	obs := &recordingObserver{}
	svc := NewActionService(sink, 0, obs)

	req := validActionRequest()
	req.UserName = "  Ward 3 pharmacy  "
	req.Now = fixedNow()
	entry, err := svc.LogAction(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, 1, sink.Writes)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, "Ward 3 pharmacy", entry.UserName)
	assert.Equal(t, domain.ActionPurchaseOrder, entry.ActionType)
	assert.Equal(t, *fixedNow(), entry.Timestamp)

	ev := obs.last()
	assert.Equal(t, "log_action", ev.Name)
	assert.True(t, ev.Success)
	assert.Equal(t, entry.ID, ev.Fields["entry_id"])
}

func TestLogAction_SinkErrorPropagates(t *testing.T) {
	sink := &testutil.CountingActionSink{Err: errors.New("disk full")}
	svc := NewActionService(sink, 0)

	_, err := svc.LogAction(context.Background(), validActionRequest())
	require.Error(t, err)
	assert.Equal(t, 1, sink.Writes)
}

func TestRecent_NewestFirstWithLimit(t *testing.T) {
	repo := repository.NewSQLiteActionLogRepo(testutil.NewTestDB(t))
	svc := NewActionService(repo, 3)
	ctx := context.Background()

	base := time.Date(2025, 4, 1, 8, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		req := validActionRequest()
		ts := base.Add(time.Duration(i) * time.Hour)
		req.Now = &ts
		req.Notes = fmt.Sprintf("note %d", i)
		_, err := svc.LogAction(ctx, req)
		require.NoError(t, err)
	}

	resp, err := svc.Recent(ctx)
	require.NoError(t, err)
	assert.False(t, resp.Unavailable)
	require.Len(t, resp.Entries, 3)
	assert.Equal(t, "note 4", resp.Entries[0].Notes)
	assert.Equal(t, "note 2", resp.Entries[2].Notes)
}

func TestRecent_ReadFailureIsRetryable(t *testing.T) {
	sink := &testutil.CountingActionSink{Err: fmt.Errorf("querying ACTION_LOG: %w", repository.ErrUnavailable)}
	svc := NewActionService(sink, 0)
	ctx := context.Background()

	resp, err := svc.Recent(ctx)
	require.NoError(t, err)
	assert.True(t, resp.Unavailable)
	assert.Contains(t, resp.Reason, "ACTION_LOG")
	assert.Empty(t, resp.Entries)

	sink.Err = nil
	resp, err = svc.Recent(ctx)
	require.NoError(t, err)
	assert.False(t, resp.Unavailable)
}

func TestRecent_OtherReadErrorsPropagate(t *testing.T) {
	boom := errors.New("database is locked")
	sink := &testutil.CountingActionSink{Err: boom}
	svc := NewActionService(sink, 0)

	resp, err := svc.Recent(context.Background())
	require.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "reading action log")
	assert.Nil(t, resp)
}
