package memory

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jekabolt/lottery-manager/internal/entity"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tickingClock() func() time.Time {
	t := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Minute)
		return t
	}
}

func addEntry(t *testing.T, s *Store, eventId, entrantId string) *entity.WaitingPoolEntry {
	t.Helper()
	e, err := s.AddEntry(context.Background(), &entity.WaitingPoolEntryInsert{EventId: eventId, EntrantId: entrantId})
	require.NoError(t, err)
	return e
}

func TestAddEntry(t *testing.T) {
	s := New().WithClock(tickingClock())
	ctx := context.Background()

	e := addEntry(t, s, "ev", "u1")
	assert.Equal(t, entity.StatusWaiting, e.Status)
	assert.Equal(t, e.JoinedAt, e.UpdatedAt)

	_, err := s.AddEntry(ctx, &entity.WaitingPoolEntryInsert{EventId: "ev", EntrantId: "u1"})
	assert.ErrorIs(t, err, gerr.ErrAlreadyJoined)

	found, err := s.FindByEventAndEntrant(ctx, "ev", "u1")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, e.Id, found.Id)

	missing, err := s.FindByEventAndEntrant(ctx, "ev", "u2")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = s.GetEntryById(ctx, "nope")
	assert.ErrorIs(t, err, gerr.ErrEntryNotFound)
}

func TestReturnedEntriesAreCopies(t *testing.T) {
	s := New()
	ctx := context.Background()
	e := addEntry(t, s, "ev", "u1")

	e.Status = entity.StatusEnrolled
	got, err := s.GetEntryById(ctx, e.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusWaiting, got.Status)

	list, err := s.LoadByStatus(ctx, "ev", entity.StatusWaiting)
	require.NoError(t, err)
	list[0].Status = entity.StatusCancelled
	got, err = s.GetEntryById(ctx, e.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusWaiting, got.Status)
}

func TestBatchTransitionIsAllOrNothing(t *testing.T) {
	s := New().WithClock(tickingClock())
	ctx := context.Background()
	a := addEntry(t, s, "ev", "a")
	b := addEntry(t, s, "ev", "b")
	c := addEntry(t, s, "ev", "c")

	now := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)
	upd := entity.EntryUpdate{
		Status:              entity.StatusSelected,
		UpdatedAt:           now,
		SelectedAt:          sql.NullTime{Time: now, Valid: true},
		ResponseWindowHours: sql.NullInt32{Int32: 48, Valid: true},
	}
	require.NoError(t, s.BatchTransition(ctx, []string{a.Id, b.Id}, entity.StatusWaiting, upd))

	err := s.BatchTransition(ctx, []string{c.Id, a.Id}, entity.StatusWaiting, upd)
	assert.ErrorIs(t, err, gerr.ErrConflict)
	got, err := s.GetEntryById(ctx, c.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusWaiting, got.Status, "c must stay untouched")

	err = s.BatchTransition(ctx, []string{c.Id, "ghost"}, entity.StatusWaiting, upd)
	assert.ErrorIs(t, err, gerr.ErrConflict)

	err = s.BatchTransition(ctx, []string{c.Id, c.Id}, entity.StatusWaiting, upd)
	assert.ErrorIs(t, err, gerr.ErrConflict)

	selected, err := s.LoadByStatus(ctx, "ev", entity.StatusSelected)
	require.NoError(t, err)
	assert.Len(t, selected, 2)
	for _, e := range selected {
		assert.Equal(t, now, e.SelectedAt.Time)
		assert.Equal(t, int32(48), e.ResponseWindowHours.Int32)
	}
}

func TestUpdateOne(t *testing.T) {
	s := New()
	ctx := context.Background()
	e := addEntry(t, s, "ev", "u1")

	upd := entity.EntryUpdate{Status: entity.StatusCancelled, UpdatedAt: time.Now()}
	assert.ErrorIs(t, s.UpdateOne(ctx, e.Id, entity.StatusSelected, upd), gerr.ErrConflict)
	assert.ErrorIs(t, s.UpdateOne(ctx, "ghost", entity.StatusWaiting, upd), gerr.ErrEntryNotFound)
	require.NoError(t, s.UpdateOne(ctx, e.Id, entity.StatusWaiting, upd))

	got, err := s.GetEntryById(ctx, e.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, got.Status)
}

func TestListings(t *testing.T) {
	s := New().WithClock(tickingClock())
	ctx := context.Background()
	first := addEntry(t, s, "ev1", "u1")
	addEntry(t, s, "ev1", "u2")
	last := addEntry(t, s, "ev2", "u1")

	mine, err := s.ListByEntrant(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, last.Id, mine[0].Id)
	assert.Equal(t, first.Id, mine[1].Id)

	waiting, err := s.ListByStatus(ctx, entity.StatusWaiting)
	require.NoError(t, err)
	assert.Len(t, waiting, 3)

	n, err := s.CountByEvent(ctx, "ev1")
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}

func TestCancelledContext(t *testing.T) {
	s := New()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.LoadByStatus(ctx, "ev", entity.StatusWaiting)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNotifications(t *testing.T) {
	s := New().WithClock(tickingClock())
	ctx := context.Background()

	created, err := s.AddNotifications(ctx, []entity.NotificationInsert{
		{UserId: "u1", Type: entity.NotificationSelection, Title: "first", Email: sql.NullString{String: "u1@example.com", Valid: true}},
		{UserId: "u1", Type: entity.NotificationOrganizerMessage, Title: "second"},
		{UserId: "u2", Type: entity.NotificationSelection, Title: "other", Email: sql.NullString{String: "u2@example.com", Valid: true}},
	})
	require.NoError(t, err)
	require.Len(t, created, 3)

	mine, err := s.GetNotificationsForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.False(t, mine[0].Read)

	require.NoError(t, s.MarkRead(ctx, mine[0].Id))
	assert.ErrorIs(t, s.MarkRead(ctx, "ghost"), gerr.ErrNotificationNotFound)

	unsent, err := s.GetUnsentEmails(ctx, 10)
	require.NoError(t, err)
	require.Len(t, unsent, 2)
	assert.Equal(t, "first", unsent[0].Title)

	require.NoError(t, s.AddEmailError(ctx, unsent[0].Id, "bounced"))
	require.NoError(t, s.MarkEmailSent(ctx, unsent[1].Id, time.Now()))

	unsent, err = s.GetUnsentEmails(ctx, 1)
	require.NoError(t, err)
	require.Len(t, unsent, 1)
	assert.Equal(t, "bounced", unsent[0].EmailError.String)
}
