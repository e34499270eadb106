package notify

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/jekabolt/lottery-manager/internal/dependency"
	"github.com/jekabolt/lottery-manager/internal/dependency/mocks"
	"github.com/jekabolt/lottery-manager/internal/entity"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
	"github.com/jekabolt/lottery-manager/internal/store/memory"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

func testConfig() *Config {
	return &Config{
		FromEmail:      "lottery@example.com",
		FromName:       "Lottery",
		WorkerInterval: time.Second,
		BatchSize:      10,
		Concurrency:    2,
	}
}

func newTestNotifier(t *testing.T, sender *mocks.Sender) (*Notifier, *memory.Store) {
	t.Helper()
	st := memory.New()
	var s dependency.Sender
	if sender != nil {
		s = sender
	}
	n, err := New(testConfig(), st, st, s)
	require.NoError(t, err)
	n.now = func() time.Time { return testNow }
	return n, st
}

func winner(entrantId, email string) entity.WaitingPoolEntry {
	return entity.WaitingPoolEntry{
		Id:                  "entry-" + entrantId,
		EventId:             "ev",
		EntrantId:           entrantId,
		EntrantEmail:        email,
		Status:              entity.StatusSelected,
		SelectedAt:          sql.NullTime{Time: testNow, Valid: true},
		ResponseWindowHours: sql.NullInt32{Int32: 48, Valid: true},
	}
}

func TestNew(t *testing.T) {
	st := memory.New()

	_, err := New(&Config{}, st, st, mocks.NewSender(t))
	assert.Error(t, err, "sender requires a from address")

	n, err := New(nil, st, st, nil)
	require.NoError(t, err)
	assert.Contains(t, n.templates, entity.NotificationSelection)
	assert.Contains(t, n.templates, entity.NotificationNotSelected)
	assert.Contains(t, n.templates, entity.NotificationOrganizerMessage)
	assert.NoError(t, n.Start(context.Background()))
	assert.NoError(t, n.Stop())
}

func TestNotifySelected(t *testing.T) {
	n, st := newTestNotifier(t, nil)
	ctx := context.Background()

	err := n.NotifySelected(ctx, []entity.WaitingPoolEntry{
		winner("u1", "u1@example.com"),
		winner("u2", ""),
	})
	require.NoError(t, err)

	ns, err := n.ForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.Equal(t, entity.NotificationSelection, ns[0].Type)
	assert.Equal(t, SelectionTitle, ns[0].Title)
	assert.Contains(t, ns[0].Message, "May 12, 2024 09:00 UTC")
	assert.Contains(t, ns[0].Message, "48h 00m remaining")
	assert.Equal(t, "ev", ns[0].EventId.String)

	unsent, err := st.GetUnsentEmails(ctx, 10)
	require.NoError(t, err)
	require.Len(t, unsent, 1, "only winners with an address get an e-mail")
	assert.Equal(t, "u1@example.com", unsent[0].Email.String)

	require.NoError(t, n.NotifySelected(ctx, nil))
}

func TestNotifySelectedWindowFallback(t *testing.T) {
	st := memory.New()
	n, err := New(nil, st, st, nil, WithDefaultResponseWindow(24))
	require.NoError(t, err)
	n.now = func() time.Time { return testNow }
	ctx := context.Background()

	w := winner("u1", "")
	w.ResponseWindowHours = sql.NullInt32{}
	require.NoError(t, n.NotifySelected(ctx, []entity.WaitingPoolEntry{w}))

	ns, err := n.ForUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.Contains(t, ns[0].Message, "May 11, 2024 09:00 UTC")
	assert.Contains(t, ns[0].Message, "24h 00m remaining")
}

func TestNotifyNotSelected(t *testing.T) {
	n, st := newTestNotifier(t, nil)
	ctx := context.Background()

	var entries []*entity.WaitingPoolEntry
	for _, id := range []string{"u1", "u2", "u3"} {
		e, err := st.AddEntry(ctx, &entity.WaitingPoolEntryInsert{EventId: "ev", EntrantId: id, EntrantEmail: id + "@example.com"})
		require.NoError(t, err)
		entries = append(entries, e)
	}
	_, err := st.AddEntry(ctx, &entity.WaitingPoolEntryInsert{EventId: "other", EntrantId: "u9"})
	require.NoError(t, err)

	// u1 is still waiting in the store, listing it as a winner is what skips it
	require.NoError(t, n.NotifyNotSelected(ctx, "ev", []entity.WaitingPoolEntry{*entries[0]}))

	ns, err := n.ForUser(ctx, "u1")
	require.NoError(t, err)
	assert.Empty(t, ns)

	for _, id := range []string{"u2", "u3"} {
		ns, err = n.ForUser(ctx, id)
		require.NoError(t, err)
		require.Len(t, ns, 1)
		assert.Equal(t, entity.NotificationNotSelected, ns[0].Type)
		assert.Equal(t, NotSelectedTitle, ns[0].Title)
		assert.Contains(t, ns[0].Message, "not selected")
		assert.Equal(t, entity.StatusWaiting.String(), mustStatus(t, st, "ev", id))
	}

	ns, err = n.ForUser(ctx, "u9")
	require.NoError(t, err)
	assert.Empty(t, ns, "other events are untouched")

	unsent, err := st.GetUnsentEmails(ctx, 10)
	require.NoError(t, err)
	assert.Len(t, unsent, 2)

	assert.ErrorIs(t, n.NotifyNotSelected(ctx, "", nil), gerr.ErrInvalidArgument)
	require.NoError(t, n.NotifyNotSelected(ctx, "empty", nil))
}

func TestNotifyNotSelectedStoreFailure(t *testing.T) {
	wp := mocks.NewWaitingPool(t)
	cause := errors.New("connection reset")
	wp.EXPECT().LoadByStatus(mock.Anything, "ev", entity.StatusWaiting).Return(nil, cause)

	n, err := New(nil, mocks.NewNotifications(t), wp, nil)
	require.NoError(t, err)

	err = n.NotifyNotSelected(context.Background(), "ev", nil)
	assert.ErrorIs(t, err, gerr.ErrStoreFailure)
	assert.ErrorIs(t, err, cause)
}

func mustStatus(t *testing.T, st *memory.Store, eventId, entrantId string) string {
	t.Helper()
	e, err := st.FindByEventAndEntrant(context.Background(), eventId, entrantId)
	require.NoError(t, err)
	require.NotNil(t, e)
	return e.Status.String()
}

func TestNotifySelectedStoreFailure(t *testing.T) {
	ns := mocks.NewNotifications(t)
	cause := errors.New("disk full")
	ns.EXPECT().AddNotifications(mock.Anything, mock.Anything).Return(nil, cause)

	n, err := New(nil, ns, mocks.NewWaitingPool(t), nil)
	require.NoError(t, err)

	err = n.NotifySelected(context.Background(), []entity.WaitingPoolEntry{winner("u1", "")})
	assert.ErrorIs(t, err, gerr.ErrStoreFailure)
	assert.ErrorIs(t, err, cause)
}

func TestNotifyEntrants(t *testing.T) {
	n, st := newTestNotifier(t, nil)
	ctx := context.Background()

	for _, id := range []string{"u1", "u2", "u3"} {
		_, err := st.AddEntry(ctx, &entity.WaitingPoolEntryInsert{EventId: "ev", EntrantId: id, EntrantEmail: id + "@example.com"})
		require.NoError(t, err)
	}

	count, err := n.NotifyEntrants(ctx, "ev", entity.StatusWaiting, "Venue changed", "We moved to hall B.")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	ns, err := n.ForUser(ctx, "u2")
	require.NoError(t, err)
	require.Len(t, ns, 1)
	assert.Equal(t, entity.NotificationOrganizerMessage, ns[0].Type)
	assert.Equal(t, "Venue changed", ns[0].Title)

	count, err = n.NotifyEntrants(ctx, "ev", entity.StatusSelected, "t", "m")
	require.NoError(t, err)
	assert.Zero(t, count)

	count, err = n.NotifyEntrants(ctx, "ev", "", "Reminder", "Doors open at 6.")
	require.NoError(t, err)
	assert.Equal(t, 3, count, "empty status addresses every entry")

	_, err = n.NotifyEntrants(ctx, "ev", entity.StatusWaiting, " ", "m")
	assert.ErrorIs(t, err, gerr.ErrInvalidArgument)
	_, err = n.NotifyEntrants(ctx, "ev", entity.EntryStatus("gone"), "t", "m")
	assert.ErrorIs(t, err, gerr.ErrInvalidArgument)
}

func TestMarkRead(t *testing.T) {
	n, _ := newTestNotifier(t, nil)
	ctx := context.Background()
	require.NoError(t, n.NotifySelected(ctx, []entity.WaitingPoolEntry{winner("u1", "")}))

	ns, err := n.ForUser(ctx, "u1")
	require.NoError(t, err)
	require.NoError(t, n.MarkRead(ctx, ns[0].Id))

	ns, err = n.ForUser(ctx, "u1")
	require.NoError(t, err)
	assert.True(t, ns[0].Read)

	assert.ErrorIs(t, n.MarkRead(ctx, "missing"), gerr.ErrNotificationNotFound)
}

func TestHandleUnsent(t *testing.T) {
	sender := mocks.NewSender(t)
	n, st := newTestNotifier(t, sender)
	ctx := context.Background()

	require.NoError(t, n.NotifySelected(ctx, []entity.WaitingPoolEntry{
		winner("ok", "ok@example.com"),
		winner("bad", "bad@example.com"),
	}))

	sender.EXPECT().Send(mock.Anything, mock.MatchedBy(func(m *mail.SGMailV3) bool {
		return m.Personalizations[0].To[0].Address == "ok@example.com"
	})).Run(func(ctx context.Context, msg *mail.SGMailV3) {
		assert.Equal(t, SelectionTitle, msg.Subject)
		assert.Equal(t, "lottery@example.com", msg.From.Address)
	}).Return(nil).Once()
	sender.EXPECT().Send(mock.Anything, mock.MatchedBy(func(m *mail.SGMailV3) bool {
		return m.Personalizations[0].To[0].Address == "bad@example.com"
	})).Return(errors.New("mailbox unavailable")).Once()

	sent, err := n.handleUnsent(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, sent)

	unsent, err := st.GetUnsentEmails(ctx, 10)
	require.NoError(t, err)
	require.Len(t, unsent, 1)
	assert.Equal(t, "bad", unsent[0].UserId)
	assert.Equal(t, "mailbox unavailable", unsent[0].EmailError.String)
}

func TestHandleUnsentLimitReached(t *testing.T) {
	sender := mocks.NewSender(t)
	n, st := newTestNotifier(t, sender)
	n.c.Concurrency = 1
	ctx := context.Background()

	require.NoError(t, n.NotifySelected(ctx, []entity.WaitingPoolEntry{winner("u1", "u1@example.com")}))
	sender.EXPECT().Send(mock.Anything, mock.Anything).Return(gerr.ErrMailLimitReached).Once()

	sent, err := n.handleUnsent(ctx)
	require.NoError(t, err)
	assert.Zero(t, sent)

	unsent, err := st.GetUnsentEmails(ctx, 10)
	require.NoError(t, err)
	require.Len(t, unsent, 1)
	assert.False(t, unsent[0].EmailError.Valid, "quota errors are not recorded")
}

func TestWorkerDeliversQueuedMail(t *testing.T) {
	sender := mocks.NewSender(t)
	n, st := newTestNotifier(t, sender)
	n.c.WorkerInterval = 10 * time.Millisecond
	ctx := context.Background()

	require.NoError(t, n.NotifySelected(ctx, []entity.WaitingPoolEntry{winner("u1", "u1@example.com")}))
	sender.EXPECT().Send(mock.Anything, mock.Anything).Return(nil).Once()

	require.NoError(t, n.Start(ctx))
	assert.Error(t, n.Start(ctx))

	assert.Eventually(t, func() bool {
		unsent, err := st.GetUnsentEmails(ctx, 10)
		return err == nil && len(unsent) == 0
	}, 2*time.Second, 10*time.Millisecond)

	require.NoError(t, n.Stop())
	assert.Error(t, n.Stop())
}
