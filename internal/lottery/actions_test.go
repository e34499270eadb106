package lottery

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jekabolt/lottery-manager/internal/deadline"
	"github.com/jekabolt/lottery-manager/internal/dependency/mocks"
	"github.com/jekabolt/lottery-manager/internal/entity"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func drawOne(t *testing.T, e *Engine, eventId string) entity.WaitingPoolEntry {
	t.Helper()
	winners, err := e.Draw(context.Background(), entity.DrawRequest{EventId: eventId, Slots: 1})
	require.NoError(t, err)
	require.Len(t, winners, 1)
	return winners[0]
}

func TestJoin(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()

	entry, err := e.Join(ctx, &entity.WaitingPoolEntryInsert{
		EventId:      " ev ",
		EntrantId:    "u1",
		EntrantName:  "Ada",
		EntrantEmail: "ada@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, entry.Id)
	assert.Equal(t, "ev", entry.EventId)
	assert.Equal(t, entity.StatusWaiting, entry.Status)
	assert.False(t, entry.JoinedAt.IsZero())

	t.Run("duplicate", func(t *testing.T) {
		_, err := e.Join(ctx, &entity.WaitingPoolEntryInsert{EventId: "ev", EntrantId: "u1"})
		assert.ErrorIs(t, err, gerr.ErrAlreadyJoined)

		n, err := e.Count(ctx, "ev")
		require.NoError(t, err)
		assert.Equal(t, 1, n)
	})

	t.Run("rejoin after cancel", func(t *testing.T) {
		_, err := e.Cancel(ctx, entry.Id)
		require.NoError(t, err)

		_, err = e.Join(ctx, &entity.WaitingPoolEntryInsert{EventId: "ev", EntrantId: "u1"})
		assert.ErrorIs(t, err, gerr.ErrAlreadyJoined)
	})

	t.Run("same entrant other event", func(t *testing.T) {
		_, err := e.Join(ctx, &entity.WaitingPoolEntryInsert{EventId: "ev2", EntrantId: "u1"})
		assert.NoError(t, err)
	})

	t.Run("invalid", func(t *testing.T) {
		for _, ins := range []*entity.WaitingPoolEntryInsert{
			nil,
			{EventId: "", EntrantId: "u2"},
			{EventId: "ev", EntrantId: ""},
			{EventId: "ev", EntrantId: "u2", EntrantEmail: "not-an-email"},
			{EventId: "ev", EntrantId: "u2", Latitude: sqlFloat(53.5)},
		} {
			_, err := e.Join(ctx, ins)
			assert.ErrorIs(t, err, gerr.ErrInvalidArgument)
		}
	})
}

func TestJoinStoreFailure(t *testing.T) {
	cause := errors.New("timeout")
	wp := mocks.NewWaitingPool(t)
	wp.EXPECT().FindByEventAndEntrant(mock.Anything, "ev", "u1").Return(nil, nil)
	wp.EXPECT().AddEntry(mock.Anything, mock.Anything).Return(nil, cause)

	_, err := New(nil, wp).Join(context.Background(), &entity.WaitingPoolEntryInsert{EventId: "ev", EntrantId: "u1"})
	assert.ErrorIs(t, err, gerr.ErrStoreFailure)
	assert.ErrorIs(t, err, cause)
}

func TestJoinStoreDuplicate(t *testing.T) {
	wp := mocks.NewWaitingPool(t)
	wp.EXPECT().FindByEventAndEntrant(mock.Anything, "ev", "u1").Return(nil, nil)
	wp.EXPECT().AddEntry(mock.Anything, mock.Anything).Return(nil, gerr.ErrAlreadyJoined)

	_, err := New(nil, wp).Join(context.Background(), &entity.WaitingPoolEntryInsert{EventId: "ev", EntrantId: "u1"})
	assert.ErrorIs(t, err, gerr.ErrAlreadyJoined)
	assert.NotErrorIs(t, err, gerr.ErrStoreFailure)
}

func TestAcceptAndEnroll(t *testing.T) {
	e, _, clock := newTestEngine(t)
	ctx := context.Background()
	seedPool(t, e, "ev", 1)
	winner := drawOne(t, e, "ev")

	clock.Advance(time.Hour)
	accepted, err := e.Accept(ctx, winner.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, accepted.Status)
	assert.True(t, accepted.RespondedAt.Valid)
	assert.True(t, accepted.RespondedAt.Time.Equal(clock.Now()))
	assert.Equal(t, winner.SelectedAt, accepted.SelectedAt)

	enrolled, err := e.Enroll(ctx, winner.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEnrolled, enrolled.Status)

	status, err := e.EntrantStatus(ctx, "ev", winner.EntrantId)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusEnrolled, status)

	_, err = e.Cancel(ctx, winner.Id)
	assert.ErrorIs(t, err, gerr.ErrInvalidTransition)
}

func TestAcceptAfterDeadline(t *testing.T) {
	tests := []struct {
		name    string
		elapsed time.Duration
		wantErr error
	}{
		{name: "at deadline", elapsed: 48 * time.Hour},
		{name: "past deadline", elapsed: 48*time.Hour + time.Second, wantErr: gerr.ErrInvalidTransition},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, st, clock := newTestEngine(t)
			ctx := context.Background()
			seedPool(t, e, "ev", 1)
			winner := drawOne(t, e, "ev")

			clock.Advance(tt.elapsed)
			_, err := e.Accept(ctx, winner.Id)
			if tt.wantErr == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)

			stored, err := st.GetEntryById(ctx, winner.Id)
			require.NoError(t, err)
			assert.Equal(t, entity.StatusSelected, stored.Status)
		})
	}
}

func TestAcceptWithLongestWindow(t *testing.T) {
	e, _, clock := newTestEngine(t)
	ctx := context.Background()
	seedPool(t, e, "ev", 1)

	winners, err := e.Draw(ctx, entity.DrawRequest{EventId: "ev", Slots: 1, ResponseWindowHours: intPtr(entity.MaxResponseWindowHours)})
	require.NoError(t, err)
	require.Len(t, winners, 1)
	assert.Equal(t, int32(entity.MaxResponseWindowHours), winners[0].ResponseWindowHours.Int32)

	_, d, err := e.EntryDeadline(ctx, winners[0].Id)
	require.NoError(t, err)
	assert.False(t, d.Expired)
	assert.True(t, d.Deadline.After(clock.Now()))

	clock.Advance(time.Hour)
	accepted, err := e.Accept(ctx, winners[0].Id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusAccepted, accepted.Status)
}

func TestDecline(t *testing.T) {
	e, st, _ := newTestEngine(t)
	ctx := context.Background()
	seedPool(t, e, "ev", 1)
	winner := drawOne(t, e, "ev")

	_, err := e.Decline(ctx, winner.Id, "   ")
	assert.ErrorIs(t, err, gerr.ErrInvalidArgument)

	declined, err := e.Decline(ctx, winner.Id, "travelling")
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDeclined, declined.Status)
	assert.Equal(t, "travelling", declined.DeclineReason.String)
	assert.True(t, declined.RespondedAt.Valid)
	assert.True(t, declined.SelectedAt.Valid)

	_, err = e.Accept(ctx, winner.Id)
	assert.ErrorIs(t, err, gerr.ErrInvalidTransition)

	stored, err := st.GetEntryById(ctx, winner.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDeclined, stored.Status)
}

func TestCancelIsTerminal(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	pool := seedPool(t, e, "ev", 1)

	cancelled, err := e.Cancel(ctx, pool[0].Id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusCancelled, cancelled.Status)

	for _, act := range []func(context.Context, string) (*entity.WaitingPoolEntry, error){
		e.Cancel, e.Accept, e.Enroll, e.Expire,
	} {
		_, err := act(ctx, pool[0].Id)
		assert.ErrorIs(t, err, gerr.ErrInvalidTransition)
	}
	_, err = e.Decline(ctx, pool[0].Id, "late")
	assert.ErrorIs(t, err, gerr.ErrInvalidTransition)

	winners, err := e.Draw(ctx, entity.DrawRequest{EventId: "ev", Slots: 1})
	require.NoError(t, err)
	assert.Empty(t, winners)
}

func TestExpire(t *testing.T) {
	e, _, clock := newTestEngine(t)
	ctx := context.Background()
	seedPool(t, e, "ev", 1)
	winner := drawOne(t, e, "ev")

	_, err := e.Expire(ctx, winner.Id)
	assert.ErrorIs(t, err, gerr.ErrInvalidTransition)

	clock.Advance(49 * time.Hour)
	expired, err := e.Expire(ctx, winner.Id)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusDeclined, expired.Status)
	assert.Equal(t, entity.DeclineReasonExpired, expired.DeclineReason.String)
	assert.False(t, expired.RespondedAt.Valid)
}

func TestActionUnknownEntry(t *testing.T) {
	e, _, _ := newTestEngine(t)

	_, err := e.Accept(context.Background(), "missing")
	assert.ErrorIs(t, err, gerr.ErrEntryNotFound)

	_, err = e.Accept(context.Background(), "")
	assert.ErrorIs(t, err, gerr.ErrInvalidArgument)
}

func TestQueries(t *testing.T) {
	e, _, _ := newTestEngine(t)
	ctx := context.Background()
	seedPool(t, e, "ev", 3)

	for _, ev := range []string{"ev-a", "ev-b"} {
		_, err := e.Join(ctx, &entity.WaitingPoolEntryInsert{EventId: ev, EntrantId: "entrant-0"})
		require.NoError(t, err)
	}

	mine, err := e.EntrantEntries(ctx, "entrant-0")
	require.NoError(t, err)
	require.Len(t, mine, 3)
	assert.Equal(t, "ev-b", mine[0].EventId)
	assert.Equal(t, "ev", mine[2].EventId)

	waiting, err := e.Entries(ctx, "ev", entity.StatusWaiting)
	require.NoError(t, err)
	assert.Len(t, waiting, 3)

	_, err = e.Entries(ctx, "ev", entity.EntryStatus("lost"))
	assert.ErrorIs(t, err, gerr.ErrInvalidArgument)

	_, err = e.EntrantStatus(ctx, "ev", "stranger")
	assert.ErrorIs(t, err, gerr.ErrEntryNotFound)
}

func TestEntryDeadline(t *testing.T) {
	e, _, clock := newTestEngine(t)
	ctx := context.Background()
	pool := seedPool(t, e, "ev", 2)

	_, d, err := e.EntryDeadline(ctx, pool[0].Id)
	require.NoError(t, err)
	assert.True(t, d.Deadline.IsZero())
	assert.Equal(t, deadline.LabelNoDeadline, d.Label)
	assert.False(t, d.Expired)

	winners, err := e.Draw(ctx, entity.DrawRequest{EventId: "ev", Slots: 2, ResponseWindowHours: intPtr(3)})
	require.NoError(t, err)

	_, d, err = e.EntryDeadline(ctx, winners[0].Id)
	require.NoError(t, err)
	assert.True(t, d.Deadline.Equal(clock.Now().Add(3*time.Hour)))
	assert.Equal(t, "3h 00m remaining", d.Label)
	assert.False(t, d.Expired)

	clock.Advance(4 * time.Hour)
	_, d, err = e.EntryDeadline(ctx, winners[0].Id)
	require.NoError(t, err)
	assert.Equal(t, deadline.LabelPassed, d.Label)
	assert.True(t, d.Expired)
}
