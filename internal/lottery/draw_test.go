package lottery

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/jekabolt/lottery-manager/internal/dependency/mocks"
	"github.com/jekabolt/lottery-manager/internal/entity"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDrawScenario(t *testing.T) {
	e, st, clock := newTestEngine(t)
	ctx := context.Background()
	seedPool(t, e, "ev1", 10)

	winners, err := e.Draw(ctx, entity.DrawRequest{EventId: "ev1", Slots: 3})
	require.NoError(t, err)
	require.Len(t, winners, 3)

	for _, w := range winners {
		assert.Equal(t, entity.StatusSelected, w.Status)
		assert.True(t, w.SelectedAt.Valid)
		assert.True(t, w.SelectedAt.Time.Equal(clock.Now()))
		assert.Equal(t, int32(48), w.ResponseWindowHours.Int32)

		stored, err := st.GetEntryById(ctx, w.Id)
		require.NoError(t, err)
		assert.Equal(t, entity.StatusSelected, stored.Status)
		assert.Equal(t, w.SelectedAt, stored.SelectedAt)
	}

	waiting, err := st.LoadByStatus(ctx, "ev1", entity.StatusWaiting)
	require.NoError(t, err)
	assert.Len(t, waiting, 7)
	for _, w := range waiting {
		assert.False(t, w.SelectedAt.Valid)
		assert.False(t, w.ResponseWindowHours.Valid)
	}
}

func TestDrawWinnerCount(t *testing.T) {
	tests := []struct {
		pool  int
		slots int
		want  int
	}{
		{pool: 1, slots: 1, want: 1},
		{pool: 5, slots: 2, want: 2},
		{pool: 5, slots: 5, want: 5},
		{pool: 3, slots: 10, want: 3},
		{pool: 20, slots: 7, want: 7},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("pool=%d/slots=%d", tt.pool, tt.slots), func(t *testing.T) {
			e, st, _ := newTestEngine(t)
			ctx := context.Background()
			seedPool(t, e, "ev", tt.pool)

			winners, err := e.Draw(ctx, entity.DrawRequest{EventId: "ev", Slots: tt.slots})
			require.NoError(t, err)
			assert.Len(t, winners, tt.want)

			ids := map[string]struct{}{}
			for _, w := range winners {
				ids[w.Id] = struct{}{}
			}
			assert.Len(t, ids, tt.want, "winners must be unique")

			waiting, err := st.LoadByStatus(ctx, "ev", entity.StatusWaiting)
			require.NoError(t, err)
			assert.Len(t, waiting, tt.pool-tt.want)
			for _, w := range waiting {
				_, won := ids[w.Id]
				assert.False(t, won)
			}
		})
	}
}

func TestDrawEmptyPool(t *testing.T) {
	e, _, _ := newTestEngine(t)

	winners, err := e.Draw(context.Background(), entity.DrawRequest{EventId: "nobody", Slots: 3})
	require.NoError(t, err)
	assert.NotNil(t, winners)
	assert.Empty(t, winners)
}

func TestDrawInvalidArguments(t *testing.T) {
	tests := []struct {
		name string
		req  entity.DrawRequest
	}{
		{name: "zero slots", req: entity.DrawRequest{EventId: "ev", Slots: 0}},
		{name: "negative slots", req: entity.DrawRequest{EventId: "ev", Slots: -2}},
		{name: "missing event", req: entity.DrawRequest{EventId: "  ", Slots: 1}},
		{name: "negative override", req: entity.DrawRequest{EventId: "ev", Slots: 1, ResponseWindowHours: intPtr(-1)}},
		{name: "override past duration range", req: entity.DrawRequest{EventId: "ev", Slots: 1, ResponseWindowHours: intPtr(3_000_000)}},
		{name: "override past int32", req: entity.DrawRequest{EventId: "ev", Slots: 1, ResponseWindowHours: intPtr(1 << 31)}},
		{name: "event default too long", req: entity.DrawRequest{EventId: "ev", Slots: 1, DefaultResponseWindowHours: intPtr(entity.MaxResponseWindowHours + 1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// no expectations: any store call fails the test
			wp := mocks.NewWaitingPool(t)
			e := New(nil, wp)

			winners, err := e.Draw(context.Background(), tt.req)
			assert.Nil(t, winners)
			assert.ErrorIs(t, err, gerr.ErrInvalidArgument)
		})
	}
}

func TestDrawResponseWindow(t *testing.T) {
	tests := []struct {
		name string
		cfg  *Config
		req  entity.DrawRequest
		want int32
	}{
		{name: "default", req: entity.DrawRequest{Slots: 1}, want: 48},
		{name: "engine default", cfg: &Config{DefaultResponseWindowHours: 24}, req: entity.DrawRequest{Slots: 1}, want: 24},
		{name: "event default", req: entity.DrawRequest{Slots: 1, DefaultResponseWindowHours: intPtr(72)}, want: 72},
		{name: "override", req: entity.DrawRequest{Slots: 1, ResponseWindowHours: intPtr(6), DefaultResponseWindowHours: intPtr(72)}, want: 6},
		{name: "zero override", req: entity.DrawRequest{Slots: 1, ResponseWindowHours: intPtr(0)}, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clock := newTestClock()
			e := New(tt.cfg, memoryStore(), WithClock(clock.Now))
			seedPool(t, e, "ev", 2)

			tt.req.EventId = "ev"
			winners, err := e.Draw(context.Background(), tt.req)
			require.NoError(t, err)
			require.Len(t, winners, 1)
			assert.True(t, winners[0].ResponseWindowHours.Valid)
			assert.Equal(t, tt.want, winners[0].ResponseWindowHours.Int32)
		})
	}
}

func TestDrawFixedSeedIsReproducible(t *testing.T) {
	draw := func() []string {
		e, _, _ := newTestEngine(t)
		pool := seedPool(t, e, "ev", 12)
		byEntrant := map[string]string{}
		for _, p := range pool {
			byEntrant[p.Id] = p.EntrantId
		}
		winners, err := e.Draw(context.Background(), entity.DrawRequest{EventId: "ev", Slots: 4})
		require.NoError(t, err)
		out := make([]string, 0, len(winners))
		for _, w := range winners {
			out = append(out, byEntrant[w.Id])
		}
		sort.Strings(out)
		return out
	}

	assert.Equal(t, draw(), draw())
}

func TestDrawSeedFailure(t *testing.T) {
	seedErr := errors.New("entropy exhausted")
	wp := mocks.NewWaitingPool(t)
	wp.EXPECT().LoadByStatus(mock.Anything, "ev", entity.StatusWaiting).
		Return([]entity.WaitingPoolEntry{{Id: "a", EventId: "ev", Status: entity.StatusWaiting}}, nil)

	e := New(nil, wp, WithSeed(func() (uint64, uint64, error) { return 0, 0, seedErr }))
	_, err := e.Draw(context.Background(), entity.DrawRequest{EventId: "ev", Slots: 1})
	assert.ErrorIs(t, err, seedErr)
}

func TestDrawStoreFailure(t *testing.T) {
	cause := errors.New("connection reset")
	pool := []entity.WaitingPoolEntry{
		{Id: "a", EventId: "ev", Status: entity.StatusWaiting},
		{Id: "b", EventId: "ev", Status: entity.StatusWaiting},
	}

	t.Run("load", func(t *testing.T) {
		wp := mocks.NewWaitingPool(t)
		wp.EXPECT().LoadByStatus(mock.Anything, "ev", entity.StatusWaiting).Return(nil, cause)

		_, err := New(nil, wp).Draw(context.Background(), entity.DrawRequest{EventId: "ev", Slots: 1})
		assert.ErrorIs(t, err, gerr.ErrStoreFailure)
		assert.ErrorIs(t, err, cause)

		var se *gerr.StoreError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, "load waiting pool", se.Op)
	})

	t.Run("batch", func(t *testing.T) {
		wp := mocks.NewWaitingPool(t)
		wp.EXPECT().LoadByStatus(mock.Anything, "ev", entity.StatusWaiting).Return(pool, nil)
		wp.EXPECT().BatchTransition(mock.Anything, mock.Anything, entity.StatusWaiting, mock.Anything).
			Run(func(ctx context.Context, ids []string, from entity.EntryStatus, upd entity.EntryUpdate) {
				assert.Len(t, ids, 2)
				assert.Equal(t, entity.StatusSelected, upd.Status)
			}).
			Return(cause)

		winners, err := New(nil, wp).Draw(context.Background(), entity.DrawRequest{EventId: "ev", Slots: 5})
		assert.Nil(t, winners)
		assert.ErrorIs(t, err, gerr.ErrStoreFailure)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("conflict passes through", func(t *testing.T) {
		wp := mocks.NewWaitingPool(t)
		wp.EXPECT().LoadByStatus(mock.Anything, "ev", entity.StatusWaiting).Return(pool, nil)
		wp.EXPECT().BatchTransition(mock.Anything, mock.Anything, entity.StatusWaiting, mock.Anything).
			Return(fmt.Errorf("%w: entry a is selected", gerr.ErrConflict))

		_, err := New(nil, wp).Replenish(context.Background(), entity.DrawRequest{EventId: "ev", Slots: 1})
		assert.ErrorIs(t, err, gerr.ErrConflict)
		assert.NotErrorIs(t, err, gerr.ErrStoreFailure)
	})
}

func TestConcurrentDrawsDoNotOverlap(t *testing.T) {
	e, st, _ := newTestEngine(t)
	e.seed = CryptoSeed
	ctx := context.Background()
	seedPool(t, e, "ev", 20)

	var (
		wg  sync.WaitGroup
		mu  sync.Mutex
		all []entity.WaitingPoolEntry
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			winners, err := e.Draw(ctx, entity.DrawRequest{EventId: "ev", Slots: 3})
			assert.NoError(t, err)
			mu.Lock()
			all = append(all, winners...)
			mu.Unlock()
		}()
	}
	wg.Wait()

	ids := map[string]struct{}{}
	for _, w := range all {
		_, dup := ids[w.Id]
		assert.False(t, dup, "entry %s drawn twice", w.Id)
		ids[w.Id] = struct{}{}
	}
	assert.Len(t, all, 20)

	waiting, err := st.LoadByStatus(ctx, "ev", entity.StatusWaiting)
	require.NoError(t, err)
	assert.Empty(t, waiting)
	assert.Zero(t, e.locks.len())
}

func TestReplenishSkipsDeclined(t *testing.T) {
	e, st, _ := newTestEngine(t)
	ctx := context.Background()
	seedPool(t, e, "ev", 4)

	first, err := e.Draw(ctx, entity.DrawRequest{EventId: "ev", Slots: 2})
	require.NoError(t, err)
	_, err = e.Decline(ctx, first[0].Id, "schedule conflict")
	require.NoError(t, err)

	second, err := e.Replenish(ctx, entity.DrawRequest{EventId: "ev", Slots: 5})
	require.NoError(t, err)
	assert.Len(t, second, 2)
	for _, w := range second {
		assert.NotEqual(t, first[0].Id, w.Id)
		assert.NotEqual(t, first[1].Id, w.Id)
	}

	declined, err := st.LoadByStatus(ctx, "ev", entity.StatusDeclined)
	require.NoError(t, err)
	assert.Len(t, declined, 1)
}

func TestSampleIsUniform(t *testing.T) {
	const (
		n      = 5
		k      = 2
		rounds = 60000
	)
	rng := rand.New(rand.NewPCG(42, 1024))
	counts := map[string]int{}
	pool := make([]int, n)

	for r := 0; r < rounds; r++ {
		for i := range pool {
			pool[i] = i
		}
		got := sample(pool, k, rng)
		require.Len(t, got, k)
		require.NotEqual(t, got[0], got[1])
		pair := []string{fmt.Sprint(got[0]), fmt.Sprint(got[1])}
		sort.Strings(pair)
		counts[strings.Join(pair, "-")]++
	}

	// C(5,2) = 10 subsets
	require.Len(t, counts, 10)
	expected := rounds / 10
	for subset, c := range counts {
		assert.InDelta(t, expected, c, float64(expected)*0.1, "subset %s", subset)
	}
}

func TestSampleLargerThanPool(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	got := sample([]int{1, 2, 3}, 10, rng)
	assert.ElementsMatch(t, []int{1, 2, 3}, got)
}
