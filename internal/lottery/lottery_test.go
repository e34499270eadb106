package lottery

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/jekabolt/lottery-manager/internal/entity"
	"github.com/jekabolt/lottery-manager/internal/store/memory"
	"github.com/stretchr/testify/require"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock() *testClock {
	return &testClock{now: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// tick returns a clock that moves one second forward on every call.
func (c *testClock) tick() func() time.Time {
	return func() time.Time {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.now = c.now.Add(time.Second)
		return c.now
	}
}

func newTestEngine(t *testing.T) (*Engine, *memory.Store, *testClock) {
	t.Helper()
	clock := newTestClock()
	st := memory.New().WithClock(newTestClock().tick())
	e := New(nil, st, WithClock(clock.Now), WithSeed(FixedSeed(7, 11)))
	return e, st, clock
}

func seedPool(t *testing.T, e *Engine, eventId string, n int) []entity.WaitingPoolEntry {
	t.Helper()
	ctx := context.Background()
	out := make([]entity.WaitingPoolEntry, 0, n)
	for i := 0; i < n; i++ {
		entry, err := e.Join(ctx, &entity.WaitingPoolEntryInsert{
			EventId:      eventId,
			EntrantId:    fmt.Sprintf("entrant-%d", i),
			EntrantName:  fmt.Sprintf("Entrant %d", i),
			EntrantEmail: fmt.Sprintf("entrant%d@example.com", i),
		})
		require.NoError(t, err)
		out = append(out, *entry)
	}
	return out
}

func intPtr(v int) *int { return &v }

func memoryStore() *memory.Store { return memory.New().WithClock(newTestClock().tick()) }

func sqlFloat(v float64) sql.NullFloat64 { return sql.NullFloat64{Float64: v, Valid: true} }
