// Package memory is an in-memory implementation of the waiting pool and
// notification stores. It is the reference implementation used by tests and
// by single-instance deployments.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jekabolt/lottery-manager/internal/entity"
	gerr "github.com/jekabolt/lottery-manager/internal/errors"
)

type entrantKey struct {
	eventId   string
	entrantId string
}

// Store keeps entries and notifications in maps guarded by a single lock.
type Store struct {
	mu            sync.RWMutex
	entries       map[string]*entity.WaitingPoolEntry
	byEntrant     map[entrantKey]string
	notifications map[string]*entity.Notification
	now           func() time.Time
}

// New returns an empty store.
func New() *Store {
	return &Store{
		entries:       make(map[string]*entity.WaitingPoolEntry),
		byEntrant:     make(map[entrantKey]string),
		notifications: make(map[string]*entity.Notification),
		now:           time.Now,
	}
}

// WithClock replaces the clock used for join and creation timestamps.
func (s *Store) WithClock(now func() time.Time) *Store {
	s.now = now
	return s
}

func (s *Store) AddEntry(ctx context.Context, ins *entity.WaitingPoolEntryInsert) (*entity.WaitingPoolEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	key := entrantKey{eventId: ins.EventId, entrantId: ins.EntrantId}
	if _, ok := s.byEntrant[key]; ok {
		return nil, fmt.Errorf("%w: entrant %s in event %s", gerr.ErrAlreadyJoined, ins.EntrantId, ins.EventId)
	}

	now := s.now().Round(0)
	e := &entity.WaitingPoolEntry{
		Id:           uuid.New().String(),
		EventId:      ins.EventId,
		EntrantId:    ins.EntrantId,
		EntrantName:  ins.EntrantName,
		EntrantEmail: ins.EntrantEmail,
		Status:       entity.StatusWaiting,
		JoinedAt:     now,
		UpdatedAt:    now,
		Latitude:     ins.Latitude,
		Longitude:    ins.Longitude,
	}
	s.entries[e.Id] = e
	s.byEntrant[key] = e.Id

	out := *e
	return &out, nil
}

func (s *Store) GetEntryById(ctx context.Context, id string) (*entity.WaitingPoolEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entries[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", gerr.ErrEntryNotFound, id)
	}
	out := *e
	return &out, nil
}

func (s *Store) FindByEventAndEntrant(ctx context.Context, eventId string, entrantId string) (*entity.WaitingPoolEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.byEntrant[entrantKey{eventId: eventId, entrantId: entrantId}]
	if !ok {
		return nil, nil
	}
	out := *s.entries[id]
	return &out, nil
}

func (s *Store) LoadByStatus(ctx context.Context, eventId string, status entity.EntryStatus) ([]entity.WaitingPoolEntry, error) {
	return s.list(ctx, func(e *entity.WaitingPoolEntry) bool {
		return e.EventId == eventId && e.Status == status
	}, byJoinedAsc)
}

func (s *Store) ListByStatus(ctx context.Context, status entity.EntryStatus) ([]entity.WaitingPoolEntry, error) {
	return s.list(ctx, func(e *entity.WaitingPoolEntry) bool {
		return e.Status == status
	}, byJoinedAsc)
}

func (s *Store) ListByEntrant(ctx context.Context, entrantId string) ([]entity.WaitingPoolEntry, error) {
	return s.list(ctx, func(e *entity.WaitingPoolEntry) bool {
		return e.EntrantId == entrantId
	}, byJoinedDesc)
}

func (s *Store) CountByEvent(ctx context.Context, eventId string) (int, error) {
	entries, err := s.list(ctx, func(e *entity.WaitingPoolEntry) bool {
		return e.EventId == eventId
	}, nil)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}

func (s *Store) BatchTransition(ctx context.Context, ids []string, from entity.EntryStatus, upd entity.EntryUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		e, ok := s.entries[id]
		if !ok {
			return fmt.Errorf("%w: entry %s not found", gerr.ErrConflict, id)
		}
		if e.Status != from {
			return fmt.Errorf("%w: entry %s is %s, want %s", gerr.ErrConflict, id, e.Status, from)
		}
		if _, dup := seen[id]; dup {
			return fmt.Errorf("%w: entry %s listed twice", gerr.ErrConflict, id)
		}
		seen[id] = struct{}{}
	}
	for _, id := range ids {
		s.entries[id].Apply(upd)
	}
	return nil
}

func (s *Store) UpdateOne(ctx context.Context, id string, from entity.EntryStatus, upd entity.EntryUpdate) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[id]
	if !ok {
		return fmt.Errorf("%w: %s", gerr.ErrEntryNotFound, id)
	}
	if e.Status != from {
		return fmt.Errorf("%w: entry %s is %s, want %s", gerr.ErrConflict, id, e.Status, from)
	}
	e.Apply(upd)
	return nil
}

func byJoinedAsc(a, b *entity.WaitingPoolEntry) bool {
	if a.JoinedAt.Equal(b.JoinedAt) {
		return a.Id < b.Id
	}
	return a.JoinedAt.Before(b.JoinedAt)
}

func byJoinedDesc(a, b *entity.WaitingPoolEntry) bool {
	return byJoinedAsc(b, a)
}

func (s *Store) list(ctx context.Context, match func(*entity.WaitingPoolEntry) bool, less func(a, b *entity.WaitingPoolEntry) bool) ([]entity.WaitingPoolEntry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.WaitingPoolEntry, 0)
	for _, e := range s.entries {
		if match(e) {
			out = append(out, *e)
		}
	}
	if less != nil {
		sort.Slice(out, func(i, j int) bool { return less(&out[i], &out[j]) })
	}
	return out, nil
}

// Ping reports whether the store can serve requests.
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}
