package lottery

import "sync"

type eventLock struct {
	mu   sync.Mutex
	refs int
}

// eventLocks hands out one mutex per event id. A lock is dropped from the map
// once nobody holds or waits for it.
type eventLocks struct {
	mu    sync.Mutex
	locks map[string]*eventLock
}

func newEventLocks() *eventLocks {
	return &eventLocks{locks: make(map[string]*eventLock)}
}

// lock blocks until the event is free and returns the matching unlock.
func (l *eventLocks) lock(eventId string) func() {
	l.mu.Lock()
	el, ok := l.locks[eventId]
	if !ok {
		el = &eventLock{}
		l.locks[eventId] = el
	}
	el.refs++
	l.mu.Unlock()

	el.mu.Lock()
	return func() {
		el.mu.Unlock()
		l.mu.Lock()
		el.refs--
		if el.refs == 0 {
			delete(l.locks, eventId)
		}
		l.mu.Unlock()
	}
}

func (l *eventLocks) len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
