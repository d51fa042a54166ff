package docstore

import "sync"

// subscribers tracks snapshot callbacks per collection. Both store
// implementations fan snapshots out through it; delivery is synchronous,
// matching the full-snapshot-replace model of the views.
type subscribers struct {
	mu   sync.Mutex
	next int
	subs map[string]map[int]func(Snapshot)
}

func newSubscribers() *subscribers {
	return &subscribers{subs: make(map[string]map[int]func(Snapshot))}
}

func (s *subscribers) add(collection string, fn func(Snapshot)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.subs[collection] == nil {
		s.subs[collection] = make(map[int]func(Snapshot))
	}
	id := s.next
	s.next++
	s.subs[collection][id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			delete(s.subs[collection], id)
		})
	}
}

func (s *subscribers) notify(collection string, snap Snapshot) {
	s.mu.Lock()
	fns := make([]func(Snapshot), 0, len(s.subs[collection]))
	for _, fn := range s.subs[collection] {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}
