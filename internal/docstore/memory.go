package docstore

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"
)

// Memory is an in-memory Store used by tests and local development.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]any
	subs        *subscribers
	closed      bool
}

func NewMemory() *Memory {
	return &Memory{
		collections: make(map[string]map[string]map[string]any),
		subs:        newSubscribers(),
	}
}

// Seed loads documents without notifying subscribers; test setup only.
func (m *Memory) Seed(collection string, docs map[string]map[string]any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, fields := range docs {
		m.put(collection, id, fields)
	}
}

func (m *Memory) Subscribe(collection string, fn func(Snapshot)) (func(), error) {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return nil, ErrClosed
	}
	unsubscribe := m.subs.add(collection, fn)
	snap := m.snapshot(collection)
	m.mu.Unlock()

	fn(snap)
	return unsubscribe, nil
}

func (m *Memory) Get(_ context.Context, collection, id string) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	fields, ok := m.collections[collection][id]
	if !ok {
		return Document{}, ErrNotFound
	}
	return Document{ID: id, Fields: cloneFields(fields)}, nil
}

func (m *Memory) Add(_ context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.New().String()

	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return "", ErrClosed
	}
	m.put(collection, id, fields)
	snap := m.snapshot(collection)
	m.mu.Unlock()

	m.subs.notify(collection, snap)
	return id, nil
}

func (m *Memory) Set(_ context.Context, collection, id string, fields map[string]any, merge bool) error {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return ErrClosed
	}
	if merge {
		existing := m.collections[collection][id]
		merged := cloneFields(existing)
		for k, v := range fields {
			merged[k] = v
		}
		m.put(collection, id, merged)
	} else {
		m.put(collection, id, fields)
	}
	snap := m.snapshot(collection)
	m.mu.Unlock()

	m.subs.notify(collection, snap)
	return nil
}

func (m *Memory) Update(_ context.Context, collection, id string, fields map[string]any) error {
	m.mu.Lock()
	existing, ok := m.collections[collection][id]
	if !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	merged := cloneFields(existing)
	for k, v := range fields {
		merged[k] = v
	}
	m.put(collection, id, merged)
	snap := m.snapshot(collection)
	m.mu.Unlock()

	m.subs.notify(collection, snap)
	return nil
}

func (m *Memory) Delete(_ context.Context, collection, id string) error {
	m.mu.Lock()
	if _, ok := m.collections[collection][id]; !ok {
		m.mu.Unlock()
		return ErrNotFound
	}
	delete(m.collections[collection], id)
	snap := m.snapshot(collection)
	m.mu.Unlock()

	m.subs.notify(collection, snap)
	return nil
}

// Close stops accepting writes and subscriptions.
func (m *Memory) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
}

// put must be called with the write lock held.
func (m *Memory) put(collection, id string, fields map[string]any) {
	if m.collections[collection] == nil {
		m.collections[collection] = make(map[string]map[string]any)
	}
	m.collections[collection][id] = cloneFields(fields)
}

// snapshot must be called with the lock held.
func (m *Memory) snapshot(collection string) Snapshot {
	docs := m.collections[collection]
	snap := make(Snapshot, 0, len(docs))
	for id, fields := range docs {
		snap = append(snap, Document{ID: id, Fields: cloneFields(fields)})
	}
	sort.Slice(snap, func(i, j int) bool { return snap[i].ID < snap[j].ID })
	return snap
}

func cloneFields(fields map[string]any) map[string]any {
	out := make(map[string]any, len(fields))
	for k, v := range fields {
		out[k] = v
	}
	return out
}
