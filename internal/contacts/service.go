package contacts

import (
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/docstore"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/live"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

// DerivedView is the filtered, sorted message list.
type DerivedView struct {
	Records []Contact `json:"records"`
	Total   int       `json:"total"`
}

// Service holds the latest contact-message snapshot.
type Service struct {
	store docstore.Store
	hub   *live.Hub

	mu          sync.RWMutex
	records     []Contact
	unsubscribe func()
}

func NewService(store docstore.Store, hub *live.Hub) *Service {
	return &Service{store: store, hub: hub}
}

func (s *Service) Start() error {
	unsubscribe, err := s.store.Subscribe(Collection, s.onSnapshot)
	if err != nil {
		return err
	}
	s.unsubscribe = unsubscribe
	return nil
}

func (s *Service) Stop() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Service) onSnapshot(snap docstore.Snapshot) {
	records := FromSnapshot(snap)

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()

	logrus.Printf("contacts snapshot: %d messages", len(records))

	if s.hub != nil {
		s.hub.Broadcast("contacts", s.Query(view.DefaultState(SortDateDesc)))
	}
}

func (s *Service) Records() []Contact {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Contact, len(s.records))
	copy(out, s.records)
	return out
}

// Query derives the inbox view from the current snapshot.
func (s *Service) Query(st view.State) DerivedView {
	records := s.Records()
	return DerivedView{
		Records: view.Derive(records, st, ViewConfig()),
		Total:   len(records),
	}
}

// Recent returns the newest n messages for the dashboard.
func (s *Service) Recent(n int) []Contact {
	derived := s.Query(view.DefaultState(SortDateDesc))
	if len(derived.Records) > n {
		return derived.Records[:n]
	}
	return derived.Records
}
