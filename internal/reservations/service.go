package reservations

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/config"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/docstore"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/live"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

// DerivedView is the filtered, sorted record list plus its summary.
type DerivedView struct {
	Records []Reservation `json:"records"`
	Stats   Stats         `json:"stats"`
}

// Service holds the latest reservation snapshot and derives views from it.
// Every store delivery replaces the snapshot wholesale.
type Service struct {
	store docstore.Store
	hub   *live.Hub
	rates config.Rates
	now   func() time.Time

	mu          sync.RWMutex
	records     []Reservation
	unsubscribe func()
}

func NewService(store docstore.Store, hub *live.Hub, rates config.Rates) *Service {
	return &Service{
		store: store,
		hub:   hub,
		rates: rates,
		now:   time.Now,
	}
}

// Start subscribes to the reservations collection. The first snapshot is
// delivered before Start returns.
func (s *Service) Start() error {
	unsubscribe, err := s.store.Subscribe(Collection, s.onSnapshot)
	if err != nil {
		return err
	}
	s.unsubscribe = unsubscribe
	return nil
}

// Stop cancels the subscription; safe to call once per Start.
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

	logrus.Printf("reservations snapshot: %d records", len(records))

	if s.hub != nil {
		s.hub.Broadcast("reservations", s.Query(view.DefaultState(SortDateAsc)))
	}
}

// Records returns the current normalized snapshot.
func (s *Service) Records() []Reservation {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Reservation, len(s.records))
	copy(out, s.records)
	return out
}

// Query derives a view from the current snapshot and the given view-state.
func (s *Service) Query(st view.State) DerivedView {
	return s.QueryAt(st, s.now())
}

// QueryAt is Query with an explicit "now", for deterministic derivation.
func (s *Service) QueryAt(st view.State, now time.Time) DerivedView {
	records := s.Records()
	filtered := view.Derive(records, st, ViewConfig(now))
	return DerivedView{
		Records: filtered,
		Stats:   Aggregate(records, now, s.rates),
	}
}

// Overview returns the bucket counts backing the reservations landing page.
func (s *Service) Overview() Stats {
	return Aggregate(s.Records(), s.now(), s.rates)
}
