package reservations

import (
	"context"
	"testing"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/config"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/docstore"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

func TestServiceFollowsStoreChanges(t *testing.T) {
	store := docstore.NewMemory()
	defer store.Close()

	store.Seed(Collection, map[string]map[string]any{
		"r1": {"name": "Alice", "persons": "4", "startDate": day(0), "startTime": "19:00"},
	})

	svc := NewService(store, nil, config.DefaultRates())
	if err := svc.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer svc.Stop()

	if got := svc.Records(); len(got) != 1 || got[0].Name != "Alice" {
		t.Fatalf("initial snapshot not applied: %+v", got)
	}

	_, err := store.Add(context.Background(), Collection, map[string]any{
		"name": "Bob", "persons": 2, "startDate": day(0), "startTime": "12:00",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if got := svc.Records(); len(got) != 2 {
		t.Fatalf("expected 2 records after add, got %d", len(got))
	}
}

func TestServiceStopUnsubscribes(t *testing.T) {
	store := docstore.NewMemory()
	defer store.Close()

	svc := NewService(store, nil, config.DefaultRates())
	if err := svc.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	svc.Stop()

	_, err := store.Add(context.Background(), Collection, map[string]any{
		"name": "Late", "startDate": day(0), "startTime": "10:00",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	if got := svc.Records(); len(got) != 0 {
		t.Fatalf("stopped service should keep its last snapshot, got %d records", len(got))
	}

	// Idempotent.
	svc.Stop()
}

func TestQueryAtIsDeterministic(t *testing.T) {
	store := docstore.NewMemory()
	defer store.Close()

	store.Seed(Collection, map[string]map[string]any{
		"r1": {"name": "Alice", "persons": "4", "startDate": day(0), "startTime": "19:00"},
		"r2": {"name": "Bob", "persons": 2, "startDate": day(0), "startTime": "12:00"},
	})

	svc := NewService(store, nil, config.DefaultRates())
	if err := svc.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	defer svc.Stop()

	got := svc.QueryAt(view.DefaultState(SortDateAsc), testNow)
	if len(got.Records) != 2 || got.Records[0].Name != "Bob" || got.Records[1].Name != "Alice" {
		t.Fatalf("expected [Bob, Alice], got %+v", got.Records)
	}
	if got.Stats.TodayGuests != 6 || got.Stats.Revenue != 300 {
		t.Fatalf("stats wrong: %+v", got.Stats)
	}
}
