package contacts

import (
	"testing"
	"time"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/docstore"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

func at(day int) time.Time {
	return time.Date(2025, 6, day, 10, 0, 0, 0, time.UTC)
}

func testContacts() []Contact {
	return []Contact{
		{ID: "a", Name: "Alice", Email: "alice@example.com", Message: "table for two", Timestamp: at(10)},
		{ID: "b", Name: "Bob", Email: "bob@example.com", Message: "catering quote", Timestamp: at(14)},
		{ID: "c", Name: "Carol", Email: "carol@example.com", Message: "lost a jacket", Timestamp: at(12)},
	}
}

func TestDefaultSortIsNewestFirst(t *testing.T) {
	out := view.Derive(testContacts(), view.DefaultState(SortDateDesc), ViewConfig())

	want := []string{"Bob", "Carol", "Alice"}
	for i, name := range want {
		if out[i].Name != name {
			t.Fatalf("position %d = %s, expected %s", i, out[i].Name, name)
		}
	}
}

func TestIDFallbackWhenTimestampsMissing(t *testing.T) {
	records := []Contact{
		{ID: "zzz", Name: "Old Scheme A"},
		{ID: "aaa", Name: "Old Scheme B"},
		{ID: "mmm", Name: "Stamped", Timestamp: at(1)},
	}

	out := view.Derive(records, view.DefaultState(SortDateDesc), ViewConfig())

	// A real timestamp always beats a zero one; among the zero-timestamp
	// records the ID stands in for recency.
	if out[0].Name != "Stamped" {
		t.Fatalf("stamped record should lead, got %s", out[0].Name)
	}
	if out[1].ID != "zzz" || out[2].ID != "aaa" {
		t.Fatalf("ID fallback order wrong: [%s, %s]", out[1].ID, out[2].ID)
	}
}

func TestSearchSpansNameEmailMessage(t *testing.T) {
	cfg := ViewConfig()

	byMessage := view.Derive(testContacts(), view.State{Search: "jacket"}, cfg)
	if len(byMessage) != 1 || byMessage[0].Name != "Carol" {
		t.Fatalf("message search: %+v", byMessage)
	}

	byEmail := view.Derive(testContacts(), view.State{Search: "bob@"}, cfg)
	if len(byEmail) != 1 || byEmail[0].Name != "Bob" {
		t.Fatalf("email search: %+v", byEmail)
	}
}

func TestInitial(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"alice", "A"},
		{"  bob", "B"},
		{"", "C"},
		{"   ", "C"},
	}
	for _, tc := range cases {
		if got := (Contact{Name: tc.name}).Initial(); got != tc.want {
			t.Errorf("Initial(%q) = %q, expected %q", tc.name, got, tc.want)
		}
	}
}

func TestParseTimestampForms(t *testing.T) {
	rfc := FromDocument(docstore.Document{
		ID:     "1",
		Fields: map[string]any{"timestamp": "2025-06-10T10:00:00Z"},
	})
	if !rfc.Timestamp.Equal(at(10)) {
		t.Errorf("RFC3339 timestamp = %v", rfc.Timestamp)
	}

	millis := FromDocument(docstore.Document{
		ID:     "2",
		Fields: map[string]any{"timestamp": float64(at(10).UnixMilli())},
	})
	if !millis.Timestamp.Equal(at(10)) {
		t.Errorf("epoch-millis timestamp = %v", millis.Timestamp)
	}

	garbage := FromDocument(docstore.Document{
		ID:     "3",
		Fields: map[string]any{"timestamp": "yesterday"},
	})
	if !garbage.Timestamp.IsZero() {
		t.Errorf("unparseable timestamp should be zero, got %v", garbage.Timestamp)
	}
}

func TestAnonymousFallback(t *testing.T) {
	c := FromDocument(docstore.Document{ID: "1", Fields: map[string]any{"message": "hi"}})
	if c.Name != "Anonymous" {
		t.Fatalf("name = %q, expected Anonymous", c.Name)
	}
}
