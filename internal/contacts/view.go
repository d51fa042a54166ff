package contacts

import (
	"strings"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

const (
	SortDateDesc = "date-desc"
	SortDateAsc  = "date-asc"
	SortNameAsc  = "name-asc"
	SortNameDesc = "name-desc"
)

// ViewConfig builds the engine configuration for the inbox. Recency sorting
// uses the explicit timestamp; document-ID comparison is only the fallback
// for records that never got one, since ID order is just a time proxy.
func ViewConfig() view.Config[Contact] {
	byDate := func(a, b Contact) int {
		if a.Timestamp.IsZero() && b.Timestamp.IsZero() {
			return strings.Compare(a.ID, b.ID)
		}
		switch {
		case a.Timestamp.Before(b.Timestamp):
			return -1
		case a.Timestamp.After(b.Timestamp):
			return 1
		default:
			return 0
		}
	}
	byName := func(a, b Contact) int { return view.CompareStrings(a.Name, b.Name) }

	return view.Config[Contact]{
		SearchFields: func(c Contact) []string {
			return []string{c.Name, c.Email, c.Message}
		},
		Sorts: map[string]view.Comparator[Contact]{
			SortDateDesc: view.Reverse(byDate),
			SortDateAsc:  byDate,
			SortNameAsc:  byName,
			SortNameDesc: view.Reverse(byName),
		},
		DefaultSort: SortDateDesc,
	}
}
