package reservations

import (
	"time"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

// Sort keys offered by the reservation views.
const (
	SortDateAsc    = "date-asc"
	SortDateDesc   = "date-desc"
	SortNameAsc    = "name-asc"
	SortNameDesc   = "name-desc"
	SortGuestsAsc  = "guests-asc"
	SortGuestsDesc = "guests-desc"
)

// Filter values beyond the temporal buckets; any other value is matched
// against the record status.
const (
	FilterYesterday = "yesterday"
	FilterWeek      = "week"       // last 7 days
	FilterMonth     = "month"      // last 30 days
	FilterNextWeek  = "next-week"  // next 7 days
	FilterNextMonth = "next-month" // next 30 days
)

// ViewConfig builds the engine configuration for reservation lists. The
// current instant is injected so derivation stays deterministic.
func ViewConfig(now time.Time) view.Config[Reservation] {
	byDate := func(a, b Reservation) int {
		at, bt := a.At(), b.At()
		switch {
		case at.Before(bt):
			return -1
		case at.After(bt):
			return 1
		default:
			return 0
		}
	}
	byName := func(a, b Reservation) int { return view.CompareStrings(a.Name, b.Name) }
	byGuests := func(a, b Reservation) int { return view.CompareInts(a.Persons, b.Persons) }

	return view.Config[Reservation]{
		SearchFields: func(r Reservation) []string {
			return []string{r.Name, r.PhoneNumber, r.StartDate}
		},
		Match: func(r Reservation, filter string) bool {
			t := r.At()
			switch filter {
			case string(view.BucketToday):
				return view.IsToday(t, now)
			case string(view.BucketUpcoming):
				return view.IsUpcoming(t, now)
			case string(view.BucketPast):
				return view.IsPast(t, now)
			case FilterYesterday:
				return view.SameDay(t, now.AddDate(0, 0, -1))
			case FilterWeek:
				return view.WithinPastDays(t, now, 7)
			case FilterMonth:
				return view.WithinPastDays(t, now, 30)
			case FilterNextWeek:
				return view.WithinNextDays(t, now, 7)
			case FilterNextMonth:
				return view.WithinNextDays(t, now, 30)
			default:
				return r.Status == filter
			}
		},
		Sorts: map[string]view.Comparator[Reservation]{
			SortDateAsc:    byDate,
			SortDateDesc:   view.Reverse(byDate),
			SortNameAsc:    byName,
			SortNameDesc:   view.Reverse(byName),
			SortGuestsAsc:  byGuests,
			SortGuestsDesc: view.Reverse(byGuests),
		},
		DefaultSort: SortDateAsc,
	}
}
