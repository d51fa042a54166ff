package reservations

import (
	"math"
	"time"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/config"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

// Stats are the dashboard summary numbers. Revenue is an estimate:
// today's guests times the configured per-guest rate.
type Stats struct {
	Total       int `json:"total"`
	Today       int `json:"today"`
	Upcoming    int `json:"upcoming"`
	Past        int `json:"past"`
	Guests      int `json:"guests"`
	TodayGuests int `json:"todayGuests"`
	Revenue     int `json:"revenue"`
	Occupancy   int `json:"occupancy"`
}

// Aggregate computes summary stats over a record set. Pure: the output
// depends only on records, the injected now, and the rates.
func Aggregate(records []Reservation, now time.Time, rates config.Rates) Stats {
	var stats Stats
	stats.Total = len(records)

	for _, r := range records {
		t := r.At()
		stats.Guests += r.Persons

		switch view.BucketOf(t, now) {
		case view.BucketToday:
			stats.Today++
			stats.TodayGuests += r.Persons
		case view.BucketPast:
			stats.Past++
		}
		// Upcoming is date-inclusive of today.
		if view.IsUpcoming(t, now) {
			stats.Upcoming++
		}
	}

	stats.Revenue = stats.TodayGuests * rates.RevenuePerGuest
	stats.Occupancy = occupancy(stats.TodayGuests, rates.TotalCapacity)
	return stats
}

// occupancy is clamped to 100; zero capacity reads as empty.
func occupancy(guests, capacity int) int {
	if capacity <= 0 || guests <= 0 {
		return 0
	}
	pct := int(math.Round(float64(guests) / float64(capacity) * 100))
	if pct > 100 {
		return 100
	}
	return pct
}
