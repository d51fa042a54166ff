package view

import "time"

// Bucket is a temporal category of a record relative to "now".
type Bucket string

const (
	BucketToday    Bucket = "today"
	BucketUpcoming Bucket = "upcoming"
	BucketPast     Bucket = "past"
)

// DayOf truncates t to midnight in its own location.
func DayOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func SameDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}

func IsToday(t, now time.Time) bool {
	return SameDay(t, now)
}

// IsUpcoming is date-inclusive: a record later today still counts.
func IsUpcoming(t, now time.Time) bool {
	return !DayOf(t).Before(DayOf(now))
}

// IsPast is strict: same-day records are not past.
func IsPast(t, now time.Time) bool {
	return DayOf(t).Before(DayOf(now))
}

// BucketOf places t relative to now. Today wins over upcoming.
func BucketOf(t, now time.Time) Bucket {
	switch {
	case IsToday(t, now):
		return BucketToday
	case IsPast(t, now):
		return BucketPast
	default:
		return BucketUpcoming
	}
}

// WithinPastDays reports whether t falls in [today-days, today).
// Windows are start-inclusive and end-exclusive throughout.
func WithinPastDays(t, now time.Time, days int) bool {
	end := DayOf(now)
	start := end.AddDate(0, 0, -days)
	day := DayOf(t)
	return !day.Before(start) && day.Before(end)
}

// WithinNextDays reports whether t falls in [today, today+days).
func WithinNextDays(t, now time.Time, days int) bool {
	start := DayOf(now)
	end := start.AddDate(0, 0, days)
	day := DayOf(t)
	return !day.Before(start) && day.Before(end)
}
