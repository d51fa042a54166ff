package reservations

import (
	"time"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/docstore"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

// Collection is the document collection the public site writes bookings to.
const Collection = "AllReservations"

// Reservation is the normalized view record. Records come from the public
// booking form, so every optional field degrades to a display default.
type Reservation struct {
	ID          string `json:"id"`
	Name        string `json:"name"`        // "N/A" when the form left it blank
	PhoneNumber string `json:"phoneNumber"`
	Persons     int    `json:"persons"`    // 0 when missing or unparseable
	StartDate   string `json:"startDate"`  // calendar date, YYYY-MM-DD
	StartTime   string `json:"startTime"`  // local time of day
	Status      string `json:"status"`     // "confirmed" unless the record says otherwise
}

func FromDocument(doc docstore.Document) Reservation {
	return Reservation{
		ID:          doc.ID,
		Name:        view.String(doc.Fields["name"], "N/A"),
		PhoneNumber: view.String(doc.Fields["phoneNumber"], ""),
		Persons:     view.Int(doc.Fields["persons"]),
		StartDate:   view.String(doc.Fields["startDate"], ""),
		StartTime:   view.String(doc.Fields["startTime"], ""),
		Status:      view.String(doc.Fields["status"], "confirmed"),
	}
}

func FromSnapshot(snap docstore.Snapshot) []Reservation {
	out := make([]Reservation, 0, len(snap))
	for _, doc := range snap {
		out = append(out, FromDocument(doc))
	}
	return out
}

var dateTimeLayouts = []string{
	"2006-01-02 15:04",
	"2006-01-02 3:04 PM",
	"2006-01-02 15:04:05",
}

// At combines (startDate, startTime) into the single instant used for
// ordering and bucketing. Records with an unparseable date sort first.
func (r Reservation) At() time.Time {
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, r.StartDate+" "+r.StartTime, time.Local); err == nil {
			return t
		}
	}
	if t, err := time.ParseInLocation("2006-01-02", r.StartDate, time.Local); err == nil {
		return t
	}
	return time.Time{}
}
