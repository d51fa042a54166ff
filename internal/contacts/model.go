package contacts

import (
	"strings"
	"time"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/docstore"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

// Collection is where the public-site contact form writes messages.
const Collection = "contactForm"

type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"` // "Anonymous" when the form left it blank
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

func FromDocument(doc docstore.Document) Contact {
	return Contact{
		ID:        doc.ID,
		Name:      view.String(doc.Fields["name"], "Anonymous"),
		Email:     view.String(doc.Fields["email"], ""),
		Message:   view.String(doc.Fields["message"], ""),
		Timestamp: parseTimestamp(doc.Fields["timestamp"]),
	}
}

func FromSnapshot(snap docstore.Snapshot) []Contact {
	out := make([]Contact, 0, len(snap))
	for _, doc := range snap {
		out = append(out, FromDocument(doc))
	}
	return out
}

// Initial is the avatar letter; "C" (contact) when there is no usable name.
func (c Contact) Initial() string {
	name := strings.TrimSpace(c.Name)
	if name == "" {
		return "C"
	}
	return strings.ToUpper(name[:1])
}

// parseTimestamp accepts RFC3339 strings and epoch milliseconds; anything
// else is the zero time, which sorts as oldest.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case string:
		if parsed, err := time.Parse(time.RFC3339, t); err == nil {
			return parsed
		}
	case float64:
		return time.UnixMilli(int64(t))
	case int64:
		return time.UnixMilli(t)
	}
	return time.Time{}
}
