package reservations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns the derived reservation view for the requested view-state.
// GET /api/reservations?search=&filter=&sort=
func (h *Handler) List(c *gin.Context) {
	st := view.State{
		Search: c.Query("search"),
		Filter: c.DefaultQuery("filter", view.FilterAll),
		Sort:   c.DefaultQuery("sort", SortDateAsc),
	}

	derived := h.service.Query(st)
	c.JSON(http.StatusOK, gin.H{
		"records": derived.Records,
		"stats":   derived.Stats,
		"total":   len(derived.Records),
	})
}

// Overview returns the all/upcoming/past counts for the landing cards.
func (h *Handler) Overview(c *gin.Context) {
	stats := h.service.Overview()
	c.JSON(http.StatusOK, gin.H{
		"all":      stats.Total,
		"upcoming": stats.Upcoming,
		"past":     stats.Past,
	})
}
