package contacts

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns the derived inbox view.
// GET /api/contacts?search=&sort=
func (h *Handler) List(c *gin.Context) {
	st := view.State{
		Search: c.Query("search"),
		Filter: view.FilterAll,
		Sort:   c.DefaultQuery("sort", SortDateDesc),
	}

	derived := h.service.Query(st)
	c.JSON(http.StatusOK, gin.H{
		"records": derived.Records,
		"total":   derived.Total,
		"showing": len(derived.Records),
	})
}

// Recent returns the newest messages for the dashboard cards.
// GET /api/contacts/recent?limit=5
func (h *Handler) Recent(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "5"))
	if err != nil || limit < 1 {
		limit = 5
	}

	c.JSON(http.StatusOK, gin.H{"records": h.service.Recent(limit)})
}
