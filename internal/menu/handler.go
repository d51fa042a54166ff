package menu

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/docstore"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// List returns the derived menu view.
// GET /api/menu?search=&category=&tab=&sort=
func (h *Handler) List(c *gin.Context) {
	st := view.State{
		Search: c.Query("search"),
		Filter: c.DefaultQuery("category", view.FilterAll),
		Sort:   c.DefaultQuery("sort", SortNameAsc),
	}
	tab := c.DefaultQuery("tab", TabAll)

	derived := h.service.Query(st, tab)
	c.JSON(http.StatusOK, gin.H{
		"records":    derived.Records,
		"summary":    derived.Summary,
		"categories": derived.Categories,
		"total":      len(derived.Records),
	})
}

// Add appends an item to a category.
// POST /api/menu/:category/items
func (h *Handler) Add(c *gin.Context) {
	var input ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.Add(c.Request.Context(), c.Param("category"), input); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrMissingName) || errors.Is(err, ErrNoCategory) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "item added"})
}

// Edit replaces the item at (category, index).
// PUT /api/menu/:category/items/:index
func (h *Handler) Edit(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item index"})
		return
	}

	var input ItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	if err := h.service.Edit(c.Request.Context(), c.Param("category"), index, input); err != nil {
		c.JSON(mutationStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item updated"})
}

// Delete removes the item at (category, index).
// DELETE /api/menu/:category/items/:index
func (h *Handler) Delete(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid item index"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), c.Param("category"), index); err != nil {
		c.JSON(mutationStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "item deleted"})
}

// UploadImage stores an item image and returns its URL.
// POST /api/menu/images
func (h *Handler) UploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "image is required"})
		return
	}
	defer file.Close()

	url, err := h.service.UploadImage(c.Request.Context(), file, header)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, ErrNoImageClient) {
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func mutationStatus(err error) int {
	switch {
	case errors.Is(err, ErrItemNotFound), errors.Is(err, docstore.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrMissingName):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
