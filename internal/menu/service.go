package menu

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/docstore"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/live"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

var (
	ErrItemNotFound  = errors.New("menu item not found")
	ErrMissingName   = errors.New("item name is required")
	ErrNoCategory    = errors.New("category is required")
	ErrNoImageClient = errors.New("image storage is not configured")
)

// Storage is the object-storage dependency for item images.
type Storage interface {
	Upload(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
}

// ItemInput carries the editable fields of a menu item.
type ItemInput struct {
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          string `json:"price"`
	Img            string `json:"img"`
	ContainsGluten bool   `json:"containsGluten"`
	ContainsNuts   bool   `json:"containsNuts"`
	Veg            bool   `json:"veg"`
	Vegan          bool   `json:"vegan"`
	Recommended    bool   `json:"recommended"`
}

// DerivedView is the filtered, sorted item list plus its summary.
type DerivedView struct {
	Records    []MenuItem `json:"records"`
	Summary    Summary    `json:"summary"`
	Categories []string   `json:"categories"`
}

// Service holds the latest flattened menu snapshot and performs all item
// mutations by rewriting the owning category's whole items array; there is
// no single-element update primitive.
type Service struct {
	store   docstore.Store
	storage Storage
	hub     *live.Hub

	mu          sync.RWMutex
	items       []MenuItem
	unsubscribe func()
}

func NewService(store docstore.Store, storage Storage, hub *live.Hub) *Service {
	return &Service{store: store, storage: storage, hub: hub}
}

func (s *Service) Start() error {
	unsubscribe, err := s.store.Subscribe(Collection, s.onSnapshot)
	if err != nil {
		return err
	}
	s.unsubscribe = unsubscribe
	return nil
}

func (s *Service) Stop() {
	if s.unsubscribe != nil {
		s.unsubscribe()
		s.unsubscribe = nil
	}
}

func (s *Service) onSnapshot(snap docstore.Snapshot) {
	items := FromSnapshot(snap)

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()

	logrus.Printf("menu snapshot: %d items", len(items))

	if s.hub != nil {
		s.hub.Broadcast("menu", s.Query(view.DefaultState(SortNameAsc), TabAll))
	}
}

// Items returns the current flattened snapshot.
func (s *Service) Items() []MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]MenuItem, len(s.items))
	copy(out, s.items)
	return out
}

// Query derives the editor view: dietary tab, then search/filter/sort.
func (s *Service) Query(st view.State, tab string) DerivedView {
	items := s.Items()

	scoped := make([]MenuItem, 0, len(items))
	for _, item := range items {
		if MatchesTab(item, tab) {
			scoped = append(scoped, item)
		}
	}

	return DerivedView{
		Records:    view.Derive(scoped, st, ViewConfig()),
		Summary:    Summarize(items),
		Categories: Categories(items),
	}
}

// --------------------------------------------------
// Item mutations (whole-array rewrite per category)
// --------------------------------------------------

// Add appends an item to its category, creating the category document on
// first use.
func (s *Service) Add(ctx context.Context, category string, input ItemInput) error {
	if category == "" {
		return ErrNoCategory
	}
	if input.Name == "" {
		return ErrMissingName
	}

	items := s.categoryItems(category)
	items = append(items, input.toItem(category, len(items)))

	return s.store.Set(ctx, Collection, category, map[string]any{
		"name":  titleCase(category),
		"items": itemsArray(items),
	}, true)
}

// Edit replaces the item at (category, index).
func (s *Service) Edit(ctx context.Context, category string, index int, input ItemInput) error {
	if input.Name == "" {
		return ErrMissingName
	}

	items := s.categoryItems(category)
	if index < 0 || index >= len(items) {
		return ErrItemNotFound
	}
	items[index] = input.toItem(category, index)

	return s.store.Update(ctx, Collection, category, map[string]any{
		"items": itemsArray(items),
	})
}

// Delete removes exactly the item at (category, index); the remaining items
// re-index by position. Other categories are untouched.
func (s *Service) Delete(ctx context.Context, category string, index int) error {
	items := s.categoryItems(category)
	if index < 0 || index >= len(items) {
		return ErrItemNotFound
	}
	items = append(items[:index], items[index+1:]...)

	return s.store.Update(ctx, Collection, category, map[string]any{
		"items": itemsArray(items),
	})
}

// UploadImage stores an item image and returns its public URL.
func (s *Service) UploadImage(ctx context.Context, file multipart.File, header *multipart.FileHeader) (string, error) {
	if s.storage == nil {
		return "", ErrNoImageClient
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	if ext == "" {
		return "", errors.New("invalid file")
	}

	key := fmt.Sprintf("menu/%s%s", uuid.New().String(), ext)
	return s.storage.Upload(ctx, key, file, header.Header.Get("Content-Type"))
}

func (s *Service) categoryItems(category string) []MenuItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []MenuItem
	for _, item := range s.items {
		if item.Category == category {
			out = append(out, item)
		}
	}
	return out
}

func (in ItemInput) toItem(category string, index int) MenuItem {
	return MenuItem{
		Category:       category,
		ItemIndex:      index,
		Name:           in.Name,
		Description:    in.Description,
		Price:          in.Price,
		Img:            in.Img,
		ContainsGluten: in.ContainsGluten,
		ContainsNuts:   in.ContainsNuts,
		Veg:            in.Veg,
		Vegan:          in.Vegan,
		Recommended:    in.Recommended,
	}
}

func itemsArray(items []MenuItem) []any {
	out := make([]any, 0, len(items))
	for _, item := range items {
		out = append(out, item.fields())
	}
	return out
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
