package menu

import (
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

const (
	SortNameAsc     = "name-asc"
	SortNameDesc    = "name-desc"
	SortPriceAsc    = "price-asc"
	SortPriceDesc   = "price-desc"
	SortCategoryAsc = "category-asc"
)

// Dietary tabs layered on top of the category filter.
const (
	TabAll         = "all"
	TabVeg         = "veg"
	TabVegan       = "vegan"
	TabRecommended = "recommended"
)

// ViewConfig builds the engine configuration for the menu editor list.
// The filter value is a category name.
func ViewConfig() view.Config[MenuItem] {
	byName := func(a, b MenuItem) int { return view.CompareStrings(a.Name, b.Name) }
	byPrice := func(a, b MenuItem) int { return view.CompareFloats(a.PriceValue(), b.PriceValue()) }
	byCategory := func(a, b MenuItem) int { return view.CompareStrings(a.Category, b.Category) }

	return view.Config[MenuItem]{
		SearchFields: func(m MenuItem) []string {
			return []string{m.Name, m.Description, m.Category}
		},
		Match: func(m MenuItem, filter string) bool {
			return m.Category == filter
		},
		Sorts: map[string]view.Comparator[MenuItem]{
			SortNameAsc:     byName,
			SortNameDesc:    view.Reverse(byName),
			SortPriceAsc:    byPrice,
			SortPriceDesc:   view.Reverse(byPrice),
			SortCategoryAsc: byCategory,
		},
		DefaultSort: SortNameAsc,
	}
}

// MatchesTab reports whether an item belongs on the selected dietary tab.
func MatchesTab(m MenuItem, tab string) bool {
	switch tab {
	case TabVeg:
		return m.Veg
	case TabVegan:
		return m.Vegan
	case TabRecommended:
		return m.Recommended
	default:
		return true
	}
}

// Summary counts the menu by category and dietary flag.
type Summary struct {
	Total          int            `json:"total"`
	PerCategory    map[string]int `json:"perCategory"`
	Veg            int            `json:"veg"`
	Vegan          int            `json:"vegan"`
	Recommended    int            `json:"recommended"`
	ContainsGluten int            `json:"containsGluten"`
	ContainsNuts   int            `json:"containsNuts"`
}

// Summarize is a pure aggregate over a record set.
func Summarize(items []MenuItem) Summary {
	s := Summary{PerCategory: make(map[string]int)}
	s.Total = len(items)
	for _, item := range items {
		s.PerCategory[item.Category]++
		if item.Veg {
			s.Veg++
		}
		if item.Vegan {
			s.Vegan++
		}
		if item.Recommended {
			s.Recommended++
		}
		if item.ContainsGluten {
			s.ContainsGluten++
		}
		if item.ContainsNuts {
			s.ContainsNuts++
		}
	}
	return s
}
