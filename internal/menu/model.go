package menu

import (
	"sort"
	"strconv"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/docstore"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

// Collection stores one document per category; each document carries the
// category title and its items array. Items have no IDs of their own:
// (category, itemIndex) addresses a single item.
const Collection = "menu"

type MenuItem struct {
	Category       string `json:"category"`
	ItemIndex      int    `json:"itemIndex"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Price          string `json:"price"` // kept as entered; parsed for sorting
	Img            string `json:"img"`
	ContainsGluten bool   `json:"containsGluten"`
	ContainsNuts   bool   `json:"containsNuts"`
	Veg            bool   `json:"veg"`
	Vegan          bool   `json:"vegan"`
	Recommended    bool   `json:"recommended"`
}

// PriceValue parses the stored price; missing or unparseable is 0.
func (m MenuItem) PriceValue() float64 {
	return view.Float(m.Price)
}

func itemFromFields(category string, index int, fields map[string]any) MenuItem {
	return MenuItem{
		Category:       category,
		ItemIndex:      index,
		Name:           view.String(fields["name"], ""),
		Description:    view.String(fields["description"], ""),
		Price:          priceString(fields["price"]),
		Img:            view.String(fields["img"], ""),
		ContainsGluten: view.Bool(fields["containsGluten"]),
		ContainsNuts:   view.Bool(fields["containsNuts"]),
		Veg:            view.Bool(fields["veg"]),
		Vegan:          view.Bool(fields["vegan"]),
		Recommended:    view.Bool(fields["recommended"]),
	}
}

// FromSnapshot flattens the per-category documents into addressable items,
// preserving each category's array order.
func FromSnapshot(snap docstore.Snapshot) []MenuItem {
	var out []MenuItem
	for _, doc := range snap {
		items, ok := doc.Fields["items"].([]any)
		if !ok {
			continue
		}
		for i, raw := range items {
			fields, ok := raw.(map[string]any)
			if !ok {
				continue
			}
			out = append(out, itemFromFields(doc.ID, i, fields))
		}
	}
	return out
}

// Categories returns the distinct category names, sorted.
func Categories(items []MenuItem) []string {
	seen := make(map[string]bool)
	var out []string
	for _, item := range items {
		if !seen[item.Category] {
			seen[item.Category] = true
			out = append(out, item.Category)
		}
	}
	sort.Strings(out)
	return out
}

// priceString keeps a price the way it was stored, string or number.
func priceString(v any) string {
	switch n := v.(type) {
	case string:
		return n
	case float64:
		return strconv.FormatFloat(n, 'f', -1, 64)
	case int:
		return strconv.Itoa(n)
	}
	return ""
}

func (m MenuItem) fields() map[string]any {
	return map[string]any{
		"name":           m.Name,
		"description":    m.Description,
		"price":          m.Price,
		"img":            m.Img,
		"containsGluten": m.ContainsGluten,
		"containsNuts":   m.ContainsNuts,
		"veg":            m.Veg,
		"vegan":          m.Vegan,
		"recommended":    m.Recommended,
	}
}
