package menu

import (
	"context"
	"errors"
	"testing"

	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/docstore"
	"github.com/bjrfx/masakali-restrobar-admin-mobile/internal/view"
)

func seedMenu(t *testing.T) (*docstore.Memory, *Service) {
	t.Helper()

	store := docstore.NewMemory()
	t.Cleanup(store.Close)

	store.Seed(Collection, map[string]map[string]any{
		"starters": {
			"name": "Starters",
			"items": []any{
				map[string]any{"name": "Samosa", "price": "6.50", "veg": true},
				map[string]any{"name": "Chicken 65", "price": "9.00", "containsNuts": true},
				map[string]any{"name": "Paneer Tikka", "price": "8.00", "veg": true, "recommended": true},
			},
		},
		"mains": {
			"name": "Mains",
			"items": []any{
				map[string]any{"name": "Dal Makhani", "price": "12.00", "veg": true, "vegan": true},
				map[string]any{"name": "Butter Chicken", "price": "15.50", "recommended": true},
			},
		},
	})

	svc := NewService(store, nil, nil)
	if err := svc.Start(); err != nil {
		t.Fatalf("start: %v", err)
	}
	t.Cleanup(svc.Stop)
	return store, svc
}

func TestFlattenPreservesArrayOrder(t *testing.T) {
	_, svc := seedMenu(t)

	var starters []MenuItem
	for _, item := range svc.Items() {
		if item.Category == "starters" {
			starters = append(starters, item)
		}
	}

	if len(starters) != 3 {
		t.Fatalf("expected 3 starters, got %d", len(starters))
	}
	want := []string{"Samosa", "Chicken 65", "Paneer Tikka"}
	for i, name := range want {
		if starters[i].Name != name || starters[i].ItemIndex != i {
			t.Errorf("starters[%d] = %s (index %d), expected %s (index %d)",
				i, starters[i].Name, starters[i].ItemIndex, name, i)
		}
	}
}

func TestDeleteRemovesExactlyOneAndReindexes(t *testing.T) {
	_, svc := seedMenu(t)

	if err := svc.Delete(context.Background(), "starters", 1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	var starters, mains []MenuItem
	for _, item := range svc.Items() {
		switch item.Category {
		case "starters":
			starters = append(starters, item)
		case "mains":
			mains = append(mains, item)
		}
	}

	if len(starters) != 2 {
		t.Fatalf("expected 2 starters after delete, got %d", len(starters))
	}
	if starters[0].Name != "Samosa" || starters[0].ItemIndex != 0 {
		t.Errorf("starters[0] = %s (index %d)", starters[0].Name, starters[0].ItemIndex)
	}
	if starters[1].Name != "Paneer Tikka" || starters[1].ItemIndex != 1 {
		t.Errorf("deleted item's successor should re-index to 1, got %s (index %d)",
			starters[1].Name, starters[1].ItemIndex)
	}
	if len(mains) != 2 {
		t.Errorf("other categories must be untouched, mains = %d", len(mains))
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	_, svc := seedMenu(t)

	if err := svc.Delete(context.Background(), "starters", 7); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), "starters", -1); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound for negative index, got %v", err)
	}
}

func TestAddAppendsToCategory(t *testing.T) {
	_, svc := seedMenu(t)

	err := svc.Add(context.Background(), "mains", ItemInput{Name: "Biryani", Price: "14.00"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	var mains []MenuItem
	for _, item := range svc.Items() {
		if item.Category == "mains" {
			mains = append(mains, item)
		}
	}
	if len(mains) != 3 {
		t.Fatalf("expected 3 mains, got %d", len(mains))
	}
	if mains[2].Name != "Biryani" || mains[2].ItemIndex != 2 {
		t.Fatalf("appended item = %s (index %d)", mains[2].Name, mains[2].ItemIndex)
	}
}

func TestAddCreatesCategoryDocument(t *testing.T) {
	store, svc := seedMenu(t)

	err := svc.Add(context.Background(), "desserts", ItemInput{Name: "Gulab Jamun", Price: "5.00"})
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	doc, err := store.Get(context.Background(), Collection, "desserts")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if doc.Fields["name"] != "Desserts" {
		t.Errorf("category title = %v, expected Desserts", doc.Fields["name"])
	}
}

func TestAddValidation(t *testing.T) {
	_, svc := seedMenu(t)

	if err := svc.Add(context.Background(), "", ItemInput{Name: "X"}); !errors.Is(err, ErrNoCategory) {
		t.Fatalf("expected ErrNoCategory, got %v", err)
	}
	if err := svc.Add(context.Background(), "mains", ItemInput{}); !errors.Is(err, ErrMissingName) {
		t.Fatalf("expected ErrMissingName, got %v", err)
	}
}

func TestEditReplacesItemInPlace(t *testing.T) {
	_, svc := seedMenu(t)

	err := svc.Edit(context.Background(), "starters", 0, ItemInput{Name: "Punjabi Samosa", Price: "7.00", Veg: true})
	if err != nil {
		t.Fatalf("edit: %v", err)
	}

	var starters []MenuItem
	for _, item := range svc.Items() {
		if item.Category == "starters" {
			starters = append(starters, item)
		}
	}
	if starters[0].Name != "Punjabi Samosa" || starters[0].Price != "7.00" {
		t.Fatalf("edit not applied: %+v", starters[0])
	}
	if len(starters) != 3 {
		t.Fatalf("edit must not change the item count, got %d", len(starters))
	}
}

func TestEditOutOfRange(t *testing.T) {
	_, svc := seedMenu(t)

	err := svc.Edit(context.Background(), "starters", 9, ItemInput{Name: "X"})
	if !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("expected ErrItemNotFound, got %v", err)
	}
}

func TestQueryComposesTabCategoryAndSearch(t *testing.T) {
	_, svc := seedMenu(t)

	veg := svc.Query(view.DefaultState(SortNameAsc), TabVeg)
	if len(veg.Records) != 3 {
		t.Fatalf("veg tab: expected 3 items, got %d", len(veg.Records))
	}

	vegStarters := svc.Query(view.State{Filter: "starters", Sort: SortNameAsc}, TabVeg)
	if len(vegStarters.Records) != 2 {
		t.Fatalf("veg+starters: expected 2 items, got %d", len(vegStarters.Records))
	}

	search := svc.Query(view.State{Search: "paneer", Filter: view.FilterAll, Sort: SortNameAsc}, TabAll)
	if len(search.Records) != 1 || search.Records[0].Name != "Paneer Tikka" {
		t.Fatalf("search: %+v", search.Records)
	}

	// Summary and categories describe the whole menu, not the filtered list.
	if vegStarters.Summary.Total != 5 {
		t.Errorf("summary total = %d, expected 5", vegStarters.Summary.Total)
	}
	if len(vegStarters.Categories) != 2 {
		t.Errorf("categories = %v", vegStarters.Categories)
	}
}

func TestUploadImageWithoutStorage(t *testing.T) {
	_, svc := seedMenu(t)

	if _, err := svc.UploadImage(context.Background(), nil, nil); !errors.Is(err, ErrNoImageClient) {
		t.Fatalf("expected ErrNoImageClient, got %v", err)
	}
}
