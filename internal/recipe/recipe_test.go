package recipe

import (
	"context"
	"reflect"
	"testing"

	"salimas-planner/internal/model"
	"salimas-planner/internal/remote"
	"salimas-planner/internal/shopping"
	"salimas-planner/internal/storage"
)

func newTestSelection(t *testing.T) *Selection {
	t.Helper()
	docs, err := storage.NewDocuments(t.TempDir())
	if err != nil {
		t.Fatalf("NewDocuments: %v", err)
	}
	return NewSelection(docs)
}

func TestSelectionAddRemove(t *testing.T) {
	sel := newTestSelection(t)

	sel.Add("3")
	sel.Add("12")
	sel.Add("3") // duplicate is a no-op

	ids, err := sel.IDs()
	if err != nil {
		t.Fatalf("IDs: %v", err)
	}
	if !reflect.DeepEqual(ids, []string{"3", "12"}) {
		t.Errorf("Expected [3 12], got %v", ids)
	}

	sel.Remove("3")
	sel.Remove("99") // unknown id is a no-op

	ids, _ = sel.IDs()
	if !reflect.DeepEqual(ids, []string{"12"}) {
		t.Errorf("Expected [12], got %v", ids)
	}
}

func TestSelectionSetIDs(t *testing.T) {
	sel := newTestSelection(t)

	sel.Add("1")
	if err := sel.SetIDs([]string{"7", "8"}); err != nil {
		t.Fatalf("SetIDs: %v", err)
	}

	ids, _ := sel.IDs()
	if !reflect.DeepEqual(ids, []string{"7", "8"}) {
		t.Errorf("Expected [7 8], got %v", ids)
	}
}

func TestExclusions(t *testing.T) {
	sel := newTestSelection(t)

	if err := sel.Exclude("3", "salt", true); err != nil {
		t.Fatalf("Exclude: %v", err)
	}

	excluded, err := sel.IsExcluded("3", "salt")
	if err != nil {
		t.Fatalf("IsExcluded: %v", err)
	}
	if !excluded {
		t.Error("Expected salt to be excluded for recipe 3")
	}

	// Same ingredient of another recipe is unaffected.
	if excluded, _ := sel.IsExcluded("4", "salt"); excluded {
		t.Error("Expected salt to stay included for recipe 4")
	}

	// Exclusions survive deselecting the recipe.
	sel.Add("3")
	sel.Remove("3")
	if excluded, _ := sel.IsExcluded("3", "salt"); !excluded {
		t.Error("Expected the exclusion to survive deselection")
	}

	sel.Exclude("3", "salt", false)
	if excluded, _ := sel.IsExcluded("3", "salt"); excluded {
		t.Error("Expected the exclusion to be lifted")
	}
}

// importClient only implements what ImportChecked exercises.
type importClient struct {
	remote.Client
	items  []model.Item
	nextID int64
}

func (c *importClient) AddItem(ctx context.Context, name string, cat *string) (*model.Item, error) {
	c.nextID++
	item := model.Item{ID: c.nextID, Name: name, Category: "Other", Checked: true, Active: true}
	if cat != nil {
		item.Category = *cat
	}
	c.items = append(c.items, item)
	return &item, nil
}

func TestImportChecked(t *testing.T) {
	sel := newTestSelection(t)
	sel.Exclude("3", "salt", true)

	list := shopping.NewStore(&importClient{})
	meals := []model.Meal{
		{ID: 3, Name: "Lasagne", Ingredients: []string{"mince", "pasta", "salt"}},
		{ID: 12, Name: "Curry", Ingredients: []string{"chicken"}},
	}

	added, err := ImportChecked(context.Background(), meals, sel, list)
	if err != nil {
		t.Fatalf("ImportChecked: %v", err)
	}
	if added != 3 {
		t.Errorf("Expected 3 items added, got %d", added)
	}

	items := list.Items()
	if len(items) != 3 {
		t.Fatalf("Expected 3 items on the list, got %d", len(items))
	}
	for _, item := range items {
		if item.Name == "salt" {
			t.Error("Expected the excluded ingredient to be skipped")
		}
	}
	if items[0].Category != "Meat & Fish" {
		t.Errorf("Expected mince to land in Meat & Fish, got %q", items[0].Category)
	}
}
