package store

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"salimas-planner/internal/db"
	"salimas-planner/internal/model"
)

func TestCreateItemInsertsAndRevives(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	cat := "Dairy & Eggs"
	created, err := CreateItem(ctx, database, "Milk", &cat)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if created.Category != "Dairy & Eggs" || !created.Active {
		t.Errorf("Unexpected created item: %+v", created)
	}

	// Cross it, then re-add under other casing and a different category.
	crossed := true
	if err := UpdateItemFields(ctx, database, created.ID, model.ItemPatch{Crossed: &crossed}); err != nil {
		t.Fatalf("UpdateItemFields: %v", err)
	}

	other := "Other"
	revived, err := CreateItem(ctx, database, "MILK", &other)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if revived.ID != created.ID {
		t.Errorf("Expected the stored row to be revived, got a new id %d", revived.ID)
	}
	if revived.Name != "Milk" {
		t.Errorf("Expected the stored casing, got %q", revived.Name)
	}
	if revived.Category != "Dairy & Eggs" {
		t.Errorf("Expected the stored category to win, got %q", revived.Category)
	}
	if revived.Crossed {
		t.Error("Expected reviving to uncross the item")
	}
}

func TestCreateItemNilCategory(t *testing.T) {
	database := db.NewTestDB(t)

	item, err := CreateItem(context.Background(), database, "Mystery thing", nil)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if item.Category != "Other" {
		t.Errorf("Expected Other for a nil category, got %q", item.Category)
	}
}

func TestListActiveItemsOrderAndFilter(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	dairy := "Dairy & Eggs"
	pantry := "Pantry"
	CreateItem(ctx, database, "Rice", &pantry)
	CreateItem(ctx, database, "Milk", &dairy)
	cleared, _ := CreateItem(ctx, database, "Bread", &pantry)

	inactive := false
	if err := UpdateItemFields(ctx, database, cleared.ID, model.ItemPatch{Active: &inactive}); err != nil {
		t.Fatalf("UpdateItemFields: %v", err)
	}

	items, err := ListActiveItems(ctx, database)
	if err != nil {
		t.Fatalf("ListActiveItems: %v", err)
	}

	var names []string
	for _, item := range items {
		names = append(names, item.Name)
	}
	if !reflect.DeepEqual(names, []string{"Milk", "Rice"}) {
		t.Errorf("Expected [Milk Rice] ordered by category, got %v", names)
	}
}

func TestUpdateAndDeleteMissingItem(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	crossed := true
	if err := UpdateItemFields(ctx, database, 99, model.ItemPatch{Crossed: &crossed}); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := DeleteItem(ctx, database, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := UpdateItemFields(ctx, database, 99, model.ItemPatch{}); err == nil {
		t.Error("Expected error for an empty patch")
	}
}

func TestClearItemsKeepsRows(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	dairy := "Dairy & Eggs"
	created, _ := CreateItem(ctx, database, "Milk", &dairy)

	if err := ClearItems(ctx, database); err != nil {
		t.Fatalf("ClearItems: %v", err)
	}

	items, _ := ListActiveItems(ctx, database)
	if len(items) != 0 {
		t.Errorf("Expected an empty active list, got %v", items)
	}

	// The row survives and re-adding revives it with its category.
	revived, err := CreateItem(ctx, database, "milk", nil)
	if err != nil {
		t.Fatalf("CreateItem: %v", err)
	}
	if revived.ID != created.ID || revived.Category != "Dairy & Eggs" {
		t.Errorf("Expected the cleared row to be revived, got %+v", revived)
	}
}

func TestSuggestNames(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	CreateItem(ctx, database, "Tomato", nil)
	CreateItem(ctx, database, "Potato", nil)
	InsertRecipe(ctx, database, "Salad", []string{"2 tomatoes on the vine", "tofu"})

	names, err := SuggestNames(ctx, database, "to")
	if err != nil {
		t.Fatalf("SuggestNames: %v", err)
	}

	want := []string{"Potato", "Tomato", "tomatoes on the vine", "tofu"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("Expected %v, got %v", want, names)
	}

	// Case-insensitive dedupe against the list names.
	InsertRecipe(ctx, database, "Soup", []string{"1 potato"})
	names, _ = SuggestNames(ctx, database, "potato")
	if !reflect.DeepEqual(names, []string{"Potato"}) {
		t.Errorf("Expected [Potato], got %v", names)
	}

	if names, _ := SuggestNames(ctx, database, "  "); names != nil {
		t.Errorf("Expected nil for a blank query, got %v", names)
	}
}

func TestRecipesByIDs(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	id, err := InsertRecipe(ctx, database, "Lasagne", []string{"500 g mince", "pasta"})
	if err != nil {
		t.Fatalf("InsertRecipe: %v", err)
	}

	meals, err := RecipesByIDs(ctx, database, []int64{id, 999})
	if err != nil {
		t.Fatalf("RecipesByIDs: %v", err)
	}
	if len(meals) != 1 {
		t.Fatalf("Expected 1 meal, got %d", len(meals))
	}
	if meals[0].Name != "Lasagne" {
		t.Errorf("Unexpected meal %+v", meals[0])
	}
	if !reflect.DeepEqual(meals[0].Ingredients, []string{"500 g mince", "pasta"}) {
		t.Errorf("Unexpected ingredients %v", meals[0].Ingredients)
	}
	if meals[0].URL != fmt.Sprintf("/recipe/%d", id) {
		t.Errorf("Expected the local recipe page, got %q", meals[0].URL)
	}

	if meals, _ := RecipesByIDs(ctx, database, nil); meals != nil {
		t.Errorf("Expected nil for no ids, got %v", meals)
	}
}

func TestSplitIngredients(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"json array", `["mince", "pasta"]`, []string{"mince", "pasta"}},
		{"lines", "mince\npasta\n", []string{"mince", "pasta"}},
		{"commas", "mince, pasta", []string{"mince", "pasta"}},
		{"empty", "  ", nil},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := splitIngredients(tc.text); !reflect.DeepEqual(got, tc.want) {
				t.Errorf("splitIngredients(%q) = %v, want %v", tc.text, got, tc.want)
			}
		})
	}
}

func TestSnapshots(t *testing.T) {
	database := db.NewTestDB(t)
	ctx := context.Background()

	first, err := InsertSnapshot(ctx, database, "Plan w/c 2026-08-16", []byte(`{"recipes":[]}`))
	if err != nil {
		t.Fatalf("InsertSnapshot: %v", err)
	}
	second, err := InsertSnapshot(ctx, database, "Plan w/c 2026-08-23", []byte(`{"recipes":["3"]}`))
	if err != nil {
		t.Fatalf("InsertSnapshot: %v", err)
	}

	summaries, err := ListSnapshots(ctx, database)
	if err != nil {
		t.Fatalf("ListSnapshots: %v", err)
	}
	if len(summaries) != 2 || summaries[0].ID != second {
		t.Errorf("Expected the newest snapshot first, got %v", summaries)
	}
	if summaries[0].Created == "" {
		t.Error("Expected a created timestamp")
	}

	data, err := GetSnapshot(ctx, database, first)
	if err != nil {
		t.Fatalf("GetSnapshot: %v", err)
	}
	if string(data) != `{"recipes":[]}` {
		t.Errorf("Unexpected snapshot data %s", data)
	}

	if _, err := GetSnapshot(ctx, database, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
