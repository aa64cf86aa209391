package remote

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"salimas-planner/internal/auth"
	"salimas-planner/internal/config"
	"salimas-planner/internal/model"
)

const testAPIKey = "planner:00112233445566778899aabbccddeeff"

func newTestClient(t *testing.T, handler http.HandlerFunc) (Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := NewClient(&config.Config{APIURL: server.URL, APIKey: testAPIKey})
	return client, server
}

func TestShoppingList(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/shopping_list" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}

		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok {
			t.Errorf("Expected bearer token, got %q", header)
		}
		if err := auth.VerifyToken(testAPIKey, token); err != nil {
			t.Errorf("Token did not verify: %v", err)
		}

		json.NewEncoder(w).Encode([]model.Item{
			{ID: 1, Name: "Milk", Category: "Dairy & Eggs", Active: true},
			{ID: 2, Name: "Bread", Category: "Pantry", Active: true},
		})
	})

	items, err := client.ShoppingList(context.Background())
	if err != nil {
		t.Fatalf("ShoppingList: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].Name != "Milk" {
		t.Errorf("Expected Milk first, got %q", items[0].Name)
	}
}

func TestAddItem(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/shopping_list" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var payload struct {
			Name     string  `json:"name"`
			Category *string `json:"category"`
		}
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("Decode payload: %v", err)
		}
		if payload.Name != "Cheddar" {
			t.Errorf("Expected name Cheddar, got %q", payload.Name)
		}
		if payload.Category == nil || *payload.Category != "Dairy & Eggs" {
			t.Errorf("Expected category Dairy & Eggs, got %v", payload.Category)
		}

		json.NewEncoder(w).Encode(model.Item{ID: 7, Name: payload.Name, Category: *payload.Category, Active: true})
	})

	cat := "Dairy & Eggs"
	item, err := client.AddItem(context.Background(), "Cheddar", &cat)
	if err != nil {
		t.Fatalf("AddItem: %v", err)
	}
	if item.ID != 7 {
		t.Errorf("Expected id 7, got %d", item.ID)
	}
}

func TestAddItemRejectsMissingID(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"name": "Cheddar"})
	})

	if _, err := client.AddItem(context.Background(), "Cheddar", nil); err == nil {
		t.Error("Expected error for a response without an id")
	}
}

func TestUpdateItem(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPatch || r.URL.Path != "/api/shopping_list/4" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}

		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Fatalf("Decode payload: %v", err)
		}
		if len(payload) != 1 {
			t.Errorf("Expected only the set field in the payload, got %v", payload)
		}
		if crossed, ok := payload["crossed"].(bool); !ok || !crossed {
			t.Errorf("Expected crossed=true, got %v", payload)
		}

		w.WriteHeader(http.StatusNoContent)
	})

	crossed := true
	if err := client.UpdateItem(context.Background(), 4, model.ItemPatch{Crossed: &crossed}); err != nil {
		t.Fatalf("UpdateItem: %v", err)
	}
}

func TestUpdateItemRejectsEmptyPatch(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("No request expected for an empty patch")
	})

	if err := client.UpdateItem(context.Background(), 4, model.ItemPatch{}); err == nil {
		t.Error("Expected error for an empty patch")
	}
}

func TestErrorStatus(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	})

	if _, err := client.ShoppingList(context.Background()); err == nil {
		t.Error("Expected error for a 500 response")
	}
	if err := client.ClearList(context.Background()); err == nil {
		t.Error("Expected error for a 500 response")
	}
}

func TestSuggestionsQuery(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/shopping_list/suggestions" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if q := r.URL.Query().Get("q"); q != "to" {
			t.Errorf("Expected q=to, got %q", q)
		}
		json.NewEncoder(w).Encode([]string{"Tomato", "Tofu"})
	})

	names, err := client.Suggestions(context.Background(), "to")
	if err != nil {
		t.Fatalf("Suggestions: %v", err)
	}
	if len(names) != 2 || names[0] != "Tomato" {
		t.Errorf("Unexpected suggestions: %v", names)
	}
}

func TestSelectedMeals(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/selected" {
			t.Errorf("Unexpected path: %s", r.URL.Path)
		}
		if ids := r.URL.Query().Get("ids"); ids != "3,12" {
			t.Errorf("Expected ids=3,12, got %q", ids)
		}
		json.NewEncoder(w).Encode(map[string]any{"meals": []model.Meal{
			{ID: 3, Name: "Lasagne", Ingredients: []string{"mince", "pasta"}},
		}})
	})

	meals, err := client.SelectedMeals(context.Background(), []string{"3", "12"})
	if err != nil {
		t.Fatalf("SelectedMeals: %v", err)
	}
	if len(meals) != 1 || meals[0].Name != "Lasagne" {
		t.Errorf("Unexpected meals: %v", meals)
	}
}

func TestSelectedMealsEmptyIDs(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("No request expected for empty ids")
	})

	meals, err := client.SelectedMeals(context.Background(), nil)
	if err != nil {
		t.Fatalf("SelectedMeals: %v", err)
	}
	if meals != nil {
		t.Errorf("Expected no meals, got %v", meals)
	}
}

func TestPlannerEndpoints(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/planner/save":
			var snap model.Snapshot
			if err := json.NewDecoder(r.Body).Decode(&snap); err != nil {
				t.Fatalf("Decode snapshot: %v", err)
			}
			json.NewEncoder(w).Encode(model.SaveResult{Status: "saved", Name: snap.Name})
		case r.Method == http.MethodGet && r.URL.Path == "/api/planner/list":
			json.NewEncoder(w).Encode([]model.SnapshotSummary{{ID: 1, Name: "Plan w/c 2026-08-23"}})
		case r.Method == http.MethodGet && r.URL.Path == "/api/planner/load/1":
			json.NewEncoder(w).Encode(model.Snapshot{Name: "Plan w/c 2026-08-23", Recipes: []string{"3"}})
		default:
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})

	ctx := context.Background()

	result, err := client.SavePlanner(ctx, model.Snapshot{Name: "Plan w/c 2026-08-23"})
	if err != nil {
		t.Fatalf("SavePlanner: %v", err)
	}
	if result.Status != "saved" {
		t.Errorf("Expected status saved, got %q", result.Status)
	}

	summaries, err := client.ListPlanners(ctx)
	if err != nil {
		t.Fatalf("ListPlanners: %v", err)
	}
	if len(summaries) != 1 || summaries[0].ID != 1 {
		t.Errorf("Unexpected summaries: %v", summaries)
	}

	snap, err := client.LoadPlanner(ctx, 1)
	if err != nil {
		t.Fatalf("LoadPlanner: %v", err)
	}
	if snap.Name != "Plan w/c 2026-08-23" {
		t.Errorf("Unexpected snapshot: %+v", snap)
	}
}
