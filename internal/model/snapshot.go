package model

// Snapshot is a named planner snapshot: the full shopping list, the selected
// recipe references, and the meal grid serialized as HTML. Snapshots are
// immutable once saved.
type Snapshot struct {
	Timestamp    string   `json:"timestamp"`
	Name         string   `json:"name,omitempty"`
	ShoppingList []Item   `json:"shopping_list"`
	Recipes      []string `json:"recipes"`
	MealPlan     string   `json:"meal_plan"`
}

// SnapshotSummary is a saved snapshot as returned by the list endpoint.
type SnapshotSummary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Created string `json:"created"`
}

// SaveResult is the server's response to a snapshot save.
type SaveResult struct {
	Status string `json:"status"`
	Name   string `json:"name"`
}

// Meal is a recipe detail record as returned by the selected-meals endpoint.
type Meal struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	URL         string   `json:"url"`
	Ingredients []string `json:"ingredients"`
}
