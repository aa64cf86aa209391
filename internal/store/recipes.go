package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"salimas-planner/internal/model"
)

// RecipesByIDs fetches recipe details for the selected-meals endpoint.
// Unknown ids are skipped; the result keeps the database's id order.
func RecipesByIDs(ctx context.Context, database *sql.DB, ids []int64) ([]model.Meal, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = "?"
		args[i] = id
	}

	rows, err := database.QueryContext(ctx, fmt.Sprintf(`
		SELECT id, name, COALESCE(ingredients, ''), COALESCE(linked_recipe, '')
		FROM recipes
		WHERE id IN (%s)
		ORDER BY id`, strings.Join(placeholders, ",")), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipes: %w", err)
	}
	defer rows.Close()

	var meals []model.Meal
	for rows.Next() {
		var meal model.Meal
		var ingredients, linked string
		if err := rows.Scan(&meal.ID, &meal.Name, &ingredients, &linked); err != nil {
			return nil, err
		}
		meal.Ingredients = splitIngredients(ingredients)
		meal.URL = recipeURL(meal.ID, linked)
		meals = append(meals, meal)
	}
	return meals, rows.Err()
}

// InsertRecipe stores a recipe. Ingredients are stored one per line.
func InsertRecipe(ctx context.Context, database *sql.DB, name string, ingredients []string) (int64, error) {
	result, err := database.ExecContext(ctx, `
		INSERT INTO recipes (name, ingredients, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)`, name, strings.Join(ingredients, "\n"))
	if err != nil {
		return 0, fmt.Errorf("failed to insert recipe %q: %w", name, err)
	}
	return result.LastInsertId()
}

// splitIngredients reads an ingredients column, which holds either a JSON
// array or plain text with one ingredient per line (or comma separated on
// a single line).
func splitIngredients(text string) []string {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	if strings.HasPrefix(text, "[") {
		var list []string
		if err := json.Unmarshal([]byte(text), &list); err == nil {
			return list
		}
	}

	sep := "\n"
	if !strings.Contains(text, "\n") {
		sep = ","
	}

	var out []string
	for _, part := range strings.Split(text, sep) {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// recipeURL points at an external linked recipe when one is set, falling
// back to the local recipe page.
func recipeURL(id int64, linked string) string {
	if strings.HasPrefix(linked, "http") {
		return linked
	}
	return fmt.Sprintf("/recipe/%d", id)
}
