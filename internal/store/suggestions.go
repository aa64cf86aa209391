package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"salimas-planner/internal/recipe"
)

// SuggestNames returns candidate item names containing the query: names
// ever put on the shopping list first, then ingredient names from the
// recipe collection. Duplicates are folded case-insensitively, keeping the
// first spelling seen.
func SuggestNames(ctx context.Context, database *sql.DB, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}
	pattern := "%" + query + "%"

	rows, err := database.QueryContext(ctx, `
		SELECT DISTINCT name FROM shopping_list
		WHERE name LIKE ? COLLATE NOCASE
		ORDER BY name`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to query name suggestions: %w", err)
	}
	defer rows.Close()

	var names []string
	seen := map[string]bool{}
	add := func(name string) {
		folded := strings.ToLower(name)
		if name == "" || seen[folded] {
			return
		}
		seen[folded] = true
		names = append(names, name)
	}

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		add(name)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	ingredientRows, err := database.QueryContext(ctx, `
		SELECT COALESCE(ingredients, '') FROM recipes
		WHERE ingredients LIKE ? COLLATE NOCASE`, pattern)
	if err != nil {
		return nil, fmt.Errorf("failed to query recipe suggestions: %w", err)
	}
	defer ingredientRows.Close()

	folded := strings.ToLower(query)
	for ingredientRows.Next() {
		var text string
		if err := ingredientRows.Scan(&text); err != nil {
			return nil, err
		}
		for _, item := range splitIngredients(text) {
			parsed := recipe.ParseLine(item)
			if strings.Contains(strings.ToLower(parsed.Item), folded) {
				add(parsed.Item)
			}
		}
	}
	return names, ingredientRows.Err()
}
