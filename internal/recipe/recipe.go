// Package recipe tracks which recipes are selected for the current plan,
// which of their ingredients are excluded, and the import of the remaining
// ingredients into the shopping list.
package recipe

import (
	"context"
	"log"
	"strconv"

	"salimas-planner/internal/category"
	"salimas-planner/internal/model"
	"salimas-planner/internal/shopping"
	"salimas-planner/internal/storage"
)

// Document keys for the selection state.
const (
	selectedKey = "selectedRecipes"
	excludeKey  = "salimaPlannerV3_excluded"
)

// Selection persists the selected recipe ids and the per-recipe ingredient
// exclusions.
type Selection struct {
	docs *storage.Documents
}

// NewSelection creates a selection store over the given document store.
func NewSelection(docs *storage.Documents) *Selection {
	return &Selection{docs: docs}
}

// IDs returns the selected recipe ids in selection order.
func (s *Selection) IDs() ([]string, error) {
	var ids []string
	if _, err := s.docs.Load(selectedKey, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// Add selects a recipe. Adding an already selected id is a no-op.
func (s *Selection) Add(id string) error {
	ids, err := s.IDs()
	if err != nil {
		return err
	}
	for _, existing := range ids {
		if existing == id {
			return nil
		}
	}
	return s.docs.Save(selectedKey, append(ids, id))
}

// Remove deselects a recipe. Removing an unknown id is a no-op.
func (s *Selection) Remove(id string) error {
	ids, err := s.IDs()
	if err != nil {
		return err
	}
	kept := ids[:0]
	for _, existing := range ids {
		if existing != id {
			kept = append(kept, existing)
		}
	}
	return s.docs.Save(selectedKey, kept)
}

// SetIDs replaces the whole selection, used when restoring a snapshot.
func (s *Selection) SetIDs(ids []string) error {
	if ids == nil {
		ids = []string{}
	}
	return s.docs.Save(selectedKey, ids)
}

// exclusion key for one ingredient of one recipe.
func exclusionKey(recipeID, ingredient string) string {
	return recipeID + ":" + ingredient
}

// Excluded returns the set of excluded recipe-ingredient keys.
func (s *Selection) Excluded() (map[string]bool, error) {
	var keys []string
	if _, err := s.docs.Load(excludeKey, &keys); err != nil {
		return nil, err
	}
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set, nil
}

// Exclude marks or unmarks one ingredient of one recipe as excluded from
// import. Exclusions survive deselecting the recipe.
func (s *Selection) Exclude(recipeID, ingredient string, excluded bool) error {
	set, err := s.Excluded()
	if err != nil {
		return err
	}

	key := exclusionKey(recipeID, ingredient)
	if set[key] == excluded {
		return nil
	}
	if excluded {
		set[key] = true
	} else {
		delete(set, key)
	}

	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	return s.docs.Save(excludeKey, keys)
}

// IsExcluded reports whether the ingredient is excluded for the recipe.
func (s *Selection) IsExcluded(recipeID, ingredient string) (bool, error) {
	set, err := s.Excluded()
	if err != nil {
		return false, err
	}
	return set[exclusionKey(recipeID, ingredient)], nil
}

// ImportChecked adds the non-excluded ingredients of the given meals to the
// shopping list and returns how many were added. Individual failures are
// logged and skipped so one bad ingredient does not abort the import.
func ImportChecked(ctx context.Context, meals []model.Meal, sel *Selection, list *shopping.Store) (int, error) {
	excluded, err := sel.Excluded()
	if err != nil {
		return 0, err
	}

	added := 0
	for _, meal := range meals {
		recipeID := formatMealID(meal.ID)
		for _, ingredient := range meal.Ingredients {
			if excluded[exclusionKey(recipeID, ingredient)] {
				continue
			}
			if _, err := list.Add(ctx, ingredient, category.Detect(ingredient)); err != nil {
				log.Printf("Failed to import ingredient %q from %q: %v", ingredient, meal.Name, err)
				continue
			}
			added++
		}
	}
	return added, nil
}

func formatMealID(id int64) string {
	return strconv.FormatInt(id, 10)
}
