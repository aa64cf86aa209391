// Package mealplan manages the four-day meal grid and its HTML form used in
// planner snapshots.
package mealplan

import (
	"fmt"

	"salimas-planner/internal/storage"
)

// Slots of a planning day.
const (
	SlotLunch  = "lunch"
	SlotDinner = "dinner"
)

// planKey is the document key the grid is persisted under.
const planKey = "salimaMealPlan"

// DayPlan holds the two meals of one day.
type DayPlan struct {
	Lunch  string `json:"lunch"`
	Dinner string `json:"dinner"`
}

// Grid maps day names to their planned meals. Days without entries are
// simply absent.
type Grid map[string]DayPlan

// Days returns the four planning days for a cycle start day. A Sunday start
// covers the first half of the week, a Wednesday start the second.
func Days(start string) []string {
	if start == "sun" {
		return []string{"Sunday", "Monday", "Tuesday", "Wednesday"}
	}
	return []string{"Wednesday", "Thursday", "Friday", "Sunday"}
}

// Store persists the meal grid as a local document.
type Store struct {
	docs *storage.Documents
}

// NewStore creates a grid store over the given document store.
func NewStore(docs *storage.Documents) *Store {
	return &Store{docs: docs}
}

// Grid loads the current grid. A missing document is an empty grid.
func (s *Store) Grid() (Grid, error) {
	g := Grid{}
	if _, err := s.docs.Load(planKey, &g); err != nil {
		return nil, err
	}
	return g, nil
}

// Get returns the meal in the given day and slot, or "" when unset.
func (s *Store) Get(day, slot string) (string, error) {
	g, err := s.Grid()
	if err != nil {
		return "", err
	}

	plan := g[day]
	switch slot {
	case SlotLunch:
		return plan.Lunch, nil
	case SlotDinner:
		return plan.Dinner, nil
	default:
		return "", fmt.Errorf("unknown slot %q", slot)
	}
}

// Set stores a meal in the given day and slot. An empty meal clears the
// slot.
func (s *Store) Set(day, slot, meal string) error {
	g, err := s.Grid()
	if err != nil {
		return err
	}

	plan := g[day]
	switch slot {
	case SlotLunch:
		plan.Lunch = meal
	case SlotDinner:
		plan.Dinner = meal
	default:
		return fmt.Errorf("unknown slot %q", slot)
	}

	if plan == (DayPlan{}) {
		delete(g, day)
	} else {
		g[day] = plan
	}
	return s.docs.Save(planKey, g)
}

// ReplaceGrid swaps the whole grid, used when restoring a snapshot.
func (s *Store) ReplaceGrid(g Grid) error {
	return s.docs.Save(planKey, g)
}

// Clear removes the stored grid entirely.
func (s *Store) Clear() error {
	return s.docs.Delete(planKey)
}
