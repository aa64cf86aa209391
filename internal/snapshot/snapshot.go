// Package snapshot composes, saves and restores planner snapshots: the
// shopping list, the selected recipes and the meal grid as one named unit.
package snapshot

import (
	"context"
	"fmt"
	"time"

	"salimas-planner/internal/mealplan"
	"salimas-planner/internal/model"
	"salimas-planner/internal/recipe"
	"salimas-planner/internal/remote"
	"salimas-planner/internal/shopping"
)

// Service bundles the planner state into snapshots and applies them back.
type Service struct {
	client   remote.Client
	list     *shopping.Store
	grid     *mealplan.Store
	recipes  *recipe.Selection
	startDay string

	now func() time.Time
}

// NewService creates a snapshot service over the current planner state.
func NewService(client remote.Client, list *shopping.Store, grid *mealplan.Store, recipes *recipe.Selection, startDay string) *Service {
	return &Service{
		client:   client,
		list:     list,
		grid:     grid,
		recipes:  recipes,
		startDay: startDay,
		now:      time.Now,
	}
}

// PlanName names the planning cycle a moment falls into: the most recent
// cycle start day on or before it, e.g. "Plan w/c 2026-08-23".
func PlanName(t time.Time, startDay string) string {
	target := time.Sunday
	if startDay == "wed" {
		target = time.Wednesday
	}

	back := (int(t.Weekday()) - int(target) + 7) % 7
	start := t.AddDate(0, 0, -back)
	return "Plan w/c " + start.Format("2006-01-02")
}

// Compose captures the current planner state as a snapshot.
func (s *Service) Compose() (model.Snapshot, error) {
	grid, err := s.grid.Grid()
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to read meal grid: %w", err)
	}
	ids, err := s.recipes.IDs()
	if err != nil {
		return model.Snapshot{}, fmt.Errorf("failed to read recipe selection: %w", err)
	}

	now := s.now().UTC()
	return model.Snapshot{
		Timestamp:    now.Format(time.RFC3339),
		Name:         PlanName(now, s.startDay),
		ShoppingList: s.list.Items(),
		Recipes:      ids,
		MealPlan:     mealplan.RenderHTML(grid, s.startDay),
	}, nil
}

// Save composes the current state and stores it on the server.
func (s *Service) Save(ctx context.Context) (*model.SaveResult, error) {
	snap, err := s.Compose()
	if err != nil {
		return nil, err
	}
	return s.client.SavePlanner(ctx, snap)
}

// List fetches summaries of the stored snapshots.
func (s *Service) List(ctx context.Context) ([]model.SnapshotSummary, error) {
	return s.client.ListPlanners(ctx)
}

// Load fetches a stored snapshot by id.
func (s *Service) Load(ctx context.Context, id int64) (*model.Snapshot, error) {
	return s.client.LoadPlanner(ctx, id)
}

// Apply restores the planner state from a snapshot. Parts the snapshot does
// not carry are left untouched, so an old partial snapshot restores only
// what it has.
func (s *Service) Apply(ctx context.Context, snap model.Snapshot) error {
	if snap.ShoppingList != nil {
		if err := s.list.ReplaceAll(ctx, snap.ShoppingList); err != nil {
			return fmt.Errorf("failed to restore shopping list: %w", err)
		}
	}
	if snap.Recipes != nil {
		if err := s.recipes.SetIDs(snap.Recipes); err != nil {
			return fmt.Errorf("failed to restore recipe selection: %w", err)
		}
	}
	if snap.MealPlan != "" {
		grid, err := mealplan.ParseHTML(snap.MealPlan)
		if err != nil {
			return fmt.Errorf("failed to restore meal grid: %w", err)
		}
		if err := s.grid.ReplaceGrid(grid); err != nil {
			return fmt.Errorf("failed to restore meal grid: %w", err)
		}
	}
	return nil
}
