// Package shopping holds the client-side shopping list: a local mirror of
// the server list with optimistic updates.
package shopping

import (
	"context"
	"fmt"
	"log"
	"strings"

	"salimas-planner/internal/category"
	"salimas-planner/internal/model"
	"salimas-planner/internal/remote"
)

// Store mirrors the server-side shopping list. Updates are applied locally
// first and pushed to the server; items whose push failed are marked
// unsynced until the next successful reload.
type Store struct {
	client   remote.Client
	items    []model.Item
	unsynced map[int64]bool
}

// NewStore creates an empty store backed by the given API client.
func NewStore(client remote.Client) *Store {
	return &Store{
		client:   client,
		unsynced: make(map[int64]bool),
	}
}

// Items returns a copy of the current list.
func (s *Store) Items() []model.Item {
	out := make([]model.Item, len(s.items))
	copy(out, s.items)
	return out
}

// Unsynced reports whether the last update of the item failed to reach the
// server.
func (s *Store) Unsynced(id int64) bool {
	return s.unsynced[id]
}

// ItemByName finds an item by case-insensitive name match.
func (s *Store) ItemByName(name string) (*model.Item, bool) {
	folded := strings.ToLower(strings.TrimSpace(name))
	for i := range s.items {
		if strings.ToLower(s.items[i].Name) == folded {
			return &s.items[i], true
		}
	}
	return nil, false
}

// Reload replaces the local list with the server's. On failure the local
// list is emptied rather than left stale.
func (s *Store) Reload(ctx context.Context) error {
	items, err := s.client.ShoppingList(ctx)
	if err != nil {
		s.items = nil
		s.unsynced = make(map[int64]bool)
		log.Printf("Failed to reload shopping list: %v", err)
		return err
	}

	s.items = items
	s.unsynced = make(map[int64]bool)
	return nil
}

// Add creates an item, or revives the existing entry with the same name.
// The detected category is sent to the server except for Other, where a nil
// category lets the server keep any category it already stored for that
// name. The server's answer wins: an existing item keeps its original
// casing and category.
func (s *Store) Add(ctx context.Context, name string, detected category.Category) (*model.Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("item name must not be empty")
	}

	var cat *string
	if detected != category.Other {
		v := string(detected)
		cat = &v
	}

	created, err := s.client.AddItem(ctx, name, cat)
	if err != nil {
		return nil, fmt.Errorf("failed to add %q: %w", name, err)
	}

	// The server deduplicates by name, so the answer may be an item we
	// already hold. Merge by id, then by folded name.
	for i := range s.items {
		if s.items[i].ID == created.ID ||
			strings.EqualFold(s.items[i].Name, created.Name) {
			s.items[i] = *created
			return created, nil
		}
	}

	s.items = append(s.items, *created)
	return created, nil
}

// Update applies a patch locally and pushes it to the server. On push
// failure the local change stays and the item is marked unsynced.
func (s *Store) Update(ctx context.Context, id int64, patch model.ItemPatch) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("no item with id %d", id)
	}

	s.applyPatch(&s.items[idx], patch)

	if err := s.client.UpdateItem(ctx, id, patch); err != nil {
		s.unsynced[id] = true
		log.Printf("Failed to sync item %d: %v", id, err)
		return err
	}
	delete(s.unsynced, id)
	return nil
}

// Remove deletes an item. The local entry goes away only once the server
// confirms.
func (s *Store) Remove(ctx context.Context, id int64) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return fmt.Errorf("no item with id %d", id)
	}

	if err := s.client.DeleteItem(ctx, id); err != nil {
		return fmt.Errorf("failed to delete item %d: %w", id, err)
	}

	s.items = append(s.items[:idx], s.items[idx+1:]...)
	delete(s.unsynced, id)
	return nil
}

// Clear empties the active list on the server and reloads.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.client.ClearList(ctx); err != nil {
		return fmt.Errorf("failed to clear shopping list: %w", err)
	}
	return s.Reload(ctx)
}

// ReplaceAll swaps the whole list for the given items, used when restoring
// a snapshot. The current list is cleared first, then each item is re-added
// and patched to its stored state.
func (s *Store) ReplaceAll(ctx context.Context, items []model.Item) error {
	if err := s.client.ClearList(ctx); err != nil {
		return fmt.Errorf("failed to clear shopping list: %w", err)
	}
	s.items = nil
	s.unsynced = make(map[int64]bool)

	for _, item := range items {
		created, err := s.Add(ctx, item.Name, category.OrDefault(item.Category))
		if err != nil {
			log.Printf("Failed to restore item %q: %v", item.Name, err)
			continue
		}

		patch := restorePatch(item, *created)
		if patch.IsZero() {
			continue
		}
		if err := s.Update(ctx, created.ID, patch); err != nil {
			log.Printf("Failed to restore state of item %q: %v", item.Name, err)
		}
	}
	return nil
}

// restorePatch captures what Add alone could not restore. Add lets the
// server's stored category win, which is right for everyday adds but not
// for a restore, so a diverged category is patched back explicitly.
func restorePatch(want, got model.Item) model.ItemPatch {
	var patch model.ItemPatch
	if want.Category != got.Category {
		patch.Category = &want.Category
	}
	if want.Amount != got.Amount {
		patch.Amount = &want.Amount
	}
	if want.Crossed != got.Crossed {
		patch.Crossed = &want.Crossed
	}
	if want.Checked != got.Checked {
		patch.Checked = &want.Checked
	}
	return patch
}

func (s *Store) indexOf(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) applyPatch(item *model.Item, patch model.ItemPatch) {
	if patch.Name != nil {
		item.Name = *patch.Name
	}
	if patch.Category != nil {
		item.Category = *patch.Category
	}
	if patch.Amount != nil {
		item.Amount = *patch.Amount
	}
	if patch.Checked != nil {
		item.Checked = *patch.Checked
	}
	if patch.Crossed != nil {
		item.Crossed = *patch.Crossed
	}
	if patch.Active != nil {
		item.Active = *patch.Active
	}
}
