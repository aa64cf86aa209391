// Package remote implements the HTTP client for the planner API.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"salimas-planner/internal/auth"
	"salimas-planner/internal/config"
	"salimas-planner/internal/model"
)

// Client is an interface for the planner API.
type Client interface {
	ShoppingList(ctx context.Context) ([]model.Item, error)
	AddItem(ctx context.Context, name string, category *string) (*model.Item, error)
	UpdateItem(ctx context.Context, id int64, patch model.ItemPatch) error
	DeleteItem(ctx context.Context, id int64) error
	ClearList(ctx context.Context) error
	Suggestions(ctx context.Context, query string) ([]string, error)

	SavePlanner(ctx context.Context, snap model.Snapshot) (*model.SaveResult, error)
	ListPlanners(ctx context.Context) ([]model.SnapshotSummary, error)
	LoadPlanner(ctx context.Context, id int64) (*model.Snapshot, error)

	SelectedMeals(ctx context.Context, ids []string) ([]model.Meal, error)
}

// httpClient is the concrete implementation of the planner API client.
type httpClient struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
}

// NewClient creates a new planner API client.
func NewClient(cfg *config.Config) Client {
	return &httpClient{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    strings.TrimRight(cfg.APIURL, "/"),
		apiKey:     cfg.APIKey,
	}
}

// do runs one API request. A nil body sends no payload; a non-nil out decodes
// the response body into it.
func (c *httpClient) do(ctx context.Context, method, path string, body, out any) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if c.apiKey != "" {
		token, err := auth.MintToken(c.apiKey)
		if err != nil {
			return fmt.Errorf("failed to mint request token: %w", err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("planner api error: %s %s: status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

// ShoppingList fetches the active shopping-list items.
func (c *httpClient) ShoppingList(ctx context.Context) ([]model.Item, error) {
	var items []model.Item
	if err := c.do(ctx, http.MethodGet, "/api/shopping_list", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// AddItem creates a new item. A nil category lets the server keep whatever
// category it already knows for that name.
func (c *httpClient) AddItem(ctx context.Context, name string, category *string) (*model.Item, error) {
	payload := map[string]any{"name": name, "category": category}

	var created model.Item
	if err := c.do(ctx, http.MethodPost, "/api/shopping_list", payload, &created); err != nil {
		return nil, err
	}
	if created.ID == 0 {
		return nil, fmt.Errorf("no valid item data returned for %q", name)
	}
	return &created, nil
}

// UpdateItem sends a partial update for exactly the fields set in patch.
func (c *httpClient) UpdateItem(ctx context.Context, id int64, patch model.ItemPatch) error {
	if patch.IsZero() {
		return fmt.Errorf("empty patch for item %d", id)
	}
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/api/shopping_list/%d", id), patch, nil)
}

// DeleteItem removes an item.
func (c *httpClient) DeleteItem(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/shopping_list/%d", id), nil, nil)
}

// ClearList empties the active shopping list.
func (c *httpClient) ClearList(ctx context.Context) error {
	return c.do(ctx, http.MethodPost, "/api/shopping_list/clear", nil, nil)
}

// Suggestions fetches autocomplete candidates for a partial name.
func (c *httpClient) Suggestions(ctx context.Context, query string) ([]string, error) {
	path := "/api/shopping_list/suggestions?q=" + url.QueryEscape(query)
	var names []string
	if err := c.do(ctx, http.MethodGet, path, nil, &names); err != nil {
		return nil, err
	}
	return names, nil
}

// SavePlanner stores a planner snapshot.
func (c *httpClient) SavePlanner(ctx context.Context, snap model.Snapshot) (*model.SaveResult, error) {
	var result model.SaveResult
	if err := c.do(ctx, http.MethodPost, "/api/planner/save", snap, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// ListPlanners fetches summaries of the saved snapshots.
func (c *httpClient) ListPlanners(ctx context.Context) ([]model.SnapshotSummary, error) {
	var summaries []model.SnapshotSummary
	if err := c.do(ctx, http.MethodGet, "/api/planner/list", nil, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// LoadPlanner fetches a full snapshot by id.
func (c *httpClient) LoadPlanner(ctx context.Context, id int64) (*model.Snapshot, error) {
	var snap model.Snapshot
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/planner/load/%d", id), nil, &snap); err != nil {
		return nil, err
	}
	return &snap, nil
}

// SelectedMeals fetches recipe details for the given recipe ids.
func (c *httpClient) SelectedMeals(ctx context.Context, ids []string) ([]model.Meal, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	path := "/api/selected?ids=" + url.QueryEscape(strings.Join(ids, ","))
	var response struct {
		Meals []model.Meal `json:"meals"`
	}
	if err := c.do(ctx, http.MethodGet, path, nil, &response); err != nil {
		return nil, err
	}
	return response.Meals, nil
}
