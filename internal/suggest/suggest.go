// Package suggest ranks autocomplete candidates for shopping-list input.
package suggest

import (
	"context"
	"strings"

	"salimas-planner/internal/remote"
)

// Provider fetches and ranks name suggestions for a partial item name.
type Provider struct {
	client remote.Client
}

// NewProvider creates a suggestion provider backed by the given API client.
func NewProvider(client remote.Client) *Provider {
	return &Provider{client: client}
}

// Suggest returns ranked candidates for the query: names whose prefix
// matches come before names that merely contain the query, keeping the
// server's order within each group. It returns nothing for a blank query
// or when the query already names a candidate exactly.
func (p *Provider) Suggest(ctx context.Context, query string) ([]string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	names, err := p.client.Suggestions(ctx, query)
	if err != nil {
		return nil, err
	}

	folded := strings.ToLower(query)
	var prefix, contains []string
	for _, name := range names {
		lower := strings.ToLower(name)
		if lower == folded {
			// Typing the full name needs no dropdown.
			return nil, nil
		}
		switch {
		case strings.HasPrefix(lower, folded):
			prefix = append(prefix, name)
		case strings.Contains(lower, folded):
			contains = append(contains, name)
		}
	}

	ranked := append(prefix, contains...)
	if len(ranked) == 0 {
		return nil, nil
	}
	return ranked, nil
}
