package model

// Item is a single shopping-list entry as exchanged with the API.
type Item struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Amount   string `json:"amount"`
	Checked  bool   `json:"checked"`
	Crossed  bool   `json:"crossed"`
	Active   bool   `json:"active"`
}

// ItemPatch is a partial update for an item. Nil fields are left untouched;
// only the fields that are set are sent to the server.
type ItemPatch struct {
	Name     *string `json:"name,omitempty"`
	Category *string `json:"category,omitempty"`
	Amount   *string `json:"amount,omitempty"`
	Checked  *bool   `json:"checked,omitempty"`
	Crossed  *bool   `json:"crossed,omitempty"`
	Active   *bool   `json:"active,omitempty"`
}

// IsZero reports whether the patch carries no fields at all.
func (p ItemPatch) IsZero() bool {
	return p.Name == nil && p.Category == nil && p.Amount == nil &&
		p.Checked == nil && p.Crossed == nil && p.Active == nil
}

// Fields returns the set columns and their values, in a stable order.
func (p ItemPatch) Fields() ([]string, []any) {
	var cols []string
	var vals []any
	if p.Name != nil {
		cols = append(cols, "name")
		vals = append(vals, *p.Name)
	}
	if p.Category != nil {
		cols = append(cols, "category")
		vals = append(vals, *p.Category)
	}
	if p.Amount != nil {
		cols = append(cols, "amount")
		vals = append(vals, *p.Amount)
	}
	if p.Checked != nil {
		cols = append(cols, "checked")
		vals = append(vals, boolToInt(*p.Checked))
	}
	if p.Crossed != nil {
		cols = append(cols, "crossed")
		vals = append(vals, boolToInt(*p.Crossed))
	}
	if p.Active != nil {
		cols = append(cols, "active")
		vals = append(vals, boolToInt(*p.Active))
	}
	return cols, vals
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
