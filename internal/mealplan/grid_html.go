package mealplan

import (
	"fmt"
	"html"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// RenderHTML serializes the grid into the editable table markup stored in
// planner snapshots. Cells carry data-day and data-slot attributes so the
// grid can be read back from the markup alone.
func RenderHTML(g Grid, start string) string {
	var b strings.Builder

	b.WriteString(`<table class="meal-grid-table"><thead><tr><th></th>`)
	for _, day := range Days(start) {
		fmt.Fprintf(&b, "<th>%s</th>", html.EscapeString(day))
	}
	b.WriteString("</tr></thead><tbody>")

	for _, slot := range []string{SlotLunch, SlotDinner} {
		fmt.Fprintf(&b, "<tr><th>%s</th>", slotLabel(slot))
		for _, day := range Days(start) {
			plan := g[day]
			meal := plan.Lunch
			if slot == SlotDinner {
				meal = plan.Dinner
			}
			fmt.Fprintf(&b, `<td data-day="%s" data-slot="%s" contenteditable="true">%s</td>`,
				html.EscapeString(day), slot, html.EscapeString(meal))
		}
		b.WriteString("</tr>")
	}

	b.WriteString("</tbody></table>")
	return b.String()
}

func slotLabel(slot string) string {
	if slot == SlotDinner {
		return "Dinner"
	}
	return "Lunch"
}

// ParseHTML reads a grid back out of snapshot markup. Cells without both
// data attributes are ignored, as are empty cells.
func ParseHTML(markup string) (Grid, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil, fmt.Errorf("failed to parse meal grid markup: %w", err)
	}

	g := Grid{}
	doc.Find("td[data-day]").Each(func(_ int, cell *goquery.Selection) {
		day := cell.AttrOr("data-day", "")
		slot := cell.AttrOr("data-slot", "")
		meal := strings.TrimSpace(cell.Text())
		if day == "" || meal == "" {
			return
		}

		plan := g[day]
		switch slot {
		case SlotLunch:
			plan.Lunch = meal
		case SlotDinner:
			plan.Dinner = meal
		default:
			return
		}
		g[day] = plan
	})
	return g, nil
}
