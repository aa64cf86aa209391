package recipe

import (
	"strings"
)

// ParsedIngredient is one recipe ingredient line broken into its parts.
// Unused parts are empty.
type ParsedIngredient struct {
	Amount string `json:"amount,omitempty"`
	Unit   string `json:"unit,omitempty"`
	Item   string `json:"item"`
	Note   string `json:"note,omitempty"`
}

// units recognised as a measure word after the amount.
var units = map[string]bool{
	"g": true, "kg": true, "mg": true,
	"ml": true, "l": true, "litre": true, "litres": true,
	"tsp": true, "tbsp": true, "teaspoon": true, "teaspoons": true,
	"tablespoon": true, "tablespoons": true,
	"cup": true, "cups": true, "oz": true, "lb": true,
	"pint": true, "pints": true,
	"clove": true, "cloves": true,
	"tin": true, "tins": true, "can": true, "cans": true,
	"jar": true, "jars": true,
	"slice": true, "slices": true,
	"pinch": true, "handful": true,
	"pack": true, "packs": true, "packet": true, "packets": true,
	"bunch": true, "sprig": true, "sprigs": true,
}

// fractions maps unicode vulgar fractions to their ASCII form.
var fractions = map[rune]string{
	'½': "1/2", '¼': "1/4", '¾': "3/4",
	'⅓': "1/3", '⅔': "2/3",
	'⅛': "1/8", '⅜': "3/8", '⅝': "5/8", '⅞': "7/8",
}

// ParseLine breaks one ingredient line into amount, unit, item and note.
// The amount is one or two leading numeric tokens ("2", "1.5", "1 1/2"),
// the unit a following measure word, and anything after the first comma is
// the note. A line with none of those is all item.
func ParseLine(line string) ParsedIngredient {
	fields := strings.Fields(normalizeFractions(line))
	if len(fields) == 0 {
		return ParsedIngredient{}
	}

	var parsed ParsedIngredient
	i := 0

	var amount []string
	for i < len(fields) && len(amount) < 2 && isNumeric(fields[i]) {
		amount = append(amount, fields[i])
		i++
	}
	parsed.Amount = strings.Join(amount, " ")

	if i < len(fields) && units[strings.ToLower(fields[i])] {
		parsed.Unit = strings.ToLower(fields[i])
		i++
	}
	if i < len(fields) && strings.EqualFold(fields[i], "of") {
		i++
	}

	rest := strings.Join(fields[i:], " ")
	if idx := strings.Index(rest, ","); idx >= 0 {
		parsed.Item = strings.TrimSpace(rest[:idx])
		parsed.Note = strings.TrimSpace(rest[idx+1:])
	} else {
		parsed.Item = rest
	}
	return parsed
}

// ParseBlock parses a whole ingredient list, one ingredient per line.
// Blank lines and list bullets are skipped.
func ParseBlock(text string) []ParsedIngredient {
	var out []ParsedIngredient
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		line = strings.TrimLeft(line, "-*• \t")
		if line == "" {
			continue
		}
		out = append(out, ParseLine(line))
	}
	return out
}

// isNumeric accepts integers, decimals and a/b fractions.
func isNumeric(s string) bool {
	hasDigit := false
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r == '.' || r == '/':
		default:
			return false
		}
	}
	return hasDigit
}

// normalizeFractions rewrites unicode fractions as ASCII, splitting "1½"
// into "1 1/2".
func normalizeFractions(s string) string {
	var b strings.Builder
	var prev rune
	for _, r := range s {
		if frac, ok := fractions[r]; ok {
			if prev >= '0' && prev <= '9' {
				b.WriteByte(' ')
			}
			b.WriteString(frac)
		} else {
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
