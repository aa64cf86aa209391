// Package category assigns shopping items to fixed list categories by
// keyword lookup.
package category

import (
	"strings"
	"unicode"
)

// Category is one of the fixed shopping-list groupings.
type Category string

const (
	DairyEggs    Category = "Dairy & Eggs"
	MeatFish     Category = "Meat & Fish"
	Chilled      Category = "Chilled"
	Frozen       Category = "Frozen"
	Produce      Category = "Produce"
	Pantry       Category = "Pantry"
	SnacksDrinks Category = "Snacks & Drinks"
	Toiletries   Category = "Toiletries"
	Household    Category = "Household"
	Other        Category = "Other"
)

// All lists every category in render and export order.
var All = []Category{
	DairyEggs,
	MeatFish,
	Chilled,
	Frozen,
	Produce,
	Pantry,
	SnacksDrinks,
	Toiletries,
	Household,
	Other,
}

// keywords maps categories to detection keywords. Declaration order is a
// contract: the first category with a matching keyword wins, so e.g.
// "tomato sauce" is Produce (tomato) rather than Pantry (sauce).
var keywords = []struct {
	cat   Category
	words []string
}{
	{DairyEggs, []string{"milk", "cheese", "cream", "butter", "yog", "egg"}},
	{Produce, []string{"apple", "banana", "tomato", "onion", "pepper", "carrot", "potato", "garlic", "lettuce", "spinach", "herb", "lemon", "lime", "mushroom", "broccoli"}},
	{MeatFish, []string{"chicken", "beef", "lamb", "ham", "bacon", "pork", "turkey", "fish", "salmon", "tuna", "sausage", "mince"}},
	{Frozen, []string{"frozen", "peas", "ice", "chips", "sweetcorn", "berries", "pizza"}},
	{Pantry, []string{"bread", "rice", "pasta", "oil", "salt", "flour", "spice", "sugar", "sauce", "tin", "jar", "stock", "broth", "cereal"}},
	{SnacksDrinks, []string{"crisps", "bar", "chocolate", "sweet", "biscuit", "snack", "juice", "soda", "cola", "drink", "coffee", "tea"}},
	{Toiletries, []string{"soap", "toothpaste", "tooth", "colgate", "aquafresh", "shampoo", "roll", "tissue"}},
}

// Detect returns the category for an item name. Keywords match whole words
// only, case-insensitively. Names matching nothing (including empty names)
// fall back to Other.
func Detect(name string) Category {
	words := strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	if len(words) == 0 {
		return Other
	}

	for _, entry := range keywords {
		for _, kw := range entry.words {
			for _, w := range words {
				if w == kw {
					return entry.cat
				}
			}
		}
	}
	return Other
}

// Valid reports whether s names a known category.
func Valid(s string) bool {
	for _, c := range All {
		if string(c) == s {
			return true
		}
	}
	return false
}

// OrDefault maps unknown or empty category names to Other.
func OrDefault(s string) Category {
	if Valid(s) {
		return Category(s)
	}
	return Other
}
