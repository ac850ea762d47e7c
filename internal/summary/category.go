// Package summary renders the report summary: a narrative and record lists with highlighted categories that can be
// filtered.
package summary

import (
	"log/slog"

	"github.com/myrjola/reportdesk/internal/errors"
)

// Category classifies highlighted text and records.
type Category string

const (
	Weapon   Category = "weapon"
	Witness  Category = "witness"
	Injury   Category = "injury"
	Evidence Category = "evidence"
	Vehicle  Category = "vehicle"
	Suspect  Category = "suspect"
)

// Style is the presentation of a category.
type Style struct {
	Color     string
	Label     string
	TextColor string
}

var categories = []Category{Weapon, Witness, Injury, Evidence, Vehicle, Suspect}

var styles = map[Category]Style{
	Weapon:   {Color: "#FFD166", Label: "Weapon", TextColor: "black"},
	Witness:  {Color: "#06D6A0", Label: "Witness", TextColor: "black"},
	Injury:   {Color: "#EF476F", Label: "Injury", TextColor: "black"},
	Evidence: {Color: "#118AB2", Label: "Evidence", TextColor: "black"},
	Vehicle:  {Color: "#073B4C", Label: "Vehicle", TextColor: "white"},
	Suspect:  {Color: "#7F4CA5", Label: "Suspect", TextColor: "white"},
}

var ErrUnknownCategory = errors.NewSentinel("unknown highlight category")

// Categories returns every category in display order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories)
	return out
}

// ParseCategory returns the category named s or ErrUnknownCategory.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	if _, ok := styles[c]; !ok {
		return "", errors.Wrap(ErrUnknownCategory, "parse category", slog.String("category", s))
	}
	return c, nil
}

// Style returns the presentation of c. The zero Style is returned for unknown categories.
func (c Category) Style() Style {
	return styles[c]
}
