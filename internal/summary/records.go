package summary

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// KV is a single record entry.
type KV struct {
	Key   string
	Value string
}

// Record is an ordered list of entries with an optional highlight category.
type Record struct {
	Highlight Category
	Fields    []KV
}

func (r Record) HighlightCategory() Category {
	return r.Highlight
}

// Line is a labelled value ready for display.
type Line struct {
	Label string
	Value string
}

// Card is a rendered record.
type Card struct {
	Category Category
	// Border is the colour of the left border, empty for uncategorized records.
	Border string
	Lines  []Line
}

// RenderRecords returns a card for every record visible under filters, preserving the record and entry order.
func RenderRecords(records []Record, filters FilterSet) []Card {
	cards := make([]Card, 0, len(records))
	for _, rec := range records {
		if !filters.IsVisible(rec) {
			continue
		}
		card := Card{Category: rec.Highlight, Lines: make([]Line, 0, len(rec.Fields))}
		if rec.Highlight != "" {
			card.Border = rec.Highlight.Style().Color
		}
		for _, kv := range rec.Fields {
			card.Lines = append(card.Lines, Line{Label: capitalize(kv.Key), Value: kv.Value})
		}
		cards = append(cards, card)
	}
	return cards
}

// hasCategory reports whether any record carries one of cats.
func hasCategory(records []Record, cats ...Category) bool {
	for _, rec := range records {
		for _, c := range cats {
			if rec.Highlight == c {
				return true
			}
		}
	}
	return false
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// splitCamel inserts a space before every upper case letter, e.g. "natureOfComplaint" becomes "nature Of Complaint".
func splitCamel(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsUpper(r) {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return strings.TrimSpace(b.String())
}
