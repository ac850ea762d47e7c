package summary

import "maps"

// FilterSet is the set of active highlight categories.
//
// The zero value has every category active. FilterSet is a value type: Toggle returns an updated copy.
type FilterSet struct {
	// Hidden holds the categories that have been switched off.
	Hidden map[Category]bool
}

// Toggle flips the membership of c. Toggling the same category twice restores the original set.
func (f FilterSet) Toggle(c Category) FilterSet {
	hidden := maps.Clone(f.Hidden)
	if hidden == nil {
		hidden = make(map[Category]bool, 1)
	}
	if hidden[c] {
		delete(hidden, c)
	} else {
		hidden[c] = true
	}
	return FilterSet{Hidden: hidden}
}

// Active reports whether category c is shown.
func (f FilterSet) Active(c Category) bool {
	return !f.Hidden[c]
}

// Visible reports whether content tagged with c is shown. Untagged content is always visible.
func (f FilterSet) Visible(c Category) bool {
	return c == "" || f.Active(c)
}

// Tagged is content that may carry a highlight category.
type Tagged interface {
	HighlightCategory() Category
}

// IsVisible reports whether item is shown under the current filters.
func (f FilterSet) IsVisible(item Tagged) bool {
	return f.Visible(item.HighlightCategory())
}

// ActiveCategories returns the active categories in display order.
func (f FilterSet) ActiveCategories() []Category {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		if f.Active(c) {
			out = append(out, c)
		}
	}
	return out
}

// Button is a filter toggle as presented in the summary header.
type Button struct {
	Category Category
	Style    Style
	Active   bool
}

// Buttons returns one toggle per category in display order.
func (f FilterSet) Buttons() []Button {
	out := make([]Button, 0, len(categories))
	for _, c := range categories {
		out = append(out, Button{Category: c, Style: c.Style(), Active: f.Active(c)})
	}
	return out
}
