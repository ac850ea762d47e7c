package summary

import "github.com/myrjola/reportdesk/internal/report"

// Segment is a piece of the narrative. When Field is set the report value replaces Text unless it is blank.
type Segment struct {
	Text     string
	Category Category
	Field    report.Field
}

func (s Segment) HighlightCategory() Category {
	return s.Category
}

// Span is a rendered narrative segment.
type Span struct {
	Text       string
	Category   Category
	Background string
	Color      string
	Bold       bool
}

// Highlighted reports whether the span carries a category.
func (s Span) Highlighted() bool {
	return s.Category != ""
}

// narrative is the demo narrative shown in the summary.
var narrative = []Segment{
	{Text: "On "},
	{Text: "June 15, 2023", Field: report.IncidentDate},
	{Text: " at approximately "},
	{Text: "22:30", Field: report.IncidentTime},
	{Text: ", officers responded to a disturbance call at "},
	{Text: "1234 Main Street", Field: report.IncidentLocation},
	{Text: ". Upon arrival, officers observed "},
	{Text: "three individuals fleeing the scene", Category: Suspect},
	{Text: ". "},
	{Text: "A witness", Category: Witness},
	{Text: " identified as "},
	{Text: "Jane Doe", Field: report.Name},
	{Text: " reported hearing "},
	{Text: "gunshots", Category: Weapon},
	{Text: " and observing a "},
	{Text: "silver sedan", Category: Vehicle},
	{Text: " with license plate "},
	{Text: "ABC-123", Category: Vehicle},
	{Text: " leaving the scene at high speed. "},
	{Text: "The witness", Category: Witness},
	{Text: " stated that a "},
	{Text: "handgun", Category: Weapon},
	{Text: " was dropped by one of the fleeing individuals. Officers recovered a "},
	{Text: "9mm Smith & Wesson handgun", Category: Weapon},
	{Text: " at the scene. Serial number appears to be "},
	{Text: "partially damaged", Category: Evidence},
	{Text: " but was recorded as "},
	{Text: "SW9238-B", Category: Evidence},
	{Text: ". "},
	{Text: "Two victims", Category: Injury},
	{Text: " were located inside the premises with "},
	{Text: "non-life-threatening injuries", Category: Injury},
	{Text: ". They were transported to County General Hospital for treatment. The victims reported that a "},
	{Text: "firearm was missing", Category: Evidence},
	{Text: " from the residence, described as a "},
	{Text: "Glock 17", Category: Weapon},
	{Text: ". The investigation is ongoing."},
}

// Narrative returns the narrative segments.
func Narrative() []Segment {
	out := make([]Segment, len(narrative))
	copy(out, narrative)
	return out
}

// RenderNarrative substitutes report values into the narrative and drops segments hidden by filters.
func RenderNarrative(r report.Report, filters FilterSet) []Span {
	spans := make([]Span, 0, len(narrative))
	for _, seg := range narrative {
		if !filters.IsVisible(seg) {
			continue
		}
		text := seg.Text
		if seg.Field != "" {
			text = valueOr(r, seg.Field, seg.Text)
		}
		span := Span{Text: text, Category: seg.Category, Color: "black"}
		if seg.Category != "" {
			style := seg.Category.Style()
			span.Background = style.Color
			span.Color = style.TextColor
			span.Bold = true
		}
		spans = append(spans, span)
	}
	return spans
}

// valueOr returns the value of f in r or fallback when the value is blank.
func valueOr(r report.Report, f report.Field, fallback string) string {
	if v := r.Get(f); v != "" {
		return v
	}
	return fallback
}
