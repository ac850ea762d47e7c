package summary

import (
	"log/slog"
	"slices"

	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/report"
)

// Summary section ids in display order.
const (
	SectionNarrative = "narrative"
	SectionIncident  = "incident"
	SectionEvidence  = "evidence"
	SectionWitnesses = "witnesses"
	SectionInjuries  = "injuries"
	SectionVehicles  = "vehicles"
	SectionSuspects  = "suspects"
)

var sectionIDs = []string{
	SectionNarrative, SectionIncident, SectionEvidence, SectionWitnesses, SectionInjuries, SectionVehicles,
	SectionSuspects,
}

var sectionTitles = map[string]string{
	SectionNarrative: "Incident Narrative",
	SectionIncident:  "Incident Details",
	SectionEvidence:  "Evidence",
	SectionWitnesses: "Witnesses",
	SectionInjuries:  "Injuries",
	SectionVehicles:  "Vehicles",
	SectionSuspects:  "Suspects",
}

var ErrUnknownSection = errors.NewSentinel("unknown summary section")

// SectionIDs returns the summary section ids in display order.
func SectionIDs() []string {
	return slices.Clone(sectionIDs)
}

// ParseSection validates a summary section id.
func ParseSection(id string) (string, error) {
	if !slices.Contains(sectionIDs, id) {
		return "", errors.Wrap(ErrUnknownSection, "parse summary section", slog.String("section", id))
	}
	return id, nil
}

// Group is a titled list of cards inside a section.
type Group struct {
	Title string
	Cards []Card
}

// Section is a collapsible part of the summary. Exactly one of Narrative, Lines or Groups is populated.
type Section struct {
	ID            string
	Title         string
	HasHighlights bool
	Expanded      bool
	Narrative     []Span
	Lines         []Line
	Groups        []Group
}

// View is everything needed to present the summary.
type View struct {
	Filters  []Button
	Sections []Section
}

// Render builds the summary view of r. Sections listed in collapsed are marked as not expanded.
func Render(r report.Report, filters FilterSet, collapsed map[string]bool) View {
	data := Build(r)
	sections := []Section{
		{
			ID:            SectionNarrative,
			HasHighlights: true,
			Narrative:     RenderNarrative(r, filters),
		},
		{
			ID:    SectionIncident,
			Lines: data.IncidentLines(),
		},
		{
			ID: SectionEvidence,
			HasHighlights: hasCategory(data.Recovered, Weapon, Evidence) ||
				hasCategory(data.Missing, Weapon, Evidence),
			Groups: []Group{
				{Title: "Recovered Items", Cards: RenderRecords(data.Recovered, filters)},
				{Title: "Missing Items", Cards: RenderRecords(data.Missing, filters)},
			},
		},
		recordSection(SectionWitnesses, data.Witnesses, Witness, filters),
		recordSection(SectionInjuries, data.Injuries, Injury, filters),
		recordSection(SectionVehicles, data.Vehicles, Vehicle, filters),
		recordSection(SectionSuspects, data.Suspects, Suspect, filters),
	}
	for i := range sections {
		sections[i].Title = sectionTitles[sections[i].ID]
		sections[i].Expanded = !collapsed[sections[i].ID]
	}
	return View{Filters: filters.Buttons(), Sections: sections}
}

func recordSection(id string, records []Record, highlight Category, filters FilterSet) Section {
	return Section{
		ID:            id,
		HasHighlights: hasCategory(records, highlight),
		Groups:        []Group{{Cards: RenderRecords(records, filters)}},
	}
}
