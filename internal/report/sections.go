package report

import (
	_ "embed"
	"log/slog"
	"slices"

	"github.com/myrjola/reportdesk/internal/errors"
	"gopkg.in/yaml.v3"
)

//go:embed sections.yaml
var sectionsYAML []byte

// Document image dimensions in pixels.
const (
	DocumentWidth  = 800
	DocumentHeight = 1100
)

// Region is the part of the scanned document relevant to a section. Optional values fall back to the default region.
type Region struct {
	Top    int      `yaml:"top"`
	Left   *int     `yaml:"left,omitempty"`
	Width  *int     `yaml:"width,omitempty"`
	Height int      `yaml:"height"`
	Zoom   *float64 `yaml:"zoom,omitempty"`
}

// Viewport is a Region with every value resolved.
type Viewport struct {
	Top    int
	Left   int
	Width  int
	Height int
	Zoom   float64
}

// DefaultViewport is used for sections without a region.
var DefaultViewport = Viewport{Top: 0, Left: 0, Width: DocumentWidth, Height: 800, Zoom: 1} //nolint:mnd // document pixels

// Viewport resolves the optional values of r. A nil region resolves to DefaultViewport.
func (r *Region) Viewport() Viewport {
	if r == nil {
		return DefaultViewport
	}
	v := Viewport{
		Top:    r.Top,
		Left:   DefaultViewport.Left,
		Width:  DefaultViewport.Width,
		Height: r.Height,
		Zoom:   DefaultViewport.Zoom,
	}
	if r.Left != nil {
		v.Left = *r.Left
	}
	if r.Width != nil {
		v.Width = *r.Width
	}
	if r.Zoom != nil && *r.Zoom > 0 {
		v.Zoom = *r.Zoom
	}
	return v
}

// Section groups fields shown together with one region of the document.
type Section struct {
	ID     string  `yaml:"id"`
	Title  string  `yaml:"title"`
	Fields []Field `yaml:"fields"`
	Region *Region `yaml:"region,omitempty"`
}

// Viewport returns the resolved document region of the section.
func (s Section) Viewport() Viewport {
	return s.Region.Viewport()
}

var ErrUnknownSection = errors.NewSentinel("unknown section")

var sections = mustParseSections(sectionsYAML) //nolint:gochecknoglobals // parsed once from embedded data

// ParseSections decodes a section layout document and checks that it only references known fields.
func ParseSections(data []byte) ([]Section, error) {
	var out []Section
	if err := yaml.Unmarshal(data, &out); err != nil {
		return nil, errors.Wrap(err, "unmarshal sections")
	}
	seen := make(map[string]bool, len(out))
	for _, s := range out {
		if s.ID == "" {
			return nil, errors.New("section without id", slog.String("title", s.Title))
		}
		if seen[s.ID] {
			return nil, errors.New("duplicate section", slog.String("section", s.ID))
		}
		seen[s.ID] = true
		for _, f := range s.Fields {
			if _, err := ParseField(string(f)); err != nil {
				return nil, errors.Wrap(err, "parse section field",
					slog.String("section", s.ID), slog.String("field", string(f)))
			}
		}
	}
	return out, nil
}

func mustParseSections(data []byte) []Section {
	out, err := ParseSections(data)
	if err != nil {
		panic(err)
	}
	return out
}

// Sections returns the form sections in display order.
func Sections() []Section {
	out := make([]Section, len(sections))
	for i, s := range sections {
		s.Fields = slices.Clone(s.Fields)
		out[i] = s
	}
	return out
}

// SectionByID returns the section with the given id or ErrUnknownSection.
func SectionByID(id string) (Section, error) {
	for _, s := range sections {
		if s.ID == id {
			s.Fields = slices.Clone(s.Fields)
			return s, nil
		}
	}
	return Section{}, errors.Wrap(ErrUnknownSection, "find section", slog.String("section", id))
}

// FirstSectionID is the section shown first in the tabbed and accordion views.
func FirstSectionID() string {
	return sections[0].ID
}
