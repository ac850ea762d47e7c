// Package viewstate holds the per-session UI state and its transitions.
//
// State is a plain value; every interaction is an Action applied with Apply, which returns the next state.
package viewstate

import (
	"log/slog"
	"maps"
	"slices"

	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/report"
	"github.com/myrjola/reportdesk/internal/summary"
)

// View is one of the interchangeable report layouts.
type View string

const (
	SideBySide View = "side-by-side"
	Tabbed     View = "tabbed"
	Accordion  View = "accordion"
	Summary    View = "summary"
)

// Views returns the views in navigation order.
func Views() []View {
	return []View{SideBySide, Tabbed, Accordion, Summary}
}

// Label returns the navigation label of v.
func (v View) Label() string {
	switch v {
	case SideBySide:
		return "Side by Side"
	case Tabbed:
		return "Tabbed"
	case Accordion:
		return "Accordion"
	case Summary:
		return "Summary"
	}
	return string(v)
}

// Mode selects which panels the side-by-side view shows.
type Mode string

const (
	ModeSideBySide Mode = "side-by-side"
	ModeFormOnly   Mode = "form-only"
	ModeImageOnly  Mode = "image-only"
)

// Modes returns the side-by-side modes in display order.
func Modes() []Mode {
	return []Mode{ModeSideBySide, ModeFormOnly, ModeImageOnly}
}

// Label returns the toggle label of m.
func (m Mode) Label() string {
	switch m {
	case ModeSideBySide:
		return "Side by Side"
	case ModeFormOnly:
		return "Form Only"
	case ModeImageOnly:
		return "Image Only"
	}
	return string(m)
}

// ShowsForm reports whether the form panel is rendered.
func (m Mode) ShowsForm() bool {
	return m != ModeImageOnly
}

// ShowsImage reports whether the document panel is rendered.
func (m Mode) ShowsImage() bool {
	return m != ModeFormOnly
}

var (
	ErrUnknownView    = errors.NewSentinel("unknown view")
	ErrUnknownMode    = errors.NewSentinel("unknown view mode")
	ErrUnknownSection = errors.NewSentinel("unknown section")
	ErrUnknownAction  = errors.NewSentinel("unknown action")
	ErrNotSupported   = errors.NewSentinel("action not supported by view")
)

// ParseView returns the view named s or ErrUnknownView.
func ParseView(s string) (View, error) {
	v := View(s)
	if !slices.Contains(Views(), v) {
		return "", errors.Wrap(ErrUnknownView, "parse view", slog.String("view", s))
	}
	return v, nil
}

// ParseMode returns the mode named s or ErrUnknownMode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if !slices.Contains(Modes(), m) {
		return "", errors.Wrap(ErrUnknownMode, "parse mode", slog.String("mode", s))
	}
	return m, nil
}

// State is the UI state of one browser session.
type State struct {
	View View
	// Mode is the side-by-side panel selection.
	Mode Mode
	// ActiveTab is the section id shown by the tabbed view.
	ActiveTab          string
	TabbedFullDocument bool
	// Expanded lists the accordion sections that are open.
	Expanded              []string
	AccordionFullDocument bool
	// SummaryCollapsed holds the summary sections the user has closed.
	SummaryCollapsed map[string]bool
	Filters          summary.FilterSet
}

// New returns the initial state showing the side-by-side view.
func New() State {
	s := State{View: SideBySide}
	s.resetSideBySide()
	s.resetTabbed()
	s.resetAccordion()
	s.resetSummary()
	return s
}

func (s *State) resetSideBySide() {
	s.Mode = ModeSideBySide
}

func (s *State) resetTabbed() {
	s.ActiveTab = report.FirstSectionID()
	s.TabbedFullDocument = false
}

func (s *State) resetAccordion() {
	s.Expanded = []string{report.FirstSectionID()}
	s.AccordionFullDocument = false
}

func (s *State) resetSummary() {
	s.SummaryCollapsed = nil
	s.Filters = summary.FilterSet{}
}

// IsExpanded reports whether accordion section id is open.
func (s State) IsExpanded(id string) bool {
	return slices.Contains(s.Expanded, id)
}

// Kind identifies an interaction.
type Kind string

const (
	// ActionShowView switches to the view in Target.
	ActionShowView Kind = "show-view"
	// ActionSetMode sets the side-by-side mode in Target.
	ActionSetMode Kind = "set-mode"
	// ActionSelectTab selects the tabbed section in Target.
	ActionSelectTab Kind = "select-tab"
	// ActionToggleFullDocument flips the full document toggle of the view in Target.
	ActionToggleFullDocument Kind = "toggle-full-document"
	// ActionToggleSection opens or closes the accordion section in Target.
	ActionToggleSection Kind = "toggle-section"
	// ActionToggleSummarySection opens or closes the summary section in Target.
	ActionToggleSummarySection Kind = "toggle-summary-section"
	// ActionToggleFilter flips the highlight category in Target.
	ActionToggleFilter Kind = "toggle-filter"
)

// Action is a single user interaction.
type Action struct {
	Kind   Kind
	Target string
}

// Apply returns the state after action. s is left unchanged; on error the zero State is returned.
func (s State) Apply(action Action) (State, error) {
	next := s.clone()
	switch action.Kind {
	case ActionShowView:
		v, err := ParseView(action.Target)
		if err != nil {
			return State{}, err
		}
		if v != next.View {
			// Entering a view starts it from scratch.
			next.resetView(v)
		}
		next.View = v
	case ActionSetMode:
		m, err := ParseMode(action.Target)
		if err != nil {
			return State{}, err
		}
		next.Mode = m
	case ActionSelectTab:
		if _, err := report.SectionByID(action.Target); err != nil {
			return State{}, errors.Wrap(ErrUnknownSection, err.Error())
		}
		next.ActiveTab = action.Target
	case ActionToggleFullDocument:
		v, err := ParseView(action.Target)
		if err != nil {
			return State{}, err
		}
		switch v { //nolint:exhaustive // other views have no full document toggle
		case Tabbed:
			next.TabbedFullDocument = !next.TabbedFullDocument
		case Accordion:
			next.AccordionFullDocument = !next.AccordionFullDocument
		default:
			return State{}, errors.Wrap(ErrNotSupported, "toggle full document", slog.String("view", string(v)))
		}
	case ActionToggleSection:
		if _, err := report.SectionByID(action.Target); err != nil {
			return State{}, errors.Wrap(ErrUnknownSection, err.Error())
		}
		if next.IsExpanded(action.Target) {
			next.Expanded = slices.DeleteFunc(next.Expanded, func(id string) bool { return id == action.Target })
		} else {
			next.Expanded = append(next.Expanded, action.Target)
		}
	case ActionToggleSummarySection:
		id, err := summary.ParseSection(action.Target)
		if err != nil {
			return State{}, errors.Wrap(ErrUnknownSection, err.Error())
		}
		if next.SummaryCollapsed == nil {
			next.SummaryCollapsed = make(map[string]bool, 1)
		}
		if next.SummaryCollapsed[id] {
			delete(next.SummaryCollapsed, id)
		} else {
			next.SummaryCollapsed[id] = true
		}
	case ActionToggleFilter:
		c, err := summary.ParseCategory(action.Target)
		if err != nil {
			return State{}, err
		}
		next.Filters = next.Filters.Toggle(c)
	default:
		return State{}, errors.Wrap(ErrUnknownAction, "apply", slog.String("kind", string(action.Kind)))
	}
	return next, nil
}

func (s *State) resetView(v View) {
	switch v {
	case SideBySide:
		s.resetSideBySide()
	case Tabbed:
		s.resetTabbed()
	case Accordion:
		s.resetAccordion()
	case Summary:
		s.resetSummary()
	}
}

func (s State) clone() State {
	out := s
	out.Expanded = slices.Clone(s.Expanded)
	out.SummaryCollapsed = maps.Clone(s.SummaryCollapsed)
	out.Filters = summary.FilterSet{Hidden: maps.Clone(s.Filters.Hidden)}
	return out
}
