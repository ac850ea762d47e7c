package main

import (
	"net/http"

	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/report"
	"github.com/myrjola/reportdesk/internal/summary"
	"github.com/myrjola/reportdesk/internal/viewstate"
)

type navItem struct {
	URL    string
	Label  string
	Active bool
}

type BaseTemplateData struct {
	View  viewstate.View
	Nav   []navItem
	Flash string
}

func (app *application) newBaseTemplateData(r *http.Request, view viewstate.View) BaseTemplateData {
	nav := make([]navItem, 0, len(viewstate.Views()))
	for _, v := range viewstate.Views() {
		nav = append(nav, navItem{URL: viewURL(v), Label: v.Label(), Active: v == view})
	}
	return BaseTemplateData{
		View:  view,
		Nav:   nav,
		Flash: app.sessionManager.PopString(r.Context(), flashSessionKey),
	}
}

// fieldData is one form input.
type fieldData struct {
	report.FieldSpec
	Name  string
	Value string
	Error string
}

type sectionData struct {
	ID       string
	Title    string
	Fields   []fieldData
	Viewport report.Viewport
	Expanded bool
	Active   bool
}

func newSectionData(section report.Section, r report.Report, errs report.Errors) sectionData {
	fields := make([]fieldData, 0, len(section.Fields))
	for _, f := range section.Fields {
		fields = append(fields, fieldData{
			FieldSpec: report.MustSpec(f),
			Name:      string(f),
			Value:     r.Get(f),
			Error:     errs.Get(f),
		})
	}
	return sectionData{
		ID:       section.ID,
		Title:    section.Title,
		Fields:   fields,
		Viewport: section.Viewport(),
	}
}

type modeButton struct {
	Mode   viewstate.Mode
	Label  string
	Active bool
}

type sideBySideTemplateData struct {
	BaseTemplateData
	Modes     []modeButton
	ShowForm  bool
	ShowImage bool
	HasErrors bool
	Sections  []sectionData
}

type tabbedTemplateData struct {
	BaseTemplateData
	Tabs         []sectionData
	Active       sectionData
	FullDocument bool
}

type accordionTemplateData struct {
	BaseTemplateData
	Sections     []sectionData
	FullDocument bool
}

type summaryTemplateData struct {
	BaseTemplateData
	Summary summary.View
}

func viewURL(v viewstate.View) string {
	return "/views/" + string(v)
}

// home sends the browser to the view the session was last on.
func (app *application) home(w http.ResponseWriter, r *http.Request) {
	state := app.loadState(r.Context())
	http.Redirect(w, r, viewURL(state.View), http.StatusSeeOther)
}

func (app *application) showView(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	state, err := app.loadState(ctx).Apply(viewstate.Action{Kind: viewstate.ActionShowView, Target: r.PathValue("view")})
	if errors.Is(err, viewstate.ErrUnknownView) {
		app.notFound(w, r)
		return
	}
	if err != nil {
		app.serverError(w, r, err)
		return
	}
	app.saveState(ctx, state)
	app.renderView(w, r, http.StatusOK, state, nil)
}

// renderView renders the active view of state. errs holds validation messages shown next to the side-by-side fields.
func (app *application) renderView(
	w http.ResponseWriter,
	r *http.Request,
	status int,
	state viewstate.State,
	errs report.Errors,
) {
	rep := app.loadReport(r.Context())
	base := app.newBaseTemplateData(r, state.View)
	sections := report.Sections()

	switch state.View {
	case viewstate.SideBySide:
		data := sideBySideTemplateData{
			BaseTemplateData: base,
			Modes:            make([]modeButton, 0, len(viewstate.Modes())),
			ShowForm:         state.Mode.ShowsForm(),
			ShowImage:        state.Mode.ShowsImage(),
			HasErrors:        len(errs) > 0,
			Sections:         make([]sectionData, 0, len(sections)),
		}
		for _, m := range viewstate.Modes() {
			data.Modes = append(data.Modes, modeButton{Mode: m, Label: m.Label(), Active: m == state.Mode})
		}
		for _, s := range sections {
			data.Sections = append(data.Sections, newSectionData(s, rep, errs))
		}
		app.render(w, r, status, "sidebyside", data)
	case viewstate.Tabbed:
		data := tabbedTemplateData{
			BaseTemplateData: base,
			Tabs:             make([]sectionData, 0, len(sections)),
			Active:           sectionData{},
			FullDocument:     state.TabbedFullDocument,
		}
		for _, s := range sections {
			sd := newSectionData(s, rep, nil)
			sd.Active = s.ID == state.ActiveTab
			if sd.Active {
				data.Active = sd
			}
			data.Tabs = append(data.Tabs, sd)
		}
		app.render(w, r, status, "tabbed", data)
	case viewstate.Accordion:
		data := accordionTemplateData{
			BaseTemplateData: base,
			Sections:         make([]sectionData, 0, len(sections)),
			FullDocument:     state.AccordionFullDocument,
		}
		for _, s := range sections {
			sd := newSectionData(s, rep, nil)
			sd.Expanded = state.IsExpanded(s.ID)
			data.Sections = append(data.Sections, sd)
		}
		app.render(w, r, status, "accordion", data)
	case viewstate.Summary:
		data := summaryTemplateData{
			BaseTemplateData: base,
			Summary:          summary.Render(rep, state.Filters, state.SummaryCollapsed),
		}
		app.render(w, r, status, "summary", data)
	default:
		app.serverError(w, r, errors.Wrap(viewstate.ErrUnknownView, "render view"))
	}
}
