package main

import (
	"net/http"

	"github.com/myrjola/reportdesk/internal/contexthelpers"
	"github.com/myrjola/reportdesk/internal/viewstate"
)

// applyActions runs the interactions against the session state in order and responds with the resulting view.
//
// htmx gets the re-rendered view fragment, plain form posts are redirected back to the view.
func (app *application) applyActions(w http.ResponseWriter, r *http.Request, actions ...viewstate.Action) {
	ctx := r.Context()
	state := app.loadState(ctx)
	for _, action := range actions {
		var err error
		if state, err = state.Apply(action); err != nil {
			app.badInput(w, r, err)
			return
		}
	}
	app.saveState(ctx, state)
	app.respond(w, r, state)
}

func (app *application) respond(w http.ResponseWriter, r *http.Request, state viewstate.State) {
	if contexthelpers.IsHTMXRequest(r.Context()) {
		app.renderView(w, r, http.StatusOK, state, nil)
		return
	}
	http.Redirect(w, r, viewURL(state.View), http.StatusSeeOther)
}

func show(v viewstate.View) viewstate.Action {
	return viewstate.Action{Kind: viewstate.ActionShowView, Target: string(v)}
}

func (app *application) setMode(w http.ResponseWriter, r *http.Request) {
	app.applyActions(w, r,
		show(viewstate.SideBySide),
		viewstate.Action{Kind: viewstate.ActionSetMode, Target: r.PostFormValue("mode")},
	)
}

func (app *application) selectTab(w http.ResponseWriter, r *http.Request) {
	app.applyActions(w, r,
		show(viewstate.Tabbed),
		viewstate.Action{Kind: viewstate.ActionSelectTab, Target: r.PostFormValue("tab")},
	)
}

func (app *application) toggleFullDocument(w http.ResponseWriter, r *http.Request) {
	view := r.PathValue("view")
	app.applyActions(w, r,
		viewstate.Action{Kind: viewstate.ActionShowView, Target: view},
		viewstate.Action{Kind: viewstate.ActionToggleFullDocument, Target: view},
	)
}

func (app *application) toggleAccordionSection(w http.ResponseWriter, r *http.Request) {
	app.applyActions(w, r,
		show(viewstate.Accordion),
		viewstate.Action{Kind: viewstate.ActionToggleSection, Target: r.PathValue("section")},
	)
}

func (app *application) toggleSummarySection(w http.ResponseWriter, r *http.Request) {
	app.applyActions(w, r,
		show(viewstate.Summary),
		viewstate.Action{Kind: viewstate.ActionToggleSummarySection, Target: r.PathValue("section")},
	)
}

func (app *application) toggleFilter(w http.ResponseWriter, r *http.Request) {
	app.applyActions(w, r,
		show(viewstate.Summary),
		viewstate.Action{Kind: viewstate.ActionToggleFilter, Target: r.PathValue("category")},
	)
}
