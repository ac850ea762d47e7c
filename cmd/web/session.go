package main

import (
	"context"

	"github.com/myrjola/reportdesk/internal/report"
	"github.com/myrjola/reportdesk/internal/viewstate"
)

const (
	reportSessionKey = "report"
	stateSessionKey  = "viewState"
	flashSessionKey  = "flash"
)

// loadState returns the UI state of the session, or the initial state for a new session.
func (app *application) loadState(ctx context.Context) viewstate.State {
	state, ok := app.sessionManager.Get(ctx, stateSessionKey).(viewstate.State)
	if !ok {
		return viewstate.New()
	}
	return state
}

func (app *application) saveState(ctx context.Context, state viewstate.State) {
	app.sessionManager.Put(ctx, stateSessionKey, state)
}

// loadReport returns the canonical report of the session. A new session starts with an empty report.
func (app *application) loadReport(ctx context.Context) report.Report {
	r, ok := app.sessionManager.Get(ctx, reportSessionKey).(report.Report)
	if !ok {
		return report.New()
	}
	return r
}

func (app *application) saveReport(ctx context.Context, r report.Report) {
	app.sessionManager.Put(ctx, reportSessionKey, r)
}
