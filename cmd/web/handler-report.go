package main

import (
	"log/slog"
	"net/http"

	"github.com/myrjola/reportdesk/internal/contexthelpers"
	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/report"
	"github.com/myrjola/reportdesk/internal/viewstate"
)

const savedMessage = "Your changes have been saved."

// parseReportForm returns the report fields of the posted form. The CSRF token is skipped and any other unknown name
// is rejected with report.ErrUnknownField.
func parseReportForm(r *http.Request) (map[string]string, error) {
	if err := r.ParseForm(); err != nil {
		return nil, errors.Wrap(err, "parse form")
	}
	values := make(map[string]string, len(r.PostForm))
	for name, vs := range r.PostForm {
		if name == "csrf_token" {
			continue
		}
		if _, err := report.ParseField(name); err != nil {
			return nil, err
		}
		if len(vs) > 0 {
			values[name] = vs[len(vs)-1]
		}
	}
	return values, nil
}

// updateFields is the change callback. The posted fields are merged into the canonical report.
//
// In the side-by-side view the field that triggered the change is validated and its fragment comes back with the
// message.
func (app *application) updateFields(w http.ResponseWriter, r *http.Request) {
	values, err := parseReportForm(r)
	if err != nil {
		app.badInput(w, r, err)
		return
	}
	ctx := r.Context()
	rep := app.loadReport(ctx).Merge(values)
	app.saveReport(ctx, rep)
	state := app.loadState(ctx)

	hx, ok := contexthelpers.HTMX(ctx)
	if !ok {
		http.Redirect(w, r, viewURL(state.View), http.StatusSeeOther)
		return
	}
	var errs report.Errors
	if state.View == viewstate.SideBySide {
		if f, parseErr := report.ParseField(hx.TriggerName); parseErr == nil {
			if msg := report.ValidateField(f, rep.Get(f)); msg != "" {
				errs = report.Errors{f: msg}
			}
		}
	}
	app.renderView(w, r, http.StatusOK, state, errs)
}

// submitReport is the submit callback.
//
// The side-by-side form is validated first and comes back with 422 Unprocessable Entity when anything is invalid.
// A successful submission moves to the summary, except from the accordion which stays put and shows a message.
func (app *application) submitReport(w http.ResponseWriter, r *http.Request) {
	values, err := parseReportForm(r)
	if err != nil {
		app.badInput(w, r, err)
		return
	}
	ctx := r.Context()
	rep := app.loadReport(ctx).Merge(values)
	app.saveReport(ctx, rep)
	state := app.loadState(ctx)

	if state.View == viewstate.SideBySide {
		if errs := report.ValidateReport(rep); errs != nil {
			app.logger.LogAttrs(ctx, slog.LevelDebug, "report failed validation", slog.Int("errors", len(errs)))
			app.renderView(w, r, http.StatusUnprocessableEntity, state, errs)
			return
		}
	}

	if _, err = app.submissions.Submit(ctx, rep); err != nil {
		app.serverError(w, r, errors.Wrap(err, "submit report"))
		return
	}

	if state.View == viewstate.Accordion {
		app.sessionManager.Put(ctx, flashSessionKey, savedMessage)
	} else if state, err = state.Apply(show(viewstate.Summary)); err != nil {
		app.serverError(w, r, err)
		return
	}
	app.saveState(ctx, state)
	app.redirect(w, r, viewURL(state.View))
}

// resetReport clears every field of the canonical report.
func (app *application) resetReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	app.saveReport(ctx, report.New())
	app.respond(w, r, app.loadState(ctx))
}
