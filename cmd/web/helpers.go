package main

import (
	"log/slog"
	"net/http"

	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/report"
	"github.com/myrjola/reportdesk/internal/summary"
	"github.com/myrjola/reportdesk/internal/viewstate"
)

func (app *application) serverError(w http.ResponseWriter, r *http.Request, err error) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelError, "server error",
		slog.String("method", method), slog.String("uri", uri), errors.SlogError(err))
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func (app *application) clientError(w http.ResponseWriter, r *http.Request, status int) {
	var (
		method = r.Method
		uri    = r.URL.RequestURI()
	)

	app.logger.LogAttrs(r.Context(), slog.LevelDebug, http.StatusText(status),
		slog.String("method", method), slog.String("uri", uri))
	http.Error(w, http.StatusText(status), status)
}

func (app *application) notFound(w http.ResponseWriter, r *http.Request) {
	app.clientError(w, r, http.StatusNotFound)
}

// badInput maps the sentinel errors of user supplied ids to 400 Bad Request and everything else to a server error.
func (app *application) badInput(w http.ResponseWriter, r *http.Request, err error) {
	for _, sentinel := range []error{
		viewstate.ErrUnknownView,
		viewstate.ErrUnknownMode,
		viewstate.ErrUnknownSection,
		viewstate.ErrUnknownAction,
		viewstate.ErrNotSupported,
		summary.ErrUnknownCategory,
		summary.ErrUnknownSection,
		report.ErrUnknownField,
		report.ErrUnknownSection,
	} {
		if errors.Is(err, sentinel) {
			app.logger.LogAttrs(r.Context(), slog.LevelDebug, "rejected input", errors.SlogError(err))
			app.clientError(w, r, http.StatusBadRequest)
			return
		}
	}
	app.serverError(w, r, err)
}

// redirect sends the browser to url. htmx requests get an HX-Redirect with no content so that the whole page is
// loaded without swapping anything first.
func (app *application) redirect(w http.ResponseWriter, r *http.Request, url string) {
	hx := app.htmx.NewHandler(w, r)
	if hx.Request().HxRequest {
		hx.Redirect(url)
		w.WriteHeader(http.StatusNoContent)
		return
	}
	http.Redirect(w, r, url, http.StatusSeeOther)
}
