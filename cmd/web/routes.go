package main

import (
	"net/http"

	htmxmw "github.com/donseba/go-htmx/middleware"
	"github.com/justinas/alice"
	"github.com/myrjola/reportdesk/ui"
)

func (app *application) routes() http.Handler {
	mux := http.NewServeMux()

	mux.Handle("GET /static/", cacheHeaders(http.FileServerFS(ui.Files)))
	mux.HandleFunc("GET /api/healthy", app.healthy)

	session := alice.New(app.sessionManager.LoadAndSave, app.noSurf, htmxmw.MiddleWare, app.htmxContext, commonContext)

	mux.Handle("GET /{$}", session.ThenFunc(app.home))
	mux.Handle("GET /views/{view}", session.ThenFunc(app.showView))
	mux.Handle("POST /views/side-by-side/mode", session.ThenFunc(app.setMode))
	mux.Handle("POST /views/tabbed/tab", session.ThenFunc(app.selectTab))
	mux.Handle("POST /views/{view}/full-document", session.ThenFunc(app.toggleFullDocument))
	mux.Handle("POST /views/accordion/sections/{section}/toggle", session.ThenFunc(app.toggleAccordionSection))

	mux.Handle("POST /summary/sections/{section}/toggle", session.ThenFunc(app.toggleSummarySection))
	mux.Handle("POST /summary/filters/{category}/toggle", session.ThenFunc(app.toggleFilter))
	mux.Handle("GET /summary/print", session.ThenFunc(app.printSummary))
	mux.Handle("GET /summary/export.md", session.ThenFunc(app.exportMarkdown))
	mux.Handle("GET /summary/export.pdf", session.ThenFunc(app.exportPDF))

	mux.Handle("POST /report/fields", session.ThenFunc(app.updateFields))
	mux.Handle("POST /report/submit", session.ThenFunc(app.submitReport))
	mux.Handle("POST /report/reset", session.ThenFunc(app.resetReport))

	mux.Handle("/", session.ThenFunc(app.notFound))

	common := alice.New(app.recoverPanic, app.logRequest, app.secureHeaders)
	return common.Then(timeoutHandler(mux, app.requestTimeout))
}
