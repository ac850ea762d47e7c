package main

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/export"
	"github.com/myrjola/reportdesk/internal/summary"
)

// exportView is the summary with every section expanded and the session's filters applied.
func (app *application) exportView(r *http.Request) summary.View {
	ctx := r.Context()
	state := app.loadState(ctx)
	return summary.Render(app.loadReport(ctx), state.Filters, nil)
}

func (app *application) printSummary(w http.ResponseWriter, r *http.Request) {
	var page bytes.Buffer
	if err := export.HTML(&page, app.exportView(r), time.Now()); err != nil {
		app.serverError(w, r, errors.Wrap(err, "render print summary"))
		return
	}
	var out bytes.Buffer
	if err := app.renderer.Render(&out, &page, ""); err != nil {
		app.serverError(w, r, errors.Wrap(err, "ssr render"))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = out.WriteTo(w)
}

func (app *application) exportMarkdown(w http.ResponseWriter, r *http.Request) {
	app.download(w, r, "text/markdown; charset=utf-8", "police-report-summary.md", func(dst io.Writer) error {
		return export.Markdown(dst, app.exportView(r), time.Now())
	})
}

func (app *application) exportPDF(w http.ResponseWriter, r *http.Request) {
	app.download(w, r, "application/pdf", "police-report-summary.pdf", func(dst io.Writer) error {
		return export.PDF(dst, app.exportView(r), time.Now())
	})
}

// download buffers the document written by write and sends it as an attachment.
func (app *application) download(
	w http.ResponseWriter,
	r *http.Request,
	contentType string,
	filename string,
	write func(io.Writer) error,
) {
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		app.serverError(w, r, errors.Wrap(err, "export summary"))
		return
	}
	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = buf.WriteTo(w)
}
