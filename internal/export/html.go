// Package export turns the report summary into printable HTML, Markdown and PDF documents.
package export

import (
	"bytes"
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/summary"
)

//go:embed templates
var templateFS embed.FS

var printTemplate = template.Must(template.ParseFS(templateFS, "templates/summary.gohtml"))

type printData struct {
	View      summary.View
	Generated string
}

// HTML writes a standalone printable document of view. Collapsed sections are included.
func HTML(w io.Writer, view summary.View, now time.Time) error {
	data := printData{View: view, Generated: now.Format("January 2, 2006 15:04")}
	// Buffer so that a failing template does not leave a half written document behind.
	var buf bytes.Buffer
	if err := printTemplate.ExecuteTemplate(&buf, "summary.gohtml", data); err != nil {
		return errors.Wrap(err, "execute print template")
	}
	if _, err := buf.WriteTo(w); err != nil {
		return errors.Wrap(err, "write print document")
	}
	return nil
}
