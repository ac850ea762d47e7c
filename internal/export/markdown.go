package export

import (
	"bytes"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/PuerkitoBio/goquery"
	"github.com/microcosm-cc/bluemonday"
	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/summary"
)

// SummarySelector selects the summary content in a rendered page.
const SummarySelector = "#summary"

var ErrNoSummary = errors.NewSentinel("summary not found in document")

var mdConverter = converter.NewConverter( //nolint:gochecknoglobals // the converter is safe for concurrent use
	converter.WithPlugins(
		base.NewBasePlugin(),
		commonmark.NewCommonmarkPlugin(),
		table.NewTablePlugin(),
	),
)

// fragmentPolicy keeps the structural markup Markdown can express and drops scripts and event handlers.
var fragmentPolicy = bluemonday.UGCPolicy() //nolint:gochecknoglobals // the policy is safe for concurrent use

// MarkdownFromPage converts the element matching selector in the HTML page to Markdown.
//
// Elements marked with data-export="skip" and interactive controls are left out. The fragment is sanitized before
// conversion since page may come from anywhere.
func MarkdownFromPage(w io.Writer, page io.Reader, selector string) error {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return errors.Wrap(err, "parse page")
	}
	fragment := doc.Find(selector).First()
	if fragment.Length() == 0 {
		return errors.Wrap(ErrNoSummary, "find fragment", slog.String("selector", selector))
	}
	fragment.Find(`[data-export="skip"], form, button`).Remove()

	var html string
	if html, err = goquery.OuterHtml(fragment); err != nil {
		return errors.Wrap(err, "render fragment")
	}
	var md string
	if md, err = mdConverter.ConvertString(fragmentPolicy.Sanitize(html)); err != nil {
		return errors.Wrap(err, "convert to markdown")
	}
	if _, err = io.WriteString(w, strings.TrimSpace(md)+"\n"); err != nil {
		return errors.Wrap(err, "write markdown")
	}
	return nil
}

// Markdown writes view as a Markdown document.
func Markdown(w io.Writer, view summary.View, now time.Time) error {
	var page bytes.Buffer
	if err := HTML(&page, view, now); err != nil {
		return errors.Wrap(err, "render summary")
	}
	return MarkdownFromPage(w, &page, SummarySelector)
}
