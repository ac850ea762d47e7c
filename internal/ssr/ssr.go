// Package ssr post-processes server rendered pages before they are sent to the browser.
package ssr

import (
	"bytes"
	"io"
	"log/slog"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/tdewolff/minify/v2"
	minhtml "github.com/tdewolff/minify/v2/html"
	"golang.org/x/net/html"
)

var ErrFragmentNotFound = errors.NewSentinel("fragment not found")

// components maps the as="..." shorthand used in templates to CSS classes.
var components = map[string]string{
	"button-primary":   "btn btn-primary",
	"button-secondary": "btn btn-secondary",
	"button-toggle":    "btn btn-toggle",
	"badge":            "badge",
}

// Renderer expands components and minifies pages.
type Renderer struct {
	minifier *minify.M
}

func NewRenderer() *Renderer {
	m := minify.New()
	m.Add("text/html", &minhtml.Minifier{
		KeepDocumentTags:    true,
		KeepEndTags:         true,
		KeepQuotes:          true,
		KeepDefaultAttrVals: true,
		KeepWhitespace:      false,
	})
	return &Renderer{minifier: m}
}

// Render writes page to w after expanding components.
//
// When fragmentID is not empty only the element with that id is written, which is how htmx partial responses are
// produced from full page templates.
func (r *Renderer) Render(w io.Writer, page io.Reader, fragmentID string) error {
	doc, err := goquery.NewDocumentFromReader(page)
	if err != nil {
		return errors.Wrap(err, "parse page")
	}
	ExpandComponents(doc.Selection)

	var buf bytes.Buffer
	if fragmentID != "" {
		fragment := doc.Find("#" + fragmentID).First()
		if fragment.Length() == 0 {
			return errors.Wrap(ErrFragmentNotFound, "find fragment", slog.String("id", fragmentID))
		}
		if err = html.Render(&buf, fragment.Nodes[0]); err != nil {
			return errors.Wrap(err, "render fragment")
		}
	} else {
		for c := doc.Nodes[0].FirstChild; c != nil; c = c.NextSibling {
			if err = html.Render(&buf, c); err != nil {
				return errors.Wrap(err, "render html")
			}
		}
	}

	if err = r.minifier.Minify("text/html", w, &buf); err != nil {
		return errors.Wrap(err, "minify html")
	}
	return nil
}

// ExpandComponents replaces the as="component" shorthand with the component's classes.
func ExpandComponents(s *goquery.Selection) {
	s.Find("[as]").Each(func(_ int, el *goquery.Selection) {
		name, _ := el.Attr("as")
		class, ok := components[strings.TrimSpace(name)]
		if !ok {
			return
		}
		el.RemoveAttr("as")
		el.AddClass(class)
	})
}
