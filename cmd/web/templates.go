package main

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/myrjola/reportdesk/internal/contexthelpers"
	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/ssr"
	"github.com/myrjola/reportdesk/ui"
)

// fragmentView is the id of the element wrapping the active view. It's the fallback target for partial responses.
const fragmentView = "view"

type templateCache struct {
	pages map[string]*template.Template
}

// newTemplateCache parses every page under ui/templates/pages together with the base layout and the partials.
func newTemplateCache() (*templateCache, error) {
	entries, err := fs.ReadDir(ui.Files, "templates/pages")
	if err != nil {
		return nil, errors.Wrap(err, "read pages")
	}
	cache := &templateCache{pages: make(map[string]*template.Template, len(entries))}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		var t *template.Template
		if t, err = pageTemplate(entry.Name()); err != nil {
			return nil, errors.Wrap(err, "parse page", slog.String("page", entry.Name()))
		}
		cache.pages[entry.Name()] = t
	}
	return cache, nil
}

// pageTemplate returns a template for the given page name.
//
// pageName corresponds to directory inside ui/templates/pages folder. It has to include templates named "title"
// and "page".
func pageTemplate(pageName string) (*template.Template, error) {
	patterns := []string{
		"templates/base.gohtml",
		"templates/partials/*.gohtml",
		fmt.Sprintf("templates/pages/%s/*.gohtml", pageName),
	}

	// We need to initialize the FuncMap before parsing the files. These will be overridden in the render function.
	t, err := template.New(pageName).Funcs(template.FuncMap{
		"nonce": func() template.HTMLAttr {
			panic("not implemented")
		},
		"csrf": func() template.HTML {
			panic("not implemented")
		},
	}).ParseFS(ui.Files, patterns...)
	if err != nil {
		return nil, errors.Wrap(err, "parse template files")
	}
	return t, nil
}

// render executes the page template and writes it through the ssr pipeline.
//
// htmx requests only get the element their HX-Target points to.
func (app *application) render(w http.ResponseWriter, r *http.Request, status int, page string, data any) {
	base, ok := app.templates.pages[page]
	if !ok {
		app.serverError(w, r, errors.New("page not found", slog.String("page", page)))
		return
	}
	// The cached template is never executed so cloning it is always allowed.
	t, err := base.Clone()
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "clone template", slog.String("page", page)))
		return
	}

	ctx := r.Context()
	nonce := fmt.Sprintf("nonce=\"%s\"", contexthelpers.CSPNonce(ctx))
	csrf := fmt.Sprintf("<input type=\"hidden\" name=\"csrf_token\" value=\"%s\"/>", contexthelpers.CSRFToken(ctx))
	t.Funcs(template.FuncMap{
		"nonce": func() template.HTMLAttr {
			return template.HTMLAttr(nonce) //nolint:gosec // we trust the nonce since it's not provided by user.
		},
		"csrf": func() template.HTML {
			return template.HTML(csrf) //nolint:gosec // we trust the csrf since it's not provided by user.
		},
	})
	pageBuf := new(bytes.Buffer)
	if err = t.ExecuteTemplate(pageBuf, "base", data); err != nil {
		app.serverError(w, r, errors.Wrap(err, "execute template", slog.String("page", page)))
		return
	}

	fragment := ""
	if hx, ok := contexthelpers.HTMX(ctx); ok {
		fragment = hx.Target
		if fragment == "" {
			fragment = fragmentView
		}
	}

	out := new(bytes.Buffer)
	err = app.renderer.Render(out, bytes.NewReader(pageBuf.Bytes()), fragment)
	if errors.Is(err, ssr.ErrFragmentNotFound) && fragment != fragmentView {
		// The target is not part of the current view, e.g. the view changed in another tab. Swap the whole view.
		w.Header().Set("HX-Retarget", "#"+fragmentView)
		w.Header().Set("HX-Reswap", "outerHTML")
		out.Reset()
		err = app.renderer.Render(out, bytes.NewReader(pageBuf.Bytes()), fragmentView)
	}
	if err != nil {
		app.serverError(w, r, errors.Wrap(err, "ssr render", slog.String("page", page)))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = out.WriteTo(w)
}
