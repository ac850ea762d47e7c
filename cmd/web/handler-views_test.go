package main

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"testing"

	"github.com/myrjola/reportdesk/internal/e2etest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_application_home(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()

	doc, err := server.Client().GetDoc(ctx, "/")
	require.NoError(t, err)
	require.Equal(t, "Police Report Form - Side by Side View", strings.TrimSpace(doc.Find("h1").Text()))
	require.Equal(t, "Side by Side", strings.TrimSpace(doc.Find("nav a.active").Text()))
	require.Equal(t, 4, doc.Find("nav a").Length())

	// The form lists every report field once.
	require.Equal(t, 27, doc.Find("form[action='/report/submit'] .field").Length())
	require.Equal(t, 1, doc.Find("#image-panel").Length())
}

func Test_application_showView(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()
	client := server.Client()

	tests := []struct {
		path string
		h1   string
	}{
		{path: "/views/side-by-side", h1: "Police Report Form - Side by Side View"},
		{path: "/views/tabbed", h1: "Police Report Form - Tabbed View"},
		{path: "/views/accordion", h1: "Police Report Form - Accordion View"},
		{path: "/views/summary", h1: "Police Report Summary"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			doc, err := client.GetDoc(ctx, tt.path)
			require.NoError(t, err)
			require.Equal(t, tt.h1, strings.TrimSpace(doc.Find("main h1").First().Text()))

			// The root page remembers the last view.
			resp, err := client.Get(ctx, "/")
			require.NoError(t, err)
			require.NoError(t, resp.Body.Close())
			require.Equal(t, tt.path, resp.Request.URL.Path)
		})
	}

	resp, err := client.Get(ctx, "/views/bogus")
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func Test_application_secureHeaders(t *testing.T) {
	server := startTestServer(t)

	resp, err := server.Client().Get(context.Background(), "/views/side-by-side")
	require.NoError(t, err)
	csp := resp.Header.Get("Content-Security-Policy")
	doc := readDoc(t, resp, http.StatusOK)

	nonce, ok := doc.Find("script").Attr("nonce")
	require.True(t, ok, "script has no nonce")
	require.NotEmpty(t, nonce)
	require.Contains(t, csp, "'nonce-"+nonce+"'")
}

func Test_application_setMode(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()
	client := server.Client()

	tests := []struct {
		mode      string
		wantForm  bool
		wantImage bool
	}{
		{mode: "image-only", wantForm: false, wantImage: true},
		{mode: "form-only", wantForm: true, wantImage: false},
		{mode: "side-by-side", wantForm: true, wantImage: true},
	}
	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			doc, err := client.SubmitForm(ctx, "/views/side-by-side", "/views/side-by-side/mode",
				url.Values{"mode": {tt.mode}})
			require.NoError(t, err)
			assert.Equal(t, tt.wantForm, doc.Find("form[action='/report/submit']").Length() == 1)
			assert.Equal(t, tt.wantImage, doc.Find("#image-panel").Length() == 1)
			pressed, _ := doc.Find("button[aria-pressed=true]").Attr("class")
			assert.Contains(t, pressed, "btn-toggle")
		})
	}

	resp, err := client.PostForm(ctx, "/views/side-by-side", "/views/side-by-side/mode",
		url.Values{"mode": {"bogus"}})
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_application_setModeHTMX(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()
	client := server.Client()
	token := csrfToken(t, client, "/views/side-by-side")

	resp, err := client.PostHTMX(ctx, "/views/side-by-side/mode", e2etest.HTMXRequest{
		Target:    "view",
		CSRFToken: token,
		Values:    url.Values{"mode": {"form-only"}, "csrf_token": {token}},
	})
	require.NoError(t, err)
	doc := readDoc(t, resp, http.StatusOK)

	// Only the view fragment comes back.
	require.Equal(t, 0, doc.Find("header").Length())
	require.Equal(t, 1, doc.Find("main#view").Length())
	require.Equal(t, 0, doc.Find("#image-panel").Length())
}

func Test_application_setModeBoosted(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()
	client := server.Client()
	token := csrfToken(t, client, "/views/side-by-side")

	// Boosted requests replace the body so they get the whole page even with a target.
	resp, err := client.PostHTMX(ctx, "/views/side-by-side/mode", e2etest.HTMXRequest{
		Target:    "view",
		CSRFToken: token,
		Values:    url.Values{"mode": {"image-only"}, "csrf_token": {token}},
		Boosted:   true,
	})
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "/views/side-by-side", resp.Request.URL.Path, "plain form posts are redirected")

	doc, err := client.GetDoc(ctx, "/views/side-by-side")
	require.NoError(t, err)
	require.Equal(t, 1, doc.Find("header").Length())
	require.Equal(t, 0, doc.Find("#form-panel").Length())
}

func Test_application_tabbed(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()
	client := server.Client()

	doc, err := client.GetDoc(ctx, "/views/tabbed")
	require.NoError(t, err)
	require.Equal(t, "Internal Affairs", strings.TrimSpace(doc.Find(".tab.active").Text()))
	require.Equal(t, 5, doc.Find(".tab").Length())
	require.Equal(t, 1, doc.Find("#field-departmentNo").Length())

	doc, err = client.SubmitForm(ctx, "/views/tabbed", "/views/tabbed/tab", url.Values{"tab": {"demographics"}})
	require.NoError(t, err)
	require.Equal(t, "Demographics", strings.TrimSpace(doc.Find(".tab.active").Text()))
	require.Equal(t, 1, doc.Find("#field-dob").Length())
	require.Equal(t, 0, doc.Find("#field-departmentNo").Length())
	require.Contains(t, doc.Find(".region figcaption").Text(), "Demographics")
	style, _ := doc.Find(".region-image").Attr("style")
	require.Contains(t, style, "top: -700px")

	doc, err = client.SubmitForm(ctx, "/views/tabbed", "/views/tabbed/full-document", nil)
	require.NoError(t, err)
	require.Equal(t, 1, doc.Find(".full-document").Length())
	require.Equal(t, 0, doc.Find(".region").Length())
	require.Contains(t, doc.Find("form[action='/views/tabbed/full-document'] button").Text(), "Show Section View")

	// Leaving and entering the view again starts it from scratch.
	_, err = client.GetDoc(ctx, "/views/summary")
	require.NoError(t, err)
	doc, err = client.GetDoc(ctx, "/views/tabbed")
	require.NoError(t, err)
	require.Equal(t, "Internal Affairs", strings.TrimSpace(doc.Find(".tab.active").Text()))
	require.Equal(t, 0, doc.Find(".full-document").Length())

	resp, err := client.PostForm(ctx, "/views/tabbed", "/views/tabbed/tab", url.Values{"tab": {"bogus"}})
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_application_accordion(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()
	client := server.Client()

	doc, err := client.GetDoc(ctx, "/views/accordion")
	require.NoError(t, err)
	require.Equal(t, 1, doc.Find("#accordion-internal-affairs.expanded").Length())
	require.Equal(t, 1, doc.Find("#field-departmentNo").Length())
	require.Equal(t, 0, doc.Find("#field-name").Length())

	token, err := e2etest.CSRFToken(doc)
	require.NoError(t, err)
	resp, err := client.PostHTMX(ctx, "/views/accordion/sections/personal-info/toggle", e2etest.HTMXRequest{
		Target:    "view",
		CSRFToken: token,
		Values:    url.Values{"csrf_token": {token}},
	})
	require.NoError(t, err)
	doc = readDoc(t, resp, http.StatusOK)
	require.Equal(t, 1, doc.Find("#accordion-personal-info.expanded").Length())
	require.Equal(t, 1, doc.Find("#accordion-internal-affairs.expanded").Length())
	require.Equal(t, 2, doc.Find(".region").Length(), "each open section shows its region")

	resp, err = client.PostHTMX(ctx, "/views/accordion/sections/bogus/toggle", e2etest.HTMXRequest{
		Target:    "view",
		CSRFToken: token,
		Values:    url.Values{"csrf_token": {token}},
	})
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Side-by-side has no full document toggle.
	resp, err = client.PostHTMX(ctx, "/views/side-by-side/full-document", e2etest.HTMXRequest{
		Target:    "view",
		CSRFToken: token,
		Values:    url.Values{"csrf_token": {token}},
	})
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_application_csrf(t *testing.T) {
	server := startTestServer(t)
	ctx := context.Background()
	client := server.Client()
	_, err := client.GetDoc(ctx, "/views/summary")
	require.NoError(t, err)

	resp, err := client.PostHTMX(ctx, "/summary/filters/weapon/toggle", e2etest.HTMXRequest{
		Target:    "view",
		CSRFToken: "forged",
		Values:    url.Values{},
	})
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func Test_application_healthy(t *testing.T) {
	server := startTestServer(t)

	resp, err := server.Client().Get(context.Background(), "/api/healthy")
	require.NoError(t, err)
	defer func() {
		require.NoError(t, resp.Body.Close())
	}()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))
}
