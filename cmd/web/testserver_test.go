package main

import (
	"context"
	"io"
	"net/http"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/myrjola/reportdesk/internal/e2etest"
	"github.com/stretchr/testify/require"
)

func testLookupEnv(key string) (string, bool) {
	switch key {
	case "REPORTDESK_ADDR":
		return "localhost:0", true
	case "REPORTDESK_SUBMIT_DELAY":
		return "0s", true
	default:
		return "", false
	}
}

// startTestServer starts the server on a random port and stops it when the test is done.
func startTestServer(t *testing.T) *e2etest.Server {
	t.Helper()
	server, err := e2etest.StartServer(context.Background(), io.Discard, testLookupEnv, run)
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, server.Stop())
	})
	return server
}

// readDoc checks the status of resp and parses its body.
func readDoc(t *testing.T, resp *http.Response, wantStatus int) *goquery.Document {
	t.Helper()
	defer func() {
		require.NoError(t, resp.Body.Close())
	}()
	require.Equal(t, wantStatus, resp.StatusCode)
	doc, err := goquery.NewDocumentFromReader(resp.Body)
	require.NoError(t, err)
	return doc
}

// csrfToken loads the page at urlPath and returns the CSRF token of its forms.
func csrfToken(t *testing.T, client *e2etest.Client, urlPath string) string {
	t.Helper()
	doc, err := client.GetDoc(context.Background(), urlPath)
	require.NoError(t, err)
	token, err := e2etest.CSRFToken(doc)
	require.NoError(t, err)
	return token
}
