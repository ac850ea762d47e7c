package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/myrjola/reportdesk/internal/errors"
	"github.com/myrjola/reportdesk/internal/testhelpers"
	"github.com/stretchr/testify/require"
)

func Test_run_invalidConfig(t *testing.T) {
	lookupEnv := func(key string) (string, bool) {
		switch key {
		case "REPORTDESK_SUBMIT_DELAY":
			return "5s", true
		case "REPORTDESK_REQUEST_TIMEOUT":
			return "2s", true
		default:
			return testLookupEnv(key)
		}
	}
	err := run(context.Background(), testhelpers.NewLogger(io.Discard), lookupEnv)
	require.True(t, errors.Is(err, ErrInvalidConfig), err)
}

func Test_timeoutHandler(t *testing.T) {
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
			w.WriteHeader(http.StatusOK)
		}
	})
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	timeoutHandler(slow, timeoutMargin+10*time.Millisecond).ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	require.Contains(t, rec.Body.String(), "The request took too long")
	require.NotContains(t, rec.Body.String(), "<script")
}
