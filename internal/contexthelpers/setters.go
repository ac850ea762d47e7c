package contexthelpers

import (
	"context"
	"net/http"
)

func withValue(r *http.Request, key contextKey, v any) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), key, v))
}

func SetCSRFToken(r *http.Request, csrfToken string) *http.Request {
	return withValue(r, csrfTokenContextKey, csrfToken)
}

func SetCSPNonce(r *http.Request, nonce string) *http.Request {
	return withValue(r, cspNonceContextKey, nonce)
}

// SetHTMX marks r as a partial request.
func SetHTMX(r *http.Request, hx HTMXRequest) *http.Request {
	return withValue(r, htmxRequestContextKey, hx)
}
