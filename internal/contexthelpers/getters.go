package contexthelpers

import (
	"context"
)

func value[T any](ctx context.Context, key contextKey) T {
	v, _ := ctx.Value(key).(T)
	return v
}

func CSRFToken(ctx context.Context) string {
	return value[string](ctx, csrfTokenContextKey)
}

func CSPNonce(ctx context.Context) string {
	return value[string](ctx, cspNonceContextKey)
}

// HTMX returns the htmx headers of the request. The boolean is false for full page requests, which includes boosted
// navigation.
func HTMX(ctx context.Context) (HTMXRequest, bool) {
	hx, ok := ctx.Value(htmxRequestContextKey).(HTMXRequest)
	return hx, ok
}

// IsHTMXRequest reports whether the request was issued by htmx and expects a partial response.
func IsHTMXRequest(ctx context.Context) bool {
	_, ok := HTMX(ctx)
	return ok
}
