package contexthelpers

type contextKey string

const (
	csrfTokenContextKey   = contextKey("csrfToken")
	cspNonceContextKey    = contextKey("cspNonce")
	htmxRequestContextKey = contextKey("htmxRequest")
)

// HTMXRequest holds the htmx headers of a request that expects a partial response.
type HTMXRequest struct {
	// Target is the id of the element the response replaces. Empty when htmx didn't send one.
	Target string
	// TriggerName is the name of the input that triggered the request.
	TriggerName string
}
