package main

import (
	"net/http"
	"time"
)

// timeoutBody links back to the current view. It carries no script since the CSP only allows nonced scripts.
const timeoutBody = `<!doctype html>
<html lang="en">
<head><title>Timeout - Report Desk</title><link rel="stylesheet" href="/static/main.css"></head>
<body>
<main>
    <h1>The request took too long</h1>
    <p>Your changes may not have been saved.</p>
    <a class="btn btn-primary" href="/">Back to the report</a>
</main>
</body>
</html>
`

// timeoutMargin is reserved for writing the timeout response before the server closes the connection.
const timeoutMargin = 500 * time.Millisecond

// timeoutHandler responds with a 503 Service Unavailable error when the handler does not meet the deadline.
func timeoutHandler(h http.Handler, requestTimeout time.Duration) http.Handler {
	return http.TimeoutHandler(h, handlerTimeout(requestTimeout), timeoutBody)
}

// handlerTimeout is the time a handler has to respond within requestTimeout.
func handlerTimeout(requestTimeout time.Duration) time.Duration {
	return requestTimeout - timeoutMargin
}
