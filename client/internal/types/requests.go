package types

import "net/url"

// ------------------------------
// Request Types
// ------------------------------

// Call describes one HTTP exchange relative to the client's base URL.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	// Body is JSON-encoded unless ContentType says otherwise, in which case
	// it must already be a []byte.
	Body        any
	ContentType string
	// Binary marks responses that are opaque blobs (CSV exports); the
	// executor negotiates a non-JSON Accept header for them.
	Binary bool
}
