// Package errors provides the error taxonomy of the client SDK.
// Every failed call maps onto exactly one Kind.
package errors

// Kind tags a normalised failure.
type Kind string

const (
	// Validation is a 400: the backend rejected the payload. Details carry the body.
	Validation Kind = "validation"
	// Auth is a 401.
	Auth Kind = "auth"
	// Permission is a 403.
	Permission Kind = "permission"
	// NotFound is a 404.
	NotFound Kind = "notfound"
	// Conflict is a 409.
	Conflict Kind = "conflict"
	// Server is a 500.
	Server Kind = "server"
	// Network means the request was dispatched but no response arrived
	// (connection refused, DNS failure, timeout).
	Network Kind = "network"
	// Config means the request could not be formed at all.
	Config Kind = "config"
	// Unknown is any other status.
	Unknown Kind = "unknown"
)

// String returns the wire tag of the kind.
func (k Kind) String() string { return string(k) }

// Kinds lists every kind in classification order.
func Kinds() []Kind {
	return []Kind{Validation, Auth, Permission, NotFound, Conflict, Server, Network, Config, Unknown}
}
