package api

import (
	"context"
	"net/url"
	"strings"
)

// Paths on the backend always end in a trailing slash, for collections and
// items alike. The backend router rejects the unslashed form.

// CollectionPath returns "/<segment>/".
func CollectionPath(segment string) string {
	return "/" + strings.Trim(segment, "/") + "/"
}

// ItemPath returns "/<segment>/<id>/" with id path-escaped.
func ItemPath(segment, id string) string {
	return CollectionPath(segment) + url.PathEscape(id) + "/"
}

// ActionPath returns "/<segment>/<id>/<action>/".
func ActionPath(segment, id, action string) string {
	return ItemPath(segment, id) + strings.Trim(action, "/") + "/"
}

// SubPath returns "/<segment>/<sub>/" for collection-level endpoints such as export-csv.
func SubPath(segment, sub string) string {
	return CollectionPath(segment) + strings.Trim(sub, "/") + "/"
}

// liveContext treats a nil ctx as context.Background, matching the client's
// Execute, and reports whether ctx is already done.
func liveContext(ctx context.Context) (context.Context, error) {
	if ctx == nil {
		return context.Background(), nil
	}
	return ctx, ctx.Err()
}
