package types

import "io"

// ------------------------------
// Payload Types
// ------------------------------

// Fields is the payload of a multipart write. Keys are form field names.
//
// Values follow the browser FormData conventions of the backend's web UI:
//   - nil stands for null/undefined and is never sent
//   - "" is an empty string, sent only by partial updates
//   - File is sent as a file part
//   - anything else is sent as its fmt.Sprint rendering
type Fields map[string]any

// File is a binary part of a multipart payload (a product photo, an avatar).
type File struct {
	Name        string
	ContentType string
	Reader      io.Reader
}

// Resource path segments on the backend.
const (
	SegmentCategories = "categories"
	SegmentProducts   = "products"
	SegmentCustomers  = "customers"
	SegmentUsers      = "usuarias"
	SegmentOrders     = "orders"
	SegmentOrderItems = "order-items"
)
