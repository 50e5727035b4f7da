package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client/internal/types"
)

// Resource is a stateless CRUD helper bound to one backend path segment.
// Payloads are sent as JSON.
type Resource struct {
	segment string
	exec    types.Executor
}

// NewResource binds a helper to segment.
func NewResource(exec types.Executor, segment string) *Resource {
	return &Resource{segment: segment, exec: exec}
}

// Segment returns the path segment the helper is bound to.
func (r *Resource) Segment() string { return r.segment }

// List fetches the collection, forwarding query as the query string.
func (r *Resource) List(ctx context.Context, query url.Values) (*types.Response, error) {
	ctx, err := liveContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.exec.Execute(ctx, types.Call{Method: http.MethodGet, Path: CollectionPath(r.segment), Query: query})
}

// GetByID fetches a single item.
func (r *Resource) GetByID(ctx context.Context, id any) (*types.Response, error) {
	return r.item(ctx, http.MethodGet, id, nil)
}

// Create posts a new item.
func (r *Resource) Create(ctx context.Context, data any) (*types.Response, error) {
	ctx, err := liveContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.exec.Execute(ctx, types.Call{Method: http.MethodPost, Path: CollectionPath(r.segment), Body: data})
}

// Update replaces an item.
func (r *Resource) Update(ctx context.Context, id, data any) (*types.Response, error) {
	return r.item(ctx, http.MethodPut, id, data)
}

// PartialUpdate patches an item.
func (r *Resource) PartialUpdate(ctx context.Context, id, data any) (*types.Response, error) {
	return r.item(ctx, http.MethodPatch, id, data)
}

// Delete removes an item.
func (r *Resource) Delete(ctx context.Context, id any) (*types.Response, error) {
	return r.item(ctx, http.MethodDelete, id, nil)
}

func (r *Resource) item(ctx context.Context, method string, id, body any) (*types.Response, error) {
	ctx, err := liveContext(ctx)
	if err != nil {
		return nil, err
	}
	sid, err := types.FormatID(id)
	if err != nil {
		return nil, err
	}
	return r.exec.Execute(ctx, types.Call{Method: method, Path: ItemPath(r.segment, sid), Body: body})
}

// ExportableResource adds the CSV export endpoint.
type ExportableResource struct {
	*Resource
}

// NewExportableResource binds an exportable helper to segment.
func NewExportableResource(exec types.Executor, segment string) *ExportableResource {
	return &ExportableResource{Resource: NewResource(exec, segment)}
}

// ExportCSV downloads the collection as CSV. Response.Data is the raw blob.
func (r *ExportableResource) ExportCSV(ctx context.Context) (*types.Response, error) {
	ctx, err := liveContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.exec.Execute(ctx, types.Call{Method: http.MethodGet, Path: SubPath(r.segment, "export-csv"), Binary: true})
}
