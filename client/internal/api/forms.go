package api

import (
	"context"
	"net/http"

	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client/internal/types"
)

// FormResource is an exportable helper whose writes are multipart, because
// payloads may carry files (product photos, user avatars).
type FormResource struct {
	*ExportableResource
}

// NewFormResource binds a multipart helper to segment.
func NewFormResource(exec types.Executor, segment string) *FormResource {
	return &FormResource{ExportableResource: NewExportableResource(exec, segment)}
}

// Create posts a new item. Fields that are nil or "" are left out.
func (r *FormResource) Create(ctx context.Context, data types.Fields) (*types.Response, error) {
	return r.send(ctx, http.MethodPost, CollectionPath(r.segment), data, IncludeForWrite)
}

// Update replaces an item. Fields that are nil or "" are left out.
func (r *FormResource) Update(ctx context.Context, id any, data types.Fields) (*types.Response, error) {
	path, err := r.itemPath(id)
	if err != nil {
		return nil, err
	}
	return r.send(ctx, http.MethodPut, path, data, IncludeForWrite)
}

// PartialUpdate patches an item. Only nil fields are left out; "" is sent so
// a field can be cleared.
func (r *FormResource) PartialUpdate(ctx context.Context, id any, data types.Fields) (*types.Response, error) {
	path, err := r.itemPath(id)
	if err != nil {
		return nil, err
	}
	return r.send(ctx, http.MethodPatch, path, data, IncludeForPatch)
}

func (r *FormResource) itemPath(id any) (string, error) {
	sid, err := types.FormatID(id)
	if err != nil {
		return "", err
	}
	return ItemPath(r.segment, sid), nil
}

func (r *FormResource) send(ctx context.Context, method, path string, data types.Fields, include func(any) bool) (*types.Response, error) {
	ctx, err := liveContext(ctx)
	if err != nil {
		return nil, err
	}
	body, contentType, err := EncodeMultipart(data, include)
	if err != nil {
		return nil, err
	}
	return r.exec.Execute(ctx, types.Call{Method: method, Path: path, Body: body, ContentType: contentType})
}
