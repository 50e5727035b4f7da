package api

import (
	"context"
	"net/http"

	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client/internal/types"
)

// UserResource is the /usuarias/ helper: multipart writes plus account actions.
type UserResource struct {
	*FormResource
}

// NewUserResource binds the user helper to the usuarias segment.
func NewUserResource(exec types.Executor) *UserResource {
	return &UserResource{FormResource: NewFormResource(exec, types.SegmentUsers)}
}

// Reactivate re-enables a deactivated user. No body is sent.
func (r *UserResource) Reactivate(ctx context.Context, id any) (*types.Response, error) {
	ctx, err := liveContext(ctx)
	if err != nil {
		return nil, err
	}
	sid, err := types.FormatID(id)
	if err != nil {
		return nil, err
	}
	return r.exec.Execute(ctx, types.Call{Method: http.MethodPost, Path: ActionPath(r.segment, sid, "reactivate")})
}

// Statistics fetches the aggregate user statistics.
func (r *UserResource) Statistics(ctx context.Context) (*types.Response, error) {
	ctx, err := liveContext(ctx)
	if err != nil {
		return nil, err
	}
	return r.exec.Execute(ctx, types.Call{Method: http.MethodGet, Path: SubPath(r.segment, "statistics")})
}
