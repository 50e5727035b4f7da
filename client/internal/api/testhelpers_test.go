package api

import (
	"context"
	"errors"
	"sync"

	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client/internal/types"
)

// recordingExec records every call and answers with an empty 200.
type recordingExec struct {
	mu    sync.Mutex
	calls []types.Call
}

func (m *recordingExec) Execute(_ context.Context, call types.Call) (*types.Response, error) {
	m.mu.Lock()
	m.calls = append(m.calls, call)
	m.mu.Unlock()
	return &types.Response{StatusCode: 200}, nil
}

func (m *recordingExec) last() types.Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls[len(m.calls)-1]
}

func (m *recordingExec) count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.calls)
}

// failingExec always fails (simulates a transport failure).
type failingExec struct{}

func (failingExec) Execute(context.Context, types.Call) (*types.Response, error) {
	return nil, errors.New("boom")
}
