package client

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"

	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	zpkgerrors "github.com/rs/zerolog/pkgerrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/johiortiz/Proyecto2-Crud-Grupo-5/client/tokenstore"
)

// withStackMarshaler installs the pkg/errors stack marshaler for one test.
func withStackMarshaler(t *testing.T) {
	t.Helper()
	prev := zerolog.ErrorStackMarshaler
	zerolog.ErrorStackMarshaler = zpkgerrors.MarshalStack
	t.Cleanup(func() { zerolog.ErrorStackMarshaler = prev })
}

// findEntry returns the first JSON log line whose message is msg.
func findEntry(t *testing.T, buf *bytes.Buffer, msg string) map[string]any {
	t.Helper()
	sc := bufio.NewScanner(bytes.NewReader(buf.Bytes()))
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		if entry["message"] == msg {
			return entry
		}
	}
	t.Fatalf("no %q entry in log: %s", msg, buf.String())
	return nil
}

// brokenStore holds a token it cannot delete.
type brokenStore struct{ tokenstore.Memory }

func (*brokenStore) Delete(string) error { return pkgerrors.New("token file is read-only") }

func TestClientHandleAPIError_UsesClientLogger(t *testing.T) {
	withStackMarshaler(t)
	var buf bytes.Buffer
	c, err := New(Config{BaseURL: "http://example.com"}, WithLogger(zerolog.New(&buf)))
	require.NoError(t, err)

	n := c.HandleAPIError(&SetupError{Method: http.MethodPost, Path: "/products/", Err: pkgerrors.New("bad payload")})
	assert.Equal(t, KindConfig, n.Type)

	entry := findEntry(t, &buf, "API error")
	assert.Equal(t, "config", entry["type"])
	assert.Equal(t, n.Message, entry["user_message"])
	assert.Contains(t, entry, "stack", "error events must carry the pkg/errors stack")
}

func TestUnauthorized_StoreFailureLoggedWithStack(t *testing.T) {
	withStackMarshaler(t)
	srv, _ := newServer(t, http.StatusUnauthorized, `{}`)
	store := &brokenStore{}
	require.NoError(t, store.Set(tokenstore.Key, "stale"))
	var buf bytes.Buffer
	var navs []string
	c := newTestClient(t, srv,
		WithTokenStore(store),
		WithLogger(zerolog.New(&buf)),
		WithNavigator(NavigatorFunc(func(p string) { navs = append(navs, p) })),
	)

	_, err := c.Categories.List(context.Background(), nil)
	require.Error(t, err)
	assert.Equal(t, []string{LoginPath}, navs, "navigation must not depend on the store")

	entry := findEntry(t, &buf, "failed to clear auth token")
	assert.Equal(t, "token file is read-only", entry["error"])
	assert.Contains(t, entry, "stack")
}
