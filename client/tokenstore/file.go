package tokenstore

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
)

// File is a Store persisted as a JSON object on disk, so a session survives
// process restarts. The file is created with 0600 permissions.
//
// Every operation goes back to disk: a token written by another process (a
// separate login) is seen by the next Get, and writes merge into the current
// file contents instead of replacing them.
type File struct {
	path string
	mu   sync.Mutex
}

// OpenFile binds a store to path and checks that any existing file decodes.
// A missing file is an empty store.
func OpenFile(path string) (*File, error) {
	if path == "" {
		return nil, errors.New("token file path must not be empty")
	}
	f := &File{path: path}
	if _, err := f.load(); err != nil {
		return nil, err
	}
	return f, nil
}

// Path returns the backing file.
func (f *File) Path() string { return f.path }

// Get reads key from disk. An unreadable file counts as unauthenticated.
func (f *File) Get(key string) (string, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.load()
	if err != nil {
		return "", false
	}
	v, ok := data[key]
	return v, ok
}

func (f *File) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.load()
	if err != nil {
		return err
	}
	data[key] = value
	return f.flush(data)
}

func (f *File) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	data, err := f.load()
	if err != nil {
		return err
	}
	if _, ok := data[key]; !ok {
		return nil
	}
	delete(data, key)
	return f.flush(data)
}

// load returns the current file contents; missing and empty files decode to
// an empty map.
func (f *File) load() (map[string]string, error) {
	data := make(map[string]string)
	raw, err := os.ReadFile(f.path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return data, nil
	case err != nil:
		return nil, errors.Wrap(err, "read token file")
	}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, errors.Wrapf(err, "decode token file %s", f.path)
	}
	return data, nil
}

// flush writes data through a temp file and rename so readers never see a
// torn file.
func (f *File) flush(data map[string]string) error {
	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return errors.Wrap(err, "create token dir")
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return errors.WithStack(err)
	}
	tmp, err := os.CreateTemp(dir, ".token-*")
	if err != nil {
		return errors.Wrap(err, "stage token file")
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if err := tmp.Chmod(0o600); err != nil {
		_ = tmp.Close()
		return errors.WithStack(err)
	}
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		return errors.Wrap(err, "write token file")
	}
	if err := tmp.Close(); err != nil {
		return errors.WithStack(err)
	}
	return errors.Wrap(os.Rename(tmpName, f.path), "replace token file")
}
