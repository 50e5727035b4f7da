package client

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// removeStaged deletes a staged download.
var removeStaged = os.Remove

// Downloader saves binary responses (CSV exports) to disk.
//
// The blob is first staged in a temporary file next to the destination, then
// handed to Save. The staged file is released exactly once whatever Save
// does, including panicking.
type Downloader struct {
	// Save moves the staged file to filename. Defaults to os.Rename.
	Save func(staged, filename string) error
}

// DownloadFile writes blob to filename with the default Downloader.
func DownloadFile(blob []byte, filename string) error {
	return Downloader{}.Download(blob, filename)
}

// Download stages blob and saves it as filename.
func (d Downloader) Download(blob []byte, filename string) error {
	if filename == "" {
		return errors.New("download: filename cannot be empty")
	}
	staged, release, err := stage(blob, filepath.Dir(filename))
	if err != nil {
		return err
	}
	defer release()

	save := d.Save
	if save == nil {
		save = os.Rename
	}
	if err := save(staged, filename); err != nil {
		return fmt.Errorf("download %s: %w", filename, err)
	}
	return nil
}

// stage writes blob to a temp file in dir and returns its path with an
// idempotent release func.
func stage(blob []byte, dir string) (string, func(), error) {
	f, err := os.CreateTemp(dir, ".fenix-download-*")
	if err != nil {
		return "", nil, fmt.Errorf("stage download: %w", err)
	}
	path := f.Name()
	var once sync.Once
	release := func() {
		once.Do(func() { _ = removeStaged(path) })
	}

	if _, err := f.Write(blob); err != nil {
		_ = f.Close()
		release()
		return "", nil, fmt.Errorf("stage download: %w", err)
	}
	if err := f.Close(); err != nil {
		release()
		return "", nil, fmt.Errorf("stage download: %w", err)
	}
	return path, release, nil
}
