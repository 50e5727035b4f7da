package client

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// countRemovals swaps removeStaged for a counting wrapper for the test's duration.
func countRemovals(t *testing.T) map[string]int {
	t.Helper()
	counts := map[string]int{}
	orig := removeStaged
	removeStaged = func(name string) error {
		counts[name]++
		return orig(name)
	}
	t.Cleanup(func() { removeStaged = orig })
	return counts
}

func TestDownloadFile_WritesBlob(t *testing.T) {
	dir := t.TempDir()
	dest := filepath.Join(dir, "productos.csv")
	if err := DownloadFile([]byte("id,name\n1,Café\n"), dest); err != nil {
		t.Fatalf("DownloadFile: %v", err)
	}
	got, err := os.ReadFile(dest)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != "id,name\n1,Café\n" {
		t.Fatalf("content = %q", got)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 1 {
		t.Fatalf("staged file left behind: %v", entries)
	}
}

func TestDownload_ReleasesOnceWhenSaveFails(t *testing.T) {
	counts := countRemovals(t)
	dir := t.TempDir()
	var staged string
	d := Downloader{Save: func(src, _ string) error {
		staged = src
		return errors.New("disk full")
	}}
	if err := d.Download([]byte("x"), filepath.Join(dir, "out.csv")); err == nil {
		t.Fatal("expected save error")
	}
	if counts[staged] != 1 {
		t.Fatalf("staged file released %d times", counts[staged])
	}
	if _, err := os.Stat(staged); !os.IsNotExist(err) {
		t.Fatalf("staged file still present: %v", err)
	}
}

func TestDownload_ReleasesOnceWhenSavePanics(t *testing.T) {
	counts := countRemovals(t)
	dir := t.TempDir()
	var staged string
	d := Downloader{Save: func(src, _ string) error {
		staged = src
		panic("click handler exploded")
	}}
	func() {
		defer func() {
			if recover() == nil {
				t.Fatal("expected panic to propagate")
			}
		}()
		_ = d.Download([]byte("x"), filepath.Join(dir, "out.csv"))
	}()
	if counts[staged] != 1 {
		t.Fatalf("staged file released %d times", counts[staged])
	}
	if _, err := os.Stat(staged); !os.IsNotExist(err) {
		t.Fatalf("staged file still present: %v", err)
	}
}

func TestDownload_ReleasesOnceOnSuccess(t *testing.T) {
	counts := countRemovals(t)
	dir := t.TempDir()
	var staged string
	d := Downloader{Save: func(src, dst string) error {
		staged = src
		return os.Rename(src, dst)
	}}
	if err := d.Download([]byte("x"), filepath.Join(dir, "out.csv")); err != nil {
		t.Fatalf("Download: %v", err)
	}
	if counts[staged] != 1 {
		t.Fatalf("staged file released %d times", counts[staged])
	}
}

func TestDownload_EmptyFilename(t *testing.T) {
	if err := DownloadFile([]byte("x"), ""); err == nil {
		t.Fatal("expected error for empty filename")
	}
}
