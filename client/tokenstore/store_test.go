package tokenstore

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestMemory_Lifecycle(t *testing.T) {
	t.Parallel()
	m := &Memory{}
	if _, ok := Token(m); ok {
		t.Fatal("zero store must be unauthenticated")
	}
	_ = m.Set(Key, "abc")
	if tok, ok := Token(m); !ok || tok != "abc" {
		t.Fatalf("Token = %q, %v", tok, ok)
	}
	_ = m.Delete(Key)
	if _, ok := Token(m); ok {
		t.Fatal("token must be gone after Delete")
	}
}

func TestToken_EmptyValueIsAbsent(t *testing.T) {
	t.Parallel()
	if _, ok := Token(NewMemory("")); ok {
		t.Fatal("empty token must count as absent")
	}
	if _, ok := Token(nil); ok {
		t.Fatal("nil store must count as absent")
	}
}

func TestMemory_Concurrent(t *testing.T) {
	t.Parallel()
	m := NewMemory("t0")
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() { defer wg.Done(); _, _ = Token(m) }()
		go func() { defer wg.Done(); _ = m.Set(Key, "t1") }()
	}
	wg.Wait()
	if tok, _ := Token(m); tok != "t1" {
		t.Fatalf("unexpected token %q", tok)
	}
}

func TestFile_PersistsAcrossOpen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "nested", "token.json")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := f.Set(Key, "secret"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("perm = %v", info.Mode().Perm())
	}

	again, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if tok, ok := Token(again); !ok || tok != "secret" {
		t.Fatalf("Token = %q, %v", tok, ok)
	}
	if err := again.Delete(Key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	third, _ := OpenFile(path)
	if _, ok := Token(third); ok {
		t.Fatal("deleted token must not persist")
	}
}

func TestFile_Corrupt(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "token.json")
	if err := os.WriteFile(path, []byte("{nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := OpenFile(path); err == nil {
		t.Fatal("expected decode error")
	}
}

func TestFile_DeleteMissingKeyIsNoop(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "token.json")
	f, _ := OpenFile(path)
	if err := f.Delete(Key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("no file must be written when nothing changed")
	}
}

func TestFile_SharedPathSeesOtherWriters(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "token.json")
	a, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile a: %v", err)
	}
	b, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile b: %v", err)
	}

	if err := a.Set(Key, "old"); err != nil {
		t.Fatalf("a.Set: %v", err)
	}
	if err := b.Set(Key, "fresh"); err != nil {
		t.Fatalf("b.Set: %v", err)
	}
	if tok, _ := Token(a); tok != "fresh" {
		t.Fatalf("a sees %q, want the token b wrote", tok)
	}

	// A write through a must merge with what b stored.
	if err := a.Set("other", "x"); err != nil {
		t.Fatalf("a.Set other: %v", err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"authToken":"fresh","other":"x"}` {
		t.Fatalf("file = %s", raw)
	}
}

func TestFile_DeleteClearsTokenWrittenAfterOpen(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "token.json")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := os.WriteFile(path, []byte(`{"authToken":"external"}`), 0o600); err != nil {
		t.Fatal(err)
	}
	if tok, ok := Token(f); !ok || tok != "external" {
		t.Fatalf("Token = %q, %v", tok, ok)
	}
	if err := f.Delete(Key); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	again, err := OpenFile(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if _, ok := Token(again); ok {
		t.Fatal("token written after open must be cleared by Delete")
	}
}

func TestFile_CorruptAfterOpenIsUnauthenticated(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "token.json")
	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile: %v", err)
	}
	if err := os.WriteFile(path, []byte("{nope"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, ok := Token(f); ok {
		t.Fatal("undecodable file must read as no token")
	}
	if err := f.Set(Key, "x"); err == nil {
		t.Fatal("Set must not overwrite an undecodable file")
	}
}
