package blob

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDiskStorePut(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "uploads")
	store, err := NewDiskStore(dir)
	if err != nil {
		t.Fatalf("NewDiskStore failed: %v", err)
	}

	data := []byte("\x89PNG fake image")
	path, err := store.Put(context.Background(), data, "../../etc/Beach.PNG")
	if err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("blob written outside upload dir: %s", path)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Errorf("expected lowercased .png extension, got %s", path)
	}
	if strings.Contains(path, "Beach") {
		t.Errorf("client file name leaked into path: %s", path)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if !bytes.Equal(got, data) {
		t.Error("stored content differs from input")
	}
}

func TestDiskStoreRejectsUnknownTypes(t *testing.T) {
	store, err := NewDiskStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewDiskStore failed: %v", err)
	}

	for _, name := range []string{"script.sh", "noextension", "archive.tar.gz"} {
		if _, err := store.Put(context.Background(), []byte("x"), name); err == nil {
			t.Errorf("Put(%q) succeeded, want error", name)
		}
	}
}
