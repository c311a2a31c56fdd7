package server

import (
	"context"
	"os"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/qazaqnlp/qural/pkg/storage"
)

func setupTestStorage(t *testing.T) (storage.Storage, func()) {
	t.Helper()

	tmpFile, err := os.CreateTemp("", "server-test-*.db")
	if err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}
	tmpFile.Close()

	store, err := storage.NewSQLiteStorage(storage.Config{DatabasePath: tmpFile.Name()})
	if err != nil {
		os.Remove(tmpFile.Name())
		t.Fatalf("failed to create storage: %v", err)
	}

	cleanup := func() {
		store.Close()
		os.Remove(tmpFile.Name())
	}

	return store, cleanup
}

func TestNewServer(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	impl := &mcp.Implementation{
		Name:    "test-server",
		Version: "1.0.0",
	}

	srv := NewServer(impl, store)
	if srv == nil {
		t.Fatal("expected non-nil server")
	}
	if srv.Storage() != store {
		t.Error("expected server to carry the storage it was given")
	}
}

func TestServer_Shutdown(t *testing.T) {
	store, cleanup := setupTestStorage(t)
	defer cleanup()

	srv := NewServer(&mcp.Implementation{Name: "test", Version: "0"}, store)
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
}

func TestServer_ShutdownWithoutStorage(t *testing.T) {
	srv := NewServer(&mcp.Implementation{Name: "test", Version: "0"}, nil)
	if err := srv.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown without storage should be a no-op, got %v", err)
	}
}
