package testsupport

import (
	"context"
	"testing"

	"slate/internal/comp"
	"slate/internal/config"
	"slate/internal/projectstore"
)

// MustOpenStore opens a projectstore.Store for tests and registers cleanup.
func MustOpenStore(t testing.TB, cfg *config.Config) *projectstore.Store {
	t.Helper()

	store, err := projectstore.Open(cfg)
	if err != nil {
		t.Fatalf("projectstore.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// NewProject creates and persists a fresh project for tests.
func NewProject(t testing.TB, store *projectstore.Store, name string) *comp.Project {
	t.Helper()

	project := comp.NewProject(name, 30, 1920, 1080)
	if err := store.CreateProject(context.Background(), project); err != nil {
		t.Fatalf("store.CreateProject: %v", err)
	}
	return project
}
