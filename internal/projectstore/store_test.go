package projectstore_test

import (
	"context"
	"errors"
	"testing"

	"slate/internal/comp"
	"slate/internal/interp"
	"slate/internal/projectstore"
	"slate/internal/testsupport"
)

func TestProjectRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	project := testsupport.NewProject(t, store, "Launch video")
	project = comp.AppendAudio(project, comp.NewAudio("music.mp3", 30))
	if err := store.SaveProject(ctx, project); err != nil {
		t.Fatalf("SaveProject: %v", err)
	}

	loaded, err := store.GetProject(ctx, project.ID)
	if err != nil {
		t.Fatalf("GetProject: %v", err)
	}
	if loaded.Name != "Launch video" {
		t.Fatalf("name = %q", loaded.Name)
	}
	if len(loaded.Composition.Audios) != 1 || loaded.Composition.Audios[0].Src != "music.mp3" {
		t.Fatalf("audios = %+v", loaded.Composition.Audios)
	}
	if loaded.Composition.FPS != 30 {
		t.Fatalf("fps = %d", loaded.Composition.FPS)
	}
}

func TestGetProjectMissing(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	_, err := store.GetProject(context.Background(), "prj-missing")
	if !errors.Is(err, projectstore.ErrNoProject) {
		t.Fatalf("err = %v, want ErrNoProject", err)
	}
}

func TestSaveProjectRequiresExistingRow(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)

	project := comp.NewProject("unsaved", 30, 1920, 1080)
	err := store.SaveProject(context.Background(), project)
	if !errors.Is(err, projectstore.ErrNoProject) {
		t.Fatalf("err = %v, want ErrNoProject", err)
	}
}

func TestListProjectsOrdering(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	first := testsupport.NewProject(t, store, "first")
	second := testsupport.NewProject(t, store, "second")
	if err := store.SaveProject(ctx, first); err != nil {
		t.Fatalf("SaveProject: %v", err)
	}

	summaries, err := store.ListProjects(ctx)
	if err != nil {
		t.Fatalf("ListProjects: %v", err)
	}
	if len(summaries) != 2 {
		t.Fatalf("expected two projects, got %d", len(summaries))
	}
	if summaries[0].ID != first.ID || summaries[1].ID != second.ID {
		t.Fatalf("unexpected order: %+v", summaries)
	}
}

func TestDeleteProject(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	project := testsupport.NewProject(t, store, "gone soon")
	if err := store.DeleteProject(ctx, project.ID); err != nil {
		t.Fatalf("DeleteProject: %v", err)
	}
	if err := store.DeleteProject(ctx, project.ID); !errors.Is(err, projectstore.ErrNoProject) {
		t.Fatalf("second delete err = %v, want ErrNoProject", err)
	}
}

func TestFileMetadataRoundTrip(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenStore(t, cfg)
	ctx := context.Background()

	added, err := store.AddFile(ctx, interp.FileInfo{
		Name:      "logo.png",
		Kind:      "image",
		Src:       "uploads/logo.png",
		SizeBytes: 2048,
		MimeType:  "image/png",
		DataURL:   "data:image/png;base64,AAAA",
	})
	if err != nil {
		t.Fatalf("AddFile: %v", err)
	}
	if added.ID == "" {
		t.Fatal("expected an assigned id")
	}

	files, err := store.GetAllFiles(ctx)
	if err != nil {
		t.Fatalf("GetAllFiles: %v", err)
	}
	if len(files) != 1 {
		t.Fatalf("expected one file, got %d", len(files))
	}
	if files[0].Name != "logo.png" || files[0].SizeBytes != 2048 {
		t.Fatalf("unexpected file: %+v", files[0])
	}
	if files[0].DataURL == "" {
		t.Fatal("store must keep the payload; stripping is the listing command's job")
	}

	if err := store.DeleteFile(ctx, added.ID); err != nil {
		t.Fatalf("DeleteFile: %v", err)
	}
	if err := store.DeleteFile(ctx, added.ID); err == nil {
		t.Fatal("expected error deleting missing file")
	}
}
