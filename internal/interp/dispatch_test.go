package interp_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"slate/internal/comp"
	"slate/internal/interp"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testProject() *comp.Project {
	project := comp.NewProject("demo", 30, 1920, 1080)
	return project
}

func dispatch(t *testing.T, project *comp.Project, tokens ...string) (interp.Result, *comp.Project) {
	t.Helper()
	registry := interp.NewDefaultRegistry()
	return registry.Dispatch(context.Background(), tokens, interp.Env{Project: project, Logger: testLogger()})
}

func TestDispatchUnknownCommand(t *testing.T) {
	result, updated := dispatch(t, testProject(), "/does-not-exist")
	if result.Success || result.Handled {
		t.Fatalf("expected unhandled failure, got %+v", result)
	}
	if updated != nil {
		t.Fatal("document must be unchanged")
	}
}

func TestDispatchEmptyTokens(t *testing.T) {
	result, updated := dispatch(t, testProject())
	if result.Success || result.Handled || updated != nil {
		t.Fatalf("expected unhandled failure, got %+v", result)
	}
}

func TestDispatchUnknownFlagIsHandledFailure(t *testing.T) {
	result, updated := dispatch(t, testProject(), "/new-audio", "--src", "a.mp3", "--wat", "1")
	if result.Success {
		t.Fatal("expected failure")
	}
	if !result.Handled {
		t.Fatal("a recognized command must report handled=true")
	}
	if updated != nil {
		t.Fatal("document must be unchanged")
	}
}

func TestDispatchWithoutProject(t *testing.T) {
	result, updated := dispatch(t, nil, "/ls-comp")
	if result.Success || !result.Handled || updated != nil {
		t.Fatalf("expected handled failure without project, got %+v", result)
	}
}

func TestDispatchStripsSlashAndNormalizesCase(t *testing.T) {
	result, updated := dispatch(t, testProject(), "LS-COMP")
	if !result.Success {
		t.Fatalf("expected success, got %q", result.Message)
	}
	if updated != nil {
		t.Fatal("listing must not change the document")
	}
}

func TestDispatchRecoversFromPanic(t *testing.T) {
	registry := interp.NewDefaultRegistry()
	registry.Register(interp.Command{
		Name: "boom",
		Run: func(*interp.Context) (*interp.Outcome, error) {
			panic("kaboom")
		},
	})
	result, updated := registry.Dispatch(context.Background(), []string{"/boom"}, interp.Env{Logger: testLogger()})
	if result.Success || !result.Handled {
		t.Fatalf("expected handled failure, got %+v", result)
	}
	if updated != nil {
		t.Fatal("panicking command must not return a document")
	}
}

func TestHelpListsEveryCommand(t *testing.T) {
	result, _ := dispatch(t, nil, "/help")
	if !result.Success {
		t.Fatalf("help failed: %q", result.Message)
	}
	for _, name := range []string{"/new-audio", "/set-element", "/ls-notes", "/rm-page"} {
		if !strings.Contains(result.Message, name) {
			t.Fatalf("help output missing %s:\n%s", name, result.Message)
		}
	}
}
