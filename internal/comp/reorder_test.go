package comp_test

import (
	"reflect"
	"testing"

	"slate/internal/comp"
)

func TestMoveItemAddressing(t *testing.T) {
	base := []string{"A", "B", "C", "D"}
	index := func(id string) int {
		for i, v := range base {
			if v == id {
				return i
			}
		}
		t.Fatalf("no item %q", id)
		return -1
	}

	cases := []struct {
		name string
		item string
		move comp.Move
		want []string
	}{
		{
			name: "before sibling crossing own position",
			item: "C",
			move: comp.Move{Before: true, Mode: comp.MoveSibling, SiblingID: "B"},
			want: []string{"A", "C", "B", "D"},
		},
		{
			name: "after absolute end clamps to post-removal bounds",
			item: "A",
			move: comp.Move{Mode: comp.MoveAbsolute, Position: 3},
			want: []string{"B", "C", "A", "D"},
		},
		{
			name: "before absolute first",
			item: "D",
			move: comp.Move{Before: true, Mode: comp.MoveAbsolute, Position: 1},
			want: []string{"D", "A", "B", "C"},
		},
		{
			name: "relative two slots earlier",
			item: "D",
			move: comp.Move{Before: true, Mode: comp.MoveRelative, Position: 2},
			want: []string{"A", "D", "B", "C"},
		},
		{
			name: "relative past the end clamps",
			item: "B",
			move: comp.Move{Mode: comp.MoveRelative, Position: 10},
			want: []string{"A", "C", "B", "D"},
		},
		{
			name: "after last sibling lands at last slot",
			item: "A",
			move: comp.Move{Mode: comp.MoveSibling, SiblingID: "D"},
			want: []string{"B", "C", "A", "D"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			from := index(tc.item)
			sibling := -1
			if tc.move.Mode == comp.MoveSibling {
				sibling = index(tc.move.SiblingID)
			}
			target := tc.move.TargetIndex(from, sibling)
			got := comp.MoveItem(base, from, target)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			if !reflect.DeepEqual(base, []string{"A", "B", "C", "D"}) {
				t.Fatalf("input slice mutated: %v", base)
			}
		})
	}
}

func TestMoveItemSingleEntry(t *testing.T) {
	got := comp.MoveItem([]string{"A"}, 0, 5)
	if !reflect.DeepEqual(got, []string{"A"}) {
		t.Fatalf("got %v", got)
	}
}

func TestMoveAudioSharesUntouchedPages(t *testing.T) {
	project := comp.NewProject("demo", 30, 1920, 1080)
	project = comp.AppendAudio(project, comp.NewAudio("a.mp3", 30))
	project = comp.AppendAudio(project, comp.NewAudio("b.mp3", 30))

	moved := comp.MoveAudio(project, 1, 0)
	if moved.Composition.Audios[0].Src != "b.mp3" {
		t.Fatalf("expected b.mp3 first, got %+v", moved.Composition.Audios)
	}
	if project.Composition.Audios[0].Src != "a.mp3" {
		t.Fatal("original project mutated")
	}
	if len(moved.Composition.Pages) != 1 || moved.Composition.Pages[0].ID != project.Composition.Pages[0].ID {
		t.Fatal("pages should carry over untouched")
	}
}
