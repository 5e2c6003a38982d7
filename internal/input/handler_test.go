package input

import (
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/qlnav/internal/state"
)

func TestClassifyBindings(t *testing.T) {
	tests := []struct {
		name string
		ev   *tcell.EventKey
		want statepkg.Action
	}{
		{"n", tcell.NewEventKey(tcell.KeyRune, 'n', 0), statepkg.NextFileAction{}},
		{"N", tcell.NewEventKey(tcell.KeyRune, 'N', 0), statepkg.NextFileAction{}},
		{"p", tcell.NewEventKey(tcell.KeyRune, 'p', 0), statepkg.PrevFileAction{}},
		{"o", tcell.NewEventKey(tcell.KeyRune, 'o', 0), statepkg.OpenFileAction{}},
		{"enter", tcell.NewEventKey(tcell.KeyEnter, 0, 0), statepkg.OpenFileAction{}},
		{"q", tcell.NewEventKey(tcell.KeyRune, 'q', 0), statepkg.QuitAction{}},
		{"w", tcell.NewEventKey(tcell.KeyRune, 'w', 0), statepkg.QuitAction{}},
		{"cmd+w", tcell.NewEventKey(tcell.KeyRune, 'w', tcell.ModMeta), statepkg.QuitAction{}},
	}

	for _, tt := range tests {
		got, ok := Classify(tt.ev)
		if !ok {
			t.Fatalf("%s: expected an action", tt.name)
		}
		if got != tt.want {
			t.Fatalf("%s: expected %T, got %T", tt.name, tt.want, got)
		}
	}
}

func TestClassifyNoAction(t *testing.T) {
	for _, ev := range []*tcell.EventKey{
		nil,
		tcell.NewEventKey(tcell.KeyRune, 'x', 0),
		tcell.NewEventKey(tcell.KeyRune, ' ', 0),
		tcell.NewEventKey(tcell.KeyEscape, 0, 0),
		tcell.NewEventKey(tcell.KeyDown, 0, 0),
		tcell.NewEventKey(tcell.KeyNUL, 0, 0),
	} {
		if a, ok := Classify(ev); ok {
			t.Fatalf("expected no action for %v, got %T", ev, a)
		}
	}
}

// Every raw code must land on exactly one outcome.
func TestResolveAndClassifyTotal(t *testing.T) {
	counts := map[string]int{}
	for code := int64(math.MinInt16); code <= math.MaxInt16; code++ {
		action, ok := Classify(Resolve(code))
		if !ok {
			counts["none"]++
			continue
		}
		counts[statepkg.ActionName(action)]++
	}

	want := map[string]int{"next": 1, "prev": 1, "open": 2, "quit": 2}
	for name, n := range want {
		if counts[name] != n {
			t.Fatalf("expected %d codes for %s, got %d", n, name, counts[name])
		}
	}
	total := 0
	for _, n := range counts {
		total += n
	}
	if total != math.MaxInt16-math.MinInt16+1 {
		t.Fatalf("expected every code classified once, got %d", total)
	}
}

func TestBindingsCoverEveryAction(t *testing.T) {
	seen := map[string]bool{}
	for _, b := range Bindings() {
		seen[statepkg.ActionName(b.Action)] = true
	}
	for _, name := range []string{"next", "prev", "open", "quit"} {
		if !seen[name] {
			t.Fatalf("missing binding for %s", name)
		}
	}
}
