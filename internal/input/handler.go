package input

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	statepkg "github.com/kk-code-lab/qlnav/internal/state"
)

// Binding describes one entry of the key table for help output.
type Binding struct {
	Keys   string
	Action statepkg.Action
	Help   string
}

var bindings = []Binding{
	{Keys: "n", Action: statepkg.NextFileAction{}, Help: "preview next file"},
	{Keys: "p", Action: statepkg.PrevFileAction{}, Help: "preview previous file"},
	{Keys: "o, Enter", Action: statepkg.OpenFileAction{}, Help: "open file in default application"},
	{Keys: "q, w", Action: statepkg.QuitAction{}, Help: "close preview and quit"},
}

// Bindings returns the fixed key table.
func Bindings() []Binding {
	out := make([]Binding, len(bindings))
	copy(out, bindings)
	return out
}

// Classify converts a key event into an Action. Modifiers are ignored.
func Classify(ev *tcell.EventKey) (statepkg.Action, bool) {
	if ev == nil {
		return nil, false
	}

	switch ev.Key() {
	case tcell.KeyEnter:
		return statepkg.OpenFileAction{}, true
	case tcell.KeyRune:
		switch unicode.ToLower(ev.Rune()) {
		case 'n':
			return statepkg.NextFileAction{}, true
		case 'p':
			return statepkg.PrevFileAction{}, true
		case 'o':
			return statepkg.OpenFileAction{}, true
		case 'q', 'w':
			return statepkg.QuitAction{}, true
		}
	}
	return nil, false
}
