package fs

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoFiles is returned when the navigation list would be empty.
var ErrNoFiles = errors.New("no files to preview")

// MissingError lists the arguments that did not resolve to an existing path.
type MissingError struct {
	Paths []string
}

func (e *MissingError) Error() string {
	quoted := make([]string, len(e.Paths))
	for i, p := range e.Paths {
		quoted[i] = fmt.Sprintf("%q", p)
	}
	if len(quoted) == 1 {
		return fmt.Sprintf("%s does not exist", quoted[0])
	}
	return fmt.Sprintf("%s do not exist", strings.Join(quoted, ", "))
}

// existsFn is overridable in tests.
var existsFn = Exists

// ResolveList turns command-line arguments into the ordered navigation list.
// Every argument is checked; all missing ones are reported together.
func ResolveList(cwd string, args []string) ([]Entry, error) {
	if len(args) == 0 {
		return nil, ErrNoFiles
	}

	entries := make([]Entry, 0, len(args))
	var missing []string
	for _, arg := range args {
		entry := NewEntry(cwd, arg)
		if !existsFn(entry.FullPath) {
			missing = append(missing, entry.FullPath)
			continue
		}
		entries = append(entries, entry)
	}

	if len(missing) > 0 {
		return nil, &MissingError{Paths: missing}
	}
	return entries, nil
}
