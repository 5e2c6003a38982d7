package fs

import (
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
)

// Entry is one file in the navigation list.
type Entry struct {
	Name     string // display name, as given on the command line
	FullPath string
}

// NewEntry resolves arg against cwd. Absolute arguments are kept as-is.
func NewEntry(cwd, arg string) Entry {
	full := arg
	if !filepath.IsAbs(full) {
		full = filepath.Join(cwd, arg)
	}
	return Entry{
		Name:     norm.NFC.String(arg),
		FullPath: filepath.Clean(full),
	}
}

// BaseName returns the NFC-normalized final path element.
func (e Entry) BaseName() string {
	return norm.NFC.String(filepath.Base(e.FullPath))
}

// Exists reports whether path refers to an existing filesystem entry.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
