package state

import (
	fsutil "github.com/kk-code-lab/qlnav/internal/fs"
)

// FileEntry mirrors fs.Entry so app code can rely on a stable type.
type FileEntry = fsutil.Entry

// AppState is the single source of truth for navigation.
type AppState struct {
	Files  []FileEntry // navigation order, never empty
	Cursor int         // index into Files
	Exited bool        // set once; no further actions apply
}

// NewAppState returns a state positioned on the first file.
func NewAppState(files []FileEntry) (*AppState, error) {
	if len(files) == 0 {
		return nil, fsutil.ErrNoFiles
	}
	return &AppState{Files: files}, nil
}

// CurrentFile returns the entry under the cursor.
func (s *AppState) CurrentFile() FileEntry {
	return s.Files[s.Cursor]
}

// Position returns the cursor and the list length.
func (s *AppState) Position() (int, int) {
	return s.Cursor, len(s.Files)
}
