package fs

import (
	"fmt"

	"github.com/gobwas/glob"
)

// FilterMatching keeps the entries whose base name matches pattern.
// An empty pattern keeps everything.
func FilterMatching(entries []Entry, pattern string) ([]Entry, error) {
	if pattern == "" {
		return entries, nil
	}

	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid match pattern %q: %w", pattern, err)
	}

	kept := entries[:0:0]
	for _, e := range entries {
		if g.Match(e.BaseName()) {
			kept = append(kept, e)
		}
	}
	if len(kept) == 0 {
		return nil, fmt.Errorf("%w matching %q", ErrNoFiles, pattern)
	}
	return kept, nil
}
