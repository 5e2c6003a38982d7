package state

// Target returns the index delta steps away from the cursor. The second
// result is false when that index falls outside the list; there is no
// wraparound at either end.
func (s *AppState) Target(delta int) (int, bool) {
	next := s.Cursor + delta
	if next < 0 || next >= len(s.Files) {
		return s.Cursor, false
	}
	return next, true
}

// MoveTo sets the cursor. Out-of-range indices are ignored.
func (s *AppState) MoveTo(index int) bool {
	if index < 0 || index >= len(s.Files) {
		return false
	}
	s.Cursor = index
	return true
}

// DeltaFor maps a navigation action to a cursor step.
func DeltaFor(a Action) (int, bool) {
	switch a.(type) {
	case NextFileAction:
		return 1, true
	case PrevFileAction:
		return -1, true
	default:
		return 0, false
	}
}
