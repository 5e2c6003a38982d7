// Package focus answers which application currently receives keyboard input.
package focus

// Unknown is returned when the frontmost application cannot be identified.
// It never equals a real bundle identifier.
const Unknown = ""

// Query reports the bundle identifier of the frontmost application.
type Query interface {
	FrontmostBundleID() string
}

// Func adapts a plain function to Query.
type Func func() string

func (f Func) FrontmostBundleID() string {
	if f == nil {
		return Unknown
	}
	return f()
}

// Static always reports the same identifier.
type Static string

func (s Static) FrontmostBundleID() string {
	return string(s)
}

// Is reports whether q currently reports bundleID. An Unknown answer never
// matches, even against an empty bundleID.
func Is(q Query, bundleID string) bool {
	if q == nil || bundleID == Unknown {
		return false
	}
	id := q.FrontmostBundleID()
	return id != Unknown && id == bundleID
}
