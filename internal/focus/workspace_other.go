//go:build !darwin

package focus

// NewWorkspaceQuery returns a Query that never identifies an application.
func NewWorkspaceQuery() Query {
	return Static(Unknown)
}
