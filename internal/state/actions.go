package state

// Action is the closed set of navigation commands a key can trigger.
type Action interface {
	isAction()
}

// ===== NAVIGATION ACTIONS =====

type NextFileAction struct{}
type PrevFileAction struct{}

// ===== FILE ACTIONS =====

type OpenFileAction struct{} // open current file in its default application

// ===== APPLICATION ACTIONS =====

type QuitAction struct{} // close the preview and end the session

func (NextFileAction) isAction() {}
func (PrevFileAction) isAction() {}
func (OpenFileAction) isAction() {}
func (QuitAction) isAction()     {}

// ActionName returns a short label used in logs.
func ActionName(a Action) string {
	switch a.(type) {
	case NextFileAction:
		return "next"
	case PrevFileAction:
		return "prev"
	case OpenFileAction:
		return "open"
	case QuitAction:
		return "quit"
	default:
		return "none"
	}
}
