package app

import (
	"github.com/sirupsen/logrus"

	"github.com/kk-code-lab/qlnav/internal/config"
	"github.com/kk-code-lab/qlnav/internal/focus"
	"github.com/kk-code-lab/qlnav/internal/input"
	statepkg "github.com/kk-code-lab/qlnav/internal/state"
)

// OnKeyDown decides the fate of one global key-down event and returns true
// to consume it. It is inert unless the preview window is frontmost.
func (app *Application) OnKeyDown(code int64) bool {
	if app.state.Exited {
		return false
	}
	if !focus.Is(app.focus, app.bundleID) {
		return false
	}

	ev := input.Resolve(code)
	action, ok := input.Classify(ev)
	if !ok {
		consume := app.intercept == config.InterceptAll
		app.logger.WithFields(logrus.Fields{
			"code":    code,
			"key":     input.KeyName(ev),
			"consume": consume,
		}).Debug("unbound key")
		return consume
	}

	app.logger.WithFields(logrus.Fields{
		"key":    input.KeyName(ev),
		"action": statepkg.ActionName(action),
	}).Debug("key action")
	app.handleAction(action)
	return true
}
