package app

import (
	"github.com/sirupsen/logrus"

	statepkg "github.com/kk-code-lab/qlnav/internal/state"
)

func (app *Application) handleAction(action statepkg.Action) {
	if action == nil || app.state.Exited {
		return
	}

	switch action.(type) {
	case statepkg.NextFileAction, statepkg.PrevFileAction:
		delta, _ := statepkg.DeltaFor(action)
		app.moveBy(delta)
	case statepkg.OpenFileAction:
		app.openCurrent()
	case statepkg.QuitAction:
		app.quit()
	}
}

// moveBy replaces the preview with the file delta steps away. The cursor
// only changes once the new preview has been started.
func (app *Application) moveBy(delta int) {
	target, ok := app.state.Target(delta)
	if !ok {
		app.logger.WithField("cursor", app.state.Cursor).Debug("end of list")
		return
	}

	file := app.state.Files[target]
	if app.avail != nil && !app.avail.Available(file.FullPath) {
		app.logger.WithField("path", file.FullPath).Warn("file no longer exists, staying on current file")
		return
	}

	app.launcher.Terminate(app.preview)
	app.preview = nil

	h, err := app.launcher.Launch(file.FullPath)
	if err != nil {
		app.logger.WithFields(logrus.Fields{
			"path":  file.FullPath,
			"error": err,
		}).Error("failed to start preview")
		return
	}
	app.preview = h
	app.state.MoveTo(target)
	app.reportPosition()
}

func (app *Application) openCurrent() {
	file := app.state.CurrentFile()
	if err := app.launcher.Open(file.FullPath); err != nil {
		app.logger.WithFields(logrus.Fields{
			"path":  file.FullPath,
			"error": err,
		}).Error("failed to open file")
	}
}

func (app *Application) quit() {
	app.state.Exited = true
	app.launcher.Terminate(app.preview)
	app.preview = nil
	if app.tap != nil {
		app.tap.Stop()
	}
}
