package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/kk-code-lab/qlnav/internal/config"
	"github.com/kk-code-lab/qlnav/internal/focus"
	"github.com/kk-code-lab/qlnav/internal/preview"
	statepkg "github.com/kk-code-lab/qlnav/internal/state"
	"github.com/kk-code-lab/qlnav/internal/tap"
	"github.com/kk-code-lab/qlnav/internal/watch"
)

// Launcher starts and stops preview processes.
type Launcher interface {
	Launch(path string) (*preview.Handle, error)
	Terminate(h *preview.Handle)
	Open(path string) error
}

// EventTap is the installed global key filter and the loop that feeds it.
type EventTap interface {
	Run() error
	Stop()
	Close() error
}

// StatusSink receives a line for every file that gets previewed.
type StatusSink interface {
	Print(index, total int, name string)
}

// TapFactory installs a tap that calls h for every key-down.
type TapFactory func(h tap.Handler, logger logrus.FieldLogger) (EventTap, error)

// Options wires an Application.
type Options struct {
	Files        []statepkg.FileEntry
	BundleID     string // frontmost app id that enables key handling
	Intercept    string // config.InterceptRecognized or config.InterceptAll
	Launcher     Launcher
	Focus        focus.Query
	Availability watch.Availability
	Status       StatusSink
	Logger       logrus.FieldLogger
	NewTap       TapFactory
}

// Application represents the running navigator.
type Application struct {
	state     *statepkg.AppState
	preview   *preview.Handle
	launcher  Launcher
	focus     focus.Query
	avail     watch.Availability
	status    StatusSink
	logger    logrus.FieldLogger
	tap       EventTap
	bundleID  string
	intercept string
}

// DefaultTapFactory installs the platform tap.
func DefaultTapFactory(h tap.Handler, logger logrus.FieldLogger) (EventTap, error) {
	t, err := tap.New(h, logger)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// NewApplication installs the key tap and previews the first file. Nothing
// is launched if the tap cannot be installed.
func NewApplication(opts Options) (*Application, error) {
	state, err := statepkg.NewAppState(opts.Files)
	if err != nil {
		return nil, err
	}
	if opts.Launcher == nil {
		return nil, errors.New("no preview launcher configured")
	}

	app := &Application{
		state:     state,
		launcher:  opts.Launcher,
		focus:     opts.Focus,
		avail:     opts.Availability,
		status:    opts.Status,
		logger:    opts.Logger,
		bundleID:  opts.BundleID,
		intercept: opts.Intercept,
	}
	if app.logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		app.logger = l
	}
	if app.focus == nil {
		app.focus = focus.Static(focus.Unknown)
	}
	if app.intercept == "" {
		app.intercept = config.InterceptRecognized
	}

	newTap := opts.NewTap
	if newTap == nil {
		newTap = DefaultTapFactory
	}
	t, err := newTap(app.OnKeyDown, app.logger)
	if err != nil {
		return nil, fmt.Errorf("install event tap: %w", err)
	}
	app.tap = t

	first := state.CurrentFile()
	h, err := app.launcher.Launch(first.FullPath)
	if err != nil {
		_ = t.Close()
		return nil, err
	}
	app.preview = h
	app.reportPosition()
	return app, nil
}

// Close terminates a preview that is still running and removes the tap.
func (app *Application) Close() error {
	app.state.Exited = true
	if app.preview != nil {
		app.launcher.Terminate(app.preview)
		app.preview = nil
	}
	var errs []error
	if app.tap != nil {
		errs = append(errs, app.tap.Close())
	}
	if c, ok := app.avail.(io.Closer); ok {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// State exposes the navigation state for inspection.
func (app *Application) State() *statepkg.AppState {
	return app.state
}

func (app *Application) reportPosition() {
	index, total := app.state.Position()
	file := app.state.CurrentFile()
	app.logger.WithFields(logrus.Fields{
		"cursor": index,
		"path":   file.FullPath,
	}).Debug("cursor moved")
	if app.status != nil {
		app.status.Print(index, total, file.Name)
	}
}
