// Package preview starts and stops the external preview process and the
// "open with default application" helper.
package preview

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"time"

	"github.com/sirupsen/logrus"
)

// commandBuilder is overridable in tests.
var commandBuilder = exec.Command

// ErrNoCommand is returned when a controller has no program to run.
var ErrNoCommand = errors.New("no command configured")

// Handle identifies one launched preview process.
type Handle struct {
	Path    string
	PID     int
	Started time.Time

	proc *os.Process
	done chan struct{}
}

// Exited reports whether the process has been reaped.
func (h *Handle) Exited() bool {
	if h == nil || h.done == nil {
		return true
	}
	select {
	case <-h.done:
		return true
	default:
		return false
	}
}

// Controller launches preview and open processes.
type Controller struct {
	previewCmd []string // program followed by leading args; the path is appended
	openCmd    []string
	logger     logrus.FieldLogger
}

// NewController returns a Controller running previewCmd for previews and
// openCmd for the open action.
func NewController(previewCmd, openCmd []string, logger logrus.FieldLogger) *Controller {
	if logger == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		logger = l
	}
	return &Controller{
		previewCmd: previewCmd,
		openCmd:    openCmd,
		logger:     logger,
	}
}

// Launch starts a preview of path and returns without waiting. The child's
// standard streams go to the null device.
func (c *Controller) Launch(path string) (*Handle, error) {
	args := withPath(c.previewCmd, path)
	if len(args) == 0 {
		return nil, fmt.Errorf("preview %s: %w", path, ErrNoCommand)
	}

	cmd := commandBuilder(args[0], args[1:]...)
	cmd.Stdin = nil
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("preview %s: %w", path, err)
	}

	h := &Handle{
		Path:    path,
		PID:     cmd.Process.Pid,
		Started: time.Now(),
		proc:    cmd.Process,
		done:    make(chan struct{}),
	}
	go reap(cmd, h.done)

	c.logger.WithFields(logrus.Fields{"path": path, "pid": h.PID}).Info("preview started")
	return h, nil
}

// Terminate asks the preview behind h to stop. It does not wait, and a
// process that already exited is not an error.
func (c *Controller) Terminate(h *Handle) {
	if h == nil || h.proc == nil {
		return
	}
	if h.Exited() {
		c.logger.WithField("pid", h.PID).Debug("preview already exited")
		return
	}
	if err := h.proc.Signal(terminateSignal); err != nil {
		c.logger.WithFields(logrus.Fields{"pid": h.PID, "error": err}).Debug("terminate preview")
		return
	}
	c.logger.WithFields(logrus.Fields{"path": h.Path, "pid": h.PID}).Debug("preview terminated")
}

// Open hands path to the default-application launcher. The child is not
// tracked; its output goes to this process's stdout and stderr.
func (c *Controller) Open(path string) error {
	args := withPath(c.openCmd, path)
	if len(args) == 0 {
		return fmt.Errorf("open %s: %w", path, ErrNoCommand)
	}

	cmd := commandBuilder(args[0], args[1:]...)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open %s: %w", path, err)
	}
	go reap(cmd, nil)

	c.logger.WithFields(logrus.Fields{"path": path, "pid": cmd.Process.Pid}).Info("opened in default application")
	return nil
}

func reap(cmd *exec.Cmd, done chan struct{}) {
	_ = cmd.Wait()
	if done != nil {
		close(done)
	}
}

func withPath(base []string, path string) []string {
	if len(base) == 0 || base[0] == "" {
		return nil
	}
	args := make([]string, len(base)+1)
	copy(args, base)
	args[len(base)] = path
	return args
}
