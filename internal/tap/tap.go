// Package tap installs a session-wide key-down filter and runs the event loop
// that feeds it.
package tap

import (
	"errors"

	"github.com/sirupsen/logrus"
)

// Handler receives the raw virtual key code of every key-down event and
// returns true to consume the event.
type Handler func(code int64) bool

var (
	// ErrPermission is returned when the OS refuses to create the tap.
	ErrPermission = errors.New("cannot install keyboard event tap; grant this terminal Accessibility and Input Monitoring access in System Settings > Privacy & Security")
	// ErrUnsupported is returned on platforms without a tap implementation.
	ErrUnsupported = errors.New("global keyboard tap is only available on macOS")
)

// Invoke runs h for code and never panics. A panicking handler passes the
// event through.
func Invoke(h Handler, code int64, logger logrus.FieldLogger) (consume bool) {
	if h == nil {
		return false
	}
	defer func() {
		if r := recover(); r != nil {
			consume = false
			if logger != nil {
				logger.WithFields(logrus.Fields{
					"code":  code,
					"panic": r,
				}).Error("key handler panicked, passing event through")
			}
		}
	}()
	return h(code)
}
