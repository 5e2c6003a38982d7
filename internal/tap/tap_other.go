//go:build !darwin

package tap

import "github.com/sirupsen/logrus"

// Tap is unavailable on this platform.
type Tap struct{}

// New always fails with ErrUnsupported.
func New(Handler, logrus.FieldLogger) (*Tap, error) {
	return nil, ErrUnsupported
}

func (*Tap) Run() error   { return ErrUnsupported }
func (*Tap) Stop()        {}
func (*Tap) Close() error { return nil }
