//go:build darwin

package tap

/*
#cgo LDFLAGS: -framework ApplicationServices -framework CoreFoundation
#include "tap_darwin.h"
*/
import "C"

import (
	"runtime"
	"runtime/cgo"
	"sync"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// runSlice bounds how long Run can miss a Stop issued before the loop started.
const runSlice = 0.5

// Tap is an installed CGEventTap. New, Run and Close must be called from the
// main goroutine with the OS thread locked.
type Tap struct {
	handler Handler
	logger  logrus.FieldLogger
	ref     *C.qlnavTap
	handle  cgo.Handle

	stopped   atomic.Bool
	closeOnce sync.Once
	mu        sync.Mutex // guards ref against Stop racing Close
}

// New installs the tap on the current thread's run loop. It fails with
// ErrPermission when the process is not trusted for event monitoring.
func New(h Handler, logger logrus.FieldLogger) (*Tap, error) {
	runtime.LockOSThread()

	t := &Tap{handler: h, logger: logger}
	t.handle = cgo.NewHandle(t)
	t.ref = C.qlnavTapCreate(C.uintptr_t(t.handle))
	if t.ref == nil {
		t.handle.Delete()
		return nil, ErrPermission
	}
	if logger != nil {
		logger.Debug("keyboard event tap installed")
	}
	return t, nil
}

// Run services the run loop until Stop is called.
func (t *Tap) Run() error {
	for !t.stopped.Load() {
		C.qlnavTapRunOnce(t.ref, C.double(runSlice))
	}
	return nil
}

// Stop makes Run return. Safe from any goroutine and from the handler.
func (t *Tap) Stop() {
	if t.stopped.Swap(true) {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.ref != nil {
		C.qlnavTapStop(t.ref)
	}
}

// Close disables and releases the tap.
func (t *Tap) Close() error {
	t.closeOnce.Do(func() {
		t.stopped.Store(true)
		t.mu.Lock()
		C.qlnavTapDestroy(t.ref)
		t.ref = nil
		t.mu.Unlock()
		t.handle.Delete()
		if t.logger != nil {
			t.logger.Debug("keyboard event tap removed")
		}
	})
	return nil
}

//export qlnavKeyDown
func qlnavKeyDown(handle C.uintptr_t, code C.int64_t) C.bool {
	t, ok := cgo.Handle(handle).Value().(*Tap)
	if !ok || t.stopped.Load() {
		return false
	}
	return C.bool(Invoke(t.handler, int64(code), t.logger))
}
