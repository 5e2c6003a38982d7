package app

import (
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"github.com/kk-code-lab/qlnav/internal/config"
	"github.com/kk-code-lab/qlnav/internal/focus"
	"github.com/kk-code-lab/qlnav/internal/preview"
	statepkg "github.com/kk-code-lab/qlnav/internal/state"
	"github.com/kk-code-lab/qlnav/internal/tap"
)

// macOS virtual key codes used by the tests.
const (
	codeA      int64 = 0x00
	codeQ      int64 = 0x0C
	codeW      int64 = 0x0D
	codeO      int64 = 0x1F
	codeP      int64 = 0x23
	codeReturn int64 = 0x24
	codeN      int64 = 0x2D
	codeSpace  int64 = 0x31
	codeEscape int64 = 0x35
	codeFn     int64 = 0x3F
)

type fakeLauncher struct {
	calls     []string
	launchErr map[string]error
	openErr   error
	nextPID   int
	live      int
	maxLive   int
}

func newFakeLauncher() *fakeLauncher {
	return &fakeLauncher{launchErr: make(map[string]error)}
}

func (f *fakeLauncher) Launch(path string) (*preview.Handle, error) {
	f.calls = append(f.calls, "launch "+filepath.Base(path))
	if err := f.launchErr[path]; err != nil {
		return nil, err
	}
	f.nextPID++
	f.live++
	if f.live > f.maxLive {
		f.maxLive = f.live
	}
	return &preview.Handle{Path: path, PID: f.nextPID}, nil
}

func (f *fakeLauncher) Terminate(h *preview.Handle) {
	if h == nil {
		return
	}
	f.calls = append(f.calls, "terminate "+filepath.Base(h.Path))
	f.live--
}

func (f *fakeLauncher) Open(path string) error {
	f.calls = append(f.calls, "open "+filepath.Base(path))
	return f.openErr
}

func (f *fakeLauncher) count(call string) int {
	n := 0
	for _, c := range f.calls {
		if c == call {
			n++
		}
	}
	return n
}

type fakeTap struct {
	handler tap.Handler
	stopCh  chan struct{}
	once    sync.Once
	mu      sync.Mutex
	stops   int
	closes  int
}

func (f *fakeTap) Run() error {
	<-f.stopCh
	return nil
}

func (f *fakeTap) Stop() {
	f.mu.Lock()
	f.stops++
	f.mu.Unlock()
	f.once.Do(func() { close(f.stopCh) })
}

func (f *fakeTap) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closes++
	return nil
}

func (f *fakeTap) stopCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.stops
}

type missingFiles map[string]bool

func (m missingFiles) Available(path string) bool {
	return !m[path]
}

type recordedStatus struct {
	index, total int
	name         string
}

type statusRecorder struct {
	lines []recordedStatus
}

func (s *statusRecorder) Print(index, total int, name string) {
	s.lines = append(s.lines, recordedStatus{index, total, name})
}

type testHarness struct {
	app      *Application
	launcher *fakeLauncher
	tap      *fakeTap
	status   *statusRecorder
	hook     *logtest.Hook
	front    string
}

func testFiles(names ...string) []statepkg.FileEntry {
	files := make([]statepkg.FileEntry, len(names))
	for i, name := range names {
		files[i] = statepkg.FileEntry{Name: name, FullPath: "/docs/" + name}
	}
	return files
}

func newHarness(t *testing.T, names ...string) *testHarness {
	t.Helper()
	return newHarnessWith(t, Options{Files: testFiles(names...)})
}

// newHarnessWith fills in fakes for every collaborator opts leaves unset.
func newHarnessWith(t *testing.T, opts Options) *testHarness {
	t.Helper()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)

	h := &testHarness{
		launcher: newFakeLauncher(),
		status:   &statusRecorder{},
		hook:     hook,
		front:    config.QuickLookBundleID,
	}
	if opts.Launcher == nil {
		opts.Launcher = h.launcher
	}
	if opts.Focus == nil {
		opts.Focus = focus.Func(func() string { return h.front })
	}
	if opts.BundleID == "" {
		opts.BundleID = config.QuickLookBundleID
	}
	if opts.Status == nil {
		opts.Status = h.status
	}
	opts.Logger = logger
	opts.NewTap = func(handler tap.Handler, _ logrus.FieldLogger) (EventTap, error) {
		h.tap = &fakeTap{handler: handler, stopCh: make(chan struct{})}
		return h.tap, nil
	}

	app, err := NewApplication(opts)
	if err != nil {
		t.Fatalf("NewApplication: %v", err)
	}
	h.app = app
	return h
}

func (h *testHarness) press(codes ...int64) []bool {
	out := make([]bool, len(codes))
	for i, code := range codes {
		out[i] = h.tap.handler(code)
	}
	return out
}

func assertCalls(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("calls = %q, want %q", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("calls = %q, want %q", got, want)
		}
	}
}

var errLaunch = errors.New("launch failed")
