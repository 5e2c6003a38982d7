//go:build !windows

package app

import (
	"os"
	"os/signal"
	"syscall"
	"testing"
	"time"
)

func TestInterruptStopsRunAndCloseTerminatesPreview(t *testing.T) {
	// Keep SIGINT from killing the test binary before Run installs its own
	// notification.
	guard := make(chan os.Signal, 16)
	signal.Notify(guard, syscall.SIGINT)
	defer signal.Stop(guard)

	h := newHarness(t, "a.pdf", "b.pdf")
	h.press(codeN)

	errCh := make(chan error, 1)
	go func() { errCh <- h.app.Run() }()

	// Run registers for signals asynchronously; repeat until it notices.
	ticker := time.NewTicker(20 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.After(5 * time.Second)
	for done := false; !done; {
		select {
		case err := <-errCh:
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			done = true
		case <-ticker.C:
			if err := syscall.Kill(os.Getpid(), syscall.SIGINT); err != nil {
				t.Fatalf("send SIGINT: %v", err)
			}
		case <-deadline:
			t.Fatalf("Run did not return after SIGINT")
		}
	}

	if h.tap.stopCount() == 0 {
		t.Fatalf("expected the tap to be stopped")
	}
	if h.app.State().Exited {
		t.Fatalf("interrupt should not go through the quit action")
	}

	if err := h.app.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	assertCalls(t, h.launcher.calls,
		"launch a.pdf", "terminate a.pdf", "launch b.pdf",
		"terminate b.pdf",
	)
	if h.tap.closes != 1 {
		t.Fatalf("expected tap closed once, got %d", h.tap.closes)
	}
}
