//go:build unix

package preview

import "golang.org/x/sys/unix"

var terminateSignal = unix.SIGTERM
