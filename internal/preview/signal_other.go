//go:build !unix

package preview

import "os"

var terminateSignal = os.Kill
