//go:build darwin

package focus

/*
#cgo CFLAGS: -x objective-c
#cgo LDFLAGS: -framework AppKit -framework Foundation
#import <AppKit/AppKit.h>
#include <stdlib.h>
#include <string.h>

static char *qlnavFrontmostBundleID(void) {
	char *out = NULL;
	@autoreleasepool {
		NSRunningApplication *app = [[NSWorkspace sharedWorkspace] frontmostApplication];
		if (app == nil) {
			return NULL;
		}
		NSString *bundleID = [app bundleIdentifier];
		if (bundleID == nil) {
			return NULL;
		}
		const char *utf8 = [bundleID UTF8String];
		if (utf8 != NULL) {
			out = strdup(utf8);
		}
	}
	return out;
}
*/
import "C"

import "unsafe"

type workspaceQuery struct{}

// NewWorkspaceQuery returns a Query backed by NSWorkspace. The answer is only
// kept current while the calling thread runs a run loop.
func NewWorkspaceQuery() Query {
	return workspaceQuery{}
}

func (workspaceQuery) FrontmostBundleID() string {
	cs := C.qlnavFrontmostBundleID()
	if cs == nil {
		return Unknown
	}
	defer C.free(unsafe.Pointer(cs))
	return C.GoString(cs)
}
