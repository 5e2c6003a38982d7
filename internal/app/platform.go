package app

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
)

var commandLookPath = exec.LookPath

// ResolveCommand checks that the program in argv can be executed and
// returns argv with the program replaced by its resolved path.
func ResolveCommand(argv []string) ([]string, error) {
	return resolveCommandWithLookup(argv, commandLookPath)
}

func resolveCommandWithLookup(argv []string, lookPath func(string) (string, error)) ([]string, error) {
	if len(argv) == 0 || argv[0] == "" {
		return nil, fmt.Errorf("empty command")
	}

	resolved, ok := resolveExecutableWithLookup(argv[0], lookPath)
	if !ok {
		return nil, fmt.Errorf("command %q not found", argv[0])
	}

	out := make([]string, len(argv))
	copy(out, argv)
	out[0] = resolved
	return out, nil
}

func expandUserPath(path string) string {
	if path == "" || path[0] != '~' {
		return path
	}

	if len(path) == 1 {
		if home, err := os.UserHomeDir(); err == nil {
			return home
		}
		return path
	}

	if path[1] != '/' && path[1] != filepath.Separator {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

func resolveExecutableWithLookup(cmd string, lookPath func(string) (string, error)) (string, bool) {
	if cmd == "" {
		return "", false
	}

	path, err := lookPath(expandUserPath(cmd))
	if err != nil {
		return "", false
	}
	return path, true
}
