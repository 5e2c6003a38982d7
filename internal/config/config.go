// Package config parses the optional qlnav config.toml.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"
)

// FileName is the config file looked up under the user config directory.
const FileName = "config.toml"

// Intercept policies for unbound keys while the preview is focused.
const (
	InterceptRecognized = "recognized" // swallow bound keys only
	InterceptAll        = "all"        // swallow every key-down
)

// QuickLookBundleID identifies qlmanage's preview window.
const QuickLookBundleID = "com.apple.quicklook.qlmanage"

// Config is the top-level config.toml.
type Config struct {
	Preview PreviewConfig `toml:"preview"`
	Open    OpenConfig    `toml:"open"`
	Input   InputConfig   `toml:"input"`
	Log     LogConfig     `toml:"log"`
}

// PreviewConfig controls the preview process.
type PreviewConfig struct {
	Command  string   `toml:"command"`
	Args     []string `toml:"args"`      // inserted before the file path
	BundleID string   `toml:"bundle_id"` // frontmost app that enables key handling
}

// OpenConfig controls the open-with-default-application action.
type OpenConfig struct {
	Command string   `toml:"command"`
	Args    []string `toml:"args"`
}

// InputConfig controls event interception.
type InputConfig struct {
	Intercept string `toml:"intercept"`
}

// LogConfig controls diagnostics.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"` // empty = stderr
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Preview: PreviewConfig{
			Command:  "/usr/bin/qlmanage",
			Args:     []string{"-p"},
			BundleID: QuickLookBundleID,
		},
		Open: OpenConfig{
			Command: "/usr/bin/open",
		},
		Input: InputConfig{
			Intercept: InterceptRecognized,
		},
		Log: LogConfig{
			Level: "warn",
		},
	}
}

// Validate checks the configuration and returns all issues joined together.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Preview.Command) == "" {
		errs = append(errs, fmt.Errorf("preview.command must not be empty"))
	}
	if strings.TrimSpace(c.Preview.BundleID) == "" {
		errs = append(errs, fmt.Errorf("preview.bundle_id must not be empty"))
	}
	if strings.TrimSpace(c.Open.Command) == "" {
		errs = append(errs, fmt.Errorf("open.command must not be empty"))
	}

	switch c.Input.Intercept {
	case InterceptRecognized, InterceptAll:
	default:
		errs = append(errs, fmt.Errorf("input.intercept must be %q or %q, got %q", InterceptRecognized, InterceptAll, c.Input.Intercept))
	}

	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, fmt.Errorf("log.level: %w", err))
	}

	return errors.Join(errs...)
}

// PreviewArgv returns the preview program followed by its leading args.
func (c *Config) PreviewArgv() []string {
	return append([]string{c.Preview.Command}, c.Preview.Args...)
}

// OpenArgv returns the open program followed by its leading args.
func (c *Config) OpenArgv() []string {
	return append([]string{c.Open.Command}, c.Open.Args...)
}

// DefaultPath returns $XDG_CONFIG_HOME/qlnav/config.toml, falling back to
// ~/.config/qlnav/config.toml.
func DefaultPath(getenv func(string) string) (string, error) {
	if dir := getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, "qlnav", FileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: locate home directory: %w", err)
	}
	return filepath.Join(home, ".config", "qlnav", FileName), nil
}

// Load reads the config at path. With an empty path the default location is
// used and a missing file yields Defaults. Unknown keys are rejected. Values
// are not validated so that callers can apply overrides first.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		found, err := DefaultPath(os.Getenv)
		if err != nil {
			return nil, err
		}
		path = found
	}

	cfg := Defaults()
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return nil, fmt.Errorf("config: %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	return &cfg, nil
}
