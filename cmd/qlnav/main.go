// Package main is the entry point for the qlnav CLI.
package main

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	fsutil "github.com/kk-code-lab/qlnav/internal/fs"
	"github.com/kk-code-lab/qlnav/internal/input"
	statepkg "github.com/kk-code-lab/qlnav/internal/state"
)

// version is set at build time via -ldflags.
var version = "dev"

// The event tap and its run loop must live on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

type options struct {
	configPath string
	logLevel   string
	match      string
	intercept  string
	quiet      bool
	keys       bool
}

func rootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:     "qlnav [flags] FILE...",
		Short:   "Step through files in Quick Look with n and p",
		Long:    "qlnav previews the given files one at a time with qlmanage and\nlets you move between them with the keyboard while the preview is focused.",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.keys {
				printKeys(cmd.OutOrStdout())
				return nil
			}

			cwd, err := os.Getwd()
			if err != nil {
				return fmt.Errorf("get working directory: %w", err)
			}
			files, err := resolveFiles(cwd, args, opts.match)
			if err != nil {
				return err
			}

			// From here on failures are runtime errors, not usage mistakes.
			cmd.SilenceUsage = true
			return run(cmd, files, opts)
		},
	}

	flags := root.Flags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/qlnav/config.toml)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&opts.match, "match", "", "only preview files whose name matches this glob")
	flags.StringVar(&opts.intercept, "intercept", "", "unbound keys while previewing: recognized (pass through) or all (swallow)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "do not print the current file")
	flags.BoolVar(&opts.keys, "keys", false, "print key bindings and exit")

	return root
}

func resolveFiles(cwd string, args []string, pattern string) ([]fsutil.Entry, error) {
	files, err := fsutil.ResolveList(cwd, args)
	if err != nil {
		return nil, err
	}
	return fsutil.FilterMatching(files, pattern)
}

func printKeys(w io.Writer) {
	for _, b := range input.Bindings() {
		fmt.Fprintf(w, "  %-10s %-6s %s\n", b.Keys, statepkg.ActionName(b.Action), b.Help)
	}
}
