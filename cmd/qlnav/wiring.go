package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	apppkg "github.com/kk-code-lab/qlnav/internal/app"
	"github.com/kk-code-lab/qlnav/internal/config"
	"github.com/kk-code-lab/qlnav/internal/focus"
	fsutil "github.com/kk-code-lab/qlnav/internal/fs"
	"github.com/kk-code-lab/qlnav/internal/preview"
	"github.com/kk-code-lab/qlnav/internal/tap"
	"github.com/kk-code-lab/qlnav/internal/ui/render"
	"github.com/kk-code-lab/qlnav/internal/watch"
)

// Overridable in tests.
var (
	newApplication = apppkg.NewApplication
	resolveCommand = apppkg.ResolveCommand
	newFocusQuery  = focus.NewWorkspaceQuery
)

func run(cmd *cobra.Command, files []fsutil.Entry, opts options) error {
	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	previewArgv, err := resolveCommand(cfg.PreviewArgv())
	if err != nil {
		return fmt.Errorf("preview command: %w", err)
	}
	openArgv, err := resolveCommand(cfg.OpenArgv())
	if err != nil {
		return fmt.Errorf("open command: %w", err)
	}

	avail := newAvailability(files, logger)
	var status apppkg.StatusSink
	if !opts.quiet {
		status = render.NewStatusPrinter(os.Stdout)
	}

	app, err := newApplication(apppkg.Options{
		Files:        files,
		BundleID:     cfg.Preview.BundleID,
		Intercept:    cfg.Input.Intercept,
		Launcher:     preview.NewController(previewArgv, openArgv, logger),
		Focus:        newFocusQuery(),
		Availability: avail,
		Status:       status,
		Logger:       logger,
	})
	if err != nil {
		if c, ok := avail.(io.Closer); ok {
			_ = c.Close()
		}
		if errors.Is(err, tap.ErrPermission) {
			return fmt.Errorf("%w: allow your terminal under System Settings > Privacy & Security > Accessibility", err)
		}
		return err
	}
	defer func() {
		_ = app.Close()
	}()

	logger.WithField("files", len(files)).Info("navigator ready")
	return app.Run()
}

// loadConfig reads the config file and applies flag overrides.
func loadConfig(opts options) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}
	if opts.logLevel != "" {
		cfg.Log.Level = opts.logLevel
	}
	if opts.intercept != "" {
		cfg.Input.Intercept = opts.intercept
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg config.LogConfig, stderr io.Writer) (*logrus.Logger, func(), error) {
	level, err := logrus.ParseLevel(cfg.Level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(level)
	logger.SetOutput(stderr)

	if cfg.File == "" {
		return logger, func() {}, nil
	}
	f, err := os.OpenFile(cfg.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, func() { _ = f.Close() }, nil
}

func newAvailability(files []fsutil.Entry, logger logrus.FieldLogger) watch.Availability {
	paths := make([]string, len(files))
	for i, f := range files {
		paths[i] = f.FullPath
	}
	tracker, err := watch.NewTracker(paths, logger)
	if err != nil {
		logger.WithError(err).Warn("file watching unavailable, checking files on demand")
		return watch.StatChecker{}
	}
	return tracker
}
