package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"github.com/RevCBH/tuxdock/internal/config"
	"github.com/RevCBH/tuxdock/internal/container"
	"github.com/RevCBH/tuxdock/internal/menu"
)

// loadConfig reads the config file and applies command-line overrides.
func (a *App) loadConfig() (*config.Config, error) {
	path := a.configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, err
	}

	if a.runtime != "" {
		cfg.Runtime = config.RuntimeName(a.runtime)
	}
	if a.shell != "" {
		cfg.Shell = a.shell
	}
	if a.verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate flags: %w", err)
	}
	return cfg, nil
}

// newLogger builds the stderr logger at the configured level.
func newLogger(out io.Writer, level string) (*logrus.Logger, error) {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}
	logger.SetLevel(lvl)
	return logger, nil
}

// resolveRuntime turns the configured runtime into a binary name.
func resolveRuntime(name config.RuntimeName, detect func() (string, error)) (string, error) {
	if name != config.RuntimeAuto {
		return string(name), nil
	}
	bin, err := detect()
	if err != nil {
		return "", fmt.Errorf("detect runtime: %w", err)
	}
	return bin, nil
}

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// WireMenu assembles config, logging, executor and manager into a Menu.
func (a *App) WireMenu() (*menu.Menu, error) {
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(a.stderr, cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	runtime, err := resolveRuntime(cfg.Runtime, container.DetectRuntime)
	if err != nil {
		return nil, err
	}
	logger.WithFields(logrus.Fields{
		"runtime": runtime,
		"shell":   cfg.Shell,
	}).Debug("starting menu")

	exec := container.NewOSExecutor(runtime, logger.WithField("runtime", runtime))
	exec.Stdin = a.stdin
	exec.Stdout = a.stdout
	exec.Stderr = a.stderr
	exec.Progress = cfg.Spinner && isTerminal(a.stderr)

	mgr := container.NewCLIManager(exec, cfg.Shell)

	return menu.New(mgr, menu.Options{
		In:       a.stdin,
		Out:      a.stdout,
		Logger:   logger,
		Database: cfg.Database,
	}), nil
}

// RunMenu wires the menu and runs it until the operator exits.
func (a *App) RunMenu(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	m, err := a.WireMenu()
	if err != nil {
		return err
	}
	return m.Run(ctx)
}
