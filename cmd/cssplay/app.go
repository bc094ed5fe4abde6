package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/cssplay/internal/config"
	"github.com/alexisbeaulieu97/cssplay/internal/logger"
	"github.com/alexisbeaulieu97/cssplay/internal/presets"
)

// logMode selects where and how a command logs.
type logMode int

const (
	// logConsole writes human readable logs to stderr.
	logConsole logMode = iota
	// logTerminalUI discards logs unless --log-file is set; the alt screen
	// owns the terminal.
	logTerminalUI
	// logJSON writes structured logs to stderr.
	logJSON
)

// app bundles the services a command needs.
type app struct {
	cfg     *config.Config
	log     *logger.Logger
	catalog *presets.Catalog
	closers []io.Closer
}

func (a *app) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// bootstrap loads the environment file, the configuration, the logger and
// the preset catalog, in that order.
func bootstrap(cmd *cobra.Command, flags *rootFlags, mode logMode) (*app, error) {
	if err := config.LoadEnvFile(flags.envFile); err != nil {
		return nil, newCommandError("start", "loading environment file", err, "Fix or remove the .env file.")
	}

	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, newCommandError("start", "loading configuration", err, "Check the configuration file against the documented keys.")
	}

	a := &app{cfg: cfg}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}

	var writer io.Writer = cmd.ErrOrStderr()
	human := cfg.HumanReadable
	switch mode {
	case logTerminalUI:
		writer = io.Discard
	case logJSON:
		human = false
	}
	if flags.logFile != "" {
		f, err := os.OpenFile(flags.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, newCommandError("start", "opening log file", err, "Choose a writable --log-file path.")
		}
		a.closers = append(a.closers, f)
		writer = f
		human = false
	}

	log, err := logger.New(logger.Options{Level: level, HumanReadable: human, Writer: writer})
	if err != nil {
		a.Close()
		return nil, newCommandError("start", "creating logger", err, "Use one of debug, info, warn or error for log_level.")
	}
	a.log = log.WithSession(logger.NewSessionID()).WithFields(map[string]any{"command": cmd.Name()})

	catalog, err := presets.LoadCatalog(cfg.PresetsFile)
	if err != nil {
		a.Close()
		return nil, newCommandError("start", "loading presets", err, "Check presets_file; it uses the same layout as the built-in catalog.")
	}
	a.catalog = catalog

	a.log.DebugFields("configuration loaded", map[string]any{
		"log_level":    level,
		"presets_file": cfg.PresetsFile,
	})
	return a, nil
}
