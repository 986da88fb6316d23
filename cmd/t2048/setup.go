package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/games/t2048"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// session bundles what every command needs: resolved config, logger and
// the best score store.
type session struct {
	cfg     config.Config
	logger  *log.Logger
	store   storage.BestStore
	logFile io.Closer
}

// newLogger builds the logger. Without a log file output is discarded so it
// cannot corrupt the terminal UI.
func newLogger(path, level string) (*log.Logger, io.Closer, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	var w io.Writer = io.Discard
	var closer io.Closer
	if path != "" {
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, f
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "t2048",
		Level:           lvl,
	})
	return logger, closer, nil
}

// applyFlags overrides config values with explicitly set command-line flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if flags.Changed("store") {
		cfg.Store.Backend = flagStore
	}
	if flags.Changed("store-path") {
		cfg.Store.Path = flagStorePath
	}
	if flags.Lookup("target") != nil && flags.Changed("target") {
		target, err := flags.GetInt("target")
		if err != nil {
			return err
		}
		cfg.Game.Target = target
	}
	return cfg.Validate()
}

// openSession loads config, builds the logger and opens the store. The log
// file is only opened once the settings are known to be valid.
func openSession(cmd *cobra.Command) (*session, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	if err := applyFlags(cmd, &cfg); err != nil {
		return nil, err
	}

	backend, err := storage.ParseBackend(cfg.Store.Backend)
	if err != nil {
		return nil, err
	}

	logger, logFile, err := newLogger(flagLogFile, flagLogLevel)
	if err != nil {
		return nil, err
	}

	store, err := storage.OpenBackend(backend, cfg.Store.Path)
	if err != nil {
		// Continue without storage - game still works
		logger.Warn("could not open best score store", "backend", backend, "error", err)
		store = nil
	}

	logger.Debug("session ready", "backend", backend, "target", cfg.Game.Target)
	return &session{cfg: cfg, logger: logger, store: store, logFile: logFile}, nil
}

// newGame creates the controller from the session settings.
func (s *session) newGame() *t2048.Game {
	var store t2048.BestScoreStore
	if s.store != nil {
		store = s.store
	}
	return t2048.New(store,
		t2048.WithSeed(flagSeed),
		t2048.WithTarget(s.cfg.Game.Target),
		t2048.WithSpawn4Prob(s.cfg.Game.Spawn4Prob),
		t2048.WithLogger(s.logger),
	)
}

// Close releases the store and log file.
func (s *session) Close() {
	if s.store != nil {
		if err := s.store.Close(); err != nil {
			s.logger.Warn("could not close best score store", "error", err)
		}
	}
	if s.logFile != nil {
		s.logFile.Close()
	}
}
