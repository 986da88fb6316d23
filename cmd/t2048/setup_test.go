package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

func newFlagCmd(t *testing.T, args ...string) *cobra.Command {
	t.Helper()
	flagStore, flagStorePath = "", ""

	cmd := &cobra.Command{Use: "test", Run: func(*cobra.Command, []string) {}}
	cmd.Flags().StringVar(&flagStore, "store", "", "")
	cmd.Flags().StringVar(&flagStorePath, "store-path", "", "")
	cmd.Flags().Int("target", 0, "")
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags() failed: %v", err)
	}
	return cmd
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		wantBackend string
		wantPath    string
		wantTarget  int
		wantErr     bool
	}{
		{"no flags keep config", nil, "json", "", 2048, false},
		{"store flags", []string{"--store", "sqlite", "--store-path", "/tmp/x.db"}, "sqlite", "/tmp/x.db", 2048, false},
		{"target flag", []string{"--target", "256"}, "json", "", 256, false},
		{"invalid target", []string{"--target", "300"}, "", "", 0, true},
		{"invalid store", []string{"--store", "redis"}, "", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newFlagCmd(t, tt.args...)
			cfg := config.DefaultConfig()

			err := applyFlags(cmd, &cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("applyFlags() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.Store.Backend != tt.wantBackend || cfg.Store.Path != tt.wantPath {
				t.Errorf("store = %+v, want %s %q", cfg.Store, tt.wantBackend, tt.wantPath)
			}
			if cfg.Game.Target != tt.wantTarget {
				t.Errorf("target = %d, want %d", cfg.Game.Target, tt.wantTarget)
			}
		})
	}
}

func TestNewLogger(t *testing.T) {
	if _, _, err := newLogger("", "loud"); err == nil {
		t.Error("newLogger() should reject unknown levels")
	}

	path := filepath.Join(t.TempDir(), "t2048.log")
	logger, closer, err := newLogger(path, "debug")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	logger.Debug("hello", "k", 1)
	closer.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if !strings.Contains(string(data), "hello") {
		t.Errorf("log file missing message: %q", data)
	}
}

func TestNewLoggerDiscardsWithoutFile(t *testing.T) {
	logger, closer, err := newLogger("", "info")
	if err != nil {
		t.Fatalf("newLogger() failed: %v", err)
	}
	if closer != nil {
		t.Error("no closer expected without a log file")
	}
	logger.Info("dropped")
}

func TestOpenSessionLogFile(t *testing.T) {
	tests := []struct {
		name    string
		config  string
		args    []string
		wantErr bool
	}{
		{"valid", "game:\n  target: 512\n", nil, false},
		{"broken yaml", "game: [", nil, true},
		{"invalid target flag", "game:\n  target: 512\n", []string{"--target", "300"}, true},
		{"unknown backend", "store:\n  backend: redis\n", nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			cfgPath := filepath.Join(dir, "t2048.yaml")
			if err := os.WriteFile(cfgPath, []byte(tt.config), 0o644); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}
			logPath := filepath.Join(dir, "t2048.log")

			args := append([]string{"--store-path", filepath.Join(dir, "best.json")}, tt.args...)
			cmd := newFlagCmd(t, args...)
			prevConfig, prevLog, prevLevel := flagConfig, flagLogFile, flagLogLevel
			t.Cleanup(func() { flagConfig, flagLogFile, flagLogLevel = prevConfig, prevLog, prevLevel })
			flagConfig, flagLogFile, flagLogLevel = cfgPath, logPath, "info"

			sess, err := openSession(cmd)
			if (err != nil) != tt.wantErr {
				t.Fatalf("openSession() error = %v, wantErr %v", err, tt.wantErr)
			}

			_, statErr := os.Stat(logPath)
			if tt.wantErr {
				if !os.IsNotExist(statErr) {
					t.Errorf("log file opened for a failed session: stat error = %v", statErr)
				}
				return
			}
			defer sess.Close()
			if statErr != nil {
				t.Errorf("log file missing for a valid session: %v", statErr)
			}
			if sess.cfg.Game.Target != 512 {
				t.Errorf("target = %d, want 512", sess.cfg.Game.Target)
			}
		})
	}
}
