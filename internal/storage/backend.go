package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Backend names a best-score storage implementation.
type Backend string

const (
	BackendJSON   Backend = "json"
	BackendSQLite Backend = "sqlite"
)

// BestStore is the common surface of the storage backends.
type BestStore interface {
	LoadBest() (int, error)
	SaveBest(best int) error
	Path() string
	Close() error
}

var (
	_ BestStore = (*JSONFile)(nil)
	_ BestStore = (*Store)(nil)
)

// DefaultPath returns the default location for a backend.
func DefaultPath(b Backend) string {
	switch b {
	case BackendSQLite:
		return "~/.t2048/t2048.db"
	default:
		return "~/.t2048/best_score.json"
	}
}

// ParseBackend validates a backend name. Empty means JSON.
func ParseBackend(name string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(name))) {
	case "", BackendJSON:
		return BackendJSON, nil
	case BackendSQLite:
		return BackendSQLite, nil
	default:
		return "", fmt.Errorf("storage: unknown backend %q (want json or sqlite)", name)
	}
}

// OpenBackend opens the named backend at path, or at its default path when
// path is empty.
func OpenBackend(b Backend, path string) (BestStore, error) {
	if path == "" {
		path = DefaultPath(b)
	}
	switch b {
	case BackendSQLite:
		return Open(path)
	case BackendJSON, "":
		return OpenJSON(path)
	default:
		return nil, fmt.Errorf("storage: unknown backend %q", b)
	}
}

// expandHome expands a leading ~ to the user's home directory.
func expandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
