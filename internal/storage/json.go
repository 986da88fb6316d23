package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// bestKey is the field holding the best score in the JSON file.
const bestKey = "best"

// ErrMalformed is returned when the best-score file cannot be interpreted.
var ErrMalformed = errors.New("storage: malformed best score file")

// JSONFile stores the best score as {"best": N} in a single file. Other keys
// in the file are left untouched on save.
type JSONFile struct {
	path string
}

// OpenJSON returns a JSON file store at path. The file is created lazily on
// the first save.
func OpenJSON(path string) (*JSONFile, error) {
	path, err := expandHome(path)
	if err != nil {
		return nil, err
	}
	return &JSONFile{path: path}, nil
}

// Path returns the resolved file path.
func (f *JSONFile) Path() string { return f.path }

// LoadBest reads the best score. A missing file yields 0 and no error; a
// malformed file yields 0 and ErrMalformed.
func (f *JSONFile) LoadBest() (int, error) {
	data, err := os.ReadFile(f.path)
	if errors.Is(err, fs.ErrNotExist) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("storage: cannot read %s: %w", f.path, err)
	}

	if !gjson.ValidBytes(data) {
		return 0, fmt.Errorf("%w: %s is not valid JSON", ErrMalformed, f.path)
	}

	res := gjson.GetBytes(data, bestKey)
	if !res.Exists() {
		return 0, nil
	}
	if res.Type != gjson.Number {
		return 0, fmt.Errorf("%w: %q is %s, want a number", ErrMalformed, bestKey, res.Type)
	}

	best := res.Int()
	if best < 0 || float64(best) != res.Num {
		return 0, fmt.Errorf("%w: %q must be a non-negative integer, got %s", ErrMalformed, bestKey, res.Raw)
	}
	return int(best), nil
}

// SaveBest writes the best score, keeping any other keys already present.
// A missing or malformed file is replaced.
func (f *JSONFile) SaveBest(best int) error {
	if best < 0 {
		return fmt.Errorf("storage: negative best score %d", best)
	}

	doc := []byte("{}")
	if data, err := os.ReadFile(f.path); err == nil && gjson.ValidBytes(data) && gjson.ParseBytes(data).IsObject() {
		doc = data
	}

	doc, err := sjson.SetBytes(doc, bestKey, best)
	if err != nil {
		return fmt.Errorf("storage: cannot encode best score: %w", err)
	}

	return writeFileAtomic(f.path, doc)
}

// Close is a no-op; the file is opened per call.
func (f *JSONFile) Close() error { return nil }

// writeFileAtomic writes data to a temp file in the target directory and
// renames it over path.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("storage: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("storage: cannot write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("storage: cannot close %s: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("storage: cannot replace %s: %w", path, err)
	}
	return nil
}
