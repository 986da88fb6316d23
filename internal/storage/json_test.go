package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tidwall/gjson"
)

func TestJSONMissingFile(t *testing.T) {
	f, err := OpenJSON(filepath.Join(t.TempDir(), "best_score.json"))
	if err != nil {
		t.Fatalf("OpenJSON() failed: %v", err)
	}

	best, err := f.LoadBest()
	if err != nil {
		t.Fatalf("LoadBest() on missing file failed: %v", err)
	}
	if best != 0 {
		t.Errorf("Expected 0 for missing file, got %d", best)
	}
}

func TestJSONSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "best_score.json")
	f, err := OpenJSON(path)
	if err != nil {
		t.Fatalf("OpenJSON() failed: %v", err)
	}

	if err := f.SaveBest(1234); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}

	best, err := f.LoadBest()
	if err != nil {
		t.Fatalf("LoadBest() failed: %v", err)
	}
	if best != 1234 {
		t.Errorf("LoadBest() = %d, want 1234", best)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if got := gjson.GetBytes(data, "best").Int(); got != 1234 {
		t.Errorf("file best = %d, want 1234 (file: %s)", got, data)
	}
}

func TestJSONMalformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "best = 10"},
		{"truncated", `{"best": 1`},
		{"string value", `{"best": "100"}`},
		{"negative", `{"best": -5}`},
		{"fraction", `{"best": 10.5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "best_score.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("WriteFile() failed: %v", err)
			}

			f, err := OpenJSON(path)
			if err != nil {
				t.Fatalf("OpenJSON() failed: %v", err)
			}

			best, err := f.LoadBest()
			if !errors.Is(err, ErrMalformed) {
				t.Errorf("LoadBest() error = %v, want ErrMalformed", err)
			}
			if best != 0 {
				t.Errorf("LoadBest() = %d, want 0", best)
			}
		})
	}
}

func TestJSONMissingKey(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best_score.json")
	if err := os.WriteFile(path, []byte(`{"other": 1}`), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	f, _ := OpenJSON(path)
	best, err := f.LoadBest()
	if err != nil || best != 0 {
		t.Errorf("LoadBest() = %d, %v; want 0, nil", best, err)
	}
}

func TestJSONSavePreservesOtherKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best_score.json")
	if err := os.WriteFile(path, []byte(`{"best": 8, "player": "ann", "stats": {"games": 3}}`), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	f, _ := OpenJSON(path)
	if err := f.SaveBest(4096); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() failed: %v", err)
	}
	if got := gjson.GetBytes(data, "best").Int(); got != 4096 {
		t.Errorf("best = %d, want 4096", got)
	}
	if got := gjson.GetBytes(data, "player").String(); got != "ann" {
		t.Errorf("player = %q, want ann", got)
	}
	if got := gjson.GetBytes(data, "stats.games").Int(); got != 3 {
		t.Errorf("stats.games = %d, want 3", got)
	}
}

func TestJSONSaveReplacesMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "best_score.json")
	if err := os.WriteFile(path, []byte("garbage"), 0o644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	f, _ := OpenJSON(path)
	if err := f.SaveBest(32); err != nil {
		t.Fatalf("SaveBest() failed: %v", err)
	}

	best, err := f.LoadBest()
	if err != nil || best != 32 {
		t.Errorf("LoadBest() = %d, %v; want 32, nil", best, err)
	}
}

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in      string
		want    Backend
		wantErr bool
	}{
		{"", BackendJSON, false},
		{"json", BackendJSON, false},
		{"SQLite", BackendSQLite, false},
		{" sqlite ", BackendSQLite, false},
		{"redis", "", true},
	}

	for _, tt := range tests {
		got, err := ParseBackend(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBackend(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseBackend(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestOpenBackend(t *testing.T) {
	dir := t.TempDir()

	for _, b := range []Backend{BackendJSON, BackendSQLite} {
		t.Run(string(b), func(t *testing.T) {
			path := filepath.Join(dir, "best."+string(b))
			store, err := OpenBackend(b, path)
			if err != nil {
				t.Fatalf("OpenBackend() failed: %v", err)
			}
			defer store.Close()

			if store.Path() != path {
				t.Errorf("Path() = %q, want %q", store.Path(), path)
			}

			if err := store.SaveBest(256); err != nil {
				t.Fatalf("SaveBest() failed: %v", err)
			}
			best, err := store.LoadBest()
			if err != nil || best != 256 {
				t.Errorf("LoadBest() = %d, %v; want 256, nil", best, err)
			}
		})
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandHome("~/.t2048/x.json")
	if err != nil {
		t.Fatalf("expandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".t2048", "x.json"); got != want {
		t.Errorf("expandHome() = %q, want %q", got, want)
	}

	if got, _ := expandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("expandHome() changed absolute path to %q", got)
	}
}
