package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// File-backed storage for the persisted task list. The blob is opaque here;
// encoding belongs to the caller. No locking; fine for a local single-user app.

const (
	appDirName   = "todolist"
	dataFileName = "todos.json"
)

// FileStore reads and writes one state file.
type FileStore struct {
	path string
}

// New returns a FileStore for path. An empty path selects DefaultPath.
func New(path string) *FileStore {
	if path == "" {
		path = DefaultPath()
	}
	return &FileStore{path: path}
}

// Path returns the state file location.
func (s *FileStore) Path() string { return s.path }

// DefaultPath returns $XDG_DATA_HOME/todolist/todos.json, falling back to
// ~/.local/share/todolist/todos.json, then ./todos.json.
func DefaultPath() string {
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, appDirName, dataFileName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return dataFileName
	}
	return filepath.Join(home, ".local", "share", appDirName, dataFileName)
}

// Load returns the saved blob, or nil with no error when nothing was saved.
func (s *FileStore) Load() ([]byte, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read file: %w", err)
	}
	return b, nil
}

// Save replaces the state file with blob. It writes a sibling temp file and
// renames it into place.
func (s *FileStore) Save(blob []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(blob); err != nil {
		tmp.Close()
		return fmt.Errorf("write file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("chmod: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
