package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileStore keeps every key in one JSON file, rewritten atomically on
// each mutation. This is the localStorage analogue: small, synchronous,
// survives restarts on the same machine.
type FileStore struct {
	mu   sync.RWMutex
	path string
	data map[string]json.RawMessage
}

func OpenFile(path string) (*FileStore, error) {
	fs := &FileStore{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return fs, nil
	}
	if err != nil {
		return nil, fmt.Errorf("store: read %s: %w", path, err)
	}
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &fs.data); err != nil {
			return nil, fmt.Errorf("store: corrupt file %s: %w", path, err)
		}
	}
	return fs, nil
}

func (fs *FileStore) Get(_ context.Context, key string) ([]byte, bool) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	v, ok := fs.data[key]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(v))
	copy(out, v)
	return out, true
}

func (fs *FileStore) Set(_ context.Context, key string, value []byte) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	fs.data[key] = json.RawMessage(append([]byte(nil), value...))
	return fs.flush()
}

func (fs *FileStore) Remove(_ context.Context, key string) error {
	fs.mu.Lock()
	defer fs.mu.Unlock()

	if _, ok := fs.data[key]; !ok {
		return nil
	}
	delete(fs.data, key)
	return fs.flush()
}

// flush writes the whole map to a temp file and renames it over the
// target, so a crash mid-write never leaves a half-written store.
// Caller holds the write lock.
func (fs *FileStore) flush() error {
	raw, err := json.Marshal(fs.data)
	if err != nil {
		return fmt.Errorf("store: marshal: %w", err)
	}

	dir := filepath.Dir(fs.path)
	tmp, err := os.CreateTemp(dir, ".passabola-*")
	if err != nil {
		return fmt.Errorf("store: temp file: %w", err)
	}
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("store: write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), fs.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("store: rename: %w", err)
	}
	return nil
}
