package securestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// FileBackend keeps all entries in a single JSON document on disk.
type FileBackend struct {
	mu   sync.Mutex
	path string
}

func NewFileBackend(path string) *FileBackend {
	return &FileBackend{path: path}
}

func (f *FileBackend) Get(_ context.Context, key string) ([]byte, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return nil, err
	}

	v, ok := entries[key]
	if !ok {
		return nil, ErrNotFound
	}

	return v, nil
}

func (f *FileBackend) Set(_ context.Context, key string, value []byte) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return err
	}

	entries[key] = value

	return f.save(entries)
}

func (f *FileBackend) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	entries, err := f.load()
	if err != nil {
		return err
	}

	if _, ok := entries[key]; !ok {
		return nil
	}

	delete(entries, key)

	return f.save(entries)
}

// values are base64 encoded by encoding/json.
func (f *FileBackend) load() (map[string][]byte, error) {
	entries := map[string][]byte{}

	b, err := os.ReadFile(f.path)
	if errors.Is(err, os.ErrNotExist) {
		return entries, nil
	}

	if err != nil {
		return nil, fmt.Errorf("read store: %w", err)
	}

	err = json.Unmarshal(b, &entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorrupted, err)
	}

	return entries, nil
}

func (f *FileBackend) save(entries map[string][]byte) error {
	b, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(f.path), ".securestore-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	defer os.Remove(tmp.Name())

	_, err = tmp.Write(b)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("write store: %w", err)
	}

	err = tmp.Chmod(0o600)
	if err != nil {
		tmp.Close()
		return fmt.Errorf("chmod store: %w", err)
	}

	err = tmp.Close()
	if err != nil {
		return fmt.Errorf("close store: %w", err)
	}

	err = os.Rename(tmp.Name(), f.path)
	if err != nil {
		return fmt.Errorf("replace store: %w", err)
	}

	return nil
}
