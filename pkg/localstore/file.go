package localstore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// File stores each record as one JSON document under a directory. This is
// the closest analog to browser local storage for a local process.
type File struct {
	dir string
}

// NewFile ensures the directory exists and returns a file-backed Storage.
func NewFile(dir string) (*File, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("localstore: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("localstore: create dir: %w", err)
	}
	return &File{dir: dir}, nil
}

func (f *File) Read(ctx context.Context, key string) ([]byte, error) {
	path, err := f.pathFor(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return data, nil
}

func (f *File) Write(ctx context.Context, key string, data []byte) error {
	path, err := f.pathFor(key)
	if err != nil {
		return err
	}
	// Write-then-rename so a crash never leaves a torn document behind.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (f *File) Delete(ctx context.Context, key string) error {
	path, err := f.pathFor(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (f *File) pathFor(key string) (string, error) {
	clean := strings.TrimSpace(key)
	if clean == "" || strings.ContainsAny(clean, `/\`) {
		return "", fmt.Errorf("localstore: invalid key %q", key)
	}
	return filepath.Join(f.dir, clean+".json"), nil
}
