package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Local stores blobs as flat files under a root directory. Keys are UUIDs
// generated by the file service; the first two characters shard the
// directory to keep listings small.
type Local struct {
	root string
}

var _ Provider = (*Local)(nil)

func NewLocal(root string) (*Local, error) {
	if err := os.MkdirAll(root, 0755); err != nil {
		return nil, fmt.Errorf("failed to create blob directory: %w", err)
	}
	return &Local{root: root}, nil
}

func (l *Local) Put(key string, data []byte) error {
	path, err := l.path(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	// Write to a temp file first so a crash never leaves a torn blob
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}

func (l *Local) Get(key string) ([]byte, error) {
	path, err := l.path(key)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(path)
}

func (l *Local) Delete(key string) error {
	path, err := l.path(key)
	if err != nil {
		return err
	}

	err = os.Remove(path)
	if os.IsNotExist(err) {
		return nil
	}
	return err
}

func (l *Local) path(key string) (string, error) {
	if len(key) < 2 || strings.ContainsAny(key, "/\\.") {
		return "", fmt.Errorf("invalid blob key %q", key)
	}
	return filepath.Join(l.root, key[:2], key), nil
}
