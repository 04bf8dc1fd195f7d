package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Dir stores each key in its own JSON file in a directory.
type Dir struct {
	path string
}

// NewDir returns a store rooted at path. The directory is created on the first write.
func NewDir(path string) *Dir { return &Dir{path: path} }

// filename returns the file of a key, keys must not contain path separators.
func (d *Dir) filename(key string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid key %q", key)
	}
	return filepath.Join(d.path, key+".json"), nil
}

// GetItem reads the file of key.
func (d *Dir) GetItem(key string) ([]byte, error) {
	name, err := d.filename(key)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("could not read %q: %w", name, err)
	}
	return data, nil
}

// SetItem replaces the file of key. The value is written to a temporary
// file first and renamed, so a reader never sees a partial value.
func (d *Dir) SetItem(key string, value []byte) error {
	name, err := d.filename(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(d.path, 0755); err != nil {
		return fmt.Errorf("could not create directory %q: %w", d.path, err)
	}
	tmp, err := os.CreateTemp(d.path, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", name, err)
	}
	defer os.Remove(tmp.Name()) // no-op once renamed

	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %q: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write %q: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), name); err != nil {
		return fmt.Errorf("could not replace %q: %w", name, err)
	}
	return nil
}
