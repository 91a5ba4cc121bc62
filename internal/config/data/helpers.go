package data

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DirMode is the mode of created config and state directories.
	DirMode os.FileMode = 0700

	// FileMode is the mode of written config files.
	FileMode os.FileMode = 0600

	yamlIndent = 2
)

// Exists returns true if path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !errors.Is(err, fs.ErrNotExist)
}

// EnsureDirPath creates dir and its parents. It returns dir.
func EnsureDirPath(dir string, perm os.FileMode) (string, error) {
	if err := os.MkdirAll(dir, perm); err != nil {
		return "", fmt.Errorf("create directory %q: %w", dir, err)
	}
	return dir, nil
}

// EnsureFullPath creates the parent directories of a file path.
func EnsureFullPath(path string, perm os.FileMode) error {
	_, err := EnsureDirPath(filepath.Dir(path), perm)
	return err
}

// SaveYAML writes v to path. The file is replaced atomically so a crash
// never leaves a truncated config behind.
func SaveYAML(path string, v any) error {
	if err := EnsureFullPath(path, DirMode); err != nil {
		return err
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(yamlIndent)
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %q: %w", path, err)
	}
	if err := tmp.Chmod(FileMode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %q: %w", path, err)
	}

	return os.Rename(tmp.Name(), path)
}

// LoadYAML decodes the YAML file at path into v. An empty file leaves v
// untouched.
func LoadYAML(path string, v any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("read %q: %w", path, err)
	}
	defer f.Close()

	if err := yaml.NewDecoder(f).Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("decode %q: %w", path, err)
	}

	return nil
}
