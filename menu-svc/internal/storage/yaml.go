package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"overcooked-menu/menu-svc/internal/domain"
	"overcooked-menu/menu-svc/internal/service"

	"gopkg.in/yaml.v3"
)

// YAMLDocument persists one value as a YAML file. Map keys are written in
// sorted order so the file stays diffable and editable by hand. A missing
// file loads as the zero value.
type YAMLDocument[T any] struct {
	Path string
}

func NewYAMLDocument[T any](path string) *YAMLDocument[T] {
	return &YAMLDocument[T]{Path: path}
}

func (d *YAMLDocument[T]) Load() (T, error) {
	var value T
	data, err := os.ReadFile(d.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return value, nil
	}
	if err != nil {
		return value, err
	}
	if err := yaml.Unmarshal(data, &value); err != nil {
		return value, fmt.Errorf("parse %s: %w", d.Path, err)
	}
	return value, nil
}

// Save writes through a temporary file and renames it into place.
func (d *YAMLDocument[T]) Save(value T) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return err
	}

	dir := filepath.Dir(d.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(d.Path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), d.Path)
}

var (
	_ service.LineageStore      = (*YAMLDocument[map[string][]string])(nil)
	_ service.LocationStore     = (*YAMLDocument[map[string]domain.Location])(nil)
	_ service.FoodPropertyStore = (*YAMLDocument[map[string]domain.FoodProperty])(nil)
)
