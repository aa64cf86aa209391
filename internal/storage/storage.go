// Package storage provides the device-local document store: small JSON
// documents (meal grid, recipe selection, exclusions) kept under fixed keys
// in a data directory.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Documents stores one JSON file per logical document.
type Documents struct {
	basePath string
}

// NewDocuments creates a Documents store and ensures the base directory exists.
func NewDocuments(basePath string) (*Documents, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &Documents{basePath: basePath}, nil
}

func (d *Documents) path(key string) string {
	return filepath.Join(d.basePath, key+".json")
}

// Load reads the document under key into out. It reports whether the
// document existed; a missing document leaves out untouched.
func (d *Documents) Load(key string, out any) (bool, error) {
	data, err := os.ReadFile(d.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read document %s: %w", key, err)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return false, fmt.Errorf("failed to unmarshal document %s: %w", key, err)
	}
	return true, nil
}

// Save writes the document under key, replacing any previous content.
func (d *Documents) Save(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", key, err)
	}

	if err := os.WriteFile(d.path(key), data, 0644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", key, err)
	}
	return nil
}

// Delete removes the document under key. Deleting a missing document is not
// an error.
func (d *Documents) Delete(key string) error {
	if err := os.Remove(d.path(key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete document %s: %w", key, err)
	}
	return nil
}
