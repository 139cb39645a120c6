package config

import (
	"fmt"
	"os"
)

// FileConfigSource reads a deployments document from a file
// This is an infrastructure adapter behind ports.ConfigSource
type FileConfigSource struct {
	path string
}

// NewFileConfigSource creates a config source backed by the given file
func NewFileConfigSource(path string) *FileConfigSource {
	return &FileConfigSource{path: path}
}

// Load reads the raw document text
func (s *FileConfigSource) Load() ([]byte, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return data, nil
}

// Path returns the file path the document is read from
func (s *FileConfigSource) Path() string {
	return s.path
}
