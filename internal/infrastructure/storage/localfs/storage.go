// Package localfs writes organized photo trees to local disk.
package localfs

import (
	"fmt"
	"os"
	"path/filepath"
)

type Storage struct {
	basePath string
}

func New(basePath string) (*Storage, error) {
	if basePath == "" {
		return nil, fmt.Errorf("base path is required")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}
	return &Storage{basePath: basePath}, nil
}

// Save writes data under the base path, creating intermediate folders.
// The key is a relative path like "B_Experiencia/B.4/B4_001.jpg".
func (s *Storage) Save(key string, data []byte) error {
	path := filepath.Join(s.basePath, key)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", key, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

// Read loads one stored file.
func (s *Storage) Read(key string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.basePath, key))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", key, err)
	}
	return data, nil
}
