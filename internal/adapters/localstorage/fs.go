package localstorage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// LocalStorage implements ports.Storage for the local filesystem.
type LocalStorage struct {
	BaseDir string
}

// NewLocalStorage creates a new LocalStorage instance.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{BaseDir: baseDir}
}

// SaveImage streams an image into BaseDir/filename.
func (s *LocalStorage) SaveImage(ctx context.Context, filename string, reader io.Reader) (string, error) {
	if err := s.ensureDir(); err != nil {
		return "", err
	}
	path := s.Path(filename)

	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file %s: %w", path, err)
	}

	if _, err := io.Copy(file, reader); err != nil {
		file.Close()
		os.Remove(path)
		return "", fmt.Errorf("failed to write image file: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("failed to close image file: %w", err)
	}
	return path, nil
}

// SaveFile writes data into BaseDir/filename.
func (s *LocalStorage) SaveFile(ctx context.Context, filename string, data []byte) (string, error) {
	if err := s.ensureDir(); err != nil {
		return "", err
	}
	path := s.Path(filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", filename, err)
	}
	return path, nil
}

// Path returns the filesystem path for a file in the output directory.
func (s *LocalStorage) Path(filename string) string {
	return filepath.Join(s.BaseDir, filename)
}

func (s *LocalStorage) ensureDir() error {
	if err := os.MkdirAll(s.BaseDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", s.BaseDir, err)
	}
	return nil
}
