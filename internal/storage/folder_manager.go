package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

// FolderManager resolves user supplied folders and opens storage on them
type FolderManager struct {
	maxProbe int
	logger   *zap.Logger
}

// NewFolderManager creates a new FolderManager
func NewFolderManager(maxProbe int, logger *zap.Logger) *FolderManager {
	return &FolderManager{
		maxProbe: maxProbe,
		logger:   logger,
	}
}

// Resolve cleans path, makes it absolute and checks that it is a readable directory
func (m *FolderManager) Resolve(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("%w: empty folder path", ErrDirectoryUnreadable)
	}

	absPath, err := filepath.Abs(filepath.Clean(path))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrDirectoryUnreadable, err)
	}

	info, err := os.Stat(absPath)
	if err != nil {
		m.logger.Error("Folder not accessible",
			zap.String("folder", absPath),
			zap.Error(err))
		return "", fmt.Errorf("%w: %v", ErrDirectoryUnreadable, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%w: %s", ErrNotADirectory, absPath)
	}

	return absPath, nil
}

// Open resolves path and returns storage rooted at it
func (m *FolderManager) Open(path string) (FileStorage, error) {
	dir, err := m.Resolve(path)
	if err != nil {
		return nil, err
	}
	return NewLocalFileStorage(dir, m.maxProbe, m.logger), nil
}
