// package storage persists submission artifacts on a flat directory, one file
// per submission named <uuid>.<ext>
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"gitlab.com/ocs-2025.net/internal/config"
	"gitlab.com/ocs-2025.net/internal/core/ports/primary"
	"gitlab.com/ocs-2025.net/internal/core/ports/secondary"
	"gitlab.com/ocs-2025.net/internal/domain"
	"gitlab.com/ocs-2025.net/internal/static/errs"
)

var _ secondary.ArtifactStore = (*FileStore)(nil)

// FileStore implements the ArtifactStore interface on the local filesystem
type FileStore struct {
	baseDir string
	logger  primary.Logger
}

// NewFileStore creates a new file store rooted at the configured submission
// path. An empty path is a construction error; the directory is created if it
// does not exist yet.
func NewFileStore(cfg *config.StorageConfig, logger primary.Logger) (*FileStore, error) {
	if cfg == nil || cfg.SubmissionPath == "" {
		return nil, fmt.Errorf("submission storage path is not configured")
	}

	if err := os.MkdirAll(cfg.SubmissionPath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create submission directory: %w", err)
	}

	return &FileStore{
		baseDir: cfg.SubmissionPath,
		logger:  logger,
	}, nil
}

// Put writes the content under <id>.<ext>. The extension comes from the
// language table; an unsupported language fails before any bytes are written.
// An existing file with the same id stem is a hard error, never overwritten.
func (s *FileStore) Put(id uuid.UUID, lang domain.Language, content []byte) (string, error) {
	ext, ok := lang.Extension()
	if !ok {
		return "", fmt.Errorf("%w: %s", errs.UnsupportedLanguage, lang)
	}

	if _, err := s.Locate(id); err == nil {
		s.logger.Error("Artifact already exists", "uuid", id)
		return "", fmt.Errorf("%w: %s", errs.DuplicateArtifact, id)
	} else if !errors.Is(err, errs.NotFound) {
		return "", err
	}

	finalPath := filepath.Join(s.baseDir, fmt.Sprintf("%s.%s", id, ext))

	// Stage into a temp file and rename so a crash mid-write never leaves a
	// partial file under the final name.
	tmp, err := os.CreateTemp(s.baseDir, fmt.Sprintf(".%s-*", id))
	if err != nil {
		s.logger.Error("Failed to create temp file", "uuid", id, "error", err)
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(content); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		s.logger.Error("Failed to write artifact", "uuid", id, "error", err)
		return "", fmt.Errorf("failed to write artifact: %w", err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return "", fmt.Errorf("failed to close artifact file: %w", err)
	}

	if err := os.Rename(tmpPath, finalPath); err != nil {
		os.Remove(tmpPath)
		s.logger.Error("Failed to store artifact", "uuid", id, "error", err)
		return "", fmt.Errorf("failed to store artifact: %w", err)
	}

	return finalPath, nil
}

// Locate resolves an id to the stored file's path by scanning the directory
// for a matching filename stem. The extension is not persisted anywhere else,
// so the scan keeps retrieval independent of the language table.
func (s *FileStore) Locate(id uuid.UUID) (string, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		s.logger.Error("Failed to read submission directory", "dir", s.baseDir, "error", err)
		return "", fmt.Errorf("failed to read submission directory: %w", err)
	}

	stem := id.String()
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.TrimSuffix(name, filepath.Ext(name)) == stem {
			return filepath.Join(s.baseDir, name), nil
		}
	}

	return "", fmt.Errorf("%w: %s", errs.FileNotFound, id)
}

// Read returns the content of a previously located artifact. A miss here,
// after a successful Locate, indicates storage corruption rather than a bad
// request and is reported as such.
func (s *FileStore) Read(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Error("Artifact vanished after locate", "path", path)
		}
		return nil, fmt.Errorf("failed to read artifact %s: %w", filepath.Base(path), err)
	}
	return data, nil
}
