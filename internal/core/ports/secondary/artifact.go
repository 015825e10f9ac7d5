package secondary

import (
	"github.com/google/uuid"

	"gitlab.com/ocs-2025.net/internal/domain"
)

// ArtifactStore persists raw submission content on durable storage, keyed by
// the submission uuid plus a language-derived extension.
type ArtifactStore interface {
	// Put writes the content under <id>.<ext> and returns the full path.
	// A second Put for the same id is rejected, not merged.
	Put(id uuid.UUID, lang domain.Language, content []byte) (string, error)

	// Locate resolves an id to the stored file's path without knowing the
	// extension. Returns errs.FileNotFound when no filename stem matches.
	Locate(id uuid.UUID) (string, error)

	// Read returns the content of a previously located artifact
	Read(path string) ([]byte, error)
}
