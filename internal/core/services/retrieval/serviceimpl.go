package retrieval

import (
	"context"
	"errors"
	"path/filepath"

	"github.com/google/uuid"

	"gitlab.com/ocs-2025.net/internal/core/ports/primary"
	"gitlab.com/ocs-2025.net/internal/core/ports/secondary"
	"gitlab.com/ocs-2025.net/internal/core/services/authz"
	"gitlab.com/ocs-2025.net/internal/domain"
	"gitlab.com/ocs-2025.net/internal/static/errs"
)

var _ IRetrievalService = (*RetrievalService)(nil)

// RetrievalService implements the IRetrievalService interface
type RetrievalService struct {
	artifactStore  secondary.ArtifactStore
	submissionRepo secondary.SubmissionRepository
	examRepo       secondary.ExamRepository
	logger         primary.Logger
}

// NewRetrievalService creates a new retrieval service
func NewRetrievalService(
	artifactStore secondary.ArtifactStore,
	submissionRepo secondary.SubmissionRepository,
	examRepo secondary.ExamRepository,
	logger primary.Logger,
) *RetrievalService {
	return &RetrievalService{
		artifactStore:  artifactStore,
		submissionRepo: submissionRepo,
		examRepo:       examRepo,
		logger:         logger,
	}
}

// Fetch locates the stored artifact by id and returns its basename and
// content. Students may fetch only their own submissions; an orphan file
// without a ledger record stays reachable for any authenticated role. A read
// failure after a successful locate indicates storage corruption and is
// reported as an internal error, not as not-found.
func (s *RetrievalService) Fetch(ctx context.Context, caller domain.UserInfo, id uuid.UUID) (string, []byte, error) {
	if !caller.Role.Authenticated() {
		return "", nil, errs.InvalidParameters
	}

	if err := s.checkOwnership(ctx, caller, id); err != nil {
		return "", nil, err
	}

	path, err := s.artifactStore.Locate(id)
	if err != nil {
		if errors.Is(err, errs.NotFound) {
			return "", nil, err
		}
		s.logger.Error("Failed to locate artifact", "uuid", id, "error", err)
		return "", nil, errs.InternalError
	}

	content, err := s.artifactStore.Read(path)
	if err != nil {
		s.logger.Error("Failed to read located artifact", "uuid", id, "path", path, "error", err)
		return "", nil, errs.InternalError
	}

	return filepath.Base(path), content, nil
}

// checkOwnership applies the same ownership rule downloads share with record
// reads. An id with no ledger record (orphan file) has no owner to check and
// passes through; the locate step decides whether anything exists at all.
func (s *RetrievalService) checkOwnership(ctx context.Context, caller domain.UserInfo, id uuid.UUID) error {
	if caller.Role.Elevated() {
		return nil
	}

	sub, err := s.submissionRepo.GetByUUID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get submission for ownership check", "uuid", id, "error", err)
		return errs.InternalError
	}

	if sub == nil {
		return nil
	}

	owner, err := s.examRepo.IsStudentOwner(ctx, sub.StudentID, caller.ID)
	if err != nil {
		s.logger.Error("Failed to check ownership", "uuid", id, "error", err)
		return errs.InternalError
	}

	if decision := authz.Decide(caller.Role, owner); decision != authz.Allow {
		return decision.Err()
	}

	return nil
}
