package secondary

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/ocs-2025.net/internal/domain"
)

// SubmissionRepository is the submission ledger: the metadata record store
// keyed by submission uuid.
type SubmissionRepository interface {
	// Create inserts the ledger record for a new submission. It returns an
	// error unless the underlying write confirms exactly one inserted row.
	Create(ctx context.Context, submission *domain.Submission) error

	// GetByUUID retrieves a submission by id, (nil, nil) when absent
	GetByUUID(ctx context.Context, id uuid.UUID) (*domain.Submission, error)

	// ListByQuestion retrieves submissions for a question in insertion order.
	// A non-nil studentID restricts the result to that student's records.
	ListByQuestion(ctx context.Context, questionID int64, studentID *int64) ([]*domain.Submission, error)
}
