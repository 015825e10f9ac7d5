package submission

import (
	"context"

	"github.com/google/uuid"

	"gitlab.com/ocs-2025.net/internal/domain"
)

// CreateSubmissionInput is the unified submission payload. Inline source text
// with a declared language is the canonical variant; when Language is empty
// the extension of FileName implies the language (file-upload variant).
type CreateSubmissionInput struct {
	ExamID      int64
	ExerciseID  int64
	ClassID     int64
	Language    string
	SourceCode  []byte
	FileName    string
	Description *string
	Name        *string
}

// ISubmissionService defines the interface for the submission intake pipeline
type ISubmissionService interface {
	// CreateSubmission authorizes, stores and records a new submission, then
	// hands it to the evaluation engine without blocking the caller
	CreateSubmission(ctx context.Context, caller domain.UserInfo, input CreateSubmissionInput) (uuid.UUID, error)

	// GetSubmission retrieves a submission record by id
	GetSubmission(ctx context.Context, caller domain.UserInfo, id uuid.UUID) (*domain.Submission, error)

	// ListSubmissions retrieves the submissions for a question, scoped to the
	// caller's own records unless the caller holds an elevated role
	ListSubmissions(ctx context.Context, caller domain.UserInfo, examID, exerciseID, classID int64) ([]*domain.Submission, error)

	// SupportedLanguages lists the languages the evaluation engine accepts
	SupportedLanguages() []string
}
