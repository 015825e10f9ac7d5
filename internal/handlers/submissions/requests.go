package submissions

import (
	"github.com/google/uuid"

	"gitlab.com/ocs-2025.net/internal/domain"
)

// CreateSubmissionRequest represents the JSON variant of a submission upload
type CreateSubmissionRequest struct {
	ExamID      int64   `json:"exam_id"`
	ExerciseID  int64   `json:"exercise_id"`
	ClassID     int64   `json:"class_id"`
	Language    string  `json:"language"`
	SourceCode  string  `json:"source_code"`
	Description *string `json:"description,omitempty"`
	Name        *string `json:"name,omitempty"`
}

// CreateSubmissionResponse represents a response to a submission upload
type CreateSubmissionResponse struct {
	SubmissionID uuid.UUID `json:"submission_id"`
}

// ListSubmissionsResponse represents a response to a submission listing
type ListSubmissionsResponse struct {
	List []*domain.Submission `json:"list_submission"`
}
