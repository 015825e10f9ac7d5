package domain

import "github.com/google/uuid"

// EvaluationJob is the message handed off to the evaluation engine after a
// submission has been accepted. Dispatch is fire-and-forget; the engine owns
// everything that happens from here on.
type EvaluationJob struct {
	SubmissionUUID uuid.UUID `json:"submissionId"`
	SourcePath     string    `json:"sourcePath"`
	Language       Language  `json:"language"`
}
