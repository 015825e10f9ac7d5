package secondary

import (
	"context"

	"gitlab.com/ocs-2025.net/internal/domain"
)

// EvaluationQueue hands accepted submissions off to the evaluation engine
type EvaluationQueue interface {
	// Dispatch enqueues a grading job. Best effort: the caller logs failures
	// and never retries.
	Dispatch(ctx context.Context, job *domain.EvaluationJob) error
}
