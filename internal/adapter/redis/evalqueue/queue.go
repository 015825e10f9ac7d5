// package evalqueue hands grading jobs to the evaluation engine through a
// Redis list the engine's workers consume from
package evalqueue

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-redis/redis/v8"

	"gitlab.com/ocs-2025.net/internal/core/ports/primary"
	"gitlab.com/ocs-2025.net/internal/core/ports/secondary"
	"gitlab.com/ocs-2025.net/internal/domain"
)

const evaluationQueueKey = "evaluation:jobs"

var _ secondary.EvaluationQueue = (*EvaluationQueue)(nil)

// EvaluationQueue implements the EvaluationQueue interface with Redis
type EvaluationQueue struct {
	redisClient *redis.Client
	logger      primary.Logger
}

// NewEvaluationQueue creates a new Redis evaluation queue
func NewEvaluationQueue(redisClient *redis.Client, logger primary.Logger) *EvaluationQueue {
	return &EvaluationQueue{
		redisClient: redisClient,
		logger:      logger,
	}
}

// Dispatch pushes a grading job onto the evaluation queue. Best effort: the
// submission has already been accepted by the time this runs, so failures are
// returned for logging and never retried here.
func (q *EvaluationQueue) Dispatch(ctx context.Context, job *domain.EvaluationJob) error {
	jobJSON, err := json.Marshal(job)
	if err != nil {
		q.logger.Error("Failed to marshal evaluation job", "error", err)
		return fmt.Errorf("failed to marshal evaluation job: %w", err)
	}

	if err := q.redisClient.LPush(ctx, evaluationQueueKey, jobJSON).Err(); err != nil {
		q.logger.Error("Failed to enqueue evaluation job", "submissionId", job.SubmissionUUID, "error", err)
		return fmt.Errorf("failed to enqueue evaluation job: %w", err)
	}

	return nil
}
