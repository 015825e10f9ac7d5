package resolver

import (
	"context"

	"gitlab.com/ocs-2025.net/internal/core/ports/primary"
	"gitlab.com/ocs-2025.net/internal/core/ports/secondary"
	"gitlab.com/ocs-2025.net/internal/static/errs"
)

var _ IContextResolver = (*ContextResolver)(nil)

// ContextResolver implements the IContextResolver interface
type ContextResolver struct {
	examRepo secondary.ExamRepository
	logger   primary.Logger
}

// NewContextResolver creates a new context resolver
func NewContextResolver(examRepo secondary.ExamRepository, logger primary.Logger) *ContextResolver {
	return &ContextResolver{
		examRepo: examRepo,
		logger:   logger,
	}
}

// Resolve maps the exam pair and the caller identity to internal ids. The
// question is checked first; a missing question or enrollment fails the whole
// request before any write. Downstream authorization relies on the resolved
// identities, never on client-supplied ones.
func (r *ContextResolver) Resolve(ctx context.Context, examID, exerciseID, userID, classID int64) (int64, int64, error) {
	questionID, err := r.ResolveQuestion(ctx, examID, exerciseID)
	if err != nil {
		return 0, 0, err
	}

	student, err := r.examRepo.FindEnrollment(ctx, userID, classID)
	if err != nil {
		r.logger.Error("Failed to resolve enrollment", "userId", userID, "classId", classID, "error", err)
		return 0, 0, errs.InternalError
	}

	if student == nil {
		r.logger.Debug("No enrollment for user in class", "userId", userID, "classId", classID)
		return 0, 0, errs.EnrollmentNotFound
	}

	return questionID, student.ID, nil
}

// ResolveQuestion maps (examID, exerciseID) to a question id only
func (r *ContextResolver) ResolveQuestion(ctx context.Context, examID, exerciseID int64) (int64, error) {
	question, err := r.examRepo.FindQuestion(ctx, examID, exerciseID)
	if err != nil {
		r.logger.Error("Failed to resolve question", "examId", examID, "exerciseId", exerciseID, "error", err)
		return 0, errs.InternalError
	}

	if question == nil {
		r.logger.Debug("No question for exam pair", "examId", examID, "exerciseId", exerciseID)
		return 0, errs.QuestionNotFound
	}

	return question.ID, nil
}
