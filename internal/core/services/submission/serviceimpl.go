package submission

import (
	"context"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"gitlab.com/ocs-2025.net/internal/core/ports/primary"
	"gitlab.com/ocs-2025.net/internal/core/ports/secondary"
	"gitlab.com/ocs-2025.net/internal/core/services/authz"
	"gitlab.com/ocs-2025.net/internal/core/services/resolver"
	"gitlab.com/ocs-2025.net/internal/domain"
	"gitlab.com/ocs-2025.net/internal/static/errs"
)

const dispatchTimeout = 5 * time.Second

var _ ISubmissionService = (*SubmissionService)(nil)

// SubmissionService implements the ISubmissionService interface
type SubmissionService struct {
	resolver       resolver.IContextResolver
	submissionRepo secondary.SubmissionRepository
	examRepo       secondary.ExamRepository
	artifactStore  secondary.ArtifactStore
	evalQueue      secondary.EvaluationQueue
	logger         primary.Logger
}

// NewSubmissionService creates a new submission service
func NewSubmissionService(
	contextResolver resolver.IContextResolver,
	submissionRepo secondary.SubmissionRepository,
	examRepo secondary.ExamRepository,
	artifactStore secondary.ArtifactStore,
	evalQueue secondary.EvaluationQueue,
	logger primary.Logger,
) *SubmissionService {
	return &SubmissionService{
		resolver:       contextResolver,
		submissionRepo: submissionRepo,
		examRepo:       examRepo,
		artifactStore:  artifactStore,
		evalQueue:      evalQueue,
		logger:         logger,
	}
}

// CreateSubmission runs the intake pipeline: resolve context, authorize,
// store the artifact, record the ledger entry, then dispatch grading on a
// detached goroutine. The file is written before the ledger record so a
// failure can only ever leave an orphan file, never a record pointing at
// nothing.
func (s *SubmissionService) CreateSubmission(ctx context.Context, caller domain.UserInfo, input CreateSubmissionInput) (uuid.UUID, error) {
	if err := authz.CanCreate(caller.Role); err != nil {
		return uuid.Nil, err
	}

	questionID, studentID, err := s.resolver.Resolve(ctx, input.ExamID, input.ExerciseID, caller.ID, input.ClassID)
	if err != nil {
		return uuid.Nil, err
	}

	lang, err := s.resolveLanguage(input)
	if err != nil {
		return uuid.Nil, err
	}

	sub := domain.NewSubmission(studentID, questionID, lang, input.Description, input.Name)

	sourcePath, err := s.artifactStore.Put(sub.UUID, lang, input.SourceCode)
	if err != nil {
		s.logger.Error("Failed to store artifact", "uuid", sub.UUID, "error", err)
		return uuid.Nil, err
	}

	if err := s.submissionRepo.Create(ctx, sub); err != nil {
		// The artifact write already succeeded; the orphan file is tolerated
		// and reclaimable, a ledger record without a file would not be.
		s.logger.Error("Failed to record submission", "uuid", sub.UUID, "error", err)
		return uuid.Nil, errs.InternalError
	}

	s.logger.Info("New submission recorded", "uuid", sub.UUID, "questionId", questionID, "studentId", studentID)

	s.dispatchEvaluation(&domain.EvaluationJob{
		SubmissionUUID: sub.UUID,
		SourcePath:     sourcePath,
		Language:       lang,
	})

	return sub.UUID, nil
}

// dispatchEvaluation hands the job to the evaluation engine on a detached
// goroutine with its own deadline. Cancellation of the inbound request must
// not cancel an already-initiated dispatch, so the request context is never
// used here. Failures are logged for monitoring and not retried.
func (s *SubmissionService) dispatchEvaluation(job *domain.EvaluationJob) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
		defer cancel()

		if err := s.evalQueue.Dispatch(ctx, job); err != nil {
			s.logger.Error("Failed to dispatch evaluation job",
				"submissionId", job.SubmissionUUID,
				"error", err)
		}
	}()
}

// GetSubmission retrieves a submission record by id. Students may only read
// their own submissions; elevated roles may read any.
func (s *SubmissionService) GetSubmission(ctx context.Context, caller domain.UserInfo, id uuid.UUID) (*domain.Submission, error) {
	if !caller.Role.Authenticated() {
		return nil, errs.InvalidParameters
	}

	sub, err := s.submissionRepo.GetByUUID(ctx, id)
	if err != nil {
		s.logger.Error("Failed to get submission", "uuid", id, "error", err)
		return nil, errs.InternalError
	}

	if sub == nil {
		return nil, errs.SubmissionNotFound
	}

	owner, err := s.isOwner(ctx, caller, sub.StudentID)
	if err != nil {
		return nil, err
	}

	if decision := authz.Decide(caller.Role, owner); decision != authz.Allow {
		return nil, decision.Err()
	}

	return sub, nil
}

// ListSubmissions retrieves the submissions for a question. A student sees
// only their own records (an empty list, not an error, when they have none);
// elevated roles see every submission for the question.
func (s *SubmissionService) ListSubmissions(ctx context.Context, caller domain.UserInfo, examID, exerciseID, classID int64) ([]*domain.Submission, error) {
	ownOnly, err := authz.ListScope(caller.Role)
	if err != nil {
		return nil, err
	}

	var questionID int64
	var studentID *int64

	if ownOnly {
		qID, sID, err := s.resolver.Resolve(ctx, examID, exerciseID, caller.ID, classID)
		if err != nil {
			return nil, err
		}
		questionID = qID
		studentID = &sID
	} else {
		questionID, err = s.resolver.ResolveQuestion(ctx, examID, exerciseID)
		if err != nil {
			return nil, err
		}
	}

	submissions, err := s.submissionRepo.ListByQuestion(ctx, questionID, studentID)
	if err != nil {
		s.logger.Error("Failed to list submissions", "questionId", questionID, "error", err)
		return nil, errs.InternalError
	}

	return submissions, nil
}

// SupportedLanguages lists the languages the evaluation engine accepts
func (s *SubmissionService) SupportedLanguages() []string {
	return domain.SupportedLanguages()
}

// resolveLanguage picks the submission language from the declared field, or
// from the uploaded filename's extension when no language was declared
func (s *SubmissionService) resolveLanguage(input CreateSubmissionInput) (domain.Language, error) {
	if input.Language != "" {
		lang, ok := domain.ParseLanguage(input.Language)
		if !ok {
			return "", errs.UnsupportedLanguage
		}
		return lang, nil
	}

	if ext := filepath.Ext(input.FileName); ext != "" {
		lang, ok := domain.LanguageByExtension(ext)
		if !ok {
			return "", errs.UnsupportedLanguage
		}
		return lang, nil
	}

	return "", errs.UnsupportedLanguage
}

// isOwner resolves whether the submission's student record belongs to the
// caller. Skipped for elevated roles, which never need the lookup.
func (s *SubmissionService) isOwner(ctx context.Context, caller domain.UserInfo, studentID int64) (bool, error) {
	if caller.Role.Elevated() {
		return true, nil
	}

	owner, err := s.examRepo.IsStudentOwner(ctx, studentID, caller.ID)
	if err != nil {
		s.logger.Error("Failed to check ownership", "studentId", studentID, "userId", caller.ID, "error", err)
		return false, errs.InternalError
	}

	return owner, nil
}
