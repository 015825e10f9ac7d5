// package submissionrepository contains the PostgreSQL implementation of the
// submission ledger
package submissionrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"

	"github.com/jmoiron/sqlx"

	"gitlab.com/ocs-2025.net/internal/core/ports/primary"
	"gitlab.com/ocs-2025.net/internal/core/ports/secondary"
	"gitlab.com/ocs-2025.net/internal/domain"
	querybuilder "gitlab.com/ocs-2025.net/internal/utils"
)

var _ secondary.SubmissionRepository = (*SubmissionRepository)(nil)

// SubmissionRepository implements the SubmissionRepository interface with PostgreSQL
type SubmissionRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

// NewSubmissionRepository creates a new PostgreSQL submission repository
func NewSubmissionRepository(db *sqlx.DB, logger primary.Logger, schema string) *SubmissionRepository {
	if envSchema := os.Getenv("DB_SCHEMA"); envSchema != "" {
		schema = envSchema
	}
	return &SubmissionRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// Create inserts the ledger record for a new submission. The insert must
// confirm exactly one affected row; anything else is reported as an error so
// the caller can treat the command as having had no durable effect.
func (r *SubmissionRepository) Create(ctx context.Context, submission *domain.Submission) error {
	subTbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Insert(
			subTbl.UUID, subTbl.StudentID, subTbl.QuestionID,
			subTbl.Language, subTbl.Description, subTbl.Name,
			subTbl.DateTime,
		).
		Into(subTbl.TableName()).
		Values(
			submission.UUID, submission.StudentID, submission.QuestionID,
			submission.Language, submission.Description, submission.Name,
			submission.SubmittedAt,
		).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to save submission", "uuid", submission.UUID, "error", err)
		return fmt.Errorf("failed to save submission: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.logger.Error("Error checking rows affected", "error", err)
		return fmt.Errorf("error checking rows affected: %w", err)
	}

	if rowsAffected != 1 {
		return fmt.Errorf("submission insert not confirmed: %s", submission.UUID)
	}

	return nil
}

// GetByUUID retrieves a submission from PostgreSQL by id
func (r *SubmissionRepository) GetByUUID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	subTbl := domain.GetSubmissionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(
			subTbl.UUID, subTbl.StudentID, subTbl.QuestionID,
			subTbl.Language, subTbl.Description, subTbl.Name,
			subTbl.DateTime,
		).
		From(subTbl.TableName()).
		Where(fmt.Sprintf("%s = ?", subTbl.UUID), id).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)

	var submission domain.Submission
	err := r.db.GetContext(ctx, &submission, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to get submission", "uuid", id, "error", err)
		return nil, fmt.Errorf("failed to get submission: %w", err)
	}

	return &submission, nil
}

// ListByQuestion retrieves submissions for a question in insertion order.
// A non-nil studentID restricts the result to that student's own records.
func (r *SubmissionRepository) ListByQuestion(ctx context.Context, questionID int64, studentID *int64) ([]*domain.Submission, error) {
	subTbl := domain.GetSubmissionTable()
	qb := querybuilder.NewQueryBuilder(r.schema).
		Select(
			subTbl.UUID, subTbl.StudentID, subTbl.QuestionID,
			subTbl.Language, subTbl.Description, subTbl.Name,
			subTbl.DateTime,
		).
		From(subTbl.TableName()).
		Where(fmt.Sprintf("%s = ?", subTbl.QuestionID), questionID)

	if studentID != nil {
		qb = qb.And(fmt.Sprintf("%s = ?", subTbl.StudentID), *studentID)
	}

	query, args := qb.OrderBy(subTbl.DateTime, true).Build()
	query = sqlx.Rebind(sqlx.DOLLAR, query)

	rows, err := r.db.QueryxContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to list submissions", "questionId", questionID, "error", err)
		return nil, fmt.Errorf("failed to list submissions: %w", err)
	}
	defer rows.Close()

	submissions := make([]*domain.Submission, 0)
	for rows.Next() {
		var submission domain.Submission
		if err := rows.StructScan(&submission); err != nil {
			r.logger.Error("Failed to scan submission row", "error", err)
			return nil, fmt.Errorf("failed to scan submission row: %w", err)
		}
		submissions = append(submissions, &submission)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error("Error iterating submission rows", "error", err)
		return nil, fmt.Errorf("error iterating submission rows: %w", err)
	}

	return submissions, nil
}
