// package examrepository resolves exam context (questions, enrollments)
// against PostgreSQL
package examrepository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"

	"github.com/jmoiron/sqlx"

	"gitlab.com/ocs-2025.net/internal/core/ports/primary"
	"gitlab.com/ocs-2025.net/internal/core/ports/secondary"
	"gitlab.com/ocs-2025.net/internal/domain"
	querybuilder "gitlab.com/ocs-2025.net/internal/utils"
)

var _ secondary.ExamRepository = (*ExamRepository)(nil)

// ExamRepository implements the ExamRepository interface with PostgreSQL
type ExamRepository struct {
	db     *sqlx.DB
	logger primary.Logger
	schema string
}

// NewExamRepository creates a new PostgreSQL exam repository
func NewExamRepository(db *sqlx.DB, logger primary.Logger, schema string) *ExamRepository {
	if envSchema := os.Getenv("DB_SCHEMA"); envSchema != "" {
		schema = envSchema
	}
	return &ExamRepository{
		db:     db,
		logger: logger,
		schema: schema,
	}
}

// FindQuestion resolves an (exam, exercise) pair to a question, (nil, nil)
// when no question matches
func (r *ExamRepository) FindQuestion(ctx context.Context, examID, exerciseID int64) (*domain.Question, error) {
	qTbl := domain.GetQuestionTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(qTbl.ID, qTbl.ExamID, qTbl.ExerciseID).
		From(qTbl.TableName()).
		Where(fmt.Sprintf("%s = ?", qTbl.ExamID), examID).
		And(fmt.Sprintf("%s = ?", qTbl.ExerciseID), exerciseID).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)

	var question domain.Question
	err := r.db.GetContext(ctx, &question, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to find question", "examId", examID, "exerciseId", exerciseID, "error", err)
		return nil, fmt.Errorf("failed to find question: %w", err)
	}

	return &question, nil
}

// FindEnrollment resolves a user's class-scoped student identity, (nil, nil)
// when the user is not enrolled in the class
func (r *ExamRepository) FindEnrollment(ctx context.Context, userID, classID int64) (*domain.Student, error) {
	sTbl := domain.GetStudentTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(sTbl.ID, sTbl.UserID, sTbl.ClassID).
		From(sTbl.TableName()).
		Where(fmt.Sprintf("%s = ?", sTbl.UserID), userID).
		And(fmt.Sprintf("%s = ?", sTbl.ClassID), classID).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)

	var student domain.Student
	err := r.db.GetContext(ctx, &student, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		r.logger.Error("Failed to find enrollment", "userId", userID, "classId", classID, "error", err)
		return nil, fmt.Errorf("failed to find enrollment: %w", err)
	}

	return &student, nil
}

// IsStudentOwner reports whether the student record belongs to the user
func (r *ExamRepository) IsStudentOwner(ctx context.Context, studentID, userID int64) (bool, error) {
	sTbl := domain.GetStudentTable()
	query, args := querybuilder.NewQueryBuilder(r.schema).
		Select(sTbl.ID).
		From(sTbl.TableName()).
		Where(fmt.Sprintf("%s = ?", sTbl.ID), studentID).
		And(fmt.Sprintf("%s = ?", sTbl.UserID), userID).
		Build()

	query = sqlx.Rebind(sqlx.DOLLAR, query)

	var id int64
	err := r.db.GetContext(ctx, &id, query, args...)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		r.logger.Error("Failed to check student ownership", "studentId", studentID, "userId", userID, "error", err)
		return false, fmt.Errorf("failed to check student ownership: %w", err)
	}

	return true, nil
}
