package secondary

import (
	"context"

	"gitlab.com/ocs-2025.net/internal/domain"
)

// ExamRepository resolves exam context: questions and class enrollments
type ExamRepository interface {
	// FindQuestion resolves an (exam, exercise) pair, (nil, nil) when absent
	FindQuestion(ctx context.Context, examID, exerciseID int64) (*domain.Question, error)

	// FindEnrollment resolves a user's class-scoped student identity,
	// (nil, nil) when the user is not enrolled in the class
	FindEnrollment(ctx context.Context, userID, classID int64) (*domain.Student, error)

	// IsStudentOwner reports whether the student record belongs to the user
	IsStudentOwner(ctx context.Context, studentID, userID int64) (bool, error)
}
