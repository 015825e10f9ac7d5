package resolver

import (
	"context"
	"errors"
	"testing"

	"gitlab.com/ocs-2025.net/internal/domain"
	"gitlab.com/ocs-2025.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeExamRepo struct {
	question    *domain.Question
	student     *domain.Student
	questionErr error
	studentErr  error
}

func (f *fakeExamRepo) FindQuestion(ctx context.Context, examID, exerciseID int64) (*domain.Question, error) {
	return f.question, f.questionErr
}

func (f *fakeExamRepo) FindEnrollment(ctx context.Context, userID, classID int64) (*domain.Student, error) {
	return f.student, f.studentErr
}

func (f *fakeExamRepo) IsStudentOwner(ctx context.Context, studentID, userID int64) (bool, error) {
	return false, nil
}

func TestResolve(t *testing.T) {
	repo := &fakeExamRepo{
		question: &domain.Question{ID: 42, ExamID: 1, ExerciseID: 2},
		student:  &domain.Student{ID: 7, UserID: 10, ClassID: 5},
	}
	r := NewContextResolver(repo, nopLogger{})

	questionID, studentID, err := r.Resolve(context.Background(), 1, 2, 10, 5)
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if questionID != 42 {
		t.Errorf("questionID = %d, want 42", questionID)
	}
	if studentID != 7 {
		t.Errorf("studentID = %d, want 7", studentID)
	}
}

func TestResolve_QuestionNotFound(t *testing.T) {
	repo := &fakeExamRepo{
		student: &domain.Student{ID: 7},
	}
	r := NewContextResolver(repo, nopLogger{})

	_, _, err := r.Resolve(context.Background(), 1, 2, 10, 5)
	if !errors.Is(err, errs.QuestionNotFound) {
		t.Fatalf("err = %v, want QuestionNotFound", err)
	}
	if !errors.Is(err, errs.NotFound) {
		t.Error("QuestionNotFound must match the NotFound taxonomy")
	}
}

func TestResolve_EnrollmentNotFound(t *testing.T) {
	repo := &fakeExamRepo{
		question: &domain.Question{ID: 42},
	}
	r := NewContextResolver(repo, nopLogger{})

	_, _, err := r.Resolve(context.Background(), 1, 2, 10, 5)
	if !errors.Is(err, errs.EnrollmentNotFound) {
		t.Fatalf("err = %v, want EnrollmentNotFound", err)
	}
}

func TestResolve_RepositoryFailure(t *testing.T) {
	repo := &fakeExamRepo{
		questionErr: errors.New("connection refused"),
	}
	r := NewContextResolver(repo, nopLogger{})

	_, _, err := r.Resolve(context.Background(), 1, 2, 10, 5)
	if !errors.Is(err, errs.InternalError) {
		t.Fatalf("err = %v, want InternalError", err)
	}
}
