package retrieval

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"

	"gitlab.com/ocs-2025.net/internal/adapter/storage"
	"gitlab.com/ocs-2025.net/internal/config"
	"gitlab.com/ocs-2025.net/internal/domain"
	"gitlab.com/ocs-2025.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeSubmissionRepo struct {
	records map[uuid.UUID]*domain.Submission
}

func (f *fakeSubmissionRepo) Create(ctx context.Context, sub *domain.Submission) error {
	f.records[sub.UUID] = sub
	return nil
}

func (f *fakeSubmissionRepo) GetByUUID(ctx context.Context, id uuid.UUID) (*domain.Submission, error) {
	return f.records[id], nil
}

func (f *fakeSubmissionRepo) ListByQuestion(ctx context.Context, questionID int64, studentID *int64) ([]*domain.Submission, error) {
	return nil, nil
}

type fakeExamRepo struct {
	ownerships map[int64]int64 // studentID -> userID
}

func (f *fakeExamRepo) FindQuestion(ctx context.Context, examID, exerciseID int64) (*domain.Question, error) {
	return nil, nil
}

func (f *fakeExamRepo) FindEnrollment(ctx context.Context, userID, classID int64) (*domain.Student, error) {
	return nil, nil
}

func (f *fakeExamRepo) IsStudentOwner(ctx context.Context, studentID, userID int64) (bool, error) {
	return f.ownerships[studentID] == userID, nil
}

type brokenStore struct {
	path string
}

func (b *brokenStore) Put(id uuid.UUID, lang domain.Language, content []byte) (string, error) {
	return "", errors.New("not implemented")
}

func (b *brokenStore) Locate(id uuid.UUID) (string, error) {
	return b.path, nil
}

func (b *brokenStore) Read(path string) ([]byte, error) {
	return nil, fmt.Errorf("read %s: input/output error", path)
}

func newFixture(t *testing.T) (*RetrievalService, *storage.FileStore, *fakeSubmissionRepo) {
	t.Helper()
	store, err := storage.NewFileStore(&config.StorageConfig{SubmissionPath: t.TempDir()}, nopLogger{})
	if err != nil {
		t.Fatalf("NewFileStore failed: %v", err)
	}
	repo := &fakeSubmissionRepo{records: make(map[uuid.UUID]*domain.Submission)}
	examRepo := &fakeExamRepo{ownerships: map[int64]int64{7: 10}}
	return NewRetrievalService(store, repo, examRepo, nopLogger{}), store, repo
}

func TestFetch(t *testing.T) {
	service, store, repo := newFixture(t)

	id := uuid.New()
	content := []byte("print(1)")
	if _, err := store.Put(id, domain.LanguagePython, content); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	repo.records[id] = &domain.Submission{UUID: id, StudentID: 7}

	owner := domain.UserInfo{ID: 10, Role: domain.RoleStudent}
	filename, data, err := service.Fetch(context.Background(), owner, id)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if filename != id.String()+".py" {
		t.Errorf("filename = %q, want %q", filename, id.String()+".py")
	}
	if !bytes.Equal(data, content) {
		t.Errorf("content = %q, want %q", data, content)
	}
}

func TestFetch_NotFound(t *testing.T) {
	service, _, _ := newFixture(t)

	caller := domain.UserInfo{ID: 10, Role: domain.RoleStudent}
	_, _, err := service.Fetch(context.Background(), caller, uuid.New())
	if !errors.Is(err, errs.NotFound) {
		t.Fatalf("err = %v, want NotFound", err)
	}
}

func TestFetch_OwnershipEnforced(t *testing.T) {
	service, store, repo := newFixture(t)

	id := uuid.New()
	if _, err := store.Put(id, domain.LanguagePython, []byte("x")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}
	repo.records[id] = &domain.Submission{UUID: id, StudentID: 7}

	other := domain.UserInfo{ID: 11, Role: domain.RoleStudent}
	if _, _, err := service.Fetch(context.Background(), other, id); !errors.Is(err, errs.NoPermission) {
		t.Fatalf("err = %v, want NoPermission", err)
	}

	teacher := domain.UserInfo{ID: 12, Role: domain.RoleTeacher}
	if _, _, err := service.Fetch(context.Background(), teacher, id); err != nil {
		t.Errorf("teacher fetch failed: %v", err)
	}
}

func TestFetch_OrphanFileReachable(t *testing.T) {
	service, store, _ := newFixture(t)

	// artifact written but the ledger insert failed afterwards: the file has
	// no record, stays reachable, and there is no owner to check
	id := uuid.New()
	if _, err := store.Put(id, domain.LanguagePython, []byte("orphan")); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	caller := domain.UserInfo{ID: 10, Role: domain.RoleStudent}
	filename, data, err := service.Fetch(context.Background(), caller, id)
	if err != nil {
		t.Fatalf("Fetch of orphan failed: %v", err)
	}
	if filename != id.String()+".py" || string(data) != "orphan" {
		t.Errorf("orphan fetch = %q/%q", filename, data)
	}
}

func TestFetch_UnauthenticatedRole(t *testing.T) {
	service, _, _ := newFixture(t)

	caller := domain.UserInfo{ID: 10, Role: domain.Role("GUEST")}
	_, _, err := service.Fetch(context.Background(), caller, uuid.New())
	if !errors.Is(err, errs.InvalidParameters) {
		t.Fatalf("err = %v, want InvalidParameters", err)
	}
}

func TestFetch_ReadFailureIsInternal(t *testing.T) {
	repo := &fakeSubmissionRepo{records: make(map[uuid.UUID]*domain.Submission)}
	examRepo := &fakeExamRepo{ownerships: map[int64]int64{}}
	service := NewRetrievalService(&brokenStore{path: "/submissions/gone.py"}, repo, examRepo, nopLogger{})

	caller := domain.UserInfo{ID: 10, Role: domain.RoleStudent}
	_, _, err := service.Fetch(context.Background(), caller, uuid.New())
	if !errors.Is(err, errs.InternalError) {
		t.Fatalf("err = %v, want InternalError", err)
	}
	if errors.Is(err, errs.NotFound) {
		t.Error("a post-locate read failure must not be reported as NotFound")
	}
}
