package submissions

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/ocs-2025.net/internal/core/services/submission"
	"gitlab.com/ocs-2025.net/internal/domain"
	"gitlab.com/ocs-2025.net/internal/handlers"
	"gitlab.com/ocs-2025.net/internal/static/errs"
)

type nopLogger struct{}

func (nopLogger) Info(msg string, args ...interface{})  {}
func (nopLogger) Error(msg string, args ...interface{}) {}
func (nopLogger) Debug(msg string, args ...interface{}) {}
func (nopLogger) Warn(msg string, args ...interface{})  {}

type fakeSubmissionService struct {
	createdID  uuid.UUID
	lastInput  submission.CreateSubmissionInput
	createErr  error
	getResult  *domain.Submission
	getErr     error
	listResult []*domain.Submission
	listErr    error
}

func (f *fakeSubmissionService) CreateSubmission(ctx context.Context, caller domain.UserInfo, input submission.CreateSubmissionInput) (uuid.UUID, error) {
	f.lastInput = input
	if f.createErr != nil {
		return uuid.Nil, f.createErr
	}
	return f.createdID, nil
}

func (f *fakeSubmissionService) GetSubmission(ctx context.Context, caller domain.UserInfo, id uuid.UUID) (*domain.Submission, error) {
	return f.getResult, f.getErr
}

func (f *fakeSubmissionService) ListSubmissions(ctx context.Context, caller domain.UserInfo, examID, exerciseID, classID int64) ([]*domain.Submission, error) {
	return f.listResult, f.listErr
}

func (f *fakeSubmissionService) SupportedLanguages() []string {
	return domain.SupportedLanguages()
}

type fakeRetrievalService struct {
	filename string
	content  []byte
	err      error
}

func (f *fakeRetrievalService) Fetch(ctx context.Context, caller domain.UserInfo, id uuid.UUID) (string, []byte, error) {
	if f.err != nil {
		return "", nil, f.err
	}
	return f.filename, f.content, nil
}

func newRouter(submissionService *fakeSubmissionService, retrievalService *fakeRetrievalService) *mux.Router {
	handler := NewSubmissionHandler(submissionService, retrievalService, nopLogger{})
	router := mux.NewRouter()
	handler.RegisterRoutes(router)
	return router
}

func doRequest(router *mux.Router, req *http.Request, caller *domain.UserInfo) *httptest.ResponseRecorder {
	if caller != nil {
		req = req.WithContext(handlers.ContextWithUser(req.Context(), *caller))
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateSubmission_JSON(t *testing.T) {
	service := &fakeSubmissionService{createdID: uuid.New()}
	router := newRouter(service, &fakeRetrievalService{})

	body := `{"exam_id":1,"exercise_id":2,"class_id":5,"language":"python","source_code":"print(1)"}`
	req := httptest.NewRequest("POST", "/api/submissions", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	caller := domain.UserInfo{ID: 10, Role: domain.RoleStudent}
	rec := doRequest(router, req, &caller)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body)
	}

	var resp CreateSubmissionResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.SubmissionID != service.createdID {
		t.Errorf("submission_id = %s, want %s", resp.SubmissionID, service.createdID)
	}
	if service.lastInput.Language != "python" || string(service.lastInput.SourceCode) != "print(1)" {
		t.Errorf("input = %+v", service.lastInput)
	}
}

func TestCreateSubmission_Multipart(t *testing.T) {
	service := &fakeSubmissionService{createdID: uuid.New()}
	router := newRouter(service, &fakeRetrievalService{})

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)
	form.WriteField("exam_id", "1")
	form.WriteField("exercise_id", "2")
	form.WriteField("class_id", "5")
	form.WriteField("description", "second attempt")
	part, err := form.CreateFormFile("data_file", "solution.py")
	if err != nil {
		t.Fatalf("CreateFormFile failed: %v", err)
	}
	part.Write([]byte("print(2)"))
	form.Close()

	req := httptest.NewRequest("POST", "/api/submissions", &buf)
	req.Header.Set("Content-Type", form.FormDataContentType())

	caller := domain.UserInfo{ID: 10, Role: domain.RoleStudent}
	rec := doRequest(router, req, &caller)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201, body: %s", rec.Code, rec.Body)
	}
	if service.lastInput.FileName != "solution.py" {
		t.Errorf("FileName = %q, want solution.py", service.lastInput.FileName)
	}
	if string(service.lastInput.SourceCode) != "print(2)" {
		t.Errorf("SourceCode = %q", service.lastInput.SourceCode)
	}
	if service.lastInput.Description == nil || *service.lastInput.Description != "second attempt" {
		t.Errorf("Description = %v", service.lastInput.Description)
	}
}

func TestCreateSubmission_Unauthenticated(t *testing.T) {
	router := newRouter(&fakeSubmissionService{}, &fakeRetrievalService{})

	req := httptest.NewRequest("POST", "/api/submissions", strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	rec := doRequest(router, req, nil)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestCreateSubmission_ServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"unsupported language", errs.UnsupportedLanguage, http.StatusBadRequest},
		{"no permission", errs.NoPermission, http.StatusForbidden},
		{"question not found", errs.QuestionNotFound, http.StatusNotFound},
		{"internal error", errs.InternalError, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := newRouter(&fakeSubmissionService{createErr: tt.err}, &fakeRetrievalService{})

			body := `{"exam_id":1,"exercise_id":2,"class_id":5,"language":"python","source_code":"x"}`
			req := httptest.NewRequest("POST", "/api/submissions", strings.NewReader(body))
			req.Header.Set("Content-Type", "application/json")

			caller := domain.UserInfo{ID: 10, Role: domain.RoleStudent}
			rec := doRequest(router, req, &caller)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestGetSubmission(t *testing.T) {
	id := uuid.New()
	service := &fakeSubmissionService{getResult: &domain.Submission{UUID: id, StudentID: 7, Language: "python"}}
	router := newRouter(service, &fakeRetrievalService{})

	caller := domain.UserInfo{ID: 10, Role: domain.RoleStudent}
	req := httptest.NewRequest("GET", "/api/submissions/"+id.String(), nil)
	rec := doRequest(router, req, &caller)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body)
	}
	var sub domain.Submission
	if err := json.Unmarshal(rec.Body.Bytes(), &sub); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if sub.UUID != id {
		t.Errorf("uuid = %s, want %s", sub.UUID, id)
	}
}

func TestGetSubmission_MalformedID(t *testing.T) {
	router := newRouter(&fakeSubmissionService{}, &fakeRetrievalService{})

	caller := domain.UserInfo{ID: 10, Role: domain.RoleStudent}
	req := httptest.NewRequest("GET", "/api/submissions/not-a-uuid", nil)
	rec := doRequest(router, req, &caller)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestGetSubmissionFile(t *testing.T) {
	id := uuid.New()
	retrievalService := &fakeRetrievalService{
		filename: id.String() + ".py",
		content:  []byte("print(1)"),
	}
	router := newRouter(&fakeSubmissionService{}, retrievalService)

	caller := domain.UserInfo{ID: 10, Role: domain.RoleStudent}
	req := httptest.NewRequest("GET", "/api/submissions/"+id.String()+"/file", nil)
	rec := doRequest(router, req, &caller)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body)
	}
	if got := rec.Header().Get("Content-Type"); got != "text/plain" {
		t.Errorf("Content-Type = %q, want text/plain", got)
	}
	wantDisposition := `attachment; filename="` + id.String() + `.py"`
	if got := rec.Header().Get("Content-Disposition"); got != wantDisposition {
		t.Errorf("Content-Disposition = %q, want %q", got, wantDisposition)
	}
	if rec.Body.String() != "print(1)" {
		t.Errorf("body = %q", rec.Body)
	}
}

func TestGetSubmissionFile_NotFound(t *testing.T) {
	router := newRouter(&fakeSubmissionService{}, &fakeRetrievalService{err: errs.FileNotFound})

	caller := domain.UserInfo{ID: 10, Role: domain.RoleStudent}
	req := httptest.NewRequest("GET", "/api/submissions/"+uuid.NewString()+"/file", nil)
	rec := doRequest(router, req, &caller)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestListSubmissions(t *testing.T) {
	service := &fakeSubmissionService{
		listResult: []*domain.Submission{
			{UUID: uuid.New(), StudentID: 7, Language: "python"},
			{UUID: uuid.New(), StudentID: 7, Language: "python"},
		},
	}
	router := newRouter(service, &fakeRetrievalService{})

	caller := domain.UserInfo{ID: 10, Role: domain.RoleStudent}
	req := httptest.NewRequest("GET", "/api/submissions?exam_id=1&exercise_id=2&class_id=5", nil)
	rec := doRequest(router, req, &caller)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body)
	}
	var resp ListSubmissionsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.List) != 2 {
		t.Errorf("list length = %d, want 2", len(resp.List))
	}
}

func TestListSubmissions_MissingQuery(t *testing.T) {
	router := newRouter(&fakeSubmissionService{}, &fakeRetrievalService{})

	caller := domain.UserInfo{ID: 10, Role: domain.RoleStudent}
	req := httptest.NewRequest("GET", "/api/submissions?exam_id=1", nil)
	rec := doRequest(router, req, &caller)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestListSupportedLanguages(t *testing.T) {
	router := newRouter(&fakeSubmissionService{}, &fakeRetrievalService{})

	req := httptest.NewRequest("GET", "/api/submissions/languages", nil)
	rec := doRequest(router, req, nil)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	var languages []string
	if err := json.Unmarshal(rec.Body.Bytes(), &languages); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(languages) == 0 {
		t.Error("expected at least one supported language")
	}
}
