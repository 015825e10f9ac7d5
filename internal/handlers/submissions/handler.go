package submissions

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"gitlab.com/ocs-2025.net/internal/core/ports/primary"
	"gitlab.com/ocs-2025.net/internal/core/services/retrieval"
	"gitlab.com/ocs-2025.net/internal/core/services/submission"
	"gitlab.com/ocs-2025.net/internal/handlers"
	"gitlab.com/ocs-2025.net/internal/handlers/response"
)

const maxUploadBytes = 10 << 20

// SubmissionHandler handles submission API requests
type SubmissionHandler struct {
	submissionService submission.ISubmissionService
	retrievalService  retrieval.IRetrievalService
	logger            primary.Logger
}

// NewSubmissionHandler creates a new submission handler
func NewSubmissionHandler(
	submissionService submission.ISubmissionService,
	retrievalService retrieval.IRetrievalService,
	logger primary.Logger,
) *SubmissionHandler {
	return &SubmissionHandler{
		submissionService: submissionService,
		retrievalService:  retrievalService,
		logger:            logger,
	}
}

// RegisterRoutes registers the API routes for SubmissionHandler
func (h *SubmissionHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/submissions", h.CreateSubmission).Methods("POST")
	router.HandleFunc("/api/submissions", h.ListSubmissions).Methods("GET")
	router.HandleFunc("/api/submissions/languages", h.ListSupportedLanguages).Methods("GET")
	router.HandleFunc("/api/submissions/{submissionId}", h.GetSubmission).Methods("GET")
	router.HandleFunc("/api/submissions/{submissionId}/file", h.GetSubmissionFile).Methods("GET")
}

// CreateSubmission handles submission upload requests. It accepts either a
// JSON body with inline source text or a multipart form with a data_file
// attachment.
func (h *SubmissionHandler) CreateSubmission(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}

	input, err := h.decodeCreateInput(r)
	if err != nil {
		h.logger.Error("Failed to decode request", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	submissionID, err := h.submissionService.CreateSubmission(r.Context(), caller, *input)
	if err != nil {
		h.logger.Error("Failed to create submission", "error", err)
		response.WriteServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateSubmissionResponse{
		SubmissionID: submissionID,
	})
}

// GetSubmission handles submission record retrieval requests
func (h *SubmissionHandler) GetSubmission(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}

	submissionID, err := uuid.Parse(mux.Vars(r)["submissionId"])
	if err != nil {
		h.logger.Error("Invalid submission ID", "id", mux.Vars(r)["submissionId"])
		http.Error(w, "Invalid submission ID", http.StatusBadRequest)
		return
	}

	sub, err := h.submissionService.GetSubmission(r.Context(), caller, submissionID)
	if err != nil {
		h.logger.Error("Failed to get submission", "uuid", submissionID, "error", err)
		response.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, sub)
}

// GetSubmissionFile handles artifact download requests. The body is served as
// text/plain with an attachment disposition carrying the stored filename.
func (h *SubmissionHandler) GetSubmissionFile(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}

	submissionID, err := uuid.Parse(mux.Vars(r)["submissionId"])
	if err != nil {
		h.logger.Error("Invalid submission ID", "id", mux.Vars(r)["submissionId"])
		http.Error(w, "Invalid submission ID", http.StatusBadRequest)
		return
	}

	filename, content, err := h.retrievalService.Fetch(r.Context(), caller, submissionID)
	if err != nil {
		h.logger.Error("Failed to fetch submission file", "uuid", submissionID, "error", err)
		response.WriteServiceError(w, err)
		return
	}

	w.Header().Set("Content-Type", "text/plain")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(content)
}

// ListSubmissions handles submission listing requests
func (h *SubmissionHandler) ListSubmissions(w http.ResponseWriter, r *http.Request) {
	caller, ok := handlers.UserFromContext(r.Context())
	if !ok {
		http.Error(w, "Unauthenticated", http.StatusUnauthorized)
		return
	}

	examID, err1 := strconv.ParseInt(r.URL.Query().Get("exam_id"), 10, 64)
	exerciseID, err2 := strconv.ParseInt(r.URL.Query().Get("exercise_id"), 10, 64)
	classID, err3 := strconv.ParseInt(r.URL.Query().Get("class_id"), 10, 64)
	if err1 != nil || err2 != nil || err3 != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	submissions, err := h.submissionService.ListSubmissions(r.Context(), caller, examID, exerciseID, classID)
	if err != nil {
		h.logger.Error("Failed to list submissions", "error", err)
		response.WriteServiceError(w, err)
		return
	}

	response.WriteSuccess(w, ListSubmissionsResponse{
		List: submissions,
	})
}

// ListSupportedLanguages handles supported language listing requests
func (h *SubmissionHandler) ListSupportedLanguages(w http.ResponseWriter, r *http.Request) {
	response.WriteSuccess(w, h.submissionService.SupportedLanguages())
}

// decodeCreateInput parses the create payload from either a multipart form
// (file-upload variant) or a JSON body (inline-source variant)
func (h *SubmissionHandler) decodeCreateInput(r *http.Request) (*submission.CreateSubmissionInput, error) {
	contentType := r.Header.Get("Content-Type")
	if strings.HasPrefix(contentType, "multipart/form-data") {
		return h.decodeMultipartInput(r)
	}

	var req CreateSubmissionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}

	return &submission.CreateSubmissionInput{
		ExamID:      req.ExamID,
		ExerciseID:  req.ExerciseID,
		ClassID:     req.ClassID,
		Language:    req.Language,
		SourceCode:  []byte(req.SourceCode),
		Description: req.Description,
		Name:        req.Name,
	}, nil
}

func (h *SubmissionHandler) decodeMultipartInput(r *http.Request) (*submission.CreateSubmissionInput, error) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		return nil, err
	}

	examID, err := strconv.ParseInt(r.FormValue("exam_id"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid exam_id: %w", err)
	}
	exerciseID, err := strconv.ParseInt(r.FormValue("exercise_id"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid exercise_id: %w", err)
	}
	classID, err := strconv.ParseInt(r.FormValue("class_id"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid class_id: %w", err)
	}

	file, header, err := r.FormFile("data_file")
	if err != nil {
		return nil, fmt.Errorf("missing data_file: %w", err)
	}
	defer file.Close()

	sourceCode, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read data_file: %w", err)
	}

	input := &submission.CreateSubmissionInput{
		ExamID:     examID,
		ExerciseID: exerciseID,
		ClassID:    classID,
		Language:   r.FormValue("language"),
		SourceCode: sourceCode,
		FileName:   header.Filename,
	}

	if description := r.FormValue("description"); description != "" {
		input.Description = &description
	}
	if name := r.FormValue("name"); name != "" {
		input.Name = &name
	}

	return input, nil
}
