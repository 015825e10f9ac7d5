package errs

import (
	"errors"
	"fmt"
)

var (
	InvalidParameters   = errors.New("invalid parameters")
	NoPermission        = errors.New("no permission")
	NotFound            = errors.New("not found")
	UnsupportedLanguage = errors.New("programming language is not supported")
	InternalError       = errors.New("internal error")
)

// Specializations of NotFound; all match errors.Is(err, NotFound).
var (
	QuestionNotFound   = fmt.Errorf("question %w", NotFound)
	EnrollmentNotFound = fmt.Errorf("student enrollment %w", NotFound)
	SubmissionNotFound = fmt.Errorf("submission %w", NotFound)
	FileNotFound       = fmt.Errorf("submission file %w", NotFound)
)

var (
	DuplicateArtifact = errors.New("artifact already exists for this id")
)
