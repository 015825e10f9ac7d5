package domain

import (
	"time"

	"github.com/google/uuid"
)

// Submission represents one graded artifact handed in by a student for a
// specific question. It is created once at intake time and is immutable
// afterwards; grading results live with the evaluation engine.
type Submission struct {
	UUID        uuid.UUID `db:"uuid" json:"uuid"`
	StudentID   int64     `db:"student_id" json:"studentId"`
	QuestionID  int64     `db:"question_id" json:"questionId"`
	Language    Language  `db:"language" json:"language"`
	Description *string   `db:"description" json:"description,omitempty"`
	Name        *string   `db:"name" json:"name,omitempty"`
	SubmittedAt time.Time `db:"date_time" json:"dateTime"`
}

// NewSubmission creates a new submission with a freshly generated identifier
func NewSubmission(studentID, questionID int64, lang Language, description, name *string) *Submission {
	return &Submission{
		UUID:        uuid.New(),
		StudentID:   studentID,
		QuestionID:  questionID,
		Language:    lang,
		Description: description,
		Name:        name,
		SubmittedAt: time.Now(),
	}
}

type SubmissionTable struct {
	UUID        string
	StudentID   string
	QuestionID  string
	Language    string
	Description string
	Name        string
	DateTime    string
}

func GetSubmissionTable() SubmissionTable {
	return SubmissionTable{
		UUID:        "uuid",
		StudentID:   "student_id",
		QuestionID:  "question_id",
		Language:    "language",
		Description: "description",
		Name:        "name",
		DateTime:    "date_time",
	}
}

func (SubmissionTable) TableName() string {
	return "submission"
}
