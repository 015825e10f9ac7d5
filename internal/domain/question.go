package domain

// Question is the pairing of an exam and an exercise, resolved to an
// internal identifier. A submission always targets exactly one question.
type Question struct {
	ID         int64 `db:"id"`
	ExamID     int64 `db:"exam_id"`
	ExerciseID int64 `db:"exercise_id"`
}

type QuestionTable struct {
	ID         string
	ExamID     string
	ExerciseID string
}

func GetQuestionTable() QuestionTable {
	return QuestionTable{
		ID:         "id",
		ExamID:     "exam_id",
		ExerciseID: "exercise_id",
	}
}

func (QuestionTable) TableName() string {
	return "exam_cont"
}

// Student is the class-scoped identity of a user enrolled in a class. The
// enrollment record is what converts a global user id into a student id.
type Student struct {
	ID      int64 `db:"id"`
	UserID  int64 `db:"user_id"`
	ClassID int64 `db:"class_id"`
}

type StudentTable struct {
	ID      string
	UserID  string
	ClassID string
}

func GetStudentTable() StudentTable {
	return StudentTable{
		ID:      "id",
		UserID:  "user_id",
		ClassID: "class_id",
	}
}

func (StudentTable) TableName() string {
	return "student"
}
