package resolver

import (
	"context"
)

// IContextResolver maps caller and exam identifiers to concrete question and
// student identities before any authorization or write happens
type IContextResolver interface {
	// Resolve maps (examID, exerciseID) to a question id and
	// (userID, classID) to a class-scoped student id
	Resolve(ctx context.Context, examID, exerciseID, userID, classID int64) (questionID, studentID int64, err error)

	// ResolveQuestion maps (examID, exerciseID) to a question id only
	ResolveQuestion(ctx context.Context, examID, exerciseID int64) (int64, error)
}
