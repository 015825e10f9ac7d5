// package authz holds the pure authorization decisions for submission
// operations. It has no dependencies; ownership facts are resolved by the
// caller and passed in.
package authz

import (
	"gitlab.com/ocs-2025.net/internal/domain"
	"gitlab.com/ocs-2025.net/internal/static/errs"
)

type Decision int

const (
	Allow Decision = iota
	DenyInvalidParameters
	DenyNoPermission
)

// Decide is the general guard: a role outside the authenticated set is a
// malformed-session condition, a student without ownership of the target is a
// permission condition, everything else is allowed.
func Decide(role domain.Role, ownerOrEnrolled bool) Decision {
	if !role.Authenticated() {
		return DenyInvalidParameters
	}
	if role.Elevated() {
		return Allow
	}
	if !ownerOrEnrolled {
		return DenyNoPermission
	}
	return Allow
}

// Err maps a decision to the error taxonomy, nil for Allow
func (d Decision) Err() error {
	switch d {
	case DenyInvalidParameters:
		return errs.InvalidParameters
	case DenyNoPermission:
		return errs.NoPermission
	default:
		return nil
	}
}

// CanCreate reports whether the role may create submissions at all. Enrollment
// is checked separately by the context resolver.
func CanCreate(role domain.Role) error {
	if !role.Authenticated() {
		return errs.InvalidParameters
	}
	return nil
}

// ListScope reports whether a listing must be restricted to the caller's own
// records. Elevated roles see every submission for a question.
func ListScope(role domain.Role) (ownOnly bool, err error) {
	if !role.Authenticated() {
		return false, errs.InvalidParameters
	}
	return !role.Elevated(), nil
}
