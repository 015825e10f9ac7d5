package domain

// Role is the caller's resolved role, decoded from the session token by the
// identity middleware. The core never derives it from raw request input.
type Role string

const (
	RoleStudent     Role = "STUDENT"
	RoleTeacher     Role = "TEACHER"
	RoleSystemAdmin Role = "SYSTEM_ADMIN"
)

var authenticatedRoles = map[Role]bool{
	RoleStudent:     true,
	RoleTeacher:     true,
	RoleSystemAdmin: true,
}

var elevatedRoles = map[Role]bool{
	RoleTeacher:     true,
	RoleSystemAdmin: true,
}

// Authenticated reports whether the role belongs to the fixed set of
// authenticated roles. Anything outside it is a malformed session.
func (r Role) Authenticated() bool {
	return authenticatedRoles[r]
}

// Elevated reports whether the role is entitled to cross-student visibility
func (r Role) Elevated() bool {
	return elevatedRoles[r]
}

// UserInfo is the already-resolved caller identity handed to the core by the
// request layer.
type UserInfo struct {
	ID   int64 `json:"id"`
	Role Role  `json:"role"`
}
