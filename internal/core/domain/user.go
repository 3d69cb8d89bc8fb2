package domain

// UserRole is advisory only: roles are stored on users but no operation
// checks them.
type UserRole string

const (
	RoleAdmin      UserRole = "admin"
	RoleAccountant UserRole = "accountant"
	RoleViewer     UserRole = "viewer"
)

// IsValid reports whether r is one of the closed set of roles.
func (r UserRole) IsValid() bool {
	return r == RoleAdmin || r == RoleAccountant || r == RoleViewer
}

// User represents a user of the application. Exactly one user is designated
// the current actor at any time; ledger entries stamp that user's name.
type User struct {
	UserID    string   `json:"userID"` // Primary Key (UUID)
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Role      UserRole `json:"role"`
	AvatarURL string   `json:"avatarURL,omitempty"`
	AuditFields
}
