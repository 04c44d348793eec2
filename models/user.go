package models

// Role is the closed set of caller classifications understood by the
// settings endpoints.
type Role string

const (
	// RoleAdmin reads and writes the global Settings record.
	RoleAdmin Role = "admin"

	// RoleFilial reads and writes the Filial record bound to the caller's phone.
	RoleFilial Role = "filial"

	// RoleOther covers every role stored for a user that is neither admin
	// nor filial. Such callers are denied access to settings.
	RoleOther Role = "other"
)

// ParseRole maps a role string stored with a user onto [Role].
// Unknown values are reported as [RoleOther].
func ParseRole(s string) Role {
	switch Role(s) {
	case RoleAdmin:
		return RoleAdmin
	case RoleFilial:
		return RoleFilial
	default:
		return RoleOther
	}
}

// User represents an account owned by the identity subsystem.
// The settings service only reads it.
type User struct {
	// UserID is the identifier callers send as `userId`.
	UserID string `json:"id"`

	// Phone is the phone number used to locate the caller's Filial record.
	Phone string `json:"phone"`

	// Role is the raw role string as stored.
	Role string `json:"role"`
}

// Caller is a resolved request author: who they are and what they may touch.
type Caller struct {
	UserID string
	Phone  string
	Role   Role
}

// CallerFromUser classifies a stored user.
func CallerFromUser(u User) Caller {
	return Caller{
		UserID: u.UserID,
		Phone:  u.Phone,
		Role:   ParseRole(u.Role),
	}
}
