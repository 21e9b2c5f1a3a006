package domain

import "time"

// UserRole gates access to the admin dashboard surfaces.
type UserRole string

const (
	RoleAdmin UserRole = "ADMIN"
	RoleStaff UserRole = "STAFF"
)

// User is an admin/staff account. Public donors and requesters never have
// accounts; they are identified by reference IDs only.
type User struct {
	UserID       string   `json:"userID"`
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	PasswordHash string   `json:"-"` // empty for Google-provisioned accounts
	Role         UserRole `json:"role"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"`
}
