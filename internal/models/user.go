package models

import "time"

// User is read-only reference data for a library patron or staff member.
// Students carry a roll number, admins a staff id.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	Department   string    `json:"department,omitempty"`
	RollNumber   string    `json:"rollNumber,omitempty"`
	StaffID      string    `json:"staffId,omitempty"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// IsAdmin reports whether the user may issue and return books.
func (u User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
