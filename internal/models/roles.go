package models

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

// IsValidRole reports whether role is one the library recognises.
func IsValidRole(role string) bool {
	switch role {
	case RoleStudent, RoleAdmin:
		return true
	}
	return false
}
