// Package entity contains the core business objects of the project.
package entity

// Role represents the type of role a user can have in the system.
type Role string

const (
	// RoleAdministrator indicates a school administrator.
	RoleAdministrator Role = "administrador"
	// RoleTeacher indicates a teacher.
	RoleTeacher Role = "maestro"
	// RoleCaregiver indicates a student's caregiver. Older data sets used the
	// literal "padre" for the same concept; that literal is not recognized
	// here and needs an explicit migration before it routes anywhere.
	RoleCaregiver Role = "tutor"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdministrator, RoleTeacher, RoleCaregiver:
		return true
	default:
		return false
	}
}
