package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // village head - manages settings, users, announcements
	RoleStaff Role = "staff" // office staff - submits own attendance
)

func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleStaff
}

type User struct {
	ID           string
	Name         string
	Email        string
	Position     string // office position (jabatan); one holder per position
	Role         Role
	PasswordHash *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user can manage settings, users and announcements.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
