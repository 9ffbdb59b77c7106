package user

import "time"

type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleHR       Role = "HR"
	RoleEmployee Role = "EMPLOYEE"
)

// IsStaff reports whether the role may act on other employees' records.
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleHR
}

type User struct {
	ID           string
	Email        string
	PasswordHash string
	Role         Role
	IsFirstLogin bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
