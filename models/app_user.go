package models

import "time"

const (
	RoleAdmin = "admin"
	RoleStaff = "staff"
)

type AppUser struct {
	ID        int64     `json:"id" bson:"id" db:"id"`
	Name      string    `json:"name" bson:"name" db:"name"`
	Email     string    `json:"email" bson:"email" db:"email"`
	Role      string    `json:"role" bson:"role" db:"role"`
	BranchID  int64     `json:"branchId" bson:"branch_id" db:"branch_id"`
	Password  string    `json:"password" bson:"password_hash" db:"password_hash"`
	CreatedAt time.Time `json:"created_at" bson:"created_at" db:"created_at"`
}

// IsAdmin reports whether the user is exempt from the edit floor guards.
func (u *AppUser) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
