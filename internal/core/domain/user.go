package domain

import "time"

// Department is the organizational unit a user belongs to. It doubles as the
// user's role for authorization purposes: every user has exactly one.
type Department string

const (
	DepartmentCommercial Department = "COMMERCIAL"
	DepartmentGestion    Department = "GESTION"
	DepartmentSupport    Department = "SUPPORT"
)

// Valid reports whether d is one of the three known departments.
func (d Department) Valid() bool {
	switch d {
	case DepartmentCommercial, DepartmentGestion, DepartmentSupport:
		return true
	}
	return false
}

// User models an employee of the company. Clients reference a COMMERCIAL user
// as their sales contact; events may reference a SUPPORT user.
type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Username     string     `gorm:"size:50;uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	FirstName    string     `gorm:"size:50;not null" json:"first_name"`
	LastName     string     `gorm:"size:50;not null" json:"last_name"`
	Phone        string     `gorm:"size:20;not null" json:"phone"`
	Department   Department `gorm:"size:20;not null" json:"department"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// FullName returns the user's display name.
func (u *User) FullName() string {
	return u.FirstName + " " + u.LastName
}
