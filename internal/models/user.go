package models

import (
	"time"
)

type UserRole string

const (
	RoleStudent    UserRole = "student"
	RoleFaculty    UserRole = "faculty"
	RoleCollege    UserRole = "college"
	RoleGovernment UserRole = "government"
)

// ValidRoles lists every role accepted at registration.
var ValidRoles = []UserRole{RoleStudent, RoleFaculty, RoleCollege, RoleGovernment}

func (r UserRole) Valid() bool {
	for _, role := range ValidRoles {
		if r == role {
			return true
		}
	}
	return false
}

// User is an account holder. Email is globally unique; logins are looked
// up by (email, role) so a mismatched role reads as absent credentials.
// Password is never serialized.
type User struct {
	ID       uint     `json:"id" gorm:"primaryKey"`
	Name     string   `json:"name" gorm:"not null;size:100"`
	Email    string   `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password string   `json:"-" gorm:"not null;size:100"`
	Role     UserRole `json:"role" gorm:"not null;size:20;index"`

	// Institutional affiliation. Empty for government users.
	CollegeID   string `json:"collegeId" gorm:"size:50"`
	CollegeName string `json:"collegeName" gorm:"size:200"`
	Branch      string `json:"branch,omitempty" gorm:"size:100"`
	RollNumber  string `json:"rollNumber,omitempty" gorm:"size:50"`

	// Profile
	Department  string `json:"department" gorm:"size:100"`
	Designation string `json:"designation,omitempty" gorm:"size:100"`
	Contact     string `json:"contact,omitempty" gorm:"size:30"`
	City        string `json:"city,omitempty" gorm:"size:100"`
	State       string `json:"state,omitempty" gorm:"size:100"`

	LastActive *time.Time `json:"lastActive,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (User) TableName() string {
	return "users"
}

// College is a pre-registered institution. Registration of non-government
// users is validated against this table.
type College struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CollegeID string    `json:"collegeId" gorm:"uniqueIndex;not null;size:50"`
	Name      string    `json:"name" gorm:"not null;size:200"`
	City      string    `json:"city,omitempty" gorm:"size:100"`
	State     string    `json:"state,omitempty" gorm:"size:100"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (College) TableName() string {
	return "colleges"
}
