package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID           int64        `json:"id" db:"id" example:"1"`                                          // Unique identifier for the user
	Email        string       `json:"email" db:"email" example:"student@diu.edu.bd"`                   // User's email address
	Password     string       `json:"-" db:"password"`                                                 // Hashed password (empty for OAuth-only accounts)
	Name         string       `json:"name" db:"name" example:"Nusrat Jahan"`                           // Full name
	UniversityID *string      `json:"universityId,omitempty" db:"university_id" example:"201-15-3210"` // Student/employee ID (nullable until profile completed)
	Mobile       *string      `json:"mobile,omitempty" db:"mobile" example:"+8801712345678"`           // Mobile number (nullable)
	Gender       *string      `json:"gender,omitempty" db:"gender" example:"female"`                   // Gender (nullable)
	RoleType     RoleType     `json:"roleType" db:"role_type" example:"STUDENT"`                       // STUDENT or ADMIN
	Provider     AuthProvider `json:"provider" db:"provider" example:"LOCAL"`                          // How the account was created
	IsActive     bool         `json:"isActive" db:"is_active" example:"true"`                          // Whether the account is active
	CreatedAt    time.Time    `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"`
	UpdatedAt    time.Time    `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"`
	LastLoginAt  *time.Time   `json:"lastLoginAt,omitempty" db:"last_login_at"` // Timestamp of the last login (nullable)
}
