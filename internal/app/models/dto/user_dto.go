package dto

import (
	"time"

	"github.com/rakibul/unibus/internal/app/models"
)

// UserResponse represents basic user information
type UserResponse struct {
	ID           int64      `json:"id"`
	Email        string     `json:"email"`
	Name         string     `json:"name"`
	UniversityID *string    `json:"universityId,omitempty"`
	Mobile       *string    `json:"mobile,omitempty"`
	Gender       *string    `json:"gender,omitempty"`
	Role         string     `json:"role"`
	Provider     string     `json:"provider"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

// UpdateProfileRequest represents profile update data
type UpdateProfileRequest struct {
	Name         string `json:"name" binding:"required,min=2,max=100"`
	UniversityID string `json:"universityId" binding:"required"`
	Mobile       string `json:"mobile,omitempty"`
	Gender       string `json:"gender,omitempty" binding:"omitempty,oneof=male female other"`
}

// NewUserResponse maps a user model to its API representation.
func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		Name:         u.Name,
		UniversityID: u.UniversityID,
		Mobile:       u.Mobile,
		Gender:       u.Gender,
		Role:         string(u.RoleType),
		Provider:     string(u.Provider),
		LastLoginAt:  u.LastLoginAt,
	}
}
