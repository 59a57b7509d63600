package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rakibul/unibus/internal/app/models"
	"github.com/rakibul/unibus/internal/app/models/dto"
	"github.com/rakibul/unibus/internal/app/repositories"
	"github.com/rakibul/unibus/internal/pkg/apperrors"
	"github.com/rakibul/unibus/internal/pkg/validation"
)

// UserService defines the interface for profile operations
type UserService interface {
	GetProfile(ctx context.Context, userID int64) (*models.User, error)
	UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*models.User, error)
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	userRepo *repositories.UserRepository
}

// NewUserService creates a new user service instance
func NewUserService(userRepo *repositories.UserRepository) UserService {
	return &userServiceImpl{
		userRepo: userRepo,
	}
}

// GetProfile retrieves the caller's profile
func (s *userServiceImpl) GetProfile(ctx context.Context, userID int64) (*models.User, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	return s.userRepo.GetUserByID(ctx, userID)
}

// UpdateProfile validates and stores profile changes
func (s *userServiceImpl) UpdateProfile(ctx context.Context, userID int64, req dto.UpdateProfileRequest) (*models.User, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	name := strings.TrimSpace(req.Name)
	if len(name) < validation.NameMinLength || len(name) > validation.NameMaxLength {
		return nil, fmt.Errorf("%w: name must be between %d and %d characters",
			apperrors.ErrValidationFailed, validation.NameMinLength, validation.NameMaxLength)
	}

	universityID := strings.TrimSpace(req.UniversityID)
	if !validation.IsValidUniversityID(universityID) {
		return nil, fmt.Errorf("%w: invalid university ID format", apperrors.ErrValidationFailed)
	}

	mobile := strings.TrimSpace(req.Mobile)
	if mobile != "" && !validation.IsValidMobile(mobile) {
		return nil, fmt.Errorf("%w: invalid mobile number format", apperrors.ErrValidationFailed)
	}

	user, err := s.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	user.Name = name
	user.UniversityID = &universityID
	if mobile != "" {
		user.Mobile = &mobile
	} else {
		user.Mobile = nil
	}
	if req.Gender != "" {
		gender := req.Gender
		user.Gender = &gender
	}

	if err := s.userRepo.UpdateProfile(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
