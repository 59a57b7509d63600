package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rakibul/unibus/internal/app/models"
	"github.com/rakibul/unibus/internal/app/repositories"
	"github.com/rakibul/unibus/internal/pkg/apperrors"
)

// FeedbackService defines the interface for feedback operations
type FeedbackService interface {
	CreateFeedback(ctx context.Context, userID int64, message string) (*models.Feedback, error)
	ListUserFeedback(ctx context.Context, userID int64, page, size int) ([]*models.Feedback, int64, error)
	ListAllFeedback(ctx context.Context, page, size int) ([]*models.Feedback, int64, error)
}

// feedbackServiceImpl implements the FeedbackService interface
type feedbackServiceImpl struct {
	feedbackRepo *repositories.FeedbackRepository
}

// NewFeedbackService creates a new feedback service instance
func NewFeedbackService(feedbackRepo *repositories.FeedbackRepository) FeedbackService {
	return &feedbackServiceImpl{
		feedbackRepo: feedbackRepo,
	}
}

// CreateFeedback validates and stores a feedback message
func (s *feedbackServiceImpl) CreateFeedback(ctx context.Context, userID int64, message string) (*models.Feedback, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	message = strings.TrimSpace(message)
	if message == "" {
		return nil, fmt.Errorf("%w: message cannot be empty", apperrors.ErrValidationFailed)
	}

	feedback := &models.Feedback{
		UserID:  userID,
		Message: message,
	}

	id, err := s.feedbackRepo.CreateFeedback(ctx, feedback)
	if err != nil {
		return nil, fmt.Errorf("error creating feedback: %w", err)
	}

	feedback.ID = id
	return feedback, nil
}

// ListUserFeedback lists the caller's feedback, newest first
func (s *feedbackServiceImpl) ListUserFeedback(ctx context.Context, userID int64, page, size int) ([]*models.Feedback, int64, error) {
	if userID <= 0 {
		return nil, 0, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	offset, limit := offsetLimit(page, size)
	return s.feedbackRepo.ListFeedbackByUser(ctx, userID, offset, limit)
}

// ListAllFeedback lists all feedback (admin), newest first
func (s *feedbackServiceImpl) ListAllFeedback(ctx context.Context, page, size int) ([]*models.Feedback, int64, error) {
	offset, limit := offsetLimit(page, size)
	return s.feedbackRepo.ListAllFeedback(ctx, offset, limit)
}
