package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rakibul/unibus/internal/app/models"
	"github.com/rakibul/unibus/internal/app/repositories"
	"github.com/rakibul/unibus/internal/pkg/apperrors"
)

// NoticeBroadcaster pushes notice events to live subscribers. The
// websocket hub satisfies this; a nil broadcaster disables the feed.
type NoticeBroadcaster interface {
	PublishNotice(notice *models.Notice)
	UpdateNotice(notice *models.Notice)
	DeleteNotice(noticeID int64)
}

// NoticeService defines the interface for notice operations
type NoticeService interface {
	ListNotices(ctx context.Context, page, size int) ([]*models.Notice, int64, error)
	GetNoticeByID(ctx context.Context, id int64) (*models.Notice, error)
	CreateNotice(ctx context.Context, title, content string) (*models.Notice, error)
	UpdateNotice(ctx context.Context, notice *models.Notice) error
	DeleteNotice(ctx context.Context, id int64) error
}

// noticeServiceImpl implements the NoticeService interface
type noticeServiceImpl struct {
	noticeRepo  *repositories.NoticeRepository
	broadcaster NoticeBroadcaster
}

// NewNoticeService creates a new notice service instance
func NewNoticeService(noticeRepo *repositories.NoticeRepository, broadcaster NoticeBroadcaster) NoticeService {
	return &noticeServiceImpl{
		noticeRepo:  noticeRepo,
		broadcaster: broadcaster,
	}
}

// ListNotices lists published notices, newest first
func (s *noticeServiceImpl) ListNotices(ctx context.Context, page, size int) ([]*models.Notice, int64, error) {
	offset, limit := offsetLimit(page, size)
	return s.noticeRepo.ListNotices(ctx, offset, limit)
}

// GetNoticeByID retrieves a notice by ID
func (s *noticeServiceImpl) GetNoticeByID(ctx context.Context, id int64) (*models.Notice, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid notice ID", apperrors.ErrValidationFailed)
	}

	return s.noticeRepo.GetNoticeByID(ctx, id)
}

// CreateNotice stores a notice and broadcasts it to subscribers
func (s *noticeServiceImpl) CreateNotice(ctx context.Context, title, content string) (*models.Notice, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" || content == "" {
		return nil, fmt.Errorf("%w: title and content are required", apperrors.ErrValidationFailed)
	}

	notice := &models.Notice{
		Title:   title,
		Content: content,
	}

	id, publishedAt, err := s.noticeRepo.CreateNotice(ctx, notice)
	if err != nil {
		return nil, fmt.Errorf("error creating notice: %w", err)
	}

	notice.ID = id
	notice.PublishedAt = publishedAt

	if s.broadcaster != nil {
		s.broadcaster.PublishNotice(notice)
	}

	return notice, nil
}

// UpdateNotice updates a notice and broadcasts the change
func (s *noticeServiceImpl) UpdateNotice(ctx context.Context, notice *models.Notice) error {
	if notice == nil || notice.ID <= 0 {
		return fmt.Errorf("%w: invalid notice ID", apperrors.ErrValidationFailed)
	}

	notice.Title = strings.TrimSpace(notice.Title)
	notice.Content = strings.TrimSpace(notice.Content)
	if notice.Title == "" || notice.Content == "" {
		return fmt.Errorf("%w: title and content are required", apperrors.ErrValidationFailed)
	}

	if err := s.noticeRepo.UpdateNotice(ctx, notice); err != nil {
		return err
	}

	if s.broadcaster != nil {
		s.broadcaster.UpdateNotice(notice)
	}

	return nil
}

// DeleteNotice deletes a notice and broadcasts the removal
func (s *noticeServiceImpl) DeleteNotice(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid notice ID", apperrors.ErrValidationFailed)
	}

	if err := s.noticeRepo.DeleteNotice(ctx, id); err != nil {
		return err
	}

	if s.broadcaster != nil {
		s.broadcaster.DeleteNotice(id)
	}

	return nil
}
