package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rakibul/unibus/internal/app/models"
	"github.com/rakibul/unibus/internal/app/models/dto"
	"github.com/rakibul/unibus/internal/app/repositories"
	"github.com/rakibul/unibus/internal/pkg/apperrors"
)

// ComplaintService defines the interface for complaint operations
type ComplaintService interface {
	CreateComplaint(ctx context.Context, userID int64, req dto.CreateComplaintRequest) (*models.Complaint, error)
	GetComplaint(ctx context.Context, id, requesterID int64, requesterRole models.RoleType) (*models.Complaint, error)
	ListUserComplaints(ctx context.Context, userID int64, query dto.ComplaintListQuery, page, size int) ([]*models.Complaint, int64, error)
	ListAllComplaints(ctx context.Context, query dto.ComplaintListQuery, page, size int) ([]*models.Complaint, int64, error)
	UpdateStatus(ctx context.Context, id int64, req dto.UpdateComplaintStatusRequest) (*models.Complaint, error)
}

// complaintServiceImpl implements the ComplaintService interface
type complaintServiceImpl struct {
	complaintRepo *repositories.ComplaintRepository
}

// NewComplaintService creates a new complaint service instance
func NewComplaintService(complaintRepo *repositories.ComplaintRepository) ComplaintService {
	return &complaintServiceImpl{
		complaintRepo: complaintRepo,
	}
}

// ValidStatusTransition reports whether a complaint may move from one
// status to another. Resolved and dismissed are terminal; a complaint
// never reopens.
func ValidStatusTransition(from, to models.ComplaintStatus) bool {
	if from == to {
		return false
	}

	switch from {
	case models.StatusOpen:
		return to == models.StatusInProgress || to == models.StatusResolved || to == models.StatusDismissed
	case models.StatusInProgress:
		return to == models.StatusResolved || to == models.StatusDismissed
	}

	return false
}

// closingStatus reports whether a status ends triage and therefore
// requires an admin response.
func closingStatus(s models.ComplaintStatus) bool {
	return s == models.StatusResolved || s == models.StatusDismissed
}

// statusChange captures the fields a triage transition writes.
type statusChange struct {
	Status        models.ComplaintStatus
	ResolvedAt    *time.Time
	AdminResponse *string
}

// planStatusChange validates a triage transition against the complaint's
// current state and decides what the update writes. A closing status needs
// an admin response, either from this request or recorded earlier, and
// resolved_at is stamped the first time the complaint becomes resolved and
// never overwritten.
func planStatusChange(complaint *models.Complaint, newStatus models.ComplaintStatus, response string, now time.Time) (statusChange, error) {
	if !ValidStatusTransition(complaint.Status, newStatus) {
		return statusChange{}, fmt.Errorf("%w: %s -> %s", apperrors.ErrInvalidStatusTransition, complaint.Status, newStatus)
	}

	adminResponse := complaint.AdminResponse
	if resp := strings.TrimSpace(response); resp != "" {
		adminResponse = &resp
	}

	if closingStatus(newStatus) && adminResponse == nil {
		return statusChange{}, apperrors.ErrAdminResponseRequired
	}

	resolvedAt := complaint.ResolvedAt
	if newStatus == models.StatusResolved && resolvedAt == nil {
		resolvedAt = &now
	}

	return statusChange{Status: newStatus, ResolvedAt: resolvedAt, AdminResponse: adminResponse}, nil
}

// CreateComplaint validates and stores a new complaint with status open
func (s *complaintServiceImpl) CreateComplaint(ctx context.Context, userID int64, req dto.CreateComplaintRequest) (*models.Complaint, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	category := models.ComplaintCategory(req.Category)
	if !models.ValidComplaintCategory(category) {
		return nil, fmt.Errorf("%w: unknown category %q", apperrors.ErrValidationFailed, req.Category)
	}

	priority := models.ComplaintPriority(req.Priority)
	if !models.ValidComplaintPriority(priority) {
		return nil, fmt.Errorf("%w: unknown priority %q", apperrors.ErrValidationFailed, req.Priority)
	}

	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Description) == "" {
		return nil, fmt.Errorf("%w: title and description are required", apperrors.ErrValidationFailed)
	}

	complaint := &models.Complaint{
		UserID:      userID,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Category:    category,
		Priority:    priority,
		Status:      models.StatusOpen,
	}
	if req.BusRoute != "" {
		busRoute := req.BusRoute
		complaint.BusRoute = &busRoute
	}
	if req.IncidentTime != nil {
		complaint.IncidentTime = req.IncidentTime
	}

	id, err := s.complaintRepo.CreateComplaint(ctx, complaint)
	if err != nil {
		return nil, fmt.Errorf("error creating complaint: %w", err)
	}

	return s.complaintRepo.GetComplaintByID(ctx, id)
}

// GetComplaint retrieves a complaint, restricted to its owner or an admin
func (s *complaintServiceImpl) GetComplaint(ctx context.Context, id, requesterID int64, requesterRole models.RoleType) (*models.Complaint, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid complaint ID", apperrors.ErrValidationFailed)
	}

	complaint, err := s.complaintRepo.GetComplaintByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if complaint.UserID != requesterID && requesterRole != models.RoleAdmin {
		return nil, apperrors.NewForbiddenError("complaint belongs to another user")
	}

	return complaint, nil
}

// ListUserComplaints lists the caller's complaints
func (s *complaintServiceImpl) ListUserComplaints(ctx context.Context, userID int64, query dto.ComplaintListQuery, page, size int) ([]*models.Complaint, int64, error) {
	if userID <= 0 {
		return nil, 0, fmt.Errorf("%w: invalid user ID", apperrors.ErrValidationFailed)
	}

	filter := repositories.ComplaintFilter{
		UserID:   userID,
		Status:   models.ComplaintStatus(query.Status),
		Category: models.ComplaintCategory(query.Category),
		Priority: models.ComplaintPriority(query.Priority),
	}

	offset, limit := offsetLimit(page, size)
	return s.complaintRepo.ListComplaints(ctx, filter, offset, limit)
}

// ListAllComplaints lists all complaints (admin)
func (s *complaintServiceImpl) ListAllComplaints(ctx context.Context, query dto.ComplaintListQuery, page, size int) ([]*models.Complaint, int64, error) {
	filter := repositories.ComplaintFilter{
		Status:   models.ComplaintStatus(query.Status),
		Category: models.ComplaintCategory(query.Category),
		Priority: models.ComplaintPriority(query.Priority),
	}

	offset, limit := offsetLimit(page, size)
	return s.complaintRepo.ListComplaints(ctx, filter, offset, limit)
}

// UpdateStatus applies a triage transition to a complaint
func (s *complaintServiceImpl) UpdateStatus(ctx context.Context, id int64, req dto.UpdateComplaintStatusRequest) (*models.Complaint, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid complaint ID", apperrors.ErrValidationFailed)
	}

	newStatus := models.ComplaintStatus(req.Status)
	if !models.ValidComplaintStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", apperrors.ErrValidationFailed, req.Status)
	}

	complaint, err := s.complaintRepo.GetComplaintByID(ctx, id)
	if err != nil {
		return nil, err
	}

	change, err := planStatusChange(complaint, newStatus, req.AdminResponse, time.Now())
	if err != nil {
		return nil, err
	}

	if err := s.complaintRepo.UpdateComplaintStatus(ctx, id, change.Status, change.ResolvedAt, change.AdminResponse); err != nil {
		return nil, err
	}

	return s.complaintRepo.GetComplaintByID(ctx, id)
}
