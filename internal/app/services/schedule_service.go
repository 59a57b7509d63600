package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/rakibul/unibus/internal/app/models"
	"github.com/rakibul/unibus/internal/app/models/dto"
	"github.com/rakibul/unibus/internal/app/repositories"
	"github.com/rakibul/unibus/internal/pkg/apperrors"
)

// ScheduleService defines the interface for bus schedule operations
type ScheduleService interface {
	ListSchedules(ctx context.Context, query dto.ScheduleListQuery) ([]*models.BusSchedule, error)
	GetScheduleByID(ctx context.Context, id int64) (*models.BusSchedule, error)
	CreateSchedule(ctx context.Context, schedule *models.BusSchedule) (int64, error)
	UpdateSchedule(ctx context.Context, schedule *models.BusSchedule) error
	DeleteSchedule(ctx context.Context, id int64) error
}

// scheduleServiceImpl implements the ScheduleService interface
type scheduleServiceImpl struct {
	scheduleRepo *repositories.ScheduleRepository
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(scheduleRepo *repositories.ScheduleRepository) ScheduleService {
	return &scheduleServiceImpl{
		scheduleRepo: scheduleRepo,
	}
}

// CategoryScheduleType maps the listing category to the schedule type it
// admits. CategoryAll admits everything and maps to the empty type.
func CategoryScheduleType(category models.ScheduleCategory) models.ScheduleType {
	switch category {
	case models.CategoryRegular:
		return models.ScheduleTypeRegular
	case models.CategoryFriday:
		return models.ScheduleTypeFriday
	}
	return ""
}

// MatchesQuery reports whether a schedule matches the free-text query.
// The match is a case-insensitive substring test across the time, route,
// starting point and end point fields.
func MatchesQuery(s *models.BusSchedule, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}

	return strings.Contains(strings.ToLower(s.Time), q) ||
		strings.Contains(strings.ToLower(s.Route), q) ||
		strings.Contains(strings.ToLower(s.StartingPoint), q) ||
		strings.Contains(strings.ToLower(s.EndPoint), q)
}

// FilterSchedules applies the free-text query and category filter to a
// schedule list. The two filters intersect: a schedule must satisfy both.
func FilterSchedules(schedules []*models.BusSchedule, query string, category models.ScheduleCategory) []*models.BusSchedule {
	wantType := CategoryScheduleType(category)

	filtered := []*models.BusSchedule{}
	for _, s := range schedules {
		if wantType != "" && s.ScheduleType != wantType {
			continue
		}
		if !MatchesQuery(s, query) {
			continue
		}
		filtered = append(filtered, s)
	}

	return filtered
}

// listingFilter builds the SQL-level filter for a schedule listing. The
// category narrows the fetched set by schedule type; the free-text query
// stays an in-memory concern.
func listingFilter(query dto.ScheduleListQuery) repositories.ScheduleFilter {
	category := models.ScheduleCategory(query.Category)
	if category == "" {
		category = models.CategoryAll
	}

	return repositories.ScheduleFilter{
		ScheduleType: CategoryScheduleType(category),
		Direction:    models.Direction(query.Direction),
	}
}

// ListSchedules retrieves schedules matching the listing filters
func (s *scheduleServiceImpl) ListSchedules(ctx context.Context, query dto.ScheduleListQuery) ([]*models.BusSchedule, error) {
	schedules, err := s.scheduleRepo.ListSchedules(ctx, listingFilter(query))
	if err != nil {
		return nil, fmt.Errorf("error retrieving schedules: %w", err)
	}

	category := models.ScheduleCategory(query.Category)
	if category == "" {
		category = models.CategoryAll
	}

	// The timetable is a few hundred rows at most, so the free-text
	// filter runs in memory; the category test repeats here so the
	// result does not depend on the fetch being pre-narrowed.
	return FilterSchedules(schedules, query.Query, category), nil
}

// GetScheduleByID retrieves a schedule by ID
func (s *scheduleServiceImpl) GetScheduleByID(ctx context.Context, id int64) (*models.BusSchedule, error) {
	if id <= 0 {
		return nil, fmt.Errorf("%w: invalid schedule ID", apperrors.ErrValidationFailed)
	}

	schedule, err := s.scheduleRepo.GetScheduleByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

// validateSchedule validates schedule data before database operations
func validateSchedule(schedule *models.BusSchedule) error {
	if schedule == nil {
		return fmt.Errorf("%w: schedule is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(schedule.Time) == "" {
		return fmt.Errorf("%w: time cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(schedule.Route) == "" {
		return fmt.Errorf("%w: route cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(schedule.StartingPoint) == "" {
		return fmt.Errorf("%w: starting point cannot be empty", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(schedule.EndPoint) == "" {
		return fmt.Errorf("%w: end point cannot be empty", apperrors.ErrValidationFailed)
	}

	switch schedule.Direction {
	case models.DirectionCampusToCity, models.DirectionCityToCampus:
	default:
		return fmt.Errorf("%w: unknown direction %q", apperrors.ErrValidationFailed, schedule.Direction)
	}

	switch schedule.ScheduleType {
	case models.ScheduleTypeRegular, models.ScheduleTypeFriday:
	default:
		return fmt.Errorf("%w: unknown schedule type %q", apperrors.ErrValidationFailed, schedule.ScheduleType)
	}

	return nil
}

// CreateSchedule creates a new schedule
func (s *scheduleServiceImpl) CreateSchedule(ctx context.Context, schedule *models.BusSchedule) (int64, error) {
	if err := validateSchedule(schedule); err != nil {
		return 0, err
	}

	id, err := s.scheduleRepo.CreateSchedule(ctx, schedule)
	if err != nil {
		return 0, fmt.Errorf("error creating schedule: %w", err)
	}
	return id, nil
}

// UpdateSchedule updates an existing schedule
func (s *scheduleServiceImpl) UpdateSchedule(ctx context.Context, schedule *models.BusSchedule) error {
	if err := validateSchedule(schedule); err != nil {
		return err
	}
	if schedule.ID <= 0 {
		return fmt.Errorf("%w: invalid schedule ID", apperrors.ErrValidationFailed)
	}

	return s.scheduleRepo.UpdateSchedule(ctx, schedule)
}

// DeleteSchedule deletes a schedule by ID
func (s *scheduleServiceImpl) DeleteSchedule(ctx context.Context, id int64) error {
	if id <= 0 {
		return fmt.Errorf("%w: invalid schedule ID", apperrors.ErrValidationFailed)
	}

	return s.scheduleRepo.DeleteSchedule(ctx, id)
}
