package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakibul/unibus/internal/app/models"
	"github.com/rakibul/unibus/internal/pkg/apperrors"
	"github.com/rakibul/unibus/internal/pkg/logger"
)

const scheduleColumns = "id, departure_time, starting_point, route, end_point, direction, gender, bus_type, remarks, description, schedule_type, created_at, updated_at"

// ScheduleRepository handles bus schedule database operations
type ScheduleRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewScheduleRepository creates a new ScheduleRepository
func NewScheduleRepository(db *pgxpool.Pool) *ScheduleRepository {
	return &ScheduleRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanSchedule(row pgx.Row) (*models.BusSchedule, error) {
	s := &models.BusSchedule{}
	err := row.Scan(
		&s.ID, &s.Time, &s.StartingPoint, &s.Route, &s.EndPoint,
		&s.Direction, &s.Gender, &s.BusType, &s.Remarks, &s.Description,
		&s.ScheduleType, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return s, nil
}

// ScheduleFilter narrows the schedule listing at the SQL level
type ScheduleFilter struct {
	ScheduleType models.ScheduleType
	Direction    models.Direction
}

// CreateSchedule creates a new bus schedule
func (r *ScheduleRepository) CreateSchedule(ctx context.Context, s *models.BusSchedule) (int64, error) {
	now := time.Now()
	sql, args, err := r.sb.Insert("bus_schedules").
		Columns("departure_time", "starting_point", "route", "end_point", "direction",
			"gender", "bus_type", "remarks", "description", "schedule_type", "created_at", "updated_at").
		Values(s.Time, s.StartingPoint, s.Route, s.EndPoint, s.Direction,
			s.Gender, s.BusType, s.Remarks, s.Description, s.ScheduleType, now, now).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create schedule SQL")
		return 0, fmt.Errorf("failed to build create schedule query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create schedule query")
		return 0, fmt.Errorf("error creating schedule: %w", err)
	}

	return id, nil
}

// GetScheduleByID retrieves a schedule by ID
func (r *ScheduleRepository) GetScheduleByID(ctx context.Context, id int64) (*models.BusSchedule, error) {
	sql, args, err := r.sb.Select(scheduleColumns).
		From("bus_schedules").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get schedule by ID SQL")
		return nil, fmt.Errorf("failed to build get schedule query: %w", err)
	}

	schedule, err := scanSchedule(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrScheduleNotFound
		}
		logger.Error().Err(err).Int64("scheduleID", id).Msg("Error scanning schedule row")
		return nil, fmt.Errorf("error getting schedule by ID: %w", err)
	}

	return schedule, nil
}

// ListSchedules retrieves schedules matching the filter, ordered by departure time
func (r *ScheduleRepository) ListSchedules(ctx context.Context, filter ScheduleFilter) ([]*models.BusSchedule, error) {
	builder := r.sb.Select(scheduleColumns).
		From("bus_schedules").
		OrderBy("departure_time ASC", "id ASC")

	if filter.ScheduleType != "" {
		builder = builder.Where(squirrel.Eq{"schedule_type": filter.ScheduleType})
	}
	if filter.Direction != "" {
		builder = builder.Where(squirrel.Eq{"direction": filter.Direction})
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list schedules SQL")
		return nil, fmt.Errorf("failed to build list schedules query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list schedules query")
		return nil, fmt.Errorf("error querying schedules: %w", err)
	}
	defer rows.Close()

	schedules := []*models.BusSchedule{}
	for rows.Next() {
		schedule, err := scanSchedule(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning schedule row during list")
			return nil, fmt.Errorf("error scanning schedule row: %w", err)
		}
		schedules = append(schedules, schedule)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating schedule rows")
		return nil, fmt.Errorf("error iterating schedule rows: %w", err)
	}

	return schedules, nil
}

// UpdateSchedule updates an existing schedule
func (r *ScheduleRepository) UpdateSchedule(ctx context.Context, s *models.BusSchedule) error {
	sql, args, err := r.sb.Update("bus_schedules").
		SetMap(map[string]interface{}{
			"departure_time": s.Time,
			"starting_point": s.StartingPoint,
			"route":          s.Route,
			"end_point":      s.EndPoint,
			"direction":      s.Direction,
			"gender":         s.Gender,
			"bus_type":       s.BusType,
			"remarks":        s.Remarks,
			"description":    s.Description,
			"schedule_type":  s.ScheduleType,
			"updated_at":     time.Now(),
		}).
		Where(squirrel.Eq{"id": s.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update schedule SQL")
		return fmt.Errorf("failed to build update schedule query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scheduleID", s.ID).Msg("Error executing update schedule query")
		return fmt.Errorf("error updating schedule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}

	return nil
}

// DeleteSchedule deletes a schedule by ID
func (r *ScheduleRepository) DeleteSchedule(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("bus_schedules").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete schedule SQL")
		return fmt.Errorf("failed to build delete schedule query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("scheduleID", id).Msg("Error executing delete schedule query")
		return fmt.Errorf("error deleting schedule: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrScheduleNotFound
	}

	return nil
}
