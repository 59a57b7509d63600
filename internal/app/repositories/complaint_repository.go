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

const complaintColumns = "id, user_id, title, description, category, priority, status, bus_route, incident_time, created_at, resolved_at, admin_response"

// ComplaintRepository handles complaint database operations
type ComplaintRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewComplaintRepository creates a new ComplaintRepository
func NewComplaintRepository(db *pgxpool.Pool) *ComplaintRepository {
	return &ComplaintRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

func scanComplaint(row pgx.Row) (*models.Complaint, error) {
	c := &models.Complaint{}
	err := row.Scan(
		&c.ID, &c.UserID, &c.Title, &c.Description,
		&c.Category, &c.Priority, &c.Status,
		&c.BusRoute, &c.IncidentTime, &c.CreatedAt,
		&c.ResolvedAt, &c.AdminResponse,
	)
	if err != nil {
		return nil, err
	}
	return c, nil
}

// ComplaintFilter narrows the complaint listing
type ComplaintFilter struct {
	UserID   int64 // 0 means all users
	Status   models.ComplaintStatus
	Category models.ComplaintCategory
	Priority models.ComplaintPriority
}

func (f ComplaintFilter) where() squirrel.And {
	var cond squirrel.And
	if f.UserID > 0 {
		cond = append(cond, squirrel.Eq{"user_id": f.UserID})
	}
	if f.Status != "" {
		cond = append(cond, squirrel.Eq{"status": f.Status})
	}
	if f.Category != "" {
		cond = append(cond, squirrel.Eq{"category": f.Category})
	}
	if f.Priority != "" {
		cond = append(cond, squirrel.Eq{"priority": f.Priority})
	}
	return cond
}

// CreateComplaint inserts a complaint and returns its ID
func (r *ComplaintRepository) CreateComplaint(ctx context.Context, c *models.Complaint) (int64, error) {
	sql, args, err := r.sb.Insert("complaints").
		Columns("user_id", "title", "description", "category", "priority", "status",
			"bus_route", "incident_time", "created_at").
		Values(c.UserID, c.Title, c.Description, c.Category, c.Priority, models.StatusOpen,
			c.BusRoute, c.IncidentTime, time.Now()).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create complaint SQL")
		return 0, fmt.Errorf("failed to build create complaint query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("userID", c.UserID).Msg("Error executing create complaint query")
		return 0, fmt.Errorf("error creating complaint: %w", err)
	}

	return id, nil
}

// GetComplaintByID retrieves a complaint by ID
func (r *ComplaintRepository) GetComplaintByID(ctx context.Context, id int64) (*models.Complaint, error) {
	sql, args, err := r.sb.Select(complaintColumns).
		From("complaints").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get complaint by ID SQL")
		return nil, fmt.Errorf("failed to build get complaint query: %w", err)
	}

	complaint, err := scanComplaint(r.db.QueryRow(ctx, sql, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrComplaintNotFound
		}
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error scanning complaint row")
		return nil, fmt.Errorf("error getting complaint by ID: %w", err)
	}

	return complaint, nil
}

// ListComplaints retrieves complaints matching the filter, newest first
func (r *ComplaintRepository) ListComplaints(ctx context.Context, filter ComplaintFilter, offset uint64, limit int) ([]*models.Complaint, int64, error) {
	where := filter.where()

	countBuilder := r.sb.Select("COUNT(*)").From("complaints")
	if len(where) > 0 {
		countBuilder = countBuilder.Where(where)
	}

	countSql, countArgs, err := countBuilder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count complaints SQL")
		return nil, 0, fmt.Errorf("failed to build count complaints query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting complaints")
		return nil, 0, fmt.Errorf("error counting complaints: %w", err)
	}

	builder := r.sb.Select(complaintColumns).
		From("complaints").
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit))
	if len(where) > 0 {
		builder = builder.Where(where)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building list complaints SQL")
		return nil, 0, fmt.Errorf("failed to build list complaints query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list complaints query")
		return nil, 0, fmt.Errorf("error querying complaints: %w", err)
	}
	defer rows.Close()

	complaints := []*models.Complaint{}
	for rows.Next() {
		complaint, err := scanComplaint(rows)
		if err != nil {
			logger.Error().Err(err).Msg("Error scanning complaint row during list")
			return nil, 0, fmt.Errorf("error scanning complaint row: %w", err)
		}
		complaints = append(complaints, complaint)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating complaint rows")
		return nil, 0, fmt.Errorf("error iterating complaint rows: %w", err)
	}

	return complaints, total, nil
}

// UpdateComplaintStatus persists a status transition. resolvedAt and
// adminResponse are written as given; transition rules live in the service.
func (r *ComplaintRepository) UpdateComplaintStatus(ctx context.Context, id int64, status models.ComplaintStatus, resolvedAt *time.Time, adminResponse *string) error {
	sql, args, err := r.sb.Update("complaints").
		SetMap(map[string]interface{}{
			"status":         status,
			"resolved_at":    resolvedAt,
			"admin_response": adminResponse,
		}).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update complaint status SQL")
		return fmt.Errorf("failed to build update complaint status query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("complaintID", id).Msg("Error executing update complaint status query")
		return fmt.Errorf("error updating complaint status: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrComplaintNotFound
	}

	return nil
}
