package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rakibul/unibus/internal/app/models"
	"github.com/rakibul/unibus/internal/pkg/logger"
)

// FeedbackRepository handles feedback database operations
type FeedbackRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewFeedbackRepository creates a new FeedbackRepository
func NewFeedbackRepository(db *pgxpool.Pool) *FeedbackRepository {
	return &FeedbackRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateFeedback inserts a feedback record and returns its ID
func (r *FeedbackRepository) CreateFeedback(ctx context.Context, feedback *models.Feedback) (int64, error) {
	sql, args, err := r.sb.Insert("feedback").
		Columns("user_id", "message", "created_at").
		Values(feedback.UserID, feedback.Message, time.Now()).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create feedback SQL")
		return 0, fmt.Errorf("failed to build create feedback query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Int64("userID", feedback.UserID).Msg("Error executing create feedback query")
		return 0, fmt.Errorf("error creating feedback: %w", err)
	}

	return id, nil
}

// ListFeedbackByUser retrieves a user's feedback, newest first
func (r *FeedbackRepository) ListFeedbackByUser(ctx context.Context, userID int64, offset uint64, limit int) ([]*models.Feedback, int64, error) {
	total, err := r.countFeedback(ctx, squirrel.Eq{"user_id": userID})
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := r.sb.Select("id", "user_id", "message", "created_at").
		From("feedback").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list feedback SQL")
		return nil, 0, fmt.Errorf("failed to build list feedback query: %w", err)
	}

	items, err := r.queryFeedback(ctx, sql, args)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

// ListAllFeedback retrieves all feedback, newest first
func (r *FeedbackRepository) ListAllFeedback(ctx context.Context, offset uint64, limit int) ([]*models.Feedback, int64, error) {
	total, err := r.countFeedback(ctx, nil)
	if err != nil {
		return nil, 0, err
	}

	sql, args, err := r.sb.Select("id", "user_id", "message", "created_at").
		From("feedback").
		OrderBy("created_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list all feedback SQL")
		return nil, 0, fmt.Errorf("failed to build list all feedback query: %w", err)
	}

	items, err := r.queryFeedback(ctx, sql, args)
	if err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (r *FeedbackRepository) countFeedback(ctx context.Context, where interface{}) (int64, error) {
	builder := r.sb.Select("COUNT(*)").From("feedback")
	if where != nil {
		builder = builder.Where(where)
	}

	sql, args, err := builder.ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count feedback SQL")
		return 0, fmt.Errorf("failed to build count feedback query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting feedback")
		return 0, fmt.Errorf("error counting feedback: %w", err)
	}

	return total, nil
}

func (r *FeedbackRepository) queryFeedback(ctx context.Context, sql string, args []interface{}) ([]*models.Feedback, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing feedback query")
		return nil, fmt.Errorf("error querying feedback: %w", err)
	}
	defer rows.Close()

	items := []*models.Feedback{}
	for rows.Next() {
		f := &models.Feedback{}
		if err := rows.Scan(&f.ID, &f.UserID, &f.Message, &f.CreatedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning feedback row")
			return nil, fmt.Errorf("error scanning feedback row: %w", err)
		}
		items = append(items, f)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating feedback rows")
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return items, nil
}
