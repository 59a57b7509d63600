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

// NoticeRepository handles notice database operations
type NoticeRepository struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

// NewNoticeRepository creates a new NoticeRepository
func NewNoticeRepository(db *pgxpool.Pool) *NoticeRepository {
	return &NoticeRepository{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// CreateNotice inserts a notice and returns its ID and publish time
func (r *NoticeRepository) CreateNotice(ctx context.Context, notice *models.Notice) (int64, time.Time, error) {
	publishedAt := time.Now()
	sql, args, err := r.sb.Insert("notices").
		Columns("title", "content", "published_at").
		Values(notice.Title, notice.Content, publishedAt).
		Suffix("RETURNING id").
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building create notice SQL")
		return 0, time.Time{}, fmt.Errorf("failed to build create notice query: %w", err)
	}

	var id int64
	if err := r.db.QueryRow(ctx, sql, args...).Scan(&id); err != nil {
		logger.Error().Err(err).Msg("Error executing create notice query")
		return 0, time.Time{}, fmt.Errorf("error creating notice: %w", err)
	}

	return id, publishedAt, nil
}

// GetNoticeByID retrieves a notice by ID
func (r *NoticeRepository) GetNoticeByID(ctx context.Context, id int64) (*models.Notice, error) {
	sql, args, err := r.sb.Select("id", "title", "content", "published_at").
		From("notices").
		Where(squirrel.Eq{"id": id}).
		Limit(1).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building get notice by ID SQL")
		return nil, fmt.Errorf("failed to build get notice query: %w", err)
	}

	notice := &models.Notice{}
	err = r.db.QueryRow(ctx, sql, args...).Scan(&notice.ID, &notice.Title, &notice.Content, &notice.PublishedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNoticeNotFound
		}
		logger.Error().Err(err).Int64("noticeID", id).Msg("Error scanning notice row")
		return nil, fmt.Errorf("error getting notice by ID: %w", err)
	}

	return notice, nil
}

// ListNotices retrieves notices, newest first
func (r *NoticeRepository) ListNotices(ctx context.Context, offset uint64, limit int) ([]*models.Notice, int64, error) {
	countSql, countArgs, err := r.sb.Select("COUNT(*)").From("notices").ToSql()
	if err != nil {
		logger.Error().Err(err).Msg("Error building count notices SQL")
		return nil, 0, fmt.Errorf("failed to build count notices query: %w", err)
	}

	var total int64
	if err := r.db.QueryRow(ctx, countSql, countArgs...).Scan(&total); err != nil {
		logger.Error().Err(err).Msg("Error counting notices")
		return nil, 0, fmt.Errorf("error counting notices: %w", err)
	}

	sql, args, err := r.sb.Select("id", "title", "content", "published_at").
		From("notices").
		OrderBy("published_at DESC").
		Offset(offset).
		Limit(uint64(limit)).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building list notices SQL")
		return nil, 0, fmt.Errorf("failed to build list notices query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Msg("Error executing list notices query")
		return nil, 0, fmt.Errorf("error querying notices: %w", err)
	}
	defer rows.Close()

	notices := []*models.Notice{}
	for rows.Next() {
		notice := &models.Notice{}
		if err := rows.Scan(&notice.ID, &notice.Title, &notice.Content, &notice.PublishedAt); err != nil {
			logger.Error().Err(err).Msg("Error scanning notice row during list")
			return nil, 0, fmt.Errorf("error scanning notice row: %w", err)
		}
		notices = append(notices, notice)
	}

	if err := rows.Err(); err != nil {
		logger.Error().Err(err).Msg("Error iterating notice rows")
		return nil, 0, fmt.Errorf("error iterating notice rows: %w", err)
	}

	return notices, total, nil
}

// UpdateNotice updates an existing notice
func (r *NoticeRepository) UpdateNotice(ctx context.Context, notice *models.Notice) error {
	sql, args, err := r.sb.Update("notices").
		SetMap(map[string]interface{}{
			"title":   notice.Title,
			"content": notice.Content,
		}).
		Where(squirrel.Eq{"id": notice.ID}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building update notice SQL")
		return fmt.Errorf("failed to build update notice query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("noticeID", notice.ID).Msg("Error executing update notice query")
		return fmt.Errorf("error updating notice: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoticeNotFound
	}

	return nil
}

// DeleteNotice deletes a notice by ID
func (r *NoticeRepository) DeleteNotice(ctx context.Context, id int64) error {
	sql, args, err := r.sb.Delete("notices").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		logger.Error().Err(err).Msg("Error building delete notice SQL")
		return fmt.Errorf("failed to build delete notice query: %w", err)
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		logger.Error().Err(err).Int64("noticeID", id).Msg("Error executing delete notice query")
		return fmt.Errorf("error deleting notice: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNoticeNotFound
	}

	return nil
}
