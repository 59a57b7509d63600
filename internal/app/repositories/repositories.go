package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	UserRepository      *UserRepository
	TokenRepository     *TokenRepository
	ScheduleRepository  *ScheduleRepository
	FeedbackRepository  *FeedbackRepository
	ComplaintRepository *ComplaintRepository
	NoticeRepository    *NoticeRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:      NewUserRepository(db),
		TokenRepository:     NewTokenRepository(db),
		ScheduleRepository:  NewScheduleRepository(db),
		FeedbackRepository:  NewFeedbackRepository(db),
		ComplaintRepository: NewComplaintRepository(db),
		NoticeRepository:    NewNoticeRepository(db),
	}
}
