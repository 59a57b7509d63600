package models

import "time"

// Notice is an announcement shown to all users, based on the 'notices' table
type Notice struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title"`
	Content     string    `json:"content" db:"content"`
	PublishedAt time.Time `json:"publishedAt" db:"published_at"`
}
