package websocket

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rakibul/unibus/internal/app/models"
)

func TestHubStartsEmpty(t *testing.T) {
	hub := NewHub(zerolog.Nop())
	assert.Equal(t, 0, hub.ClientCount())
}

func TestPublishNoticeQueuesEvent(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	published := time.Date(2026, 8, 1, 9, 0, 0, 0, time.UTC)
	hub.PublishNotice(&models.Notice{
		ID:          7,
		Title:       "Route change",
		Content:     "The Uttara bus leaves 15 minutes earlier",
		PublishedAt: published,
	})

	select {
	case event := <-hub.broadcast:
		assert.Equal(t, "published", event.Type)
		assert.Equal(t, int64(7), event.NoticeID)
		assert.Equal(t, "Route change", event.Title)
		assert.Equal(t, published, event.PublishedAt)
		assert.False(t, event.Timestamp.IsZero())
	default:
		require.Fail(t, "no event queued")
	}
}

func TestDeleteNoticeQueuesEventWithoutContent(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	hub.DeleteNotice(9)

	select {
	case event := <-hub.broadcast:
		assert.Equal(t, "deleted", event.Type)
		assert.Equal(t, int64(9), event.NoticeID)
		assert.Empty(t, event.Title)
	default:
		require.Fail(t, "no event queued")
	}
}

func TestUpdateNoticeQueuesEvent(t *testing.T) {
	hub := NewHub(zerolog.Nop())

	hub.UpdateNotice(&models.Notice{ID: 3, Title: "Updated", Content: "New text"})

	select {
	case event := <-hub.broadcast:
		assert.Equal(t, "updated", event.Type)
		assert.Equal(t, int64(3), event.NoticeID)
	default:
		require.Fail(t, "no event queued")
	}
}
