package models

import "time"

type Post struct {
	ID          uint    `gorm:"primaryKey" json:"id"`
	Content     string  `gorm:"not null" json:"content"`
	Status      string  `gorm:"default:draft" json:"status"`
	ScheduledAt *string `json:"scheduled_at"`

	// Placeholder engagement counters, assigned when a post is scheduled.
	// They are simulated values, not a real analytics integration.
	MockLikes    int `gorm:"default:0" json:"mock_likes"`
	MockComments int `gorm:"default:0" json:"mock_comments"`
	MockShares   int `gorm:"default:0" json:"mock_shares"`

	UserID    string    `gorm:"not null;index" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

const (
	PostStatusDraft     = "draft"
	PostStatusScheduled = "scheduled"
	PostStatusPosted    = "posted"
)
