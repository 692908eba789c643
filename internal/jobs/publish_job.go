package job

import (
	"context"
	"log/slog"
	"time"

	"github.com/influenceos/agent-api/internal/models"
	"github.com/influenceos/agent-api/internal/repository"
)

// PublishJob flips scheduled posts whose scheduled_at has passed to "posted".
// It runs from cron; this is the only writer besides the PATCH operation.
type PublishJob struct {
	posts repository.PostRepository
}

func NewPublishJob(posts repository.PostRepository) *PublishJob {
	return &PublishJob{posts: posts}
}

func (j *PublishJob) PublishDue() {
	ctx := context.Background()

	posts, err := j.posts.ListByStatus(ctx, models.PostStatusScheduled)
	if err != nil {
		slog.Info(err.Error())
		return
	}

	now := time.Now()
	for _, post := range posts {
		if post.ScheduledAt == nil {
			continue
		}
		due, ok := parseScheduledAt(*post.ScheduledAt)
		if !ok || due.After(now) {
			continue
		}

		post.Status = models.PostStatusPosted
		if err := j.posts.Update(ctx, post); err != nil {
			slog.Info(err.Error())
			continue
		}
		slog.Info("scheduled post published", "post_id", post.ID)
	}
}

// scheduled_at is an open timestamp string; accept the formats the frontend
// calendar produces.
func parseScheduledAt(s string) (time.Time, bool) {
	layouts := []string{time.RFC3339, "2006-01-02T15:04", "2006-01-02"}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
