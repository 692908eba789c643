package service

import (
	"context"
	"math/rand/v2"

	"github.com/influenceos/agent-api/internal/models"
	"github.com/influenceos/agent-api/internal/repository"
	"github.com/influenceos/agent-api/internal/transfer"
)

type PostService interface {
	Generate(ctx context.Context, userID, industry string) (*models.Post, error)
	Update(ctx context.Context, postID uint, update *transfer.PostUpdate) (*models.Post, error)
	ListByUser(ctx context.Context, userID string) ([]*models.Post, error)
}

type postService struct {
	users repository.UserRepository
	posts repository.PostRepository
	gen   GenerationService
}

func NewPostService(users repository.UserRepository, posts repository.PostRepository, gen GenerationService) PostService {
	return &postService{
		users: users,
		posts: posts,
		gen:   gen,
	}
}

// Generate creates a draft post for the user from generated content.
func (s *postService) Generate(ctx context.Context, userID, industry string) (*models.Post, error) {
	if industry == "" {
		return nil, models.NewInvalidRequestError("industry is required")
	}

	user, exists, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User", userID)
	}

	content, err := s.gen.GeneratePost(ctx, user, industry)
	if err != nil {
		return nil, err
	}

	post := &models.Post{
		Content: content,
		Status:  models.PostStatusDraft,
		UserID:  user.ID,
	}
	if err := s.posts.Create(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

// Update applies a partial patch: only fields present in the request change.
// Scheduling a post assigns fresh mock engagement counters.
func (s *postService) Update(ctx context.Context, postID uint, update *transfer.PostUpdate) (*models.Post, error) {
	post, exists, err := s.posts.GetByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("Post", postID)
	}

	if update.Status != nil && *update.Status == models.PostStatusScheduled {
		post.MockLikes = randBetween(50, 250)
		post.MockComments = randBetween(10, 50)
		post.MockShares = randBetween(2, 15)
	}

	if update.Status != nil {
		post.Status = *update.Status
	}
	if update.ScheduledAt != nil {
		post.ScheduledAt = update.ScheduledAt
	}

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}

	return post, nil
}

func (s *postService) ListByUser(ctx context.Context, userID string) ([]*models.Post, error) {
	_, exists, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User", userID)
	}

	return s.posts.ListByUserID(ctx, userID)
}

func randBetween(min, max int) int {
	return rand.IntN(max-min+1) + min
}
