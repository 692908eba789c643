package service

import (
	"context"

	"github.com/influenceos/agent-api/internal/models"
	"github.com/influenceos/agent-api/internal/repository"
)

type UserService interface {
	GetUserInfo(ctx context.Context, id string) (*models.User, error)
	CreateTestUser(ctx context.Context) (*models.User, error)
}

type userService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) UserService {
	return &userService{
		users: users,
	}
}

func (s *userService) GetUserInfo(ctx context.Context, id string) (*models.User, error) {
	user, exists, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NewNotFoundError("User", id)
	}
	return user, nil
}

// CreateTestUser upserts the fixed placeholder user. Development aid only:
// its token is a placeholder, not a vendor-issued credential.
func (s *userService) CreateTestUser(ctx context.Context) (*models.User, error) {
	picture := "https://via.placeholder.com/150"
	user := &models.User{
		ID:                "test_user",
		FirstName:         "Test",
		LastName:          "User",
		ProfilePictureURL: &picture,
		AccessToken:       "mock_token",
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
