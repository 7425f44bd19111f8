package service

import (
	"context"

	"trove/internal/api/models"
	"trove/internal/api/repository"
)

type UserService interface {
	Current(ctx context.Context, userID int64) (*models.User, error)
	ByUsername(ctx context.Context, username string) (*models.User, error)
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) Current(ctx context.Context, userID int64) (*models.User, error) {
	return s.repo.FindByID(ctx, userID)
}

func (s *userService) ByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.repo.FindByUsername(ctx, username)
}
