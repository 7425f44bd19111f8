package service

import (
	"context"

	"trove/internal/api/models"
	"trove/internal/api/repository"
)

type AuthorService interface {
	List(ctx context.Context, userID int64, name string) ([]models.Author, error)
	GetByName(ctx context.Context, userID int64, name string) (*models.Author, error)
	Create(ctx context.Context, userID int64, name string) (*models.Author, error)
	ListActive(ctx context.Context, userID int64, current bool) ([]models.Author, error)
}

type authorService struct {
	repo repository.AuthorRepository
}

func NewAuthorService(repo repository.AuthorRepository) AuthorService {
	return &authorService{repo: repo}
}

func (s *authorService) List(ctx context.Context, userID int64, name string) ([]models.Author, error) {
	return s.repo.List(ctx, userID, name)
}

func (s *authorService) GetByName(ctx context.Context, userID int64, name string) (*models.Author, error) {
	return s.repo.GetByName(ctx, userID, name)
}

func (s *authorService) Create(ctx context.Context, userID int64, name string) (*models.Author, error) {
	author := &models.Author{UserID: userID, Name: name}
	if err := s.repo.Create(ctx, author); err != nil {
		return nil, err
	}
	return author, nil
}

func (s *authorService) ListActive(ctx context.Context, userID int64, current bool) ([]models.Author, error) {
	return s.repo.ListActive(ctx, userID, current)
}
