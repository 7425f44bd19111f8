package service

import (
	"context"
	"errors"

	"trove/internal/api/models"
	"trove/internal/api/repository"
)

var ErrUnknownActiveFilter = errors.New("active must be one of: books, games, shows, any")

// defaultTags seeds a fresh account with a starter vocabulary. Seeding is
// intentionally not deduplicated: calling seed twice doubles the set.
var defaultTags = []string{
	"Action", "Adventure", "Comedy", "Drama", "Mystery",
	"Fantasy", "Historical", "Horror", "Romance", "Science Fiction", "Thriller",
	"Western", "Platformer", "Shooter", "Survival", "RPG",
	"Strategy", "Esports", "Casual", "Educational", "Open world",
}

type TagService interface {
	List(ctx context.Context, userID int64, search, active string) ([]models.Tag, error)
	Get(ctx context.Context, id, userID int64) (*models.Tag, error)
	Create(ctx context.Context, userID int64, text string) (*models.Tag, error)
	Update(ctx context.Context, id, userID int64, text string) (*models.Tag, error)
	Delete(ctx context.Context, id, userID int64) error
	Seed(ctx context.Context, userID int64) ([]models.Tag, error)
	Active(ctx context.Context, userID int64) ([]models.Tag, error)
	ActiveByState(ctx context.Context, userID int64, current bool) (books, games, shows []models.Tag, err error)
}

type tagService struct {
	repo repository.TagRepository
}

func NewTagService(repo repository.TagRepository) TagService {
	return &tagService{repo: repo}
}

func (s *tagService) List(ctx context.Context, userID int64, search, active string) ([]models.Tag, error) {
	if active != "" {
		switch active {
		case "books", "games", "shows", "any":
			return s.repo.ListActive(ctx, userID, active, nil)
		default:
			return nil, ErrUnknownActiveFilter
		}
	}
	return s.repo.List(ctx, userID, search)
}

func (s *tagService) Get(ctx context.Context, id, userID int64) (*models.Tag, error) {
	return s.repo.GetOwnedByID(ctx, id, userID)
}

func (s *tagService) Create(ctx context.Context, userID int64, text string) (*models.Tag, error) {
	tag := &models.Tag{UserID: userID, Tag: text}
	if err := s.repo.Create(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) Update(ctx context.Context, id, userID int64, text string) (*models.Tag, error) {
	tag, err := s.repo.GetOwnedByID(ctx, id, userID)
	if err != nil {
		return nil, err
	}
	tag.Tag = text
	if err := s.repo.Update(ctx, tag); err != nil {
		return nil, err
	}
	return tag, nil
}

func (s *tagService) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}

func (s *tagService) Seed(ctx context.Context, userID int64) ([]models.Tag, error) {
	tags := make([]models.Tag, 0, len(defaultTags))
	for _, text := range defaultTags {
		tags = append(tags, models.Tag{UserID: userID, Tag: text})
	}
	if err := s.repo.CreateBatch(ctx, tags); err != nil {
		return nil, err
	}
	return tags, nil
}

func (s *tagService) Active(ctx context.Context, userID int64) ([]models.Tag, error) {
	return s.repo.ListActive(ctx, userID, "any", nil)
}

// ActiveByState returns three parallel lists of tags attached to at least one
// book, game or show in the given current/queued state.
func (s *tagService) ActiveByState(ctx context.Context, userID int64, current bool) ([]models.Tag, []models.Tag, []models.Tag, error) {
	books, err := s.repo.ListActive(ctx, userID, "books", &current)
	if err != nil {
		return nil, nil, nil, err
	}
	games, err := s.repo.ListActive(ctx, userID, "games", &current)
	if err != nil {
		return nil, nil, nil, err
	}
	shows, err := s.repo.ListActive(ctx, userID, "shows", &current)
	if err != nil {
		return nil, nil, nil, err
	}
	return books, games, shows, nil
}
