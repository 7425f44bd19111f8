package service

import (
	"context"

	"trove/internal/api/repository"
)

// MediaService is the one business layer behind books, games and shows. The
// handler supplies the concrete item and its association sets; the service
// owns ownership scoping and the fetch-after-write echo.
type MediaService[T repository.MediaModel] interface {
	List(ctx context.Context, userID int64, f repository.MediaFilter) ([]T, error)
	Get(ctx context.Context, id, userID int64) (*T, error)
	Create(ctx context.Context, userID int64, item *T, assoc map[string][]any) (*T, error)
	Update(ctx context.Context, id, userID int64, apply func(*T), assoc map[string][]any) error
	Delete(ctx context.Context, id, userID int64) error
}

type mediaService[T repository.MediaModel] struct {
	repo *repository.MediaRepo[T]
}

func NewMediaService[T repository.MediaModel](repo *repository.MediaRepo[T]) MediaService[T] {
	return &mediaService[T]{repo: repo}
}

func (s *mediaService[T]) List(ctx context.Context, userID int64, f repository.MediaFilter) ([]T, error) {
	return s.repo.List(ctx, userID, f)
}

func (s *mediaService[T]) Get(ctx context.Context, id, userID int64) (*T, error) {
	return s.repo.GetOwnedByID(ctx, id, userID)
}

func (s *mediaService[T]) Create(ctx context.Context, userID int64, item *T, assoc map[string][]any) (*T, error) {
	if err := s.repo.Create(ctx, item, assoc); err != nil {
		return nil, err
	}
	// re-fetch so the echo carries the resolved associations
	return s.repo.GetOwnedByID(ctx, (*item).GetID(), userID)
}

// Update is a full replace: fetch the owned row, overwrite its writable
// fields via apply, save and reset memberships.
func (s *mediaService[T]) Update(ctx context.Context, id, userID int64, apply func(*T), assoc map[string][]any) error {
	existing, err := s.repo.GetOwnedByID(ctx, id, userID)
	if err != nil {
		return err
	}
	apply(existing)
	return s.repo.Update(ctx, existing, assoc)
}

func (s *mediaService[T]) Delete(ctx context.Context, id, userID int64) error {
	return s.repo.Delete(ctx, id, userID)
}
