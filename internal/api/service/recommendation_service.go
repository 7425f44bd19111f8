package service

import (
	"context"
	"errors"

	"trove/internal/api/cache"
	"trove/internal/api/dto"
	"trove/internal/api/models"
	"trove/internal/api/repository"
)

var ErrRecipientNotFound = errors.New("recipient not found")

// RecommendationService is the one business layer behind the three
// recommendation inboxes. The read state is recipient-owned: update means
// mark-read, and the bulk read action only flips unread rows.
type RecommendationService[T repository.RecommendationModel] interface {
	List(ctx context.Context, recipientID int64) ([]T, error)
	Get(ctx context.Context, id, recipientID int64) (*T, error)
	Create(ctx context.Context, senderID int64, in dto.CreateRecommendationRequest) (*T, error)
	MarkRead(ctx context.Context, id, recipientID int64) error
	MarkAllRead(ctx context.Context, recipientID int64) error
	Delete(ctx context.Context, id, recipientID int64) error
	HasUnread(ctx context.Context, recipientID int64) (bool, error)
}

type recommendationService[T repository.RecommendationModel] struct {
	repo  *repository.RecommendationRepo[T]
	users repository.UserRepository
	badge *cache.NotifyCache
	kind  string
	build func(in dto.CreateRecommendationRequest, senderID int64) T
}

func (s *recommendationService[T]) List(ctx context.Context, recipientID int64) ([]T, error) {
	return s.repo.List(ctx, recipientID)
}

func (s *recommendationService[T]) Get(ctx context.Context, id, recipientID int64) (*T, error) {
	return s.repo.GetForRecipient(ctx, id, recipientID)
}

func (s *recommendationService[T]) Create(ctx context.Context, senderID int64, in dto.CreateRecommendationRequest) (*T, error) {
	if _, err := s.users.FindByID(ctx, in.RecipientID); err != nil {
		return nil, ErrRecipientNotFound
	}

	rec := s.build(in, senderID)
	if err := s.repo.Create(ctx, &rec); err != nil {
		return nil, err
	}

	s.badge.Invalidate(ctx, s.kind, in.RecipientID)
	return s.repo.GetByID(ctx, rec.GetID())
}

func (s *recommendationService[T]) MarkRead(ctx context.Context, id, recipientID int64) error {
	if err := s.repo.MarkRead(ctx, id, recipientID); err != nil {
		return err
	}
	s.badge.Invalidate(ctx, s.kind, recipientID)
	return nil
}

func (s *recommendationService[T]) MarkAllRead(ctx context.Context, recipientID int64) error {
	if _, err := s.repo.MarkAllRead(ctx, recipientID); err != nil {
		return err
	}
	s.badge.Invalidate(ctx, s.kind, recipientID)
	return nil
}

func (s *recommendationService[T]) Delete(ctx context.Context, id, recipientID int64) error {
	if err := s.repo.Delete(ctx, id, recipientID); err != nil {
		return err
	}
	s.badge.Invalidate(ctx, s.kind, recipientID)
	return nil
}

// HasUnread serves the UI badge poll. Redis answers when it can; the
// database stays the source of truth.
func (s *recommendationService[T]) HasUnread(ctx context.Context, recipientID int64) (bool, error) {
	if hasUnread, ok := s.badge.Get(ctx, s.kind, recipientID); ok {
		return hasUnread, nil
	}
	hasUnread, err := s.repo.HasUnread(ctx, recipientID)
	if err != nil {
		return false, err
	}
	s.badge.Set(ctx, s.kind, recipientID, hasUnread)
	return hasUnread, nil
}

func NewBookRecommendationService(
	repo *repository.RecommendationRepo[models.BookRecommendation],
	users repository.UserRepository,
	badge *cache.NotifyCache,
) RecommendationService[models.BookRecommendation] {
	return &recommendationService[models.BookRecommendation]{
		repo:  repo,
		users: users,
		badge: badge,
		kind:  "book",
		build: func(in dto.CreateRecommendationRequest, senderID int64) models.BookRecommendation {
			return models.BookRecommendation{
				Recommendation: models.Recommendation{
					SenderID:    senderID,
					RecipientID: in.RecipientID,
					Message:     in.Message,
				},
				BookID: in.MediaID,
			}
		},
	}
}

func NewGameRecommendationService(
	repo *repository.RecommendationRepo[models.GameRecommendation],
	users repository.UserRepository,
	badge *cache.NotifyCache,
) RecommendationService[models.GameRecommendation] {
	return &recommendationService[models.GameRecommendation]{
		repo:  repo,
		users: users,
		badge: badge,
		kind:  "game",
		build: func(in dto.CreateRecommendationRequest, senderID int64) models.GameRecommendation {
			return models.GameRecommendation{
				Recommendation: models.Recommendation{
					SenderID:    senderID,
					RecipientID: in.RecipientID,
					Message:     in.Message,
				},
				GameID: in.MediaID,
			}
		},
	}
}

func NewShowRecommendationService(
	repo *repository.RecommendationRepo[models.ShowRecommendation],
	users repository.UserRepository,
	badge *cache.NotifyCache,
) RecommendationService[models.ShowRecommendation] {
	return &recommendationService[models.ShowRecommendation]{
		repo:  repo,
		users: users,
		badge: badge,
		kind:  "show",
		build: func(in dto.CreateRecommendationRequest, senderID int64) models.ShowRecommendation {
			return models.ShowRecommendation{
				Recommendation: models.Recommendation{
					SenderID:    senderID,
					RecipientID: in.RecipientID,
					Message:     in.Message,
				},
				ShowID: in.MediaID,
			}
		},
	}
}
