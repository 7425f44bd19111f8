package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"trove/internal/api/models"
)

// RecommendationModel constrains the shared recommendation pipeline to the
// three per-media recommendation tables.
type RecommendationModel interface {
	models.BookRecommendation | models.GameRecommendation | models.ShowRecommendation
	GetID() int64
}

// RecommendationRepo implements the recipient-scoped inbox pattern once for
// book, game and show recommendations.
type RecommendationRepo[T RecommendationModel] struct {
	db       *gorm.DB
	preloads []string
}

func NewRecommendationRepo[T RecommendationModel](db *gorm.DB, preloads ...string) *RecommendationRepo[T] {
	return &RecommendationRepo[T]{db: db, preloads: preloads}
}

// List returns all recommendations received by the user, newest first.
func (r *RecommendationRepo[T]) List(ctx context.Context, recipientID int64) ([]T, error) {
	q := r.db.WithContext(ctx).Where("recipient_id = ?", recipientID)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	var list []T
	if err := q.Order("id DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list recommendations: %w", err)
	}
	return list, nil
}

// GetByID fetches a recommendation regardless of recipient. Used to echo a
// freshly created row back to its sender.
func (r *RecommendationRepo[T]) GetByID(ctx context.Context, id int64) (*T, error) {
	q := r.db.WithContext(ctx)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	var rec T
	if err := q.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

// GetForRecipient fetches a recommendation only if the user is its recipient.
func (r *RecommendationRepo[T]) GetForRecipient(ctx context.Context, id, recipientID int64) (*T, error) {
	q := r.db.WithContext(ctx).Where("recipient_id = ?", recipientID)
	for _, p := range r.preloads {
		q = q.Preload(p)
	}
	var rec T
	if err := q.First(&rec, id).Error; err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *RecommendationRepo[T]) Create(ctx context.Context, rec *T) error {
	if err := r.db.WithContext(ctx).Create(rec).Error; err != nil {
		return fmt.Errorf("create recommendation: %w", err)
	}
	return nil
}

// MarkRead flips the read flag on one of the recipient's recommendations.
func (r *RecommendationRepo[T]) MarkRead(ctx context.Context, id, recipientID int64) error {
	res := r.db.WithContext(ctx).Model(new(T)).
		Where("id = ? AND recipient_id = ?", id, recipientID).
		Update("read", true)
	if res.Error != nil {
		return fmt.Errorf("mark recommendation read: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// MarkAllRead flips every unread recommendation the user has received.
// Already-read rows are untouched, so a second call is a no-op.
func (r *RecommendationRepo[T]) MarkAllRead(ctx context.Context, recipientID int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(new(T)).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Update("read", true)
	if res.Error != nil {
		return 0, fmt.Errorf("mark recommendations read: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// HasUnread reports whether any unread recommendation exists for the user.
func (r *RecommendationRepo[T]) HasUnread(ctx context.Context, recipientID int64) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(new(T)).
		Where("recipient_id = ? AND read = ?", recipientID, false).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("count unread recommendations: %w", err)
	}
	return count > 0, nil
}

// Delete removes one of the recipient's recommendations.
func (r *RecommendationRepo[T]) Delete(ctx context.Context, id, recipientID int64) error {
	res := r.db.WithContext(ctx).Where("recipient_id = ?", recipientID).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("delete recommendation: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
