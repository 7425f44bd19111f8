package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"trove/internal/api/models"
)

// AuthorRepository handles database operations for user-scoped authors.
// Authors are looked up by name, not id: the client autocompletes against
// names and only resolves to a row when attaching to a book.
type AuthorRepository interface {
	List(ctx context.Context, userID int64, name string) ([]models.Author, error)
	GetByName(ctx context.Context, userID int64, name string) (*models.Author, error)
	Create(ctx context.Context, author *models.Author) error
	// ListActive returns authors with at least one owned book in the given
	// current/queued state.
	ListActive(ctx context.Context, userID int64, current bool) ([]models.Author, error)
}

type authorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) AuthorRepository {
	return &authorRepository{db: db}
}

func (r *authorRepository) List(ctx context.Context, userID int64, name string) ([]models.Author, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if name != "" {
		q = q.Where("name = ?", name)
	}
	var authors []models.Author
	if err := q.Order("name ASC").Find(&authors).Error; err != nil {
		return nil, fmt.Errorf("list authors: %w", err)
	}
	return authors, nil
}

// GetByName does a case-insensitive exact match on the author name.
func (r *authorRepository) GetByName(ctx context.Context, userID int64, name string) (*models.Author, error) {
	var author models.Author
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND LOWER(name) = LOWER(?)", userID, name).
		First(&author).Error; err != nil {
		return nil, err
	}
	return &author, nil
}

func (r *authorRepository) Create(ctx context.Context, author *models.Author) error {
	if err := r.db.WithContext(ctx).Create(author).Error; err != nil {
		return fmt.Errorf("create author: %w", err)
	}
	return nil
}

func (r *authorRepository) ListActive(ctx context.Context, userID int64, current bool) ([]models.Author, error) {
	var authors []models.Author
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("EXISTS (SELECT 1 FROM books b WHERE b.author_id = authors.id AND b.current = ?)", current).
		Order("name ASC").
		Find(&authors).Error; err != nil {
		return nil, fmt.Errorf("list active authors: %w", err)
	}
	return authors, nil
}
