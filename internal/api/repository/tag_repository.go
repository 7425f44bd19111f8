package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"trove/internal/api/models"
)

// TagRepository handles database operations for user tags, including the
// usage ("active") aggregations across the three media join tables.
type TagRepository interface {
	List(ctx context.Context, userID int64, search string) ([]models.Tag, error)
	GetOwnedByID(ctx context.Context, id, userID int64) (*models.Tag, error)
	Create(ctx context.Context, tag *models.Tag) error
	CreateBatch(ctx context.Context, tags []models.Tag) error
	Update(ctx context.Context, tag *models.Tag) error
	Delete(ctx context.Context, id, userID int64) error
	// ListActive returns tags attached to at least one of the user's items of
	// the given media type ("books", "games", "shows" or "any"), optionally
	// restricted to current or queued items.
	ListActive(ctx context.Context, userID int64, mediaType string, current *bool) ([]models.Tag, error)
}

type tagRepository struct {
	db *gorm.DB
}

func NewTagRepository(db *gorm.DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) List(ctx context.Context, userID int64, search string) ([]models.Tag, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if search != "" {
		q = q.Where("tag ILIKE ?", "%"+search+"%")
	}
	var tags []models.Tag
	if err := q.Order("tag ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	return tags, nil
}

func (r *tagRepository) GetOwnedByID(ctx context.Context, id, userID int64) (*models.Tag, error) {
	var tag models.Tag
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&tag, id).Error; err != nil {
		return nil, err
	}
	return &tag, nil
}

func (r *tagRepository) Create(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Create(tag).Error; err != nil {
		return fmt.Errorf("create tag: %w", err)
	}
	return nil
}

// CreateBatch inserts all rows in one statement. No dedup against existing
// tags: seeding twice doubles the seed set.
func (r *tagRepository) CreateBatch(ctx context.Context, tags []models.Tag) error {
	if len(tags) == 0 {
		return nil
	}
	if err := r.db.WithContext(ctx).Create(&tags).Error; err != nil {
		return fmt.Errorf("create tags: %w", err)
	}
	return nil
}

func (r *tagRepository) Update(ctx context.Context, tag *models.Tag) error {
	if err := r.db.WithContext(ctx).Save(tag).Error; err != nil {
		return fmt.Errorf("update tag: %w", err)
	}
	return nil
}

func (r *tagRepository) Delete(ctx context.Context, id, userID int64) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Tag{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete tag: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *tagRepository) ListActive(ctx context.Context, userID int64, mediaType string, current *bool) ([]models.Tag, error) {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)

	switch mediaType {
	case "books":
		c, args := activityExists("tagged_books", "book_id", "books", current)
		q = q.Where(c, args...)
	case "games":
		c, args := activityExists("tagged_games", "game_id", "games", current)
		q = q.Where(c, args...)
	case "shows":
		c, args := activityExists("tagged_shows", "show_id", "shows", current)
		q = q.Where(c, args...)
	case "any":
		bc, bargs := activityExists("tagged_books", "book_id", "books", current)
		gc, gargs := activityExists("tagged_games", "game_id", "games", current)
		sc, sargs := activityExists("tagged_shows", "show_id", "shows", current)
		args := append(append(bargs, gargs...), sargs...)
		q = q.Where(strings.Join([]string{bc, gc, sc}, " OR "), args...)
	default:
		return nil, fmt.Errorf("unknown media type %q", mediaType)
	}

	var tags []models.Tag
	if err := q.Order("tag ASC").Find(&tags).Error; err != nil {
		return nil, fmt.Errorf("list active tags: %w", err)
	}
	return tags, nil
}

// activityExists builds an EXISTS predicate that holds when the tag is
// attached to at least one row of the given media table, optionally
// restricted by the item's current flag.
func activityExists(joinTable, fkCol, mediaTable string, current *bool) (string, []any) {
	cond := fmt.Sprintf(
		"EXISTS (SELECT 1 FROM %s jt JOIN %s m ON m.id = jt.%s WHERE jt.tag_id = tags.id",
		joinTable, mediaTable, fkCol)
	var args []any
	if current != nil {
		cond += " AND m.current = ?"
		args = append(args, *current)
	}
	cond += ")"
	return cond, args
}
