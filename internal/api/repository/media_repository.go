package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"trove/internal/api/models"
)

// MediaModel constrains the shared media pipeline to the three catalog tables.
type MediaModel interface {
	models.Book | models.Game | models.Show
	GetID() int64
}

// MediaFilter carries the optional list filters shared by all media types.
// RelationID targets the type-specific relation (author, platform, streaming
// service); Multiplayer only applies to games.
type MediaFilter struct {
	Search      string
	Current     *bool
	Multiplayer *bool
	RelationID  *int64
	TagIDs      []int64
}

// MediaConfig is the per-type wiring for the shared pipeline.
type MediaConfig struct {
	Table        string   // media table name
	TagJoinTable string   // per-type tag join table
	TagJoinFK    string   // media FK column inside the join table
	Preloads     []string // associations loaded on reads
	// Relation applies the type-specific relation filter to the query.
	Relation func(q *gorm.DB, id int64) *gorm.DB
	// Multiplayer applies the game-only multiplayer filter; nil elsewhere.
	Multiplayer func(q *gorm.DB, v bool) *gorm.DB
}

// MediaRepo implements the owned/taggable/filterable access pattern once for
// books, games and shows.
type MediaRepo[T MediaModel] struct {
	db  *gorm.DB
	cfg MediaConfig
}

func NewMediaRepo[T MediaModel](db *gorm.DB, cfg MediaConfig) *MediaRepo[T] {
	return &MediaRepo[T]{db: db, cfg: cfg}
}

// List returns the requester's items, newest write first. Tag filters
// intersect: an item must carry every listed tag.
func (r *MediaRepo[T]) List(ctx context.Context, userID int64, f MediaFilter) ([]T, error) {
	q := r.db.WithContext(ctx).Where(r.cfg.Table+".user_id = ?", userID)

	if f.Search != "" {
		q = q.Where(r.cfg.Table+".name ILIKE ?", "%"+f.Search+"%")
	}
	if f.Current != nil {
		q = q.Where(r.cfg.Table+".current = ?", *f.Current)
	}
	if f.Multiplayer != nil && r.cfg.Multiplayer != nil {
		q = r.cfg.Multiplayer(q, *f.Multiplayer)
	}
	if f.RelationID != nil && r.cfg.Relation != nil {
		q = r.cfg.Relation(q, *f.RelationID)
	}
	for _, tagID := range f.TagIDs {
		q = q.Where(fmt.Sprintf(
			"EXISTS (SELECT 1 FROM %s jt WHERE jt.%s = %s.id AND jt.tag_id = ?)",
			r.cfg.TagJoinTable, r.cfg.TagJoinFK, r.cfg.Table), tagID)
	}
	for _, p := range r.cfg.Preloads {
		q = q.Preload(p)
	}

	var list []T
	if err := q.Order(r.cfg.Table + ".last_modified DESC").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("list %s: %w", r.cfg.Table, err)
	}
	return list, nil
}

// GetOwnedByID fetches a single item. Ownership is part of the predicate, so a
// foreign row reports gorm.ErrRecordNotFound.
func (r *MediaRepo[T]) GetOwnedByID(ctx context.Context, id, userID int64) (*T, error) {
	q := r.db.WithContext(ctx).Where(r.cfg.Table+".user_id = ?", userID)
	for _, p := range r.cfg.Preloads {
		q = q.Preload(p)
	}
	var item T
	if err := q.First(&item, id).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// Create persists the row and its tag/platform memberships in one transaction
// so a failed membership write rolls the item back too.
func (r *MediaRepo[T]) Create(ctx context.Context, item *T, assoc map[string][]any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(item).Error; err != nil {
			return fmt.Errorf("create %s: %w", r.cfg.Table, err)
		}
		return replaceAssociations(tx, item, assoc)
	})
}

// Update saves the full row and resets memberships to exactly the submitted
// sets, in one transaction.
func (r *MediaRepo[T]) Update(ctx context.Context, item *T, assoc map[string][]any) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(item).Error; err != nil {
			return fmt.Errorf("update %s: %w", r.cfg.Table, err)
		}
		return replaceAssociations(tx, item, assoc)
	})
}

// Delete removes an owned row; join rows and recommendations cascade.
func (r *MediaRepo[T]) Delete(ctx context.Context, id, userID int64) error {
	res := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(new(T), id)
	if res.Error != nil {
		return fmt.Errorf("delete %s: %w", r.cfg.Table, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func replaceAssociations(tx *gorm.DB, item any, assoc map[string][]any) error {
	for name, members := range assoc {
		a := tx.Model(item).Association(name)
		if len(members) == 0 {
			if err := a.Clear(); err != nil {
				return fmt.Errorf("clear %s: %w", name, err)
			}
			continue
		}
		if err := a.Replace(members...); err != nil {
			return fmt.Errorf("replace %s: %w", name, err)
		}
	}
	return nil
}

// BookRepoConfig wires the shared pipeline for books (author relation).
func BookRepoConfig() MediaConfig {
	return MediaConfig{
		Table:        "books",
		TagJoinTable: "tagged_books",
		TagJoinFK:    "book_id",
		Preloads:     []string{"Author", "Tags"},
		Relation: func(q *gorm.DB, id int64) *gorm.DB {
			return q.Where("books.author_id = ?", id)
		},
	}
}

// GameRepoConfig wires the shared pipeline for games (platform set relation
// plus the multiplayer flag).
func GameRepoConfig() MediaConfig {
	return MediaConfig{
		Table:        "games",
		TagJoinTable: "tagged_games",
		TagJoinFK:    "game_id",
		Preloads:     []string{"Platforms", "Tags"},
		Relation: func(q *gorm.DB, id int64) *gorm.DB {
			return q.Where(
				"EXISTS (SELECT 1 FROM game_platforms gp WHERE gp.game_id = games.id AND gp.platform_id = ?)", id)
		},
		Multiplayer: func(q *gorm.DB, v bool) *gorm.DB {
			return q.Where("games.multiplayer_capable = ?", v)
		},
	}
}

// ShowRepoConfig wires the shared pipeline for shows (streaming service
// relation).
func ShowRepoConfig() MediaConfig {
	return MediaConfig{
		Table:        "shows",
		TagJoinTable: "tagged_shows",
		TagJoinFK:    "show_id",
		Preloads:     []string{"StreamingService", "Tags"},
		Relation: func(q *gorm.DB, id int64) *gorm.DB {
			return q.Where("shows.streaming_service_id = ?", id)
		},
	}
}
