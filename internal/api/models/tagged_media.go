package models

// Explicit join models for the three per-type tag relations and the
// game/platform relation. Tagging is deliberately per-type: a tagged_books
// row is independent of a tagged_games row carrying the same tag id.

type TaggedBook struct {
	BookID int64 `gorm:"primaryKey" json:"book_id"`
	TagID  int64 `gorm:"primaryKey" json:"tag_id"`
}

func (TaggedBook) TableName() string {
	return "tagged_books"
}

type TaggedGame struct {
	GameID int64 `gorm:"primaryKey" json:"game_id"`
	TagID  int64 `gorm:"primaryKey" json:"tag_id"`
}

func (TaggedGame) TableName() string {
	return "tagged_games"
}

type TaggedShow struct {
	ShowID int64 `gorm:"primaryKey" json:"show_id"`
	TagID  int64 `gorm:"primaryKey" json:"tag_id"`
}

func (TaggedShow) TableName() string {
	return "tagged_shows"
}

type GamePlatform struct {
	GameID     int64 `gorm:"primaryKey" json:"game_id"`
	PlatformID int64 `gorm:"primaryKey" json:"platform_id"`
}

func (GamePlatform) TableName() string {
	return "game_platforms"
}
