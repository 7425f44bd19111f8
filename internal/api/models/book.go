package models

import "time"

type Book struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID       int64     `gorm:"not null;index" json:"user_id"`
	Name         string    `gorm:"size:50;not null" json:"name"`
	Current      bool      `gorm:"not null" json:"current"`
	LastModified time.Time `gorm:"autoUpdateTime" json:"last_modified"`
	AuthorID     int64     `gorm:"not null;index" json:"author_id"`

	// associations
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Author *Author `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
	Tags   []Tag   `gorm:"many2many:tagged_books;constraint:OnDelete:CASCADE" json:"tags"`
}

func (Book) TableName() string {
	return "books"
}

func (b Book) GetID() int64 {
	return b.ID
}
