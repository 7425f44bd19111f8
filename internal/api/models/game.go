package models

import "time"

type Game struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             int64     `gorm:"not null;index" json:"user_id"`
	Name               string    `gorm:"size:50;not null" json:"name"`
	Current            bool      `gorm:"not null" json:"current"`
	MultiplayerCapable bool      `gorm:"not null" json:"multiplayer_capable"`
	LastModified       time.Time `gorm:"autoUpdateTime" json:"last_modified"`

	// associations
	User      *User      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Platforms []Platform `gorm:"many2many:game_platforms;constraint:OnDelete:CASCADE" json:"platforms"`
	Tags      []Tag      `gorm:"many2many:tagged_games;constraint:OnDelete:CASCADE" json:"tags"`
}

func (Game) TableName() string {
	return "games"
}

func (g Game) GetID() int64 {
	return g.ID
}
