package models

import "time"

type Show struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID             int64     `gorm:"not null;index" json:"user_id"`
	Name               string    `gorm:"size:50;not null" json:"name"`
	Current            bool      `gorm:"not null" json:"current"`
	LastModified       time.Time `gorm:"autoUpdateTime" json:"last_modified"`
	StreamingServiceID int64     `gorm:"not null;index" json:"streaming_service_id"`

	// associations
	User             *User             `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	StreamingService *StreamingService `gorm:"foreignKey:StreamingServiceID;constraint:OnDelete:CASCADE" json:"streaming_service,omitempty"`
	Tags             []Tag             `gorm:"many2many:tagged_shows;constraint:OnDelete:CASCADE" json:"tags"`
}

func (Show) TableName() string {
	return "shows"
}

func (s Show) GetID() int64 {
	return s.ID
}
