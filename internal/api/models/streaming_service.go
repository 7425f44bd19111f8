package models

// StreamingService is a global lookup table, not scoped to a user.
type StreamingService struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
}

func (StreamingService) TableName() string {
	return "streaming_services"
}
