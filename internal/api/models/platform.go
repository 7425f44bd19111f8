package models

// Platform is a global lookup table, not scoped to a user.
type Platform struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"size:50;not null" json:"name"`
}

func (Platform) TableName() string {
	return "platforms"
}
