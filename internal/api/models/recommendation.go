package models

// Recommendation holds the fields shared by the three recommendation tables.
// Embedded anonymously so GORM flattens it into each concrete model.
type Recommendation struct {
	ID          int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	SenderID    int64  `gorm:"not null;index" json:"sender_id"`
	RecipientID int64  `gorm:"not null;index" json:"recipient_id"`
	Message     string `gorm:"type:text;not null" json:"message"`
	Read        bool   `gorm:"not null;default:false" json:"read"`

	Sender    *User `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE" json:"sender,omitempty"`
	Recipient *User `gorm:"foreignKey:RecipientID;constraint:OnDelete:CASCADE" json:"recipient,omitempty"`
}

func (r Recommendation) GetID() int64 {
	return r.ID
}

type BookRecommendation struct {
	Recommendation
	BookID int64 `gorm:"not null;index" json:"book_id"`
	Book   *Book `gorm:"foreignKey:BookID;constraint:OnDelete:CASCADE" json:"book,omitempty"`
}

func (BookRecommendation) TableName() string {
	return "book_recommendations"
}

type GameRecommendation struct {
	Recommendation
	GameID int64 `gorm:"not null;index" json:"game_id"`
	Game   *Game `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE" json:"game,omitempty"`
}

func (GameRecommendation) TableName() string {
	return "game_recommendations"
}

type ShowRecommendation struct {
	Recommendation
	ShowID int64 `gorm:"not null;index" json:"show_id"`
	Show   *Show `gorm:"foreignKey:ShowID;constraint:OnDelete:CASCADE" json:"show,omitempty"`
}

func (ShowRecommendation) TableName() string {
	return "show_recommendations"
}
