package model

import "time"

// Spot is a user-submitted point of interest. Spots are never updated in
// place: they are created once and eventually deleted.
type Spot struct {
	ID          int64   `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Description string  `gorm:"not null" json:"description"`
	Location    string  `gorm:"not null" json:"location"`
	ImageURL    *string `json:"image_url"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP;index" json:"created_at"`

	// Spot <-> Review
	Reviews []Review `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Spot) TableName() string { return "spots" }
