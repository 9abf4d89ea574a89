package model

import "time"

type Review struct {
	ID       int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	SpotID   int64  `gorm:"not null;index" json:"spot_id"`
	UserName string `gorm:"not null" json:"user_name"`
	Rating   int    `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment  string `gorm:"not null" json:"comment"`

	CreatedAt time.Time `gorm:"autoCreateTime;not null;default:CURRENT_TIMESTAMP" json:"created_at"`

	// Review <-> Spot
	Spot *Spot `gorm:"foreignKey:SpotID;references:ID;constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`
}

func (Review) TableName() string { return "reviews" }
