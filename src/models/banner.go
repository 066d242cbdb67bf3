package models

import (
	"travelbook/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Banner struct {
	ID       string `gorm:"primaryKey;size:36" json:"id"`
	Title    string `json:"title"`
	Slug     string `gorm:"uniqueIndex" json:"slug"`
	ImageURL string `json:"imageUrl"`
	Link     string `json:"link,omitempty"`
	Position int    `gorm:"default:0" json:"position"`
	Active   bool   `gorm:"not null" json:"active"`

	types.Timestamps
}

func (b *Banner) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
