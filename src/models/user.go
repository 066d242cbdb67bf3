package models

import (
	"time"

	"travelbook/src/types"
)

// User mirrors a Firebase Auth account; ID is the Firebase UID.
type User struct {
	ID            string     `gorm:"primaryKey;size:128" json:"id"`
	Name          string     `json:"name,omitempty"`
	Email         string     `gorm:"index" json:"email,omitempty"`
	Phone         string     `json:"phone,omitempty"`
	Role          string     `gorm:"default:'user'" json:"role,omitempty"`
	Disabled      bool       `json:"disabled"`
	EmailVerified bool       `json:"emailVerified"`
	VerifiedAt    *time.Time `json:"verifiedAt,omitempty"`
	LastActive    *time.Time `json:"lastActive,omitempty"`

	types.Timestamps
}
