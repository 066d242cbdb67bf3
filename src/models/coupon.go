package models

import (
	"travelbook/src/fare"
	"travelbook/src/types"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Coupon struct {
	ID            string             `gorm:"primaryKey;size:36" json:"id"`
	Code          string             `gorm:"uniqueIndex;size:32" json:"code"`
	DiscountType  types.DiscountType `json:"discountType"`
	DiscountValue float64            `json:"discountValue"`
	ApplicableTo  types.CouponScope  `gorm:"default:'all'" json:"applicableTo"`
	// No column default: gorm swaps a zero value for the default on insert, dropping an explicit false.
	Active        bool               `gorm:"not null" json:"active"`
	Description   string             `json:"description,omitempty"`

	types.Timestamps
}

func (c *Coupon) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

func (c *Coupon) Terms() *fare.Coupon {
	if c == nil {
		return nil
	}
	return &fare.Coupon{
		Code:   c.Code,
		Type:   c.DiscountType,
		Value:  c.DiscountValue,
		Scope:  c.ApplicableTo,
		Active: c.Active,
	}
}
