package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PricingPlan is one catalog entry per tier. Read-mostly; when the table
// is empty the subscription service serves a hardcoded default catalog.
type PricingPlan struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Tier          string                      `gorm:"size:20;not null;uniqueIndex" json:"tier"`
	NameEn        string                      `gorm:"not null;size:100" json:"name_en"`
	NameHi        string                      `gorm:"size:100" json:"name_hi,omitempty"`
	DescriptionEn string                      `gorm:"type:text" json:"description_en,omitempty"`
	DescriptionHi string                      `gorm:"type:text" json:"description_hi,omitempty"`
	PriceINR      int                         `gorm:"default:0;not null" json:"price_inr"`
	PriceUSD      int                         `gorm:"default:0;not null" json:"price_usd"`
	AppLimit      int                         `gorm:"default:1;not null" json:"app_limit"`
	Features      datatypes.JSONSlice[string] `json:"features"`
	IsPopular     bool                        `gorm:"default:false;not null" json:"is_popular"`
	IsActive      bool                        `gorm:"default:true;not null" json:"is_active"`
	CreatedAt     time.Time                   `json:"created_at"`
	UpdatedAt     time.Time                   `json:"updated_at"`
}

func (p *PricingPlan) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
