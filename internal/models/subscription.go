package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Subscription statuses.
const (
	SubscriptionActive    = "active"
	SubscriptionCancelled = "cancelled"
	SubscriptionExpired   = "expired"
	SubscriptionPending   = "pending"
)

// Subscription is one billing-period record. A user may accumulate
// several rows; the authoritative one is the most recently created with
// status "active".
type Subscription struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Tier          string     `gorm:"size:20;default:'free';not null" json:"tier"`
	PriceINR      int        `gorm:"default:0;not null" json:"price_inr"`
	PriceUSD      int        `gorm:"default:0;not null" json:"price_usd"`
	Currency      string     `gorm:"size:3;default:'INR';not null" json:"currency"`
	Status        string     `gorm:"size:20;default:'pending';not null;index" json:"status"`
	PaymentMethod string     `gorm:"size:50" json:"payment_method,omitempty"`
	PaymentID     string     `gorm:"size:255" json:"payment_id,omitempty"`
	StartDate     time.Time  `json:"start_date"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	AutoRenew     bool       `gorm:"default:true;not null" json:"auto_renew"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (s *Subscription) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
