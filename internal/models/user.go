package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Roles. Role and subscription tier are independent axes: a free-tier
// account can be an admin.
const (
	RoleUser       = "user"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// Subscription tiers.
const (
	TierFree      = "free"
	TierSingle    = "single"
	TierMultiple  = "multiple"
	TierUnlimited = "unlimited"
)

type User struct {
	ID               uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email            string         `gorm:"not null;size:320;uniqueIndex" json:"email"`
	Password         string         `gorm:"not null" json:"-"`
	Name             string         `gorm:"size:255" json:"name,omitempty"`
	Phone            string         `gorm:"size:20" json:"phone,omitempty"`
	Avatar           string         `gorm:"type:text" json:"avatar,omitempty"`
	AuthProvider     string         `gorm:"size:50;default:'email'" json:"-"`
	Role             string         `gorm:"size:20;default:'user'" json:"role"`
	SubscriptionTier string         `gorm:"size:20;default:'free'" json:"subscription_tier"`
	AppLimit         int            `gorm:"default:1;not null" json:"app_limit"`
	AppsCreated      int            `gorm:"default:0;not null" json:"apps_created"`
	IsActive         bool           `gorm:"default:true;not null" json:"is_active"`
	LastSignedIn     time.Time      `json:"last_signed_in"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// IsAdmin reports whether the user holds an admin or superadmin role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleSuperadmin
}
