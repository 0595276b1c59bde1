package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Template is a reusable starting configuration for a Project. Templates
// are admin-created and never deleted; the usage counter increments once
// per project created from the template.
type Template struct {
	ID             uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"id"`
	Name           string                      `gorm:"not null;size:255" json:"name"`
	Slug           string                      `gorm:"not null;size:255;uniqueIndex" json:"slug"`
	Description    string                      `gorm:"type:text" json:"description,omitempty"`
	Category       string                      `gorm:"size:50;default:'other';not null;index" json:"category"`
	Icon           string                      `gorm:"type:text" json:"icon,omitempty"`
	PreviewImage   string                      `gorm:"type:text" json:"preview_image,omitempty"`
	Features       datatypes.JSONSlice[string] `json:"features"`
	DefaultPrompt  string                      `gorm:"type:text" json:"default_prompt,omitempty"`
	PrimaryColor   string                      `gorm:"size:7;default:'#6366f1'" json:"primary_color"`
	SecondaryColor string                      `gorm:"size:7;default:'#8b5cf6'" json:"secondary_color"`
	UsageCount     int                         `gorm:"default:0;not null" json:"usage_count"`
	IsPremium      bool                        `gorm:"default:false;not null" json:"is_premium"`
	IsActive       bool                        `gorm:"default:true;not null" json:"is_active"`
	CreatedAt      time.Time                   `json:"created_at"`
	UpdatedAt      time.Time                   `json:"updated_at"`
}

func (t *Template) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// ValidTemplateCategory reports whether c is a recognized category.
func ValidTemplateCategory(c string) bool {
	switch c {
	case "food_delivery", "ecommerce", "social_media", "booking",
		"fitness", "task_manager", "chat", "lms", "crm", "news", "other":
		return true
	}
	return false
}
