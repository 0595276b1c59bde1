package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project statuses. "failed" is part of the schema but no code path sets
// it: simulated builds always succeed.
const (
	ProjectStatusPending   = "pending"
	ProjectStatusBuilding  = "building"
	ProjectStatusCompleted = "completed"
	ProjectStatusFailed    = "failed"
)

// Project is one generated-app request. The slug is immutable once
// created; status and build progress advance only through the build
// services.
type Project struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Name          string     `gorm:"not null;size:255" json:"name"`
	Slug          string     `gorm:"not null;size:255;uniqueIndex" json:"slug"`
	Description   string     `gorm:"type:text" json:"description,omitempty"`
	Prompt        string     `gorm:"type:text" json:"prompt,omitempty"`
	AppType       string     `gorm:"size:20;default:'hybrid';not null" json:"app_type"`
	Status        string     `gorm:"size:20;default:'pending';not null;index" json:"status"`
	BuildProgress int        `gorm:"default:0;not null" json:"build_progress"`
	TemplateID    *uuid.UUID `gorm:"type:uuid" json:"template_id,omitempty"`

	AppIcon        string                      `gorm:"type:text" json:"app_icon,omitempty"`
	PrimaryColor   string                      `gorm:"size:7;default:'#6366f1'" json:"primary_color"`
	SecondaryColor string                      `gorm:"size:7;default:'#8b5cf6'" json:"secondary_color"`
	Features       datatypes.JSONSlice[string] `json:"features"`

	ApkURL        string `gorm:"type:text" json:"apk_url,omitempty"`
	IpaURL        string `gorm:"type:text" json:"ipa_url,omitempty"`
	PwaURL        string `gorm:"type:text" json:"pwa_url,omitempty"`
	WebURL        string `gorm:"type:text" json:"web_url,omitempty"`
	SourceCodeURL string `gorm:"type:text" json:"source_code_url,omitempty"`

	LandingPageEnabled bool `gorm:"default:true;not null" json:"landing_page_enabled"`
	LandingPageViews   int  `gorm:"default:0;not null" json:"landing_page_views"`
	DownloadCount      int  `gorm:"default:0;not null" json:"download_count"`

	Version     string `gorm:"size:20;default:'1.0.0'" json:"version"`
	PackageName string `gorm:"size:255" json:"package_name,omitempty"`
	BuildNumber int    `gorm:"default:1" json:"build_number"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// ValidAppType reports whether t is a recognized app type.
func ValidAppType(t string) bool {
	switch t {
	case "android", "ios", "pwa", "hybrid", "web", "desktop":
		return true
	}
	return false
}
