package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Build queue statuses. "failed" exists in the schema but is never set:
// the simulated pipeline has no failure branch.
const (
	BuildQueued     = "queued"
	BuildProcessing = "processing"
	BuildCompleted  = "completed"
	BuildFailed     = "failed"
)

// BuildQueueItem is one build attempt for a project. A project may have
// multiple historical entries; the current build is the most recently
// created one.
type BuildQueueItem struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"project_id"`
	UserID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	Priority      int        `gorm:"default:0;not null" json:"priority"`
	Status        string     `gorm:"size:20;default:'queued';not null;index" json:"status"`
	Progress      int        `gorm:"default:0;not null" json:"progress"`
	CurrentStep   string     `gorm:"size:255" json:"current_step,omitempty"`
	ErrorMessage  string     `gorm:"type:text" json:"error_message,omitempty"`
	StartedAt     *time.Time `json:"started_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	EstimatedTime int        `json:"estimated_time"` // seconds
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (b *BuildQueueItem) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = uuid.New()
	}
	return nil
}

func (BuildQueueItem) TableName() string {
	return "build_queue"
}
