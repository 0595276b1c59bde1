package services

import (
	"encoding/json"
	"log/slog"

	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ActivityLogger appends audit records. Writes are fire-and-forget:
// failures are logged and never returned to the caller.
type ActivityLogger struct {
	db *gorm.DB
}

func NewActivityLogger(db *gorm.DB) *ActivityLogger {
	return &ActivityLogger{db: db}
}

func (l *ActivityLogger) Log(userID uuid.UUID, action, entityType string, entityID *uuid.UUID, details map[string]interface{}) {
	entry := models.ActivityLog{
		UserID:     &userID,
		Action:     action,
		EntityType: entityType,
		EntityID:   entityID,
	}

	if len(details) > 0 {
		if b, err := json.Marshal(details); err == nil {
			entry.Details = datatypes.JSON(b)
		}
	}

	if err := l.db.Create(&entry).Error; err != nil {
		slog.Error("failed to write activity log", "action", action, "error", err)
	}
}

func (l *ActivityLogger) List(limit, offset int) ([]models.ActivityLog, error) {
	var logs []models.ActivityLog
	err := l.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&logs).Error
	return logs, err
}
