package dto

import (
	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/google/uuid"
)

type BuildStatusResponse struct {
	Project *models.Project        `json:"project"`
	Build   *models.BuildQueueItem `json:"build,omitempty"`
}

// ProcessNextResponse reports the outcome of processing the top of the
// build queue. Processed is false when the queue was empty.
type ProcessNextResponse struct {
	Processed bool       `json:"processed"`
	ProjectID *uuid.UUID `json:"project_id,omitempty"`
	Message   string     `json:"message,omitempty"`
}
