package services

import (
	"errors"
	"fmt"
	"time"

	"github.com/clickngoai/clickngoai-backend/internal/dto"
	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// BuildService advances build-queue entries through
// queued → processing → completed and mirrors the result onto the parent
// project. There is no failure branch: simulated builds always succeed.
type BuildService struct {
	db       *gorm.DB
	activity *ActivityLogger
}

func NewBuildService(db *gorm.DB, activity *ActivityLogger) *BuildService {
	return &BuildService{db: db, activity: activity}
}

// GetStatus returns the project plus its most recent queue entry.
func (s *BuildService) GetStatus(actor *models.User, projectID uuid.UUID) (*dto.BuildStatusResponse, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !canAccess(actor, &project) {
		return nil, ErrAccessDenied
	}

	resp := &dto.BuildStatusResponse{Project: &project}

	var item models.BuildQueueItem
	err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		First(&item).Error
	if err == nil {
		resp.Build = &item
	}

	return resp, nil
}

// GetQueue lists the most recent queue entries, newest first.
func (s *BuildService) GetQueue(limit int) ([]models.BuildQueueItem, error) {
	if limit <= 0 {
		limit = 50
	}
	var items []models.BuildQueueItem
	err := s.db.Order("created_at DESC").Limit(limit).Find(&items).Error
	return items, err
}

// ProcessNext takes the highest-priority (ties broken by earliest
// creation) queued entry and runs it to completion synchronously. An
// empty queue is a successful no-op.
func (s *BuildService) ProcessNext(actorID uuid.UUID) (*dto.ProcessNextResponse, error) {
	var next models.BuildQueueItem
	err := s.db.Where("status = ?", models.BuildQueued).
		Order("priority DESC, created_at ASC").
		First(&next).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &dto.ProcessNextResponse{Processed: false, Message: "No builds in queue"}, nil
	}
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if err := s.db.Model(&next).Updates(map[string]interface{}{
		"status":       models.BuildProcessing,
		"started_at":   now,
		"current_step": "Initializing build environment",
	}).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.Project{}).Where("id = ?", next.ProjectID).Updates(map[string]interface{}{
		"status":         models.ProjectStatusBuilding,
		"build_progress": 10,
	}).Error; err != nil {
		return nil, err
	}

	// No actual work happens between "processing" and "completed"; the
	// build completes within the same request.
	completed := time.Now()
	if err := s.db.Model(&next).Updates(map[string]interface{}{
		"status":       models.BuildCompleted,
		"progress":     100,
		"current_step": "Build completed",
		"completed_at": completed,
	}).Error; err != nil {
		return nil, err
	}

	var project models.Project
	if err := s.db.First(&project, "id = ?", next.ProjectID).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&project).Updates(map[string]interface{}{
		"status":         models.ProjectStatusCompleted,
		"build_progress": 100,
		"completed_at":   completed,
		"apk_url":        downloadURL(next.ProjectID, "app.apk"),
		"ipa_url":        downloadURL(next.ProjectID, "app.ipa"),
		"pwa_url":        landingURL(project.Slug),
	}).Error; err != nil {
		return nil, err
	}

	s.activity.Log(actorID, "build_processed", "project", &next.ProjectID, nil)

	projectID := next.ProjectID
	return &dto.ProcessNextResponse{Processed: true, ProjectID: &projectID}, nil
}

// SimulateBuild completes the named project regardless of its current
// state, re-completing already-completed builds included. It is the
// user-facing convenience path and is deliberately laxer than
// ProcessNext, which only consumes queued entries.
func (s *BuildService) SimulateBuild(actor *models.User, projectID uuid.UUID) error {
	var project models.Project
	if err := s.db.First(&project, "id = ?", projectID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if !canAccess(actor, &project) {
		return ErrAccessDenied
	}

	now := time.Now()
	if err := s.db.Model(&project).Updates(map[string]interface{}{
		"status":         models.ProjectStatusCompleted,
		"build_progress": 100,
		"completed_at":   now,
		"apk_url":        downloadURL(projectID, "app.apk"),
		"ipa_url":        downloadURL(projectID, "app.ipa"),
		"pwa_url":        landingURL(project.Slug),
		"web_url":        landingURL(project.Slug),
	}).Error; err != nil {
		return err
	}

	var item models.BuildQueueItem
	err := s.db.Where("project_id = ?", projectID).
		Order("created_at DESC").
		First(&item).Error
	if err == nil {
		if err := s.db.Model(&item).Updates(map[string]interface{}{
			"status":       models.BuildCompleted,
			"progress":     100,
			"current_step": "Build completed",
			"completed_at": now,
		}).Error; err != nil {
			return err
		}
	}

	s.activity.Log(actor.ID, "build_simulated", "project", &projectID, nil)
	return nil
}

// PendingCount counts entries that still need processing.
func (s *BuildService) PendingCount() (int64, error) {
	var count int64
	err := s.db.Model(&models.BuildQueueItem{}).
		Where("status IN ?", []string{models.BuildQueued, models.BuildProcessing}).
		Count(&count).Error
	return count, err
}

func downloadURL(projectID uuid.UUID, file string) string {
	return fmt.Sprintf("/api/downloads/%s/%s", projectID, file)
}

func landingURL(slug string) string {
	return "/landing/app/" + slug
}
