package services

import (
	"errors"

	"github.com/clickngoai/clickngoai-backend/internal/dto"
	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Build priority by subscription tier at enqueue time.
var tierPriority = map[string]int{
	models.TierUnlimited: 10,
	models.TierMultiple:  5,
}

const buildEstimatedSeconds = 120

type ProjectService struct {
	db       *gorm.DB
	activity *ActivityLogger
}

func NewProjectService(db *gorm.DB, activity *ActivityLogger) *ProjectService {
	return &ProjectService{db: db, activity: activity}
}

// canAccess is the ownership/visibility rule applied to every
// project-scoped operation: owner, or admin/superadmin role.
func canAccess(actor *models.User, project *models.Project) bool {
	return project.UserID == actor.ID || actor.IsAdmin()
}

func (s *ProjectService) List(userID uuid.UUID) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&projects).Error
	return projects, err
}

func (s *ProjectService) GetByID(actor *models.User, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !canAccess(actor, &project) {
		return nil, ErrAccessDenied
	}
	return &project, nil
}

// GetBySlug resolves a public landing page. A missing slug and a
// disabled landing page are both Not-Found so disabled pages are
// indistinguishable from nonexistent ones. Each successful lookup
// increments the view counter by one.
func (s *ProjectService) GetBySlug(slug string) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, "slug = ?", slug).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !project.LandingPageEnabled {
		return nil, ErrNotFound
	}

	if err := s.db.Model(&project).
		UpdateColumn("landing_page_views", gorm.Expr("landing_page_views + 1")).Error; err != nil {
		return nil, err
	}
	project.LandingPageViews++

	return &project, nil
}

// Create runs the project-creation sequence: quota check, slug,
// template inheritance, project row, build-queue row, apps_created
// increment, activity log. The steps are independent writes; a failure
// partway through leaves earlier writes in place.
func (s *ProjectService) Create(actor *models.User, req *dto.CreateProjectRequest) (*models.Project, error) {
	var count int64
	if err := s.db.Model(&models.Project{}).Where("user_id = ?", actor.ID).Count(&count).Error; err != nil {
		return nil, err
	}
	if count >= int64(actor.AppLimit) && actor.SubscriptionTier != models.TierUnlimited {
		return nil, &QuotaError{Limit: actor.AppLimit}
	}

	slug := generateSlug(req.Name)

	appType := req.AppType
	if appType == "" {
		appType = "hybrid"
	}

	project := models.Project{
		ID:             uuid.New(),
		UserID:         actor.ID,
		Name:           req.Name,
		Slug:           slug,
		Description:    req.Description,
		Prompt:         req.Prompt,
		AppType:        appType,
		Status:         models.ProjectStatusPending,
		BuildProgress:  0,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		Features:       datatypes.NewJSONSlice(req.Features),
		PackageName:    packageNameFor(slug),
	}

	// Template inheritance fills in whatever the request left blank.
	// The usage increment is best-effort and not rolled back if a later
	// step fails.
	if req.TemplateID != nil {
		var tmpl models.Template
		if err := s.db.First(&tmpl, "id = ?", *req.TemplateID).Error; err == nil {
			project.TemplateID = req.TemplateID
			if project.Description == "" {
				project.Description = tmpl.Description
			}
			if project.Prompt == "" {
				project.Prompt = tmpl.DefaultPrompt
			}
			if project.PrimaryColor == "" {
				project.PrimaryColor = tmpl.PrimaryColor
			}
			if project.SecondaryColor == "" {
				project.SecondaryColor = tmpl.SecondaryColor
			}
			if len(project.Features) == 0 {
				project.Features = tmpl.Features
			}
			s.db.Model(&tmpl).UpdateColumn("usage_count", gorm.Expr("usage_count + 1"))
		}
	}

	if project.PrimaryColor == "" {
		project.PrimaryColor = "#6366f1"
	}
	if project.SecondaryColor == "" {
		project.SecondaryColor = "#8b5cf6"
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}

	queueItem := models.BuildQueueItem{
		ID:            uuid.New(),
		ProjectID:     project.ID,
		UserID:        actor.ID,
		Priority:      tierPriority[actor.SubscriptionTier],
		Status:        models.BuildQueued,
		EstimatedTime: buildEstimatedSeconds,
	}
	if err := s.db.Create(&queueItem).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&models.User{}).Where("id = ?", actor.ID).
		UpdateColumn("apps_created", gorm.Expr("apps_created + 1")).Error; err != nil {
		return nil, err
	}

	s.activity.Log(actor.ID, "project_created", "project", &project.ID, map[string]interface{}{
		"name":     req.Name,
		"app_type": appType,
	})

	return &project, nil
}

func (s *ProjectService) Update(actor *models.User, id uuid.UUID, req *dto.UpdateProjectRequest) error {
	project, err := s.GetByID(actor, id)
	if err != nil {
		return err
	}

	updates := map[string]interface{}{}
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.PrimaryColor != nil {
		updates["primary_color"] = *req.PrimaryColor
	}
	if req.SecondaryColor != nil {
		updates["secondary_color"] = *req.SecondaryColor
	}
	if req.Features != nil {
		updates["features"] = datatypes.NewJSONSlice(req.Features)
	}
	if req.LandingPageEnabled != nil {
		updates["landing_page_enabled"] = *req.LandingPageEnabled
	}

	if len(updates) > 0 {
		if err := s.db.Model(project).Updates(updates).Error; err != nil {
			return err
		}
	}

	s.activity.Log(actor.ID, "project_updated", "project", &id, nil)
	return nil
}

func (s *ProjectService) Delete(actor *models.User, id uuid.UUID) error {
	project, err := s.GetByID(actor, id)
	if err != nil {
		return err
	}

	// Build-queue history is kept; deleting a project does not cascade.
	if err := s.db.Delete(project).Error; err != nil {
		return err
	}

	s.activity.Log(actor.ID, "project_deleted", "project", &id, nil)
	return nil
}

// TrackDownload bumps the download counter. An unknown id is a no-op,
// never an error.
func (s *ProjectService) TrackDownload(id uuid.UUID) error {
	return s.db.Model(&models.Project{}).Where("id = ?", id).
		UpdateColumn("download_count", gorm.Expr("download_count + 1")).Error
}
