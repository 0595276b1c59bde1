package services

import (
	"strings"
	"testing"

	"github.com/clickngoai/clickngoai-backend/internal/dto"
	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newProjectService(db *gorm.DB) *ProjectService {
	return NewProjectService(db, NewActivityLogger(db))
}

func TestCreate_ProjectRowQueueRowAndCounter(t *testing.T) {
	db := newTestDB(t)
	svc := newProjectService(db)
	user := createUser(t, db, "alice@example.com", models.RoleUser, models.TierMultiple, 15)

	project, err := svc.Create(user, &dto.CreateProjectRequest{
		Name:    "My Shop! App",
		AppType: "android",
	})
	require.NoError(t, err)

	assert.Regexp(t, `^my-shop-app-[a-z0-9]{8}$`, project.Slug)
	assert.Equal(t, "com.clickngoai."+strings.ReplaceAll(project.Slug, "-", "_"), project.PackageName)
	assert.Equal(t, models.ProjectStatusPending, project.Status)
	assert.Equal(t, 0, project.BuildProgress)
	assert.Equal(t, "#6366f1", project.PrimaryColor)
	assert.Equal(t, "#8b5cf6", project.SecondaryColor)

	var item models.BuildQueueItem
	require.NoError(t, db.First(&item, "project_id = ?", project.ID).Error)
	assert.Equal(t, models.BuildQueued, item.Status)
	assert.Equal(t, 5, item.Priority)
	assert.Equal(t, 120, item.EstimatedTime)
	assert.Equal(t, user.ID, item.UserID)

	var fresh models.User
	require.NoError(t, db.First(&fresh, "id = ?", user.ID).Error)
	assert.Equal(t, 1, fresh.AppsCreated)
}

func TestCreate_QuotaEnforced(t *testing.T) {
	db := newTestDB(t)
	svc := newProjectService(db)
	user := createUser(t, db, "bob@example.com", models.RoleUser, models.TierFree, 1)

	_, err := svc.Create(user, &dto.CreateProjectRequest{Name: "First App"})
	require.NoError(t, err)

	_, err = svc.Create(user, &dto.CreateProjectRequest{Name: "Second App"})
	require.Error(t, err)

	qe, ok := IsQuotaError(err)
	require.True(t, ok)
	assert.Equal(t, 1, qe.Limit)
	assert.Equal(t, "App limit reached. You can create up to 1 apps with your current plan.", err.Error())
}

func TestCreate_UnlimitedTierBypassesLimit(t *testing.T) {
	db := newTestDB(t)
	svc := newProjectService(db)
	// app_limit is stale on purpose: unlimited tier wins over the count.
	user := createUser(t, db, "carol@example.com", models.RoleUser, models.TierUnlimited, 1)

	_, err := svc.Create(user, &dto.CreateProjectRequest{Name: "App One"})
	require.NoError(t, err)
	project, err := svc.Create(user, &dto.CreateProjectRequest{Name: "App Two"})
	require.NoError(t, err)

	var item models.BuildQueueItem
	require.NoError(t, db.First(&item, "project_id = ?", project.ID).Error)
	assert.Equal(t, 10, item.Priority)
}

func TestCreate_TemplateInheritanceFillsBlanks(t *testing.T) {
	db := newTestDB(t)
	svc := newProjectService(db)
	templates := NewTemplateService(db)
	user := createUser(t, db, "dave@example.com", models.RoleUser, models.TierSingle, 1)

	tmpl, err := templates.Create(&dto.CreateTemplateRequest{
		Name:           "Food Delivery Starter",
		Description:    "Order food from local restaurants",
		Category:       "food_delivery",
		DefaultPrompt:  "Build a food delivery app",
		PrimaryColor:   "#ff0000",
		SecondaryColor: "#00ff00",
		Features:       []string{"Cart", "Checkout"},
	})
	require.NoError(t, err)

	project, err := svc.Create(user, &dto.CreateProjectRequest{
		Name:        "Quick Eats",
		Description: "My own description",
		TemplateID:  &tmpl.ID,
	})
	require.NoError(t, err)

	// Explicit fields win, blanks inherit.
	assert.Equal(t, "My own description", project.Description)
	assert.Equal(t, "Build a food delivery app", project.Prompt)
	assert.Equal(t, "#ff0000", project.PrimaryColor)
	assert.Equal(t, "#00ff00", project.SecondaryColor)
	assert.Equal(t, []string{"Cart", "Checkout"}, []string(project.Features))
	require.NotNil(t, project.TemplateID)
	assert.Equal(t, tmpl.ID, *project.TemplateID)

	var fresh models.Template
	require.NoError(t, db.First(&fresh, "id = ?", tmpl.ID).Error)
	assert.Equal(t, 1, fresh.UsageCount)
}

func TestGetByID_OwnershipRule(t *testing.T) {
	db := newTestDB(t)
	svc := newProjectService(db)
	owner := createUser(t, db, "owner@example.com", models.RoleUser, models.TierFree, 1)
	stranger := createUser(t, db, "stranger@example.com", models.RoleUser, models.TierFree, 1)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin, models.TierFree, 1)

	project, err := svc.Create(owner, &dto.CreateProjectRequest{Name: "Private App"})
	require.NoError(t, err)

	got, err := svc.GetByID(owner, project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, got.ID)

	_, err = svc.GetByID(stranger, project.ID)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.GetByID(admin, project.ID)
	assert.NoError(t, err)

	_, err = svc.GetByID(owner, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGetBySlug_ViewsAndDisabledPages(t *testing.T) {
	db := newTestDB(t)
	svc := newProjectService(db)
	user := createUser(t, db, "eve@example.com", models.RoleUser, models.TierFree, 5)

	project, err := svc.Create(user, &dto.CreateProjectRequest{Name: "Landing App"})
	require.NoError(t, err)

	got, err := svc.GetBySlug(project.Slug)
	require.NoError(t, err)
	assert.Equal(t, 1, got.LandingPageViews)

	var fresh models.Project
	require.NoError(t, db.First(&fresh, "id = ?", project.ID).Error)
	assert.Equal(t, 1, fresh.LandingPageViews)

	// A disabled page is indistinguishable from a missing one.
	require.NoError(t, db.Model(&fresh).UpdateColumn("landing_page_enabled", false).Error)
	_, err = svc.GetBySlug(project.Slug)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.GetBySlug("no-such-slug")
	assert.ErrorIs(t, err, ErrNotFound)

	// The disabled lookup did not bump the counter.
	require.NoError(t, db.First(&fresh, "id = ?", project.ID).Error)
	assert.Equal(t, 1, fresh.LandingPageViews)
}

func TestUpdate_PartialFieldsOnly(t *testing.T) {
	db := newTestDB(t)
	svc := newProjectService(db)
	user := createUser(t, db, "frank@example.com", models.RoleUser, models.TierFree, 5)

	project, err := svc.Create(user, &dto.CreateProjectRequest{
		Name:        "Original Name",
		Description: "Original description",
	})
	require.NoError(t, err)

	newName := "Renamed App"
	require.NoError(t, svc.Update(user, project.ID, &dto.UpdateProjectRequest{Name: &newName}))

	var fresh models.Project
	require.NoError(t, db.First(&fresh, "id = ?", project.ID).Error)
	assert.Equal(t, "Renamed App", fresh.Name)
	assert.Equal(t, "Original description", fresh.Description)
	assert.Equal(t, project.Slug, fresh.Slug)
}

func TestDelete_KeepsBuildQueueHistory(t *testing.T) {
	db := newTestDB(t)
	svc := newProjectService(db)
	user := createUser(t, db, "grace@example.com", models.RoleUser, models.TierFree, 5)

	project, err := svc.Create(user, &dto.CreateProjectRequest{Name: "Doomed App"})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(user, project.ID))

	var count int64
	require.NoError(t, db.Model(&models.Project{}).Where("id = ?", project.ID).Count(&count).Error)
	assert.Equal(t, int64(0), count)

	require.NoError(t, db.Model(&models.BuildQueueItem{}).Where("project_id = ?", project.ID).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestTrackDownload(t *testing.T) {
	db := newTestDB(t)
	svc := newProjectService(db)
	user := createUser(t, db, "henry@example.com", models.RoleUser, models.TierFree, 5)

	project, err := svc.Create(user, &dto.CreateProjectRequest{Name: "Download App"})
	require.NoError(t, err)

	require.NoError(t, svc.TrackDownload(project.ID))
	require.NoError(t, svc.TrackDownload(project.ID))

	var fresh models.Project
	require.NoError(t, db.First(&fresh, "id = ?", project.ID).Error)
	assert.Equal(t, 2, fresh.DownloadCount)

	// Unknown id is a no-op, not an error.
	assert.NoError(t, svc.TrackDownload(uuid.New()))
}
