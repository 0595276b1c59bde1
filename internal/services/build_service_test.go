package services

import (
	"testing"
	"time"

	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newBuildService(db *gorm.DB) *BuildService {
	return NewBuildService(db, NewActivityLogger(db))
}

func enqueue(t *testing.T, db *gorm.DB, userID, projectID uuid.UUID, priority int, createdAt time.Time) *models.BuildQueueItem {
	t.Helper()
	item := models.BuildQueueItem{
		ProjectID:     projectID,
		UserID:        userID,
		Priority:      priority,
		Status:        models.BuildQueued,
		EstimatedTime: 120,
		CreatedAt:     createdAt,
	}
	require.NoError(t, db.Create(&item).Error)
	return &item
}

func createProject(t *testing.T, db *gorm.DB, userID uuid.UUID, name, slug string) *models.Project {
	t.Helper()
	project := models.Project{
		UserID: userID,
		Name:   name,
		Slug:   slug,
		Status: models.ProjectStatusPending,
	}
	require.NoError(t, db.Create(&project).Error)
	return &project
}

func TestProcessNext_EmptyQueue(t *testing.T) {
	db := newTestDB(t)
	svc := newBuildService(db)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin, models.TierFree, 1)

	resp, err := svc.ProcessNext(admin.ID)
	require.NoError(t, err)
	assert.False(t, resp.Processed)
	assert.Equal(t, "No builds in queue", resp.Message)
	assert.Nil(t, resp.ProjectID)
}

func TestProcessNext_PicksHighestPriorityThenOldest(t *testing.T) {
	db := newTestDB(t)
	svc := newBuildService(db)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin, models.TierFree, 1)
	user := createUser(t, db, "user@example.com", models.RoleUser, models.TierUnlimited, 1)

	base := time.Now().Add(-time.Hour)
	pLow := createProject(t, db, user.ID, "Low", "low-aaaaaaaa")
	pHighOld := createProject(t, db, user.ID, "High Old", "high-old-aaaaaaaa")
	pHighNew := createProject(t, db, user.ID, "High New", "high-new-aaaaaaaa")

	enqueue(t, db, user.ID, pLow.ID, 0, base)
	enqueue(t, db, user.ID, pHighNew.ID, 10, base.Add(2*time.Minute))
	enqueue(t, db, user.ID, pHighOld.ID, 10, base.Add(time.Minute))

	resp, err := svc.ProcessNext(admin.ID)
	require.NoError(t, err)
	require.True(t, resp.Processed)
	require.NotNil(t, resp.ProjectID)
	assert.Equal(t, pHighOld.ID, *resp.ProjectID)

	// Priority still beats age on the next pass.
	resp, err = svc.ProcessNext(admin.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.ProjectID)
	assert.Equal(t, pHighNew.ID, *resp.ProjectID)

	resp, err = svc.ProcessNext(admin.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.ProjectID)
	assert.Equal(t, pLow.ID, *resp.ProjectID)
}

func TestProcessNext_CompletesEntryAndProject(t *testing.T) {
	db := newTestDB(t)
	svc := newBuildService(db)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin, models.TierFree, 1)
	user := createUser(t, db, "user@example.com", models.RoleUser, models.TierFree, 1)

	project := createProject(t, db, user.ID, "Build Me", "build-me-aaaaaaaa")
	item := enqueue(t, db, user.ID, project.ID, 0, time.Now())

	resp, err := svc.ProcessNext(admin.ID)
	require.NoError(t, err)
	require.True(t, resp.Processed)

	var freshItem models.BuildQueueItem
	require.NoError(t, db.First(&freshItem, "id = ?", item.ID).Error)
	assert.Equal(t, models.BuildCompleted, freshItem.Status)
	assert.Equal(t, 100, freshItem.Progress)
	assert.Equal(t, "Build completed", freshItem.CurrentStep)
	assert.NotNil(t, freshItem.StartedAt)
	assert.NotNil(t, freshItem.CompletedAt)

	var freshProject models.Project
	require.NoError(t, db.First(&freshProject, "id = ?", project.ID).Error)
	assert.Equal(t, models.ProjectStatusCompleted, freshProject.Status)
	assert.Equal(t, 100, freshProject.BuildProgress)
	assert.NotNil(t, freshProject.CompletedAt)
	assert.Equal(t, "/api/downloads/"+project.ID.String()+"/app.apk", freshProject.ApkURL)
	assert.Equal(t, "/api/downloads/"+project.ID.String()+"/app.ipa", freshProject.IpaURL)
	assert.Equal(t, "/landing/app/build-me-aaaaaaaa", freshProject.PwaURL)
}

func TestSimulateBuild_CompletesFromAnyState(t *testing.T) {
	db := newTestDB(t)
	svc := newBuildService(db)
	user := createUser(t, db, "user@example.com", models.RoleUser, models.TierFree, 1)

	project := createProject(t, db, user.ID, "Sim App", "sim-app-aaaaaaaa")
	require.NoError(t, db.Model(project).Updates(map[string]interface{}{
		"status":         models.ProjectStatusCompleted,
		"build_progress": 100,
	}).Error)

	// Re-completing an already completed project is allowed.
	require.NoError(t, svc.SimulateBuild(user, project.ID))

	var fresh models.Project
	require.NoError(t, db.First(&fresh, "id = ?", project.ID).Error)
	assert.Equal(t, models.ProjectStatusCompleted, fresh.Status)
	assert.Equal(t, "/landing/app/sim-app-aaaaaaaa", fresh.PwaURL)
	assert.Equal(t, "/landing/app/sim-app-aaaaaaaa", fresh.WebURL)
	assert.NotEmpty(t, fresh.ApkURL)
	assert.NotEmpty(t, fresh.IpaURL)
}

func TestSimulateBuild_MirrorsLatestQueueEntry(t *testing.T) {
	db := newTestDB(t)
	svc := newBuildService(db)
	user := createUser(t, db, "user@example.com", models.RoleUser, models.TierFree, 1)

	project := createProject(t, db, user.ID, "Queued App", "queued-app-aaaaaaaa")
	old := enqueue(t, db, user.ID, project.ID, 0, time.Now().Add(-time.Hour))
	latest := enqueue(t, db, user.ID, project.ID, 0, time.Now())

	require.NoError(t, svc.SimulateBuild(user, project.ID))

	var freshLatest models.BuildQueueItem
	require.NoError(t, db.First(&freshLatest, "id = ?", latest.ID).Error)
	assert.Equal(t, models.BuildCompleted, freshLatest.Status)
	assert.Equal(t, 100, freshLatest.Progress)

	// Only the most recent entry is touched.
	var freshOld models.BuildQueueItem
	require.NoError(t, db.First(&freshOld, "id = ?", old.ID).Error)
	assert.Equal(t, models.BuildQueued, freshOld.Status)
}

func TestSimulateBuild_OwnershipRequired(t *testing.T) {
	db := newTestDB(t)
	svc := newBuildService(db)
	owner := createUser(t, db, "owner@example.com", models.RoleUser, models.TierFree, 1)
	stranger := createUser(t, db, "stranger@example.com", models.RoleUser, models.TierFree, 1)
	admin := createUser(t, db, "admin@example.com", models.RoleAdmin, models.TierFree, 1)

	project := createProject(t, db, owner.ID, "Protected App", "protected-aaaaaaaa")

	assert.ErrorIs(t, svc.SimulateBuild(stranger, project.ID), ErrAccessDenied)
	assert.NoError(t, svc.SimulateBuild(admin, project.ID))
	assert.ErrorIs(t, svc.SimulateBuild(owner, uuid.New()), ErrNotFound)
}

func TestGetStatus_ReturnsLatestQueueEntry(t *testing.T) {
	db := newTestDB(t)
	svc := newBuildService(db)
	user := createUser(t, db, "user@example.com", models.RoleUser, models.TierFree, 1)

	project := createProject(t, db, user.ID, "Status App", "status-app-aaaaaaaa")

	// No queue entry yet: build is simply absent.
	resp, err := svc.GetStatus(user, project.ID)
	require.NoError(t, err)
	assert.Equal(t, project.ID, resp.Project.ID)
	assert.Nil(t, resp.Build)

	enqueue(t, db, user.ID, project.ID, 0, time.Now().Add(-time.Hour))
	latest := enqueue(t, db, user.ID, project.ID, 0, time.Now())

	resp, err = svc.GetStatus(user, project.ID)
	require.NoError(t, err)
	require.NotNil(t, resp.Build)
	assert.Equal(t, latest.ID, resp.Build.ID)

	_, err = svc.GetStatus(user, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPendingCount(t *testing.T) {
	db := newTestDB(t)
	svc := newBuildService(db)
	user := createUser(t, db, "user@example.com", models.RoleUser, models.TierFree, 1)

	p1 := createProject(t, db, user.ID, "A", "a-aaaaaaaa")
	p2 := createProject(t, db, user.ID, "B", "b-aaaaaaaa")
	p3 := createProject(t, db, user.ID, "C", "c-aaaaaaaa")

	enqueue(t, db, user.ID, p1.ID, 0, time.Now())
	processing := enqueue(t, db, user.ID, p2.ID, 0, time.Now())
	done := enqueue(t, db, user.ID, p3.ID, 0, time.Now())
	require.NoError(t, db.Model(processing).UpdateColumn("status", models.BuildProcessing).Error)
	require.NoError(t, db.Model(done).UpdateColumn("status", models.BuildCompleted).Error)

	count, err := svc.PendingCount()
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
