package services

import (
	"github.com/clickngoai/clickngoai-backend/internal/dto"
	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AdminService struct {
	db     *gorm.DB
	builds *BuildService
}

func NewAdminService(db *gorm.DB, builds *BuildService) *AdminService {
	return &AdminService{db: db, builds: builds}
}

func (s *AdminService) GetStats() (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{}

	if err := s.db.Model(&models.User{}).Count(&stats.Users).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Project{}).Count(&stats.Projects).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.BuildQueueItem{}).Count(&stats.Builds).Error; err != nil {
		return nil, err
	}
	if err := s.db.Model(&models.Template{}).Count(&stats.Templates).Error; err != nil {
		return nil, err
	}

	pending, err := s.builds.PendingCount()
	if err != nil {
		return nil, err
	}
	stats.PendingBuilds = pending

	return stats, nil
}

func (s *AdminService) GetUsers(limit, offset int) ([]models.User, error) {
	var users []models.User
	err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&users).Error
	return users, err
}

func (s *AdminService) GetProjects(limit, offset int) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.Order("created_at DESC").Limit(limit).Offset(offset).Find(&projects).Error
	return projects, err
}

func (s *AdminService) GetRecentProjects(limit int) ([]models.Project, error) {
	var projects []models.Project
	err := s.db.Order("created_at DESC").Limit(limit).Find(&projects).Error
	return projects, err
}

// UpdateUser applies a superadmin entitlement mutation.
func (s *AdminService) UpdateUser(id uuid.UUID, req *dto.UpdateUserRequest) error {
	var user models.User
	if err := s.db.First(&user, "id = ?", id).Error; err != nil {
		return ErrNotFound
	}

	updates := map[string]interface{}{}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.SubscriptionTier != nil {
		updates["subscription_tier"] = *req.SubscriptionTier
	}
	if req.AppLimit != nil {
		updates["app_limit"] = *req.AppLimit
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) == 0 {
		return nil
	}
	return s.db.Model(&user).Updates(updates).Error
}

// UpsertPricingPlan creates or refreshes the catalog row for a tier.
func (s *AdminService) UpsertPricingPlan(tier string, req *dto.UpsertPricingPlanRequest) error {
	updates := map[string]interface{}{
		"name_en":        req.NameEn,
		"name_hi":        req.NameHi,
		"description_en": req.DescriptionEn,
		"description_hi": req.DescriptionHi,
		"price_inr":      req.PriceINR,
		"price_usd":      req.PriceUSD,
		"app_limit":      req.AppLimit,
		"features":       datatypes.NewJSONSlice(req.Features),
		"is_popular":     req.IsPopular,
	}

	var plan models.PricingPlan
	err := s.db.Where("tier = ?", tier).First(&plan).Error
	if err == nil {
		return s.db.Model(&plan).Updates(updates).Error
	}

	plan = models.PricingPlan{
		Tier:          tier,
		NameEn:        req.NameEn,
		NameHi:        req.NameHi,
		DescriptionEn: req.DescriptionEn,
		DescriptionHi: req.DescriptionHi,
		PriceINR:      req.PriceINR,
		PriceUSD:      req.PriceUSD,
		AppLimit:      req.AppLimit,
		Features:      datatypes.NewJSONSlice(req.Features),
		IsPopular:     req.IsPopular,
		IsActive:      true,
	}
	return s.db.Create(&plan).Error
}
