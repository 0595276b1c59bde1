package services

import (
	"errors"

	"github.com/clickngoai/clickngoai-backend/internal/dto"
	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type TemplateService struct {
	db *gorm.DB
}

func NewTemplateService(db *gorm.DB) *TemplateService {
	return &TemplateService{db: db}
}

// List returns active templates, most used first.
func (s *TemplateService) List() ([]models.Template, error) {
	var templates []models.Template
	err := s.db.Where("is_active = ?", true).
		Order("usage_count DESC").
		Find(&templates).Error
	return templates, err
}

func (s *TemplateService) GetByID(id uuid.UUID) (*models.Template, error) {
	var tmpl models.Template
	if err := s.db.First(&tmpl, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &tmpl, nil
}

func (s *TemplateService) GetByCategory(category string) ([]models.Template, error) {
	var templates []models.Template
	err := s.db.Where("category = ? AND is_active = ?", category, true).
		Order("usage_count DESC").
		Find(&templates).Error
	return templates, err
}

func (s *TemplateService) Create(req *dto.CreateTemplateRequest) (*models.Template, error) {
	tmpl := models.Template{
		ID:             uuid.New(),
		Name:           req.Name,
		Slug:           generateSlug(req.Name),
		Description:    req.Description,
		Category:       req.Category,
		Icon:           req.Icon,
		PreviewImage:   req.PreviewImage,
		Features:       datatypes.NewJSONSlice(req.Features),
		DefaultPrompt:  req.DefaultPrompt,
		PrimaryColor:   req.PrimaryColor,
		SecondaryColor: req.SecondaryColor,
		IsPremium:      req.IsPremium,
		IsActive:       true,
	}
	if tmpl.PrimaryColor == "" {
		tmpl.PrimaryColor = "#6366f1"
	}
	if tmpl.SecondaryColor == "" {
		tmpl.SecondaryColor = "#8b5cf6"
	}

	if err := s.db.Create(&tmpl).Error; err != nil {
		return nil, err
	}
	return &tmpl, nil
}
