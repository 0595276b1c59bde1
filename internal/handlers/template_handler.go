package handlers

import (
	"github.com/clickngoai/clickngoai-backend/internal/dto"
	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/clickngoai/clickngoai-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type TemplateHandler struct {
	templates *services.TemplateService
}

func NewTemplateHandler(templates *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{templates: templates}
}

func (h *TemplateHandler) List(c *fiber.Ctx) error {
	templates, err := h.templates.List()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(templates)
}

func (h *TemplateHandler) Get(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid template ID")
	}

	tmpl, err := h.templates.GetByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(tmpl)
}

func (h *TemplateHandler) GetByCategory(c *fiber.Ctx) error {
	category := c.Params("category")
	if !models.ValidTemplateCategory(category) {
		return badRequest(c, "Invalid template category: "+category)
	}

	templates, err := h.templates.GetByCategory(category)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(templates)
}

// Create handles POST /templates (admin).
func (h *TemplateHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" || len(req.Name) > 255 {
		return badRequest(c, "Template name is required and must be at most 255 characters")
	}
	if !models.ValidTemplateCategory(req.Category) {
		return badRequest(c, "Invalid template category: "+req.Category)
	}

	tmpl, err := h.templates.Create(&req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateTemplateResponse{
		ID:   tmpl.ID,
		Slug: tmpl.Slug,
	})
}
