package handlers

import (
	"github.com/clickngoai/clickngoai-backend/internal/auth"
	"github.com/clickngoai/clickngoai-backend/internal/dto"
	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/clickngoai/clickngoai-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ProjectHandler struct {
	projects *services.ProjectService
	db       *gorm.DB
}

func NewProjectHandler(projects *services.ProjectService, db *gorm.DB) *ProjectHandler {
	return &ProjectHandler{projects: projects, db: db}
}

// List handles GET /projects. Returns the caller's own projects only.
func (h *ProjectHandler) List(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	projects, err := h.projects.List(userID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(projects)
}

// Get handles GET /projects/:id.
func (h *ProjectHandler) Get(c *fiber.Ctx) error {
	actor, err := auth.CurrentUser(c, h.db)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid project ID")
	}

	project, err := h.projects.GetByID(actor, id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(project)
}

// GetBySlug handles GET /landing/:slug, the public landing lookup.
func (h *ProjectHandler) GetBySlug(c *fiber.Ctx) error {
	project, err := h.projects.GetBySlug(c.Params("slug"))
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(project)
}

// Create handles POST /projects.
func (h *ProjectHandler) Create(c *fiber.Ctx) error {
	actor, err := auth.CurrentUser(c, h.db)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name == "" || len(req.Name) > 255 {
		return badRequest(c, "Project name is required and must be at most 255 characters")
	}
	if req.AppType != "" && !models.ValidAppType(req.AppType) {
		return badRequest(c, "Invalid app type: "+req.AppType)
	}

	project, err := h.projects.Create(actor, &req)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateProjectResponse{
		ID:   project.ID,
		Slug: project.Slug,
	})
}

// Update handles PATCH /projects/:id.
func (h *ProjectHandler) Update(c *fiber.Ctx) error {
	actor, err := auth.CurrentUser(c, h.db)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid project ID")
	}

	var req dto.UpdateProjectRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Name != nil && (*req.Name == "" || len(*req.Name) > 255) {
		return badRequest(c, "Project name must be 1-255 characters")
	}

	if err := h.projects.Update(actor, id, &req); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// Delete handles DELETE /projects/:id.
func (h *ProjectHandler) Delete(c *fiber.Ctx) error {
	actor, err := auth.CurrentUser(c, h.db)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid project ID")
	}

	if err := h.projects.Delete(actor, id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// TrackDownload handles POST /projects/:id/download (public). Unknown
// ids are a no-op, not an error.
func (h *ProjectHandler) TrackDownload(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid project ID")
	}

	if err := h.projects.TrackDownload(id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
