package handlers

import (
	"github.com/clickngoai/clickngoai-backend/internal/auth"
	"github.com/clickngoai/clickngoai-backend/internal/dto"
	"github.com/clickngoai/clickngoai-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BuildHandler struct {
	builds *services.BuildService
	db     *gorm.DB
}

func NewBuildHandler(builds *services.BuildService, db *gorm.DB) *BuildHandler {
	return &BuildHandler{builds: builds, db: db}
}

// GetStatus handles GET /builds/status/:projectId.
func (h *BuildHandler) GetStatus(c *fiber.Ctx) error {
	actor, err := auth.CurrentUser(c, h.db)
	if err != nil {
		return unauthorized(c)
	}

	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return badRequest(c, "Invalid project ID")
	}

	status, err := h.builds.GetStatus(actor, projectID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(status)
}

// GetQueue handles GET /builds/queue (admin). Returns the most recent 50 entries.
func (h *BuildHandler) GetQueue(c *fiber.Ctx) error {
	items, err := h.builds.GetQueue(50)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(items)
}

// ProcessNext handles POST /builds/process-next (admin).
func (h *BuildHandler) ProcessNext(c *fiber.Ctx) error {
	actorID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	result, err := h.builds.ProcessNext(actorID)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(result)
}

// SimulateBuild handles POST /builds/simulate/:projectId.
func (h *BuildHandler) SimulateBuild(c *fiber.Ctx) error {
	actor, err := auth.CurrentUser(c, h.db)
	if err != nil {
		return unauthorized(c)
	}

	projectID, err := uuid.Parse(c.Params("projectId"))
	if err != nil {
		return badRequest(c, "Invalid project ID")
	}

	if err := h.builds.SimulateBuild(actor, projectID); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
