package handlers

import (
	"strconv"

	"github.com/clickngoai/clickngoai-backend/internal/dto"
	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/clickngoai/clickngoai-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type AdminHandler struct {
	admin    *services.AdminService
	builds   *services.BuildService
	activity *services.ActivityLogger
}

func NewAdminHandler(admin *services.AdminService, builds *services.BuildService, activity *services.ActivityLogger) *AdminHandler {
	return &AdminHandler{admin: admin, builds: builds, activity: activity}
}

func pagination(c *fiber.Ctx, defaultLimit int) (int, int) {
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(defaultLimit)))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))
	if limit <= 0 || limit > 500 {
		limit = defaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	stats, err := h.admin.GetStats()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(stats)
}

func (h *AdminHandler) GetUsers(c *fiber.Ctx) error {
	limit, offset := pagination(c, 100)
	users, err := h.admin.GetUsers(limit, offset)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(users)
}

func (h *AdminHandler) GetProjects(c *fiber.Ctx) error {
	limit, offset := pagination(c, 100)
	projects, err := h.admin.GetProjects(limit, offset)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(projects)
}

func (h *AdminHandler) GetRecentProjects(c *fiber.Ctx) error {
	projects, err := h.admin.GetRecentProjects(10)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(projects)
}

func (h *AdminHandler) GetLogs(c *fiber.Ctx) error {
	limit, offset := pagination(c, 100)
	logs, err := h.activity.List(limit, offset)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(logs)
}

func (h *AdminHandler) GetBuildQueue(c *fiber.Ctx) error {
	items, err := h.builds.GetQueue(50)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(items)
}

// UpdateUser handles PATCH /admin/users/:id (superadmin).
func (h *AdminHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid user ID")
	}

	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Role != nil {
		switch *req.Role {
		case models.RoleUser, models.RoleAdmin, models.RoleSuperadmin:
		default:
			return badRequest(c, "Invalid role: "+*req.Role)
		}
	}
	if req.SubscriptionTier != nil {
		switch *req.SubscriptionTier {
		case models.TierFree, models.TierSingle, models.TierMultiple, models.TierUnlimited:
		default:
			return badRequest(c, "Invalid subscription tier: "+*req.SubscriptionTier)
		}
	}

	if err := h.admin.UpdateUser(id, &req); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}

// UpsertPricingPlan handles PUT /admin/pricing/:tier (superadmin).
func (h *AdminHandler) UpsertPricingPlan(c *fiber.Ctx) error {
	tier := c.Params("tier")
	switch tier {
	case models.TierFree, models.TierSingle, models.TierMultiple, models.TierUnlimited:
	default:
		return badRequest(c, "Invalid subscription tier: "+tier)
	}

	var req dto.UpsertPricingPlanRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.NameEn == "" {
		return badRequest(c, "Plan name is required")
	}

	if err := h.admin.UpsertPricingPlan(tier, &req); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
