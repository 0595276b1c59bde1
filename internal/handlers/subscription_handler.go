package handlers

import (
	"errors"

	"github.com/clickngoai/clickngoai-backend/internal/auth"
	"github.com/clickngoai/clickngoai-backend/internal/dto"
	"github.com/clickngoai/clickngoai-backend/internal/services"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SubscriptionHandler struct {
	subscriptions *services.SubscriptionService
	db            *gorm.DB
}

func NewSubscriptionHandler(subscriptions *services.SubscriptionService, db *gorm.DB) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptions: subscriptions, db: db}
}

// GetPricing handles GET /subscriptions/pricing (public).
func (h *SubscriptionHandler) GetPricing(c *fiber.Ctx) error {
	plans, err := h.subscriptions.GetPricing()
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(plans)
}

// GetMy handles GET /subscriptions/my. Returns the most recent active
// subscription, or null when the user has none.
func (h *SubscriptionHandler) GetMy(c *fiber.Ctx) error {
	userID, err := auth.UserID(c)
	if err != nil {
		return unauthorized(c)
	}

	sub, err := h.subscriptions.GetMy(userID)
	if err != nil {
		return serviceError(c, err)
	}
	if sub == nil {
		return c.JSON(fiber.Map{"subscription": nil})
	}
	return c.JSON(fiber.Map{"subscription": sub})
}

// Create handles POST /subscriptions.
func (h *SubscriptionHandler) Create(c *fiber.Ctx) error {
	actor, err := auth.CurrentUser(c, h.db)
	if err != nil {
		return unauthorized(c)
	}

	var req dto.CreateSubscriptionRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.Currency != "INR" && req.Currency != "USD" {
		return badRequest(c, "Currency must be INR or USD")
	}

	sub, err := h.subscriptions.Create(actor, &req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTier) {
			return badRequest(c, err.Error())
		}
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(dto.CreateSubscriptionResponse{ID: sub.ID})
}

// Cancel handles POST /subscriptions/:id/cancel.
func (h *SubscriptionHandler) Cancel(c *fiber.Ctx) error {
	actor, err := auth.CurrentUser(c, h.db)
	if err != nil {
		return unauthorized(c)
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return badRequest(c, "Invalid subscription ID")
	}

	if err := h.subscriptions.Cancel(actor, id); err != nil {
		return serviceError(c, err)
	}
	return c.JSON(dto.SuccessResponse{Success: true})
}
