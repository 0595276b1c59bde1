package handlers

import (
	"github.com/clickngoai/clickngoai-backend/internal/dto"
	"github.com/clickngoai/clickngoai-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

type AIHandler struct {
	ideas *services.IdeaService
}

func NewAIHandler(ideas *services.IdeaService) *AIHandler {
	return &AIHandler{ideas: ideas}
}

// GenerateAppIdea handles POST /ai/generate-app-idea. Generation
// failures are absorbed by the service, which returns a fallback
// specification instead.
func (h *AIHandler) GenerateAppIdea(c *fiber.Ctx) error {
	var req dto.GenerateAppIdeaRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if len(req.Prompt) < 10 {
		return badRequest(c, "Prompt must be at least 10 characters")
	}

	return c.JSON(h.ideas.GenerateAppIdea(req.Prompt))
}
