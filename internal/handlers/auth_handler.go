package handlers

import (
	"errors"
	"time"

	"github.com/clickngoai/clickngoai-backend/internal/dto"
	"github.com/clickngoai/clickngoai-backend/internal/services"
	"github.com/gofiber/fiber/v2"
)

const sessionCookieName = "clickngoai_session"

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Register(&req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return badRequest(c, err.Error())
	}

	h.setSessionCookie(c, resp.RefreshToken)
	return c.Status(fiber.StatusCreated).JSON(resp)
}

func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) || errors.Is(err, services.ErrAccountDisabled) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return serviceError(c, err)
	}

	h.setSessionCookie(c, resp.RefreshToken)
	return c.JSON(resp)
}

func (h *AuthHandler) Refresh(c *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}
	if req.RefreshToken == "" {
		req.RefreshToken = c.Cookies(sessionCookieName)
	}

	resp, err := h.authService.Refresh(&req)
	if err != nil {
		if errors.Is(err, services.ErrInvalidToken) {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return serviceError(c, err)
	}

	h.setSessionCookie(c, resp.RefreshToken)
	return c.JSON(resp)
}

// Me is public: it returns the current identity or null, never an error.
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	user := h.authService.Me(c.Get("Authorization"))
	if user == nil {
		return c.JSON(fiber.Map{"user": nil})
	}
	resp := services.ToUserResponse(user)
	return c.JSON(fiber.Map{"user": resp})
}

// Logout is public: it revokes the refresh token when one is presented
// and always clears the session cookie.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	var req dto.LogoutRequest
	_ = c.BodyParser(&req)
	if req.RefreshToken == "" {
		req.RefreshToken = c.Cookies(sessionCookieName)
	}

	if err := h.authService.Logout(&req); err != nil {
		return serviceError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.JSON(dto.SuccessResponse{Success: true})
}

func (h *AuthHandler) setSessionCookie(c *fiber.Ctx, refreshToken string) {
	c.Cookie(&fiber.Cookie{
		Name:     sessionCookieName,
		Value:    refreshToken,
		Expires:  time.Now().Add(168 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
}
