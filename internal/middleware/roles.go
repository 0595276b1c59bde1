package middleware

import (
	"github.com/clickngoai/clickngoai-backend/internal/auth"
	"github.com/clickngoai/clickngoai-backend/internal/config"
	"github.com/clickngoai/clickngoai-backend/internal/dto"
	"github.com/clickngoai/clickngoai-backend/internal/models"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

var roleRank = map[string]int{
	models.RoleUser:       0,
	models.RoleAdmin:      1,
	models.RoleSuperadmin: 2,
}

// Allowed is the authorization policy: it reports whether actorRole
// satisfies requiredRole. Kept as a plain function so route gating and
// in-service checks share one rule.
func Allowed(actorRole, requiredRole string) bool {
	return roleRank[actorRole] >= roleRank[requiredRole]
}

// RoleRequired gates a route on a minimum role, resolved from the stored
// user row. An X-Admin-Token matching the configured token bypasses the
// role check for operational tooling.
func RoleRequired(db *gorm.DB, cfg *config.Config, requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if cfg.AdminToken != "" && c.Get("X-Admin-Token") == cfg.AdminToken {
			return c.Next()
		}

		user, err := auth.CurrentUser(c, db)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{
				Error: true, Message: "Unauthorized",
			})
		}

		if !Allowed(user.Role, requiredRole) {
			msg := "Admin access required"
			if requiredRole == models.RoleSuperadmin {
				msg = "Superadmin access required"
			}
			return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{
				Error: true, Message: msg,
			})
		}

		return c.Next()
	}
}
