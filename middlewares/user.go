package middlewares

import (
	"time"

	"bitbet/database"
	"bitbet/helpers"
	"bitbet/models"

	"github.com/gofiber/fiber/v2"
)

func UserAuth(c *fiber.Ctx) error {
	token := c.Get("X-Auth-Token")
	if token == "" {
		return helpers.JSONError(c, "AUTH_TOKEN_REQUIRED")
	}

	var session models.Session
	if err := database.DB.
		Where("token = ? AND expires_at > ?", token, time.Now()).
		First(&session).Error; err != nil {
		return helpers.JSONError(c, "INVALID_OR_EXPIRED_TOKEN")
	}

	var user models.User
	if err := database.DB.
		Where("id = ? AND is_active = true", session.UserID).
		First(&user).Error; err != nil {
		return helpers.JSONError(c, "USER_NOT_FOUND_OR_INACTIVE")
	}

	c.Locals("user", user)
	return c.Next()
}

func AdminOnly(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok || !user.IsAdmin {
		return helpers.JSONError(c, "ADMIN_ONLY")
	}
	return c.Next()
}
