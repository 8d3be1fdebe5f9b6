package user

import (
	"bitbet/helpers"
	"bitbet/models"

	"github.com/gofiber/fiber/v2"
)

// Balance returns the caller's ledger snapshot. Total, available and
// frozen are reported independently: total tracks realized profit and
// loss, not the sum of the other two.
func Balance(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	return helpers.JSONSuccess(c, "Balance retrieved successfully", fiber.Map{
		"username":          user.Username,
		"total_balance":     helpers.Money(user.TotalBalance),
		"available_balance": helpers.Money(user.AvailableBalance),
		"frozen_balance":    helpers.Money(user.FrozenBalance),
		"reputation":        user.Reputation,
	})
}
