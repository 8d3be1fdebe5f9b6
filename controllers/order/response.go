package order

import (
	"bitbet/helpers"
	"bitbet/models"

	"github.com/gofiber/fiber/v2"
)

func orderResponse(o *models.BettingOrder) fiber.Map {
	return fiber.Map{
		"id":          o.ID,
		"order_id":    o.OrderID,
		"user_id":     o.UserID,
		"asset":       o.Asset,
		"amount":      helpers.Money(o.Amount),
		"direction":   o.Direction,
		"duration":    o.Duration,
		"entry_price": helpers.Money(o.EntryPrice),
		"exit_price":  helpers.Money(o.ExitPrice),
		"profit":      helpers.Money(o.Profit),
		"status":      o.Status,
		"result":      o.Result,
		"created_at":  o.CreatedAt,
		"expires_at":  o.ExpiresAt,
	}
}
