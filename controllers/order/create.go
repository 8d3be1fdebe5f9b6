package order

import (
	"errors"

	"bitbet/helpers"
	"bitbet/jobs"
	"bitbet/models"
	"bitbet/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type CreateOrderRequest struct {
	Asset      string           `json:"asset"`
	Amount     decimal.Decimal  `json:"amount"`
	Direction  string           `json:"direction"`
	Duration   int              `json:"duration"`
	EntryPrice *decimal.Decimal `json:"entry_price"`
}

func CreateOrder(c *fiber.Ctx) error {
	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	if req.Asset == "" || req.Direction == "" || req.Duration == 0 || req.Amount.IsZero() {
		return helpers.JSONError(c, "ASSET_AMOUNT_DIRECTION_AND_DURATION_REQUIRED")
	}

	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	created, err := services.PlaceOrder(user.ID, services.PlaceOrderRequest{
		Asset:      req.Asset,
		Amount:     req.Amount,
		Direction:  req.Direction,
		Duration:   req.Duration,
		EntryPrice: req.EntryPrice,
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidDuration):
			return helpers.JSONError(c, "INVALID_DURATION")
		case errors.Is(err, services.ErrInvalidDirection):
			return helpers.JSONError(c, "INVALID_DIRECTION")
		case errors.Is(err, services.ErrBelowMinimum):
			return helpers.JSONError(c, "BELOW_MINIMUM")
		case errors.Is(err, services.ErrInsufficientBalance):
			return helpers.JSONError(c, "INSUFFICIENT_BALANCE")
		case errors.Is(err, services.ErrUserNotFound), errors.Is(err, services.ErrUserInactive):
			return helpers.JSONError(c, "USER_NOT_FOUND_OR_INACTIVE")
		default:
			return helpers.JSONError(c, "FAILED_TO_PLACE_ORDER")
		}
	}

	jobs.RegisterOrder(created)

	return helpers.JSONCreated(c, "Order placed successfully", orderResponse(created))
}
