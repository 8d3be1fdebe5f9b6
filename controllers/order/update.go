package order

import (
	"errors"

	"bitbet/database"
	"bitbet/helpers"
	"bitbet/models"
	"bitbet/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type UpdateOrderRequest struct {
	Status    string           `json:"status"`
	Result    string           `json:"result"`
	ExitPrice *decimal.Decimal `json:"exit_price"`
}

// UpdateOrder is the admin correction endpoint. Cancelling an active
// order goes through the settlement service so the escrow is returned;
// other field tweaks are applied directly with an audit row.
func UpdateOrder(c *fiber.Ctx) error {
	var req UpdateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "INVALID_JSON")
	}

	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return helpers.JSONError(c, "INVALID_ORDER_ID")
	}

	if req.Status == models.OrderStatusCancelled {
		if err := services.Cancel(uint(id)); err != nil {
			switch {
			case errors.Is(err, services.ErrOrderNotFound):
				return helpers.JSONError(c, "ORDER_NOT_FOUND")
			case errors.Is(err, services.ErrOrderNotActive):
				return helpers.JSONError(c, "ORDER_NOT_ACTIVE")
			default:
				return helpers.JSONError(c, "FAILED_TO_CANCEL_ORDER")
			}
		}
	} else {
		updates := map[string]any{}
		if req.Status != "" {
			if req.Status != models.OrderStatusActive && req.Status != models.OrderStatusCompleted {
				return helpers.JSONError(c, "INVALID_STATUS")
			}
			updates["status"] = req.Status
		}
		if req.Result != "" {
			if req.Result != models.OrderResultWin && req.Result != models.OrderResultLoss {
				return helpers.JSONError(c, "INVALID_RESULT")
			}
			updates["result"] = req.Result
		}
		if req.ExitPrice != nil {
			updates["exit_price"] = *req.ExitPrice
		}
		if len(updates) == 0 {
			return helpers.JSONError(c, "NOTHING_TO_UPDATE")
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var order models.BettingOrder
			if err := tx.First(&order, id).Error; err != nil {
				return err
			}
			if err := tx.Model(&order).Updates(updates).Error; err != nil {
				return err
			}
			admin, _ := c.Locals("user").(models.User)
			return tx.Create(&models.BalanceTransaction{
				UserID:  order.UserID,
				OrderID: order.OrderID,
				TrxType: models.TrxTypeAdjustment,
				Note:    "Manual order correction by " + admin.Username,
				RefID:   order.OrderID,
			}).Error
		})
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return helpers.JSONError(c, "ORDER_NOT_FOUND")
			}
			return helpers.JSONError(c, "FAILED_TO_UPDATE_ORDER")
		}
	}

	var order models.BettingOrder
	if err := database.DB.First(&order, id).Error; err != nil {
		return helpers.JSONError(c, "ORDER_NOT_FOUND")
	}

	return helpers.JSONSuccess(c, "Order updated successfully", orderResponse(&order))
}
