package order

import (
	"bitbet/database"
	"bitbet/helpers"
	"bitbet/models"

	"github.com/gofiber/fiber/v2"
)

// ListOrders returns the caller's own orders. Admins get every order,
// each annotated with its owner's username.
func ListOrders(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONError(c, "INVALID_USER_SESSION")
	}

	query := database.DB.Order("created_at DESC")
	if !user.IsAdmin {
		query = query.Where("user_id = ?", user.ID)
	}

	var orders []models.BettingOrder
	if err := query.Find(&orders).Error; err != nil {
		return helpers.JSONError(c, "FAILED_TO_LIST_ORDERS")
	}

	usernames := map[uint]string{}
	if user.IsAdmin {
		ids := make([]uint, 0, len(orders))
		for i := range orders {
			ids = append(ids, orders[i].UserID)
		}
		var users []models.User
		if len(ids) > 0 {
			if err := database.DB.Where("id IN ?", ids).Find(&users).Error; err != nil {
				return helpers.JSONError(c, "FAILED_TO_LIST_ORDERS")
			}
		}
		for i := range users {
			usernames[users[i].ID] = users[i].Username
		}
	}

	resp := make([]fiber.Map, 0, len(orders))
	for i := range orders {
		item := orderResponse(&orders[i])
		if user.IsAdmin {
			item["username"] = usernames[orders[i].UserID]
		}
		resp = append(resp, item)
	}

	return helpers.JSONSuccess(c, "Orders retrieved successfully", resp)
}
