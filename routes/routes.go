package routes

import (
	"bitbet/controllers/order"
	"bitbet/controllers/user"
	"bitbet/middlewares"

	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	orders := app.Group("/betting-orders", middlewares.UserAuth)
	orders.Post("/", order.CreateOrder)
	orders.Get("/", order.ListOrders)
	orders.Patch("/:id", middlewares.AdminOnly, order.UpdateOrder)

	app.Get("/balance", middlewares.UserAuth, user.Balance)
}
