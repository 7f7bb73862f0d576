package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zeecare/hospital-backend/controllers"
	"github.com/zeecare/hospital-backend/middleware"
)

// SetupMessageRoutes configures contact-form routes
func SetupMessageRoutes(app *fiber.App) {
	message := app.Group("/api/v1/message")

	message.Post("/send", controllers.SendMessage)
	message.Get("/getall", middleware.IsAdminAuthenticated(), controllers.GetAllMessages)
}
