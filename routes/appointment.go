package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zeecare/hospital-backend/controllers"
	"github.com/zeecare/hospital-backend/middleware"
)

// SetupAppointmentRoutes configures all appointment related routes
func SetupAppointmentRoutes(app *fiber.App) {
	appointment := app.Group("/api/v1/appointment")

	appointment.Post("/post", middleware.IsPatientAuthenticated(), controllers.PostAppointment)
	appointment.Get("/getall", middleware.IsAdminAuthenticated(), controllers.GetAllAppointments)
	appointment.Put("/update/:id", middleware.IsAdminAuthenticated(), controllers.UpdateAppointmentStatus)
	appointment.Delete("/delete/:id", middleware.IsAdminAuthenticated(), controllers.DeleteAppointment)
}
