package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/zeecare/hospital-backend/controllers"
	"github.com/zeecare/hospital-backend/middleware"
)

// SetupUserRoutes configures registration, login and directory routes
func SetupUserRoutes(app *fiber.App) {
	user := app.Group("/api/v1/user")

	// Public routes
	user.Post("/patient/register", controllers.PatientRegister)
	user.Post("/login", controllers.Login)
	user.Get("/doctors", controllers.GetAllDoctors)

	// Admin routes
	user.Post("/admin/addnew", middleware.IsAdminAuthenticated(), controllers.AddNewAdmin)
	user.Post("/doctor/addnew", middleware.IsAdminAuthenticated(), controllers.AddNewDoctor)
	user.Get("/admin/me", middleware.IsAdminAuthenticated(), controllers.GetUserDetails)
	user.Get("/admin/logout", middleware.IsAdminAuthenticated(), controllers.LogoutAdmin)

	// Patient routes
	user.Get("/patient/me", middleware.IsPatientAuthenticated(), controllers.GetUserDetails)
	user.Get("/patient/logout", middleware.IsPatientAuthenticated(), controllers.LogoutPatient)
}
