package main

import (
	"log"
	"os"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/zeecare/hospital-backend/cron"
	"github.com/zeecare/hospital-backend/db"
	"github.com/zeecare/hospital-backend/redis"
	"github.com/zeecare/hospital-backend/routes"
	"github.com/zeecare/hospital-backend/utils"
)

func main() {
	db.Init()
	db.Migrate()
	redis.InitRedis()

	app := fiber.New(fiber.Config{
		ErrorHandler: utils.ErrorHandler,
	})

	origins := strings.Trim(os.Getenv("FRONTEND_URL")+","+os.Getenv("DASHBOARD_URL"), ",")
	if origins == "" {
		origins = "*"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,DELETE",
		AllowCredentials: origins != "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Hospital Management Backend")
	})
	routes.SetupUserRoutes(app)
	routes.SetupAppointmentRoutes(app)
	routes.SetupMessageRoutes(app)

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "4000"
	}
	log.Fatal(app.Listen(":" + port))
}
