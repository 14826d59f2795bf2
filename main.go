package main

import (
	"log"

	"skillbridge/config"
	"skillbridge/database"
	authRoutes "skillbridge/routers/authRoutes"
	courseRoutes "skillbridge/routers/courseRoutes"
	enrollmentRoutes "skillbridge/routers/enrollmentRoutes"
	ratingRoutes "skillbridge/routers/ratingRoutes"
	skillRoutes "skillbridge/routers/skillRoutes"
	userRoutes "skillbridge/routers/userRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	skillRoutes.SetupSkillRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	ratingRoutes.SetupRatingRoutes(app)

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
