package enrollmentRoutes

import (
	controllers "skillbridge/controllers/enrollment"
	"skillbridge/middleware"
	validators "skillbridge/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

func SetupEnrollmentRoutes(app *fiber.App) {
	enrollmentGroup := app.Group("/api/enrollments")

	enrollmentGroup.Post("/", middleware.JWTMiddleware, validators.Enroll(), controllers.EnrollInCourse)
	enrollmentGroup.Get("/user", middleware.JWTMiddleware, controllers.GetUserEnrollments)
}
