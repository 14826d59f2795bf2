package courseRoutes

import (
	controllers "skillbridge/controllers/course"
	"skillbridge/middleware"
	"skillbridge/models"
	validators "skillbridge/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all course routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/api/courses")

	// Trainer dashboard must register before the generic :id route
	courseGroup.Get("/trainer", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer), controllers.GetTrainerCourses)

	// Public reads
	courseGroup.Get("/", controllers.GetAllCourses)
	courseGroup.Get("/:id", validators.CourseID(), controllers.GetCourseDetails)

	// Trainer-owned mutations
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer), validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer), validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer), validators.CourseID(), controllers.DeleteCourse)
}
