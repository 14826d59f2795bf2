package ratingRoutes

import (
	controllers "skillbridge/controllers/rating"
	"skillbridge/middleware"
	"skillbridge/models"
	validators "skillbridge/validators/rating"

	"github.com/gofiber/fiber/v2"
)

func SetupRatingRoutes(app *fiber.App) {
	ratingGroup := app.Group("/api/ratings")

	ratingGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleLearner), validators.SubmitRating(), controllers.SubmitRating)
	ratingGroup.Get("/course/:courseId", validators.CourseIDParam(), controllers.GetCourseRatings)
}
