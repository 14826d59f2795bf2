package ratingValidator

import (
	"strconv"
	"strings"

	"skillbridge/middleware"
	"skillbridge/validators"

	"github.com/gofiber/fiber/v2"
)

var validate = validators.New()

type SubmitRatingRequest struct {
	CourseID uint    `json:"courseId" validate:"required"`
	Rating   int     `json:"rating" validate:"required,min=1,max=5"`
	Comment  *string `json:"comment"`
}

func SubmitRating() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(SubmitRatingRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}
		c.Locals("submitRatingRequest", reqData)
		return c.Next()
	}
}

// CourseIDParam validates the :courseId path parameter.
func CourseIDParam() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("courseId"))
		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}
