package enrollmentValidator

import (
	"skillbridge/middleware"
	"skillbridge/validators"

	"github.com/gofiber/fiber/v2"
)

var validate = validators.New()

type EnrollRequest struct {
	CourseID uint `json:"courseId" validate:"required"`
}

func Enroll() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(EnrollRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}
		c.Locals("enrollRequest", reqData)
		return c.Next()
	}
}
