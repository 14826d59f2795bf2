package userValidator

import (
	"skillbridge/middleware"
	"skillbridge/validators"

	"github.com/gofiber/fiber/v2"
)

var validate = validators.New()

// UpdateProfileRequest uses pointers so an omitted field can be told apart
// from an explicitly cleared one.
type UpdateProfileRequest struct {
	Name              *string `json:"name" validate:"omitempty,min=2"`
	Bio               *string `json:"bio"`
	YearsOfExperience *int    `json:"yearsOfExperience" validate:"omitempty,gte=0"`
	Role              *string `json:"role"`
}

func UpdateProfile() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateProfileRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}
		c.Locals("updateProfileRequest", reqData)
		return c.Next()
	}
}
