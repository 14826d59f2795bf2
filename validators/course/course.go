package courseValidator

import (
	"strconv"
	"strings"

	"skillbridge/middleware"
	"skillbridge/validators"

	"github.com/gofiber/fiber/v2"
)

var validate = validators.New()

type CreateCourseRequest struct {
	Title         string   `json:"title" validate:"required,min=3"`
	Description   string   `json:"description" validate:"required,min=5"`
	Price         *float64 `json:"price" validate:"required,gt=0"`
	Skill         *uint    `json:"skill" validate:"required"`
	Image         *string  `json:"image"`
	TeachingHours *int     `json:"teachingHours" validate:"omitempty,gte=0"`
}

// UpdateCourseRequest is a patch: nil means "leave unchanged". A non-nil
// empty Image clears the stored image, which is why Image carries no rules.
type UpdateCourseRequest struct {
	Title         *string  `json:"title" validate:"omitempty,min=3"`
	Description   *string  `json:"description" validate:"omitempty,min=5"`
	Price         *float64 `json:"price" validate:"omitempty,gt=0"`
	Skill         *uint    `json:"skill"`
	Image         *string  `json:"image"`
	TeachingHours *int     `json:"teachingHours" validate:"omitempty,gte=0"`
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}
		c.Locals("createCourseRequest", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateCourseRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}
		c.Locals("updateCourseRequest", reqData)
		return c.Next()
	}
}

// CourseID validates the :id path parameter.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		courseIDStr := strings.TrimSpace(c.Params("id"))
		if courseIDStr == "" {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Course ID is required!")
		}

		courseID, err := strconv.Atoi(courseIDStr)
		if err != nil || courseID <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Course ID!")
		}

		c.Locals("courseID", uint(courseID))
		return c.Next()
	}
}
