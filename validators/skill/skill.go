package skillValidator

import (
	"strconv"
	"strings"

	"skillbridge/middleware"
	"skillbridge/validators"

	"github.com/gofiber/fiber/v2"
)

var validate = validators.New()

type CreateSkillRequest struct {
	Name        string `json:"name" validate:"required,min=2"`
	Description string `json:"description" validate:"required,min=5"`
}

type UpdateSkillRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=2"`
	Description *string `json:"description" validate:"omitempty,min=5"`
}

type TrackSkillRequest struct {
	SkillID uint   `json:"skillId" validate:"required"`
	Status  string `json:"status" validate:"required,oneof=pending in_progress completed"`
}

func CreateSkill() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateSkillRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}
		c.Locals("createSkillRequest", reqData)
		return c.Next()
	}
}

func UpdateSkill() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateSkillRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}
		c.Locals("updateSkillRequest", reqData)
		return c.Next()
	}
}

func TrackSkill() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(TrackSkillRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body!")
		}
		if err := validate.Struct(reqData); err != nil {
			return middleware.ValidationErrorResponse(c, validators.FieldErrors(err))
		}
		c.Locals("trackSkillRequest", reqData)
		return c.Next()
	}
}

// SkillID validates the :id path parameter.
func SkillID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("id"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid Skill ID!")
		}

		c.Locals("skillID", uint(id))
		return c.Next()
	}
}

// UserID validates the :userId path parameter.
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params("userId"))
		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Invalid User ID!")
		}

		c.Locals("targetUserID", uint(id))
		return c.Next()
	}
}
