package middleware

import "github.com/gofiber/fiber/v2"

// RequireRole returns a middleware that admits only callers whose token
// carries the given role. Must run after JWTMiddleware.
func RequireRole(requiredRole string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, ok := c.Locals("role").(string)
		if !ok || role == "" {
			return ErrorResponse(c, fiber.StatusUnauthorized, "Unauthorized: role not found")
		}

		if role != requiredRole {
			return ErrorResponse(c, fiber.StatusForbidden, "Only "+requiredRole+"s can access this resource")
		}

		return c.Next()
	}
}
