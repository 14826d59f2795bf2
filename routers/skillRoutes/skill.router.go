package skillRoutes

import (
	controllers "skillbridge/controllers/skill"
	"skillbridge/middleware"
	"skillbridge/models"
	validators "skillbridge/validators/skill"

	"github.com/gofiber/fiber/v2"
)

func SetupSkillRoutes(app *fiber.App) {
	skillGroup := app.Group("/api/skills")

	// Learner progress routes must register before the generic :id route
	skillGroup.Post("/track", middleware.JWTMiddleware, middleware.RequireRole(models.RoleLearner), validators.TrackSkill(), controllers.TrackSkillProgress)
	skillGroup.Get("/user/:userId", middleware.JWTMiddleware, validators.UserID(), controllers.GetUserSkills)

	// Public reads
	skillGroup.Get("/", controllers.GetAllSkills)
	skillGroup.Get("/:id", validators.SkillID(), controllers.GetSkillByID)

	// Trainer-only mutations
	skillGroup.Post("/", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer), validators.CreateSkill(), controllers.CreateSkill)
	skillGroup.Put("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer), validators.SkillID(), validators.UpdateSkill(), controllers.UpdateSkill)
	skillGroup.Delete("/:id", middleware.JWTMiddleware, middleware.RequireRole(models.RoleTrainer), validators.SkillID(), controllers.DeleteSkill)
}
