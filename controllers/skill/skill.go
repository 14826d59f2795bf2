package skillController

import (
	"errors"
	"log"

	"skillbridge/database"
	"skillbridge/middleware"
	"skillbridge/models"
	skillValidators "skillbridge/validators/skill"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateSkill adds a category. Trainer only; names are unique.
func CreateSkill(c *fiber.Ctx) error {
	reqData := c.Locals("createSkillRequest").(*skillValidators.CreateSkillRequest)

	skill := models.Skill{
		Name:        reqData.Name,
		Description: reqData.Description,
	}

	if err := database.Database.Db.Create(&skill).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "A skill with this name already exists")
		}
		log.Printf("Error creating skill: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create skill!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Skill created successfully", skill)
}

// GetAllSkills lists categories in creation order as the {id, name} shape
// the filter UI consumes. Public endpoint.
func GetAllSkills(c *fiber.Ctx) error {
	var skills []models.Skill
	if err := database.Database.Db.Order("created_at asc").Find(&skills).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch skills!")
	}

	type skillOption struct {
		ID   uint   `json:"id"`
		Name string `json:"name"`
	}
	options := make([]skillOption, 0, len(skills))
	for _, s := range skills {
		options = append(options, skillOption{ID: s.ID, Name: s.Name})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skills fetched successfully!", fiber.Map{
		"skills": options,
	})
}

// GetSkillByID returns one category. Public endpoint.
func GetSkillByID(c *fiber.Ctx) error {
	skillID := c.Locals("skillID").(uint)

	var skill models.Skill
	if err := database.Database.Db.First(&skill, skillID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Skill not found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill fetched successfully!", skill)
}

// UpdateSkill patches a category. Trainer only.
func UpdateSkill(c *fiber.Ctx) error {
	skillID := c.Locals("skillID").(uint)
	reqData := c.Locals("updateSkillRequest").(*skillValidators.UpdateSkillRequest)

	db := database.Database.Db

	var skill models.Skill
	if err := db.First(&skill, skillID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Skill not found")
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}

	if len(updates) > 0 {
		if err := db.Model(&skill).Updates(updates).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return middleware.ErrorResponse(c, fiber.StatusConflict, "A skill with this name already exists")
			}
			log.Printf("Error updating skill %d: %v", skillID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update skill!")
		}
		if err := db.First(&skill, skillID).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update skill!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill updated successfully", skill)
}

// DeleteSkill removes a category. Refused while courses still reference it,
// so the course table never holds a dangling skill id.
func DeleteSkill(c *fiber.Ctx) error {
	skillID := c.Locals("skillID").(uint)

	db := database.Database.Db

	var skill models.Skill
	if err := db.First(&skill, skillID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Skill not found")
	}

	var inUse int64
	if err := db.Model(&models.Course{}).Where("skill_id = ?", skillID).Count(&inUse).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete skill!")
	}
	if inUse > 0 {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Skill is still used by existing courses")
	}

	if err := db.Delete(&skill).Error; err != nil {
		log.Printf("Error deleting skill %d: %v", skillID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete skill!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill deleted successfully", nil)
}

// TrackSkillProgress upserts the caller's progress on a skill.
func TrackSkillProgress(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("trackSkillRequest").(*skillValidators.TrackSkillRequest)

	db := database.Database.Db

	var skill models.Skill
	if err := db.First(&skill, reqData.SkillID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Skill not found")
	}

	var record models.UserSkill
	err := db.Where("user_id = ? AND skill_id = ?", userID, reqData.SkillID).First(&record).Error
	switch {
	case err == nil:
		if err := db.Model(&record).Update("status", reqData.Status).Error; err != nil {
			log.Printf("Error updating skill progress: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update skill progress!")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		record = models.UserSkill{
			UserID:  userID,
			SkillID: reqData.SkillID,
			Status:  reqData.Status,
		}
		if err := db.Create(&record).Error; err != nil {
			log.Printf("Error creating skill progress: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update skill progress!")
		}
	default:
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update skill progress!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Skill progress updated", record)
}

// GetUserSkills lists a user's tracked skills with the skill details joined.
func GetUserSkills(c *fiber.Ctx) error {
	targetUserID := c.Locals("targetUserID").(uint)

	var records []models.UserSkill
	err := database.Database.Db.
		Preload("Skill").
		Where("user_id = ?", targetUserID).
		Find(&records).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch user skills!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User skills fetched successfully!", fiber.Map{
		"userSkills": records,
	})
}
