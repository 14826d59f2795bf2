package courseController

import (
	"errors"
	"log"

	"skillbridge/database"
	"skillbridge/middleware"
	"skillbridge/models"
	courseValidators "skillbridge/validators/course"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreateCourse inserts a course owned by the calling trainer.
func CreateCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("createCourseRequest").(*courseValidators.CreateCourseRequest)

	db := database.Database.Db

	// The skill reference must resolve before the insert.
	var skill models.Skill
	if err := db.First(&skill, *reqData.Skill).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Skill not found")
	}

	course := models.Course{
		Title:       reqData.Title,
		Description: reqData.Description,
		Price:       *reqData.Price,
		Image:       reqData.Image,
		SkillID:     skill.ID,
		TrainerID:   userID,
	}
	if reqData.TeachingHours != nil {
		course.TeachingHours = *reqData.TeachingHours
	}

	if err := db.Create(&course).Error; err != nil {
		log.Printf("Error creating course: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create course!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully", course)
}

// UpdateCourse patches a course. Only the owning trainer may call it; fields
// omitted from the body keep their stored values, while a provided empty
// image clears the stored one.
func UpdateCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(uint)
	reqData := c.Locals("updateCourseRequest").(*courseValidators.UpdateCourseRequest)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	if course.TrainerID != userID {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "You can only update your own courses")
	}

	updates := map[string]interface{}{}
	if reqData.Title != nil {
		updates["title"] = *reqData.Title
	}
	if reqData.Description != nil {
		updates["description"] = *reqData.Description
	}
	if reqData.Price != nil {
		updates["price"] = *reqData.Price
	}
	if reqData.TeachingHours != nil {
		updates["teaching_hours"] = *reqData.TeachingHours
	}
	if reqData.Skill != nil {
		var skill models.Skill
		if err := db.First(&skill, *reqData.Skill).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Skill not found")
		}
		updates["skill_id"] = skill.ID
	}
	if reqData.Image != nil {
		if *reqData.Image == "" {
			updates["image"] = nil
		} else {
			updates["image"] = *reqData.Image
		}
	}

	if len(updates) > 0 {
		if err := db.Model(&course).Updates(updates).Error; err != nil {
			log.Printf("Error updating course %d: %v", courseID, err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update course!")
		}
		// Respond with what is actually stored
		if err := db.First(&course, courseID).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update course!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully", course)
}

// DeleteCourse removes a course together with its ratings and enrollments in
// one transaction. A failure anywhere rolls the whole cascade back so no
// orphaned rows or dangling references survive.
func DeleteCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	courseID := c.Locals("courseID").(uint)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, courseID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
		}
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete course!")
	}

	if course.TrainerID != userID {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "You can only delete your own courses")
	}

	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		if err := tx.Where("course_id = ?", course.ID).Delete(&models.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&course).Error
	})
	if err != nil {
		log.Printf("Error deleting course %d: %v", courseID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete course and its related records!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully", nil)
}
