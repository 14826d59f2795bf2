package enrollmentController

import (
	"errors"
	"log"

	"skillbridge/database"
	"skillbridge/middleware"
	"skillbridge/models"
	enrollmentValidators "skillbridge/validators/enrollment"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type enrolledCourse struct {
	models.Course
	TrainerName string `json:"trainerName"`
	SkillName   string `json:"skillName"`
}

type enrollmentView struct {
	models.Enrollment
	Course enrolledCourse `json:"course"`
}

func toEnrollmentView(e models.Enrollment) enrollmentView {
	return enrollmentView{
		Enrollment: e,
		Course: enrolledCourse{
			Course:      e.Course,
			TrainerName: e.Course.Trainer.Name,
			SkillName:   e.Course.Skill.Name,
		},
	}
}

// EnrollInCourse enrolls the caller in a course. The composite unique index
// on (learner_id, course_id) is what prevents double enrollment; there is no
// check-then-insert window.
func EnrollInCourse(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("enrollRequest").(*enrollmentValidators.EnrollRequest)

	db := database.Database.Db

	var course models.Course
	if err := db.First(&course, reqData.CourseID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	if course.TrainerID == userID {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Trainers cannot enroll in their own courses")
	}

	enrollment := models.Enrollment{
		LearnerID: userID,
		CourseID:  course.ID,
		Status:    models.EnrollmentActive,
	}

	if err := db.Create(&enrollment).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "You are already enrolled in this course")
		}
		log.Printf("Error creating enrollment: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to enroll in course!")
	}

	// Return the full joined shape so the caller needs no second fetch.
	if err := db.Preload("Course").Preload("Course.Trainer").Preload("Course.Skill").
		First(&enrollment, enrollment.ID).Error; err != nil {
		log.Printf("Error loading enrollment %d: %v", enrollment.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to enroll in course!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Enrollment successful", toEnrollmentView(enrollment))
}

// GetUserEnrollments lists the caller's enrollments, newest first, each
// joined with its course, trainer and skill.
func GetUserEnrollments(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var enrollments []models.Enrollment
	err := database.Database.Db.
		Preload("Course").
		Preload("Course.Trainer").
		Preload("Course.Skill").
		Where("learner_id = ?", userID).
		Order("enrolled_at desc").
		Find(&enrollments).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch enrollments!")
	}

	views := make([]enrollmentView, 0, len(enrollments))
	for _, e := range enrollments {
		views = append(views, toEnrollmentView(e))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": views,
	})
}
