package courseController

import (
	"sort"
	"strings"

	"skillbridge/database"
	"skillbridge/middleware"
	"skillbridge/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ratingView struct {
	models.Rating
	LearnerName string `json:"learnerName"`
}

type courseDetail struct {
	CourseSummary
	TrainerEmail string       `json:"trainerEmail"`
	Ratings      []ratingView `json:"ratings"`
}

// GetAllCourses lists courses with optional search, skill filter and sort.
// Public endpoint.
func GetAllCourses(c *fiber.Ctx) error {
	search := c.Query("search")
	sortBy := c.Query("sortBy")
	skillID := c.QueryInt("skillId", 0)

	db := database.Database.Db.
		Preload("Trainer").
		Preload("Skill").
		Preload("Ratings").
		Preload("Enrollments")

	if search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		db = db.Select("courses.*").
			Joins("JOIN users ON users.id = courses.trainer_id").
			Where("LOWER(courses.title) LIKE ? OR LOWER(courses.description) LIKE ? OR LOWER(users.name) LIKE ?",
				pattern, pattern, pattern)
	}

	if skillID > 0 {
		db = db.Where("courses.skill_id = ?", skillID)
	}

	switch sortBy {
	case "price_asc":
		db = db.Order("courses.price asc")
	case "price_desc":
		db = db.Order("courses.price desc")
	default:
		// covers "newest", "rated" and everything else
		db = db.Order("courses.created_at desc")
	}

	var courses []models.Course
	if err := db.Find(&courses).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!")
	}

	summaries := make([]CourseSummary, 0, len(courses))
	for _, course := range courses {
		summaries = append(summaries, BuildCourseSummary(course))
	}

	// averageRating is derived, not a stored column, so "rated" has to be
	// sorted here after aggregation rather than in the query.
	if sortBy == "rated" {
		sort.SliceStable(summaries, func(i, j int) bool {
			return summaries[i].AverageRating > summaries[j].AverageRating
		})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": summaries,
	})
}

// GetCourseDetails returns one course with its reviews. Public endpoint.
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var course models.Course
	err := database.Database.Db.
		Preload("Trainer").
		Preload("Skill").
		Preload("Ratings", func(db *gorm.DB) *gorm.DB {
			return db.Order("ratings.created_at DESC")
		}).
		Preload("Ratings.Learner").
		Preload("Enrollments").
		First(&course, courseID).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Course not found")
	}

	ratings := make([]ratingView, 0, len(course.Ratings))
	for _, r := range course.Ratings {
		ratings = append(ratings, ratingView{Rating: r, LearnerName: r.Learner.Name})
	}

	detail := courseDetail{
		CourseSummary: BuildCourseSummary(course),
		TrainerEmail:  course.Trainer.Email,
		Ratings:       ratings,
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", detail)
}

// GetTrainerCourses lists the calling trainer's own courses for the
// dashboard, decorated with the same aggregates as the public list.
func GetTrainerCourses(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var courses []models.Course
	err := database.Database.Db.
		Preload("Trainer").
		Preload("Skill").
		Preload("Ratings").
		Preload("Enrollments").
		Where("trainer_id = ?", userID).
		Order("created_at desc").
		Find(&courses).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch courses!")
	}

	summaries := make([]CourseSummary, 0, len(courses))
	for _, course := range courses {
		summaries = append(summaries, BuildCourseSummary(course))
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": summaries,
	})
}
