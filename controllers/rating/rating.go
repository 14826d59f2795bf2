package ratingController

import (
	"errors"
	"log"

	"skillbridge/database"
	"skillbridge/middleware"
	"skillbridge/models"
	ratingValidators "skillbridge/validators/rating"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ratingView struct {
	models.Rating
	LearnerName string `json:"learnerName"`
}

// SubmitRating records a learner's one-time review of a course. Requires
// proof of enrollment; the composite unique index enforces one review per
// (learner, course) pair under concurrency.
func SubmitRating(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	reqData := c.Locals("submitRatingRequest").(*ratingValidators.SubmitRatingRequest)

	db := database.Database.Db

	var enrollment models.Enrollment
	err := db.Where("learner_id = ? AND course_id = ?", userID, reqData.CourseID).First(&enrollment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return middleware.ErrorResponse(c, fiber.StatusForbidden, "You must be enrolled in this course to leave a review.")
		}
		log.Printf("Error checking enrollment: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to submit review!")
	}

	rating := models.Rating{
		LearnerID: userID,
		CourseID:  reqData.CourseID,
		Rating:    reqData.Rating,
		Comment:   reqData.Comment,
	}

	if err := db.Create(&rating).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "You have already reviewed this course.")
		}
		log.Printf("Error creating rating: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to submit review!")
	}

	if err := db.Preload("Learner").First(&rating, rating.ID).Error; err != nil {
		log.Printf("Error loading rating %d: %v", rating.ID, err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to submit review!")
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review submitted successfully", ratingView{
		Rating:      rating,
		LearnerName: rating.Learner.Name,
	})
}

// GetCourseRatings lists a course's reviews, newest first, with the
// reviewer's name. Public endpoint.
func GetCourseRatings(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(uint)

	var ratings []models.Rating
	err := database.Database.Db.
		Preload("Learner").
		Where("course_id = ?", courseID).
		Order("created_at desc").
		Find(&ratings).Error
	if err != nil {
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch ratings!")
	}

	views := make([]ratingView, 0, len(ratings))
	for _, r := range ratings {
		views = append(views, ratingView{Rating: r, LearnerName: r.Learner.Name})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Ratings fetched successfully!", fiber.Map{
		"ratings": views,
	})
}
