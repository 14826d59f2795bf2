package courseController

import (
	"math"

	"skillbridge/models"
)

// CourseSummary is a course decorated with its derived statistics and the
// flattened trainer/skill names every listing needs.
type CourseSummary struct {
	models.Course
	TrainerName     string  `json:"trainerName"`
	SkillName       string  `json:"skillName"`
	AverageRating   float64 `json:"averageRating"`
	ReviewCount     int     `json:"reviewCount"`
	EnrollmentCount int     `json:"enrollmentCount"`
}

// AverageRating computes the mean of the given ratings rounded to one
// decimal, 0 when there are none.
func AverageRating(ratings []models.Rating) float64 {
	if len(ratings) == 0 {
		return 0
	}
	sum := 0
	for _, r := range ratings {
		sum += r.Rating
	}
	return math.Round(float64(sum)/float64(len(ratings))*10) / 10
}

// BuildCourseSummary derives the read-time aggregates from a course's
// preloaded relations. Every course view (list, detail, trainer dashboard)
// goes through here so clients see consistent numbers.
func BuildCourseSummary(course models.Course) CourseSummary {
	return CourseSummary{
		Course:          course,
		TrainerName:     course.Trainer.Name,
		SkillName:       course.Skill.Name,
		AverageRating:   AverageRating(course.Ratings),
		ReviewCount:     len(course.Ratings),
		EnrollmentCount: len(course.Enrollments),
	}
}
