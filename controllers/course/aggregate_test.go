package courseController

import (
	"testing"

	"skillbridge/models"

	"github.com/stretchr/testify/assert"
)

func ratingsOf(values ...int) []models.Rating {
	ratings := make([]models.Rating, 0, len(values))
	for _, v := range values {
		ratings = append(ratings, models.Rating{Rating: v})
	}
	return ratings
}

func TestAverageRating(t *testing.T) {
	tests := []struct {
		name    string
		ratings []models.Rating
		want    float64
	}{
		{"no ratings", nil, 0},
		{"single rating", ratingsOf(5), 5.0},
		{"exact mean", ratingsOf(4, 4), 4.0},
		{"rounded up", ratingsOf(5, 4, 4), 4.3},
		{"rounded down", ratingsOf(1, 2), 1.5},
		{"mixed", ratingsOf(1, 5, 3, 4), 3.3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AverageRating(tt.ratings))
		})
	}
}

func TestBuildCourseSummary(t *testing.T) {
	course := models.Course{
		Title:       "UX 101",
		Trainer:     models.User{Name: "Alex"},
		Skill:       models.Skill{Name: "Design"},
		Ratings:     ratingsOf(5, 4),
		Enrollments: []models.Enrollment{{}, {}, {}},
	}

	summary := BuildCourseSummary(course)

	assert.Equal(t, "Alex", summary.TrainerName)
	assert.Equal(t, "Design", summary.SkillName)
	assert.Equal(t, 4.5, summary.AverageRating)
	assert.Equal(t, 2, summary.ReviewCount)
	assert.Equal(t, 3, summary.EnrollmentCount)
}

func TestBuildCourseSummaryEmptyCourse(t *testing.T) {
	summary := BuildCourseSummary(models.Course{Title: "Fresh"})

	assert.Zero(t, summary.AverageRating)
	assert.Zero(t, summary.ReviewCount)
	assert.Zero(t, summary.EnrollmentCount)
}
