package models

import "time"

// Rating is a learner's one-time review of a course. Same composite-index
// strategy as Enrollment; the check constraint backs up the handler-level
// 1-5 bounds validation.
type Rating struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	LearnerID uint      `gorm:"not null;uniqueIndex:idx_ratings_learner_course" json:"learnerId"`
	CourseID  uint      `gorm:"not null;uniqueIndex:idx_ratings_learner_course" json:"courseId"`
	Rating    int       `gorm:"not null;check:rating >= 1 AND rating <= 5" json:"rating"`
	Comment   *string   `gorm:"type:text" json:"comment"`
	CreatedAt time.Time `json:"createdAt"`

	Learner User `gorm:"foreignKey:LearnerID" json:"-"`
}
