package models

import "time"

// Enrollment statuses.
const (
	EnrollmentActive    = "active"
	EnrollmentCompleted = "completed"
)

// Enrollment records a learner's relationship to one course. The composite
// unique index is the authority on the one-enrollment-per-pair rule; inserts
// that lose a race fail with a duplicate-key error rather than creating a
// second row.
type Enrollment struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	LearnerID  uint      `gorm:"not null;uniqueIndex:idx_enrollments_learner_course" json:"learnerId"`
	CourseID   uint      `gorm:"not null;uniqueIndex:idx_enrollments_learner_course" json:"courseId"`
	Status     string    `gorm:"not null;default:'active'" json:"status"`
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolledAt"`

	Learner User   `gorm:"foreignKey:LearnerID" json:"-"`
	Course  Course `gorm:"foreignKey:CourseID" json:"-"`
}
