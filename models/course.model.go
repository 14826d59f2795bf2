package models

import "time"

// Course is owned by exactly one trainer and belongs to one skill category.
// Rating and enrollment aggregates are derived on read, never stored here.
type Course struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	Title         string    `gorm:"not null" json:"title"`
	Description   string    `gorm:"type:text;not null" json:"description"`
	Price         float64   `gorm:"not null;check:price >= 0" json:"price"`
	Image         *string   `json:"image"`
	TeachingHours int       `gorm:"default:0;check:teaching_hours >= 0" json:"teachingHours"`
	SkillID       uint      `gorm:"index;not null" json:"skillId"`
	TrainerID     uint      `gorm:"index;not null" json:"trainerId"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`

	Trainer     User         `gorm:"foreignKey:TrainerID" json:"-"`
	Skill       Skill        `gorm:"foreignKey:SkillID" json:"-"`
	Ratings     []Rating     `gorm:"foreignKey:CourseID" json:"-"`
	Enrollments []Enrollment `gorm:"foreignKey:CourseID" json:"-"`
}
