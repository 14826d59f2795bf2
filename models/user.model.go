package models

import "time"

// Role values assigned at signup. Trainers author courses, learners enroll.
const (
	RoleLearner = "learner"
	RoleTrainer = "trainer"
)

type User struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Name              string     `gorm:"not null" json:"name"`
	Email             string     `gorm:"uniqueIndex;not null" json:"email"`
	Password          string     `gorm:"not null" json:"-"`
	Role              string     `gorm:"not null;default:'learner'" json:"role"`
	IsVerified        bool       `gorm:"default:false" json:"isVerified"`
	Bio               string     `gorm:"type:text;default:''" json:"bio,omitempty"`
	YearsOfExperience int        `gorm:"default:0" json:"yearsOfExperience,omitempty"`
	OtpCode           *string    `gorm:"size:6" json:"-"` // set only while a trainer is pending verification
	OtpExpires        *time.Time `json:"-"`
	CreatedAt         time.Time  `json:"createdAt"`
	UpdatedAt         time.Time  `json:"updatedAt"`
}
