package models

import "time"

// Skill progress statuses a learner can record.
const (
	SkillPending    = "pending"
	SkillInProgress = "in_progress"
	SkillCompleted  = "completed"
)

// UserSkill tracks a learner's self-reported progress on a skill.
type UserSkill struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;uniqueIndex:idx_user_skills_user_skill" json:"userId"`
	SkillID   uint      `gorm:"not null;uniqueIndex:idx_user_skills_user_skill" json:"skillId"`
	Status    string    `gorm:"not null;default:'pending'" json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Skill Skill `gorm:"foreignKey:SkillID" json:"skill"`
}
