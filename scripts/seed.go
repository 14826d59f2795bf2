package main

import (
	"log"

	"skillbridge/config"
	"skillbridge/database"
	"skillbridge/models"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the database with a demo trainer, learner, skills and courses.
// Run separately from the server binary: go run ./scripts
func main() {
	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	log.Println("Start seeding ...")

	// Clear existing data in dependency order
	db.Where("1 = 1").Delete(&models.Rating{})
	db.Where("1 = 1").Delete(&models.Enrollment{})
	db.Where("1 = 1").Delete(&models.Course{})
	db.Where("1 = 1").Delete(&models.UserSkill{})
	db.Where("1 = 1").Delete(&models.Skill{})
	db.Where("1 = 1").Delete(&models.User{})

	hash := func(pw string) string {
		h, err := bcrypt.GenerateFromPassword([]byte(pw), config.AppConfig.SaltRound)
		if err != nil {
			log.Fatalf("Failed to hash password: %v", err)
		}
		return string(h)
	}

	trainer := models.User{
		Name:       "Dr. Angela Yu",
		Email:      "angela@skillbridge.io",
		Password:   hash("trainer123"),
		Role:       models.RoleTrainer,
		IsVerified: true,
	}
	if err := db.Create(&trainer).Error; err != nil {
		log.Fatalf("Failed to create trainer: %v", err)
	}

	learner := models.User{
		Name:       "Sam Carter",
		Email:      "sam@skillbridge.io",
		Password:   hash("learner123"),
		Role:       models.RoleLearner,
		IsVerified: true,
	}
	if err := db.Create(&learner).Error; err != nil {
		log.Fatalf("Failed to create learner: %v", err)
	}

	skills := []models.Skill{
		{Name: "Web Development", Description: "Learn to build modern websites and web applications."},
		{Name: "Data Science", Description: "Analyze data and build machine learning models."},
		{Name: "UI/UX Design", Description: "Design beautiful and user-friendly interfaces."},
	}
	for i := range skills {
		if err := db.Create(&skills[i]).Error; err != nil {
			log.Fatalf("Failed to create skill: %v", err)
		}
	}

	courses := []models.Course{
		{
			Title:         "The Complete Web Development Bootcamp",
			Description:   "Become a full-stack web developer with just one course.",
			Price:         899,
			TeachingHours: 62,
			SkillID:       skills[0].ID,
			TrainerID:     trainer.ID,
		},
		{
			Title:         "Data Science and Machine Learning Bootcamp",
			Description:   "Learn data analysis, visualization and model building from scratch.",
			Price:         799,
			TeachingHours: 44,
			SkillID:       skills[1].ID,
			TrainerID:     trainer.ID,
		},
		{
			Title:         "UX 101",
			Description:   "Research, wireframe and prototype user-friendly products.",
			Price:         399,
			TeachingHours: 20,
			SkillID:       skills[2].ID,
			TrainerID:     trainer.ID,
		},
	}
	for i := range courses {
		if err := db.Create(&courses[i]).Error; err != nil {
			log.Fatalf("Failed to create course: %v", err)
		}
	}

	enrollment := models.Enrollment{
		LearnerID: learner.ID,
		CourseID:  courses[0].ID,
		Status:    models.EnrollmentActive,
	}
	if err := db.Create(&enrollment).Error; err != nil {
		log.Fatalf("Failed to create enrollment: %v", err)
	}

	comment := "Clear explanations and great projects."
	rating := models.Rating{
		LearnerID: learner.ID,
		CourseID:  courses[0].ID,
		Rating:    5,
		Comment:   &comment,
	}
	if err := db.Create(&rating).Error; err != nil {
		log.Fatalf("Failed to create rating: %v", err)
	}

	log.Println("Seeding completed.")
}
