package courseController_test

import (
	"net/http"
	"strconv"
	"testing"

	"skillbridge/models"
	"skillbridge/routers/courseRoutes"
	"skillbridge/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func newCourseApp() *fiber.App {
	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app
}

func createSkill(t *testing.T, db *gorm.DB, name string) models.Skill {
	t.Helper()
	skill := models.Skill{Name: name}
	require.NoError(t, db.Create(&skill).Error)
	return skill
}

func createCourse(t *testing.T, db *gorm.DB, title string, price float64, skillID, trainerID uint) models.Course {
	t.Helper()
	course := models.Course{
		Title:       title,
		Description: "A course about " + title,
		Price:       price,
		SkillID:     skillID,
		TrainerID:   trainerID,
	}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func TestCreateCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := newCourseApp()

	trainer := testutil.CreateUser(t, db, "Tina Trainer", "tina@example.com", models.RoleTrainer)
	learner := testutil.CreateUser(t, db, "Leo Learner", "leo@example.com", models.RoleLearner)
	skill := createSkill(t, db, "Web Development")

	body := fiber.Map{
		"title":         "Go for Backend Engineers",
		"description":   "Build production services in Go",
		"price":         49.99,
		"skill":         skill.ID,
		"teachingHours": 12,
	}

	t.Run("requires auth", func(t *testing.T) {
		status, _ := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", "", body)
		assert.Equal(t, http.StatusUnauthorized, status)
	})

	t.Run("rejects learners", func(t *testing.T) {
		status, _ := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", testutil.BearerToken(t, learner), body)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("rejects missing fields", func(t *testing.T) {
		status, resp := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", testutil.BearerToken(t, trainer), fiber.Map{
			"title": "No price",
		})
		assert.Equal(t, http.StatusUnprocessableEntity, status)
		assert.Equal(t, "Validation failed!", resp["error"])
	})

	t.Run("rejects unknown skill", func(t *testing.T) {
		bad := fiber.Map{
			"title":       "Orphan course",
			"description": "References a skill that does not exist",
			"price":       10.0,
			"skill":       9999,
		}
		status, resp := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", testutil.BearerToken(t, trainer), bad)
		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "Skill not found", resp["error"])
	})

	t.Run("creates course for trainer", func(t *testing.T) {
		status, resp := testutil.DoRequest(t, app, http.MethodPost, "/api/courses", testutil.BearerToken(t, trainer), body)
		require.Equal(t, http.StatusCreated, status)

		data := testutil.Data(t, resp)
		assert.Equal(t, "Go for Backend Engineers", data["title"])
		assert.Equal(t, 49.99, data["price"])

		var course models.Course
		require.NoError(t, db.Where("title = ?", "Go for Backend Engineers").First(&course).Error)
		assert.Equal(t, trainer.ID, course.TrainerID)
		assert.Equal(t, skill.ID, course.SkillID)
		assert.Equal(t, 12, course.TeachingHours)
	})
}

func TestGetAllCourses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := newCourseApp()

	alice := testutil.CreateUser(t, db, "Alice Andersson", "alice@example.com", models.RoleTrainer)
	bob := testutil.CreateUser(t, db, "Bob Brown", "bob@example.com", models.RoleTrainer)
	learner := testutil.CreateUser(t, db, "Cara Chen", "cara@example.com", models.RoleLearner)

	design := createSkill(t, db, "Design")
	coding := createSkill(t, db, "Coding")

	uxCourse := createCourse(t, db, "UX Fundamentals", 30, design.ID, alice.ID)
	goCourse := createCourse(t, db, "Go Basics", 50, coding.ID, bob.ID)
	createCourse(t, db, "Advanced Figma", 80, design.ID, alice.ID)

	require.NoError(t, db.Create(&models.Enrollment{LearnerID: learner.ID, CourseID: goCourse.ID, Status: models.EnrollmentActive}).Error)
	require.NoError(t, db.Create(&models.Rating{LearnerID: learner.ID, CourseID: goCourse.ID, Rating: 5}).Error)

	listCourses := func(t *testing.T, path string) []interface{} {
		status, resp := testutil.DoRequest(t, app, http.MethodGet, path, "", nil)
		require.Equal(t, http.StatusOK, status)
		courses, ok := testutil.Data(t, resp)["courses"].([]interface{})
		require.True(t, ok)
		return courses
	}

	t.Run("lists everything with aggregates", func(t *testing.T) {
		courses := listCourses(t, "/api/courses")
		require.Len(t, courses, 3)

		for _, raw := range courses {
			course := raw.(map[string]interface{})
			if course["title"] == "Go Basics" {
				assert.Equal(t, "Bob Brown", course["trainerName"])
				assert.Equal(t, "Coding", course["skillName"])
				assert.Equal(t, 5.0, course["averageRating"])
				assert.Equal(t, 1.0, course["reviewCount"])
				assert.Equal(t, 1.0, course["enrollmentCount"])
			}
		}
	})

	t.Run("searches by title", func(t *testing.T) {
		courses := listCourses(t, "/api/courses?search=basics")
		require.Len(t, courses, 1)
		assert.Equal(t, "Go Basics", courses[0].(map[string]interface{})["title"])
	})

	t.Run("searches by trainer name", func(t *testing.T) {
		courses := listCourses(t, "/api/courses?search=alice")
		assert.Len(t, courses, 2)
	})

	t.Run("filters by skill", func(t *testing.T) {
		courses := listCourses(t, "/api/courses?skillId="+itoa(design.ID))
		assert.Len(t, courses, 2)
	})

	t.Run("sorts by price ascending", func(t *testing.T) {
		courses := listCourses(t, "/api/courses?sortBy=price_asc")
		require.Len(t, courses, 3)
		assert.Equal(t, uxCourse.Title, courses[0].(map[string]interface{})["title"])
		assert.Equal(t, "Advanced Figma", courses[2].(map[string]interface{})["title"])
	})

	t.Run("sorts by price descending", func(t *testing.T) {
		courses := listCourses(t, "/api/courses?sortBy=price_desc")
		require.Len(t, courses, 3)
		assert.Equal(t, "Advanced Figma", courses[0].(map[string]interface{})["title"])
	})

	t.Run("sorts by rating", func(t *testing.T) {
		courses := listCourses(t, "/api/courses?sortBy=rated")
		require.Len(t, courses, 3)
		assert.Equal(t, "Go Basics", courses[0].(map[string]interface{})["title"])
	})
}

func TestGetCourseDetails(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := newCourseApp()

	trainer := testutil.CreateUser(t, db, "Tina Trainer", "tina@example.com", models.RoleTrainer)
	learner := testutil.CreateUser(t, db, "Leo Learner", "leo@example.com", models.RoleLearner)
	skill := createSkill(t, db, "Coding")
	course := createCourse(t, db, "Go Basics", 50, skill.ID, trainer.ID)

	require.NoError(t, db.Create(&models.Enrollment{LearnerID: learner.ID, CourseID: course.ID, Status: models.EnrollmentActive}).Error)
	comment := "Great pacing"
	require.NoError(t, db.Create(&models.Rating{LearnerID: learner.ID, CourseID: course.ID, Rating: 4, Comment: &comment}).Error)

	t.Run("missing course returns 404", func(t *testing.T) {
		status, _ := testutil.DoRequest(t, app, http.MethodGet, "/api/courses/9999", "", nil)
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("returns joined view with reviews", func(t *testing.T) {
		status, resp := testutil.DoRequest(t, app, http.MethodGet, "/api/courses/"+itoa(course.ID), "", nil)
		require.Equal(t, http.StatusOK, status)

		data := testutil.Data(t, resp)
		assert.Equal(t, "Go Basics", data["title"])
		assert.Equal(t, "Tina Trainer", data["trainerName"])
		assert.Equal(t, "tina@example.com", data["trainerEmail"])
		assert.Equal(t, "Coding", data["skillName"])
		assert.Equal(t, 4.0, data["averageRating"])

		ratings, ok := data["ratings"].([]interface{})
		require.True(t, ok)
		require.Len(t, ratings, 1)
		review := ratings[0].(map[string]interface{})
		assert.Equal(t, "Leo Learner", review["learnerName"])
		assert.Equal(t, "Great pacing", review["comment"])
	})
}

func TestGetTrainerCourses(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := newCourseApp()

	tina := testutil.CreateUser(t, db, "Tina Trainer", "tina@example.com", models.RoleTrainer)
	rory := testutil.CreateUser(t, db, "Rory Rivera", "rory@example.com", models.RoleTrainer)
	learner := testutil.CreateUser(t, db, "Leo Learner", "leo@example.com", models.RoleLearner)
	skill := createSkill(t, db, "Coding")

	createCourse(t, db, "Go Basics", 50, skill.ID, tina.ID)
	createCourse(t, db, "Rust Basics", 60, skill.ID, rory.ID)

	t.Run("rejects learners", func(t *testing.T) {
		status, _ := testutil.DoRequest(t, app, http.MethodGet, "/api/courses/trainer", testutil.BearerToken(t, learner), nil)
		assert.Equal(t, http.StatusForbidden, status)
	})

	t.Run("lists only own courses", func(t *testing.T) {
		status, resp := testutil.DoRequest(t, app, http.MethodGet, "/api/courses/trainer", testutil.BearerToken(t, tina), nil)
		require.Equal(t, http.StatusOK, status)

		courses, ok := testutil.Data(t, resp)["courses"].([]interface{})
		require.True(t, ok)
		require.Len(t, courses, 1)
		assert.Equal(t, "Go Basics", courses[0].(map[string]interface{})["title"])
	})
}

func TestUpdateCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := newCourseApp()

	tina := testutil.CreateUser(t, db, "Tina Trainer", "tina@example.com", models.RoleTrainer)
	rory := testutil.CreateUser(t, db, "Rory Rivera", "rory@example.com", models.RoleTrainer)
	skill := createSkill(t, db, "Coding")

	image := "https://cdn.example.com/go.png"
	course := models.Course{
		Title:       "Go Basics",
		Description: "Build programs in Go",
		Price:       50,
		Image:       &image,
		SkillID:     skill.ID,
		TrainerID:   tina.ID,
	}
	require.NoError(t, db.Create(&course).Error)

	path := "/api/courses/" + itoa(course.ID)

	t.Run("missing course returns 404", func(t *testing.T) {
		status, _ := testutil.DoRequest(t, app, http.MethodPut, "/api/courses/9999", testutil.BearerToken(t, tina), fiber.Map{"title": "New"})
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("non-owner cannot update", func(t *testing.T) {
		status, _ := testutil.DoRequest(t, app, http.MethodPut, path, testutil.BearerToken(t, rory), fiber.Map{"title": "Hijacked"})
		assert.Equal(t, http.StatusForbidden, status)

		var stored models.Course
		require.NoError(t, db.First(&stored, course.ID).Error)
		assert.Equal(t, "Go Basics", stored.Title)
	})

	t.Run("patches only provided fields", func(t *testing.T) {
		status, resp := testutil.DoRequest(t, app, http.MethodPut, path, testutil.BearerToken(t, tina), fiber.Map{"title": "Go Basics, 2nd Edition"})
		require.Equal(t, http.StatusOK, status)

		data := testutil.Data(t, resp)
		assert.Equal(t, "Go Basics, 2nd Edition", data["title"])
		assert.Equal(t, 50.0, data["price"])

		var stored models.Course
		require.NoError(t, db.First(&stored, course.ID).Error)
		assert.Equal(t, "Go Basics, 2nd Edition", stored.Title)
		assert.Equal(t, "Build programs in Go", stored.Description)
		require.NotNil(t, stored.Image)
	})

	t.Run("empty image clears the stored one", func(t *testing.T) {
		status, _ := testutil.DoRequest(t, app, http.MethodPut, path, testutil.BearerToken(t, tina), fiber.Map{"image": ""})
		require.Equal(t, http.StatusOK, status)

		var stored models.Course
		require.NoError(t, db.First(&stored, course.ID).Error)
		assert.Nil(t, stored.Image)
	})

	t.Run("rejects unknown skill", func(t *testing.T) {
		status, _ := testutil.DoRequest(t, app, http.MethodPut, path, testutil.BearerToken(t, tina), fiber.Map{"skill": 9999})
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func TestDeleteCourse(t *testing.T) {
	db := testutil.SetupTestDB(t)
	app := newCourseApp()

	tina := testutil.CreateUser(t, db, "Tina Trainer", "tina@example.com", models.RoleTrainer)
	rory := testutil.CreateUser(t, db, "Rory Rivera", "rory@example.com", models.RoleTrainer)
	leo := testutil.CreateUser(t, db, "Leo Learner", "leo@example.com", models.RoleLearner)
	mia := testutil.CreateUser(t, db, "Mia Moore", "mia@example.com", models.RoleLearner)
	skill := createSkill(t, db, "Coding")
	course := createCourse(t, db, "Go Basics", 50, skill.ID, tina.ID)

	require.NoError(t, db.Create(&models.Enrollment{LearnerID: leo.ID, CourseID: course.ID, Status: models.EnrollmentActive}).Error)
	require.NoError(t, db.Create(&models.Enrollment{LearnerID: mia.ID, CourseID: course.ID, Status: models.EnrollmentActive}).Error)
	require.NoError(t, db.Create(&models.Rating{LearnerID: leo.ID, CourseID: course.ID, Rating: 5}).Error)

	path := "/api/courses/" + itoa(course.ID)

	t.Run("non-owner cannot delete", func(t *testing.T) {
		status, _ := testutil.DoRequest(t, app, http.MethodDelete, path, testutil.BearerToken(t, rory), nil)
		assert.Equal(t, http.StatusForbidden, status)

		var count int64
		db.Model(&models.Course{}).Where("id = ?", course.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("cascades to enrollments and ratings", func(t *testing.T) {
		status, _ := testutil.DoRequest(t, app, http.MethodDelete, path, testutil.BearerToken(t, tina), nil)
		require.Equal(t, http.StatusOK, status)

		var courses, enrollments, ratings int64
		db.Model(&models.Course{}).Where("id = ?", course.ID).Count(&courses)
		db.Model(&models.Enrollment{}).Where("course_id = ?", course.ID).Count(&enrollments)
		db.Model(&models.Rating{}).Where("course_id = ?", course.ID).Count(&ratings)
		assert.Zero(t, courses)
		assert.Zero(t, enrollments)
		assert.Zero(t, ratings)
	})

	t.Run("second delete returns 404", func(t *testing.T) {
		status, _ := testutil.DoRequest(t, app, http.MethodDelete, path, testutil.BearerToken(t, tina), nil)
		assert.Equal(t, http.StatusNotFound, status)
	})
}
