package userController

import (
	"log"

	"skillbridge/database"
	"skillbridge/middleware"
	"skillbridge/models"
	userValidators "skillbridge/validators/user"

	"github.com/gofiber/fiber/v2"
)

type profileView struct {
	ID                uint   `json:"id"`
	Name              string `json:"name"`
	Email             string `json:"email"`
	Role              string `json:"role"`
	IsVerified        bool   `json:"isVerified"`
	Bio               string `json:"bio"`
	YearsOfExperience int    `json:"yearsOfExperience"`
}

func toProfileView(u models.User) profileView {
	return profileView{
		ID:                u.ID,
		Name:              u.Name,
		Email:             u.Email,
		Role:              u.Role,
		IsVerified:        u.IsVerified,
		Bio:               u.Bio,
		YearsOfExperience: u.YearsOfExperience,
	}
}

// GetProfile returns the caller's account.
func GetProfile(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", toProfileView(user))
}

// UpdateProfile patches the caller's profile. Role changes are refused; only
// omitted fields keep their stored values.
func UpdateProfile(c *fiber.Ctx) error {
	userID := c.Locals("userId").(uint)
	role := c.Locals("role").(string)
	reqData := c.Locals("updateProfileRequest").(*userValidators.UpdateProfileRequest)

	if reqData.Role != nil && *reqData.Role != role {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Role cannot be changed via this endpoint.")
	}

	var user models.User
	if err := database.Database.Db.First(&user, userID).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "User not found")
	}

	updates := map[string]interface{}{}
	if reqData.Name != nil {
		updates["name"] = *reqData.Name
	}
	if reqData.Bio != nil {
		updates["bio"] = *reqData.Bio
	}
	if reqData.YearsOfExperience != nil {
		updates["years_of_experience"] = *reqData.YearsOfExperience
	}

	if len(updates) > 0 {
		if err := database.Database.Db.Model(&user).Updates(updates).Error; err != nil {
			log.Printf("Error updating profile: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update profile!")
		}
		if err := database.Database.Db.First(&user, userID).Error; err != nil {
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update profile!")
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully", toProfileView(user))
}
