package authController

import (
	"errors"
	"log"
	"time"

	"skillbridge/config"
	"skillbridge/database"
	"skillbridge/middleware"
	"skillbridge/models"
	"skillbridge/utils"
	authValidators "skillbridge/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// userView is the account shape returned by auth endpoints.
type userView struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	IsVerified bool   `json:"isVerified"`
}

func toUserView(u models.User) userView {
	return userView{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role, IsVerified: u.IsVerified}
}

// Signup registers a new account. Learners are verified instantly and get a
// token right away; trainers go through the OTP verification flow first.
func Signup(c *fiber.Ctx) error {
	reqData := c.Locals("signupRequest").(*authValidators.SignupRequest)

	if reqData.Role == models.RoleTrainer {
		return trainerSignup(c, reqData)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	newUser := models.User{
		Name:       reqData.Name,
		Email:      reqData.Email,
		Password:   string(hashedPassword),
		Role:       models.RoleLearner,
		IsVerified: true,
	}

	// The unique index on email is the authority; a lost race comes back as
	// a duplicate-key error instead of a second row.
	if err := database.Database.Db.Create(&newUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "Email is already registered!")
		}
		log.Printf("Error saving user to database: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to sign up user!")
	}

	token, err := middleware.GenerateJWT(newUser.ID, newUser.Role, newUser.IsVerified)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to sign up user!")
	}

	utils.SendWelcomeEmail(newUser.Email, newUser.Name)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Learner account created successfully.", fiber.Map{
		"token": token,
		"user":  toUserView(newUser),
	})
}

// trainerSignup creates (or refreshes) an unverified trainer account and
// emails a one-time passcode.
func trainerSignup(c *fiber.Ctx, reqData *authValidators.SignupRequest) error {
	db := database.Database.Db

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to process your request!")
	}

	otp := utils.GenerateOTP()
	otpExpires := time.Now().Add(time.Duration(config.AppConfig.OTPExpiryMinutes) * time.Minute)

	var user models.User
	err = db.Where("email = ?", reqData.Email).First(&user).Error
	switch {
	case err == nil:
		if user.IsVerified {
			return middleware.ErrorResponse(c, fiber.StatusConflict, "Account already exists and is verified. Please log in.")
		}
		// Re-registering an unverified trainer refreshes password and OTP.
		user.Name = reqData.Name
		user.Password = string(hashedPassword)
		user.Role = models.RoleTrainer
		user.OtpCode = &otp
		user.OtpExpires = &otpExpires
		if err := db.Save(&user).Error; err != nil {
			log.Printf("Error updating trainer: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to sign up trainer!")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = models.User{
			Name:       reqData.Name,
			Email:      reqData.Email,
			Password:   string(hashedPassword),
			Role:       models.RoleTrainer,
			IsVerified: false,
			OtpCode:    &otp,
			OtpExpires: &otpExpires,
		}
		if err := db.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return middleware.ErrorResponse(c, fiber.StatusConflict, "Email is already registered!")
			}
			log.Printf("Error creating trainer: %v", err)
			return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to sign up trainer!")
		}
	default:
		log.Printf("Error looking up trainer: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to sign up trainer!")
	}

	utils.SendOTPEmail(user.Email, user.Name, otp, config.AppConfig.OTPExpiryMinutes)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trainer registration initiated. OTP sent to email.", fiber.Map{
		"trainer": fiber.Map{"id": user.ID, "email": user.Email, "isVerified": user.IsVerified},
	})
}

// VerifyOTP confirms a trainer's one-time passcode. Expiry is checked lazily
// here, not swept by any background job.
func VerifyOTP(c *fiber.Ctx) error {
	reqData := c.Locals("verifyOTPRequest").(*authValidators.VerifyOTPRequest)
	db := database.Database.Db

	var user models.User
	if err := db.Where("email = ? AND role = ?", reqData.Email, models.RoleTrainer).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Trainer account not found")
	}

	if user.IsVerified {
		return middleware.ErrorResponse(c, fiber.StatusBadRequest, "Account is already verified. Please proceed to login.")
	}

	if user.OtpCode == nil || *user.OtpCode != reqData.Otp {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid OTP provided.")
	}

	if user.OtpExpires == nil || user.OtpExpires.Before(time.Now()) {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "OTP has expired. Please re-register.")
	}

	updates := map[string]interface{}{
		"is_verified": true,
		"otp_code":    nil,
		"otp_expires": nil,
	}
	if err := db.Model(&user).Updates(updates).Error; err != nil {
		log.Printf("Error verifying trainer: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to verify account!")
	}
	user.IsVerified = true

	token, err := middleware.GenerateJWT(user.ID, user.Role, user.IsVerified)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to verify account!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Verification successful. You can now log in.", fiber.Map{
		"token": token,
		"user":  toUserView(user),
	})
}

// Login checks credentials and issues a token. Unverified trainers are
// refused here; this is the sole verification checkpoint.
func Login(c *fiber.Ctx) error {
	reqData := c.Locals("loginRequest").(*authValidators.LoginRequest)

	var user models.User
	if err := database.Database.Db.Where("email = ?", reqData.Email).First(&user).Error; err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)); err != nil {
		return middleware.ErrorResponse(c, fiber.StatusUnauthorized, "Invalid credentials")
	}

	if user.Role == models.RoleTrainer && !user.IsVerified {
		return middleware.ErrorResponse(c, fiber.StatusForbidden, "Account not verified. Please check your email for the OTP.")
	}

	token, err := middleware.GenerateJWT(user.ID, user.Role, user.IsVerified)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		return middleware.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to log in!")
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Login successful", fiber.Map{
		"token": token,
		"user":  toUserView(user),
	})
}
