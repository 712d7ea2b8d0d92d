package handlers

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"usedtech_backend/config"
	"usedtech_backend/logger"
	"usedtech_backend/models"
	"usedtech_backend/utils"
	"usedtech_backend/validation"
)

type AuthHandler struct {
	DB     *gorm.DB
	Config *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Config: cfg}
}

// RegisterRequest defines the payload for registration
type RegisterRequest struct {
	Name     string  `json:"name" validate:"required,min=2,max=100"`
	Email    string  `json:"email" validate:"required,email"`
	Password string  `json:"password" validate:"required,min=6"`
	Phone    *string `json:"phone" validate:"omitempty,e164"`
}

// LoginRequest defines the payload for login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// UpdateProfileRequest defines the mutable profile fields
type UpdateProfileRequest struct {
	Name      string  `json:"name" validate:"omitempty,min=2,max=100"`
	Phone     *string `json:"phone" validate:"omitempty,e164"`
	Location  string  `json:"location" validate:"omitempty,min=2,max=100"`
	AvatarURL string  `json:"avatar_url"`
}

// Register - POST /api/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input"))
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Email = validation.NormalizeEmail(req.Email)

	if errs := validation.Validate(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(errs))
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		logger.Log.Error("Could not hash password", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not register"))
	}

	user := models.User{
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: hashedPassword,
		Phone:        req.Phone,
		Role:         "user",
	}

	if err := h.DB.Create(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse("An account with this email already exists"))
		}
		logger.Log.Error("Could not create user", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not register"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse("User registered successfully", user, nil))
}

// Login - POST /api/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input"))
	}

	req.Email = validation.NormalizeEmail(req.Email)

	if errs := validation.Validate(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(errs))
	}

	var user models.User
	if err := h.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid credentials"))
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		return c.Status(fiber.StatusUnauthorized).JSON(models.ErrorResponse("Invalid credentials"))
	}

	token, err := utils.GenerateToken(user.ID, user.Role, h.Config.JWTExpiration)
	if err != nil {
		logger.Log.Error("Could not sign token", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not login"))
	}

	return c.JSON(models.SuccessResponse("Login successful", fiber.Map{
		"token": token,
		"user":  user,
	}, nil))
}

// Logout - POST /api/auth/logout
//
// Tokens are stateless, so logout is an acknowledgement; the client discards
// its token.
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	return c.JSON(models.SuccessResponse("Logged out successfully", nil, nil))
}

// GetProfile - GET /api/auth/profile
func (h *AuthHandler) GetProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("User not found"))
	}

	return c.JSON(models.SuccessResponse("", user, nil))
}

// UpdateProfile - PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var user models.User
	if err := h.DB.First(&user, "id = ?", userID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("User not found"))
	}

	var req UpdateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input"))
	}

	req.Name = strings.TrimSpace(req.Name)

	if errs := validation.Validate(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(errs))
	}

	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	if req.Location != "" {
		user.Location = req.Location
	}
	if req.AvatarURL != "" {
		user.AvatarURL = req.AvatarURL
	}

	if err := h.DB.Save(&user).Error; err != nil {
		logger.Log.Error("Could not update profile", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not update profile"))
	}

	return c.JSON(models.SuccessResponse("Profile updated", user, nil))
}
