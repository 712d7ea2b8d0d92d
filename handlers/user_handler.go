package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"usedtech_backend/logger"
	"usedtech_backend/models"
)

type UserHandler struct {
	DB *gorm.DB
}

func NewUserHandler(db *gorm.DB) *UserHandler {
	return &UserHandler{DB: db}
}

// SearchUsers - GET /api/users?q=
//
// Finds sellers by name or email, excluding the caller.
func (h *UserHandler) SearchUsers(c *fiber.Ctx) error {
	query := c.Query("q")
	if query == "" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Query parameter 'q' is required"))
	}

	currentUserID, _ := c.Locals("user_id").(string)

	var users []models.User
	err := h.DB.Select("id, name, email, avatar_url, location, rating, total_sales, verified").
		Where("(name ILIKE ? OR email ILIKE ?) AND id != ?", "%"+query+"%", "%"+query+"%", currentUserID).
		Limit(10).
		Find(&users).Error
	if err != nil {
		logger.Log.Error("Could not search users", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not search users"))
	}

	return c.JSON(models.SuccessResponse("", users, nil))
}
