package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"usedtech_backend/logger"
	"usedtech_backend/models"
)

type AdminHandler struct {
	DB *gorm.DB
}

func NewAdminHandler(db *gorm.DB) *AdminHandler {
	return &AdminHandler{DB: db}
}

// GetStats - GET /api/admin/stats
func (h *AdminHandler) GetStats(c *fiber.Ctx) error {
	var userCount, productCount, soldCount, orderCount, commentCount int64

	err := h.DB.Model(&models.User{}).Count(&userCount).Error
	if err == nil {
		err = h.DB.Model(&models.Product{}).Count(&productCount).Error
	}
	if err == nil {
		err = h.DB.Model(&models.Product{}).Where("sold = ?", true).Count(&soldCount).Error
	}
	if err == nil {
		err = h.DB.Model(&models.Order{}).Count(&orderCount).Error
	}
	if err == nil {
		err = h.DB.Model(&models.Comment{}).Count(&commentCount).Error
	}
	if err != nil {
		logger.Log.Error("Could not fetch stats", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not fetch stats"))
	}

	return c.JSON(models.SuccessResponse("", fiber.Map{
		"users":         userCount,
		"products":      productCount,
		"products_sold": soldCount,
		"orders":        orderCount,
		"comments":      commentCount,
	}, nil))
}
