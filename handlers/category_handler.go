package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"usedtech_backend/logger"
	"usedtech_backend/models"
)

type CategoryHandler struct {
	DB *gorm.DB
}

func NewCategoryHandler(db *gorm.DB) *CategoryHandler {
	return &CategoryHandler{DB: db}
}

// GetCategories - GET /api/categories
func (h *CategoryHandler) GetCategories(c *fiber.Ctx) error {
	var categories []models.Category
	if err := h.DB.Preload("Subcategories").Order("name asc").Find(&categories).Error; err != nil {
		logger.Log.Error("Could not fetch categories", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not fetch categories"))
	}

	for i := range categories {
		h.fillProductCounts(&categories[i])
	}

	return c.JSON(models.SuccessResponse("", categories, nil))
}

// GetCategoryBySlug - GET /api/categories/:slug
func (h *CategoryHandler) GetCategoryBySlug(c *fiber.Ctx) error {
	var category models.Category
	err := h.DB.Preload("Subcategories").Where("slug = ?", c.Params("slug")).First(&category).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Category not found"))
	}

	h.fillProductCounts(&category)

	return c.JSON(models.SuccessResponse("", category, nil))
}

// Counts are derived from live listings, only unsold products are counted.
func (h *CategoryHandler) fillProductCounts(category *models.Category) {
	h.DB.Model(&models.Product{}).
		Where("category_id = ? AND sold = ?", category.ID, false).
		Count(&category.ProductCount)

	for i := range category.Subcategories {
		h.DB.Model(&models.Product{}).
			Where("subcategory_id = ? AND sold = ?", category.Subcategories[i].ID, false).
			Count(&category.Subcategories[i].ProductCount)
	}
}
