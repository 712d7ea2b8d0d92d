package handlers

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"usedtech_backend/logger"
	"usedtech_backend/models"
	"usedtech_backend/validation"
)

type OrderHandler struct {
	DB *gorm.DB
}

func NewOrderHandler(db *gorm.DB) *OrderHandler {
	return &OrderHandler{DB: db}
}

// CreateOrderRequest defines the payload for placing an order
type CreateOrderRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Notes     string `json:"notes" validate:"omitempty,max=1000"`
}

// CreateOrder - POST /api/orders
func (h *OrderHandler) CreateOrder(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input"))
	}

	if errs := validation.Validate(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(errs))
	}

	var product models.Product
	if err := h.DB.First(&product, "id = ?", req.ProductID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Product not found"))
	}

	if product.Sold {
		return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse("Product is sold"))
	}
	if product.SellerID == userID {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Cannot order your own listing"))
	}
	if product.Stock < req.Quantity {
		return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse("Insufficient stock"))
	}

	order := models.Order{
		BuyerID:     userID,
		SellerID:    product.SellerID,
		ProductID:   product.ID,
		Quantity:    req.Quantity,
		TotalAmount: product.Price * float64(req.Quantity),
		Notes:       req.Notes,
	}

	if err := h.DB.Create(&order).Error; err != nil {
		logger.Log.Error("Could not create order", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not create order"))
	}

	// Single-statement decrement, the guard keeps stock non-negative
	if err := h.DB.Model(&product).
		Where("stock >= ?", req.Quantity).
		UpdateColumn("stock", gorm.Expr("stock - ?", req.Quantity)).Error; err != nil {
		logger.Log.Warn("Could not decrement stock", zap.String("product_id", product.ID), zap.Error(err))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse("Order placed", order, nil))
}

// GetMyOrders - GET /api/my-orders
func (h *OrderHandler) GetMyOrders(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var orders []models.Order
	err := h.DB.Preload("Product").
		Where("buyer_id = ?", userID).
		Order("created_at desc").
		Find(&orders).Error
	if err != nil {
		logger.Log.Error("Could not fetch orders", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not fetch orders"))
	}

	return c.JSON(models.SuccessResponse("", orders, nil))
}
