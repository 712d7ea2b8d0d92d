package handlers

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"usedtech_backend/logger"
	"usedtech_backend/models"
	"usedtech_backend/validation"
)

type CommentHandler struct {
	DB *gorm.DB
}

func NewCommentHandler(db *gorm.DB) *CommentHandler {
	return &CommentHandler{DB: db}
}

// CreateCommentRequest covers both comments and replies
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}

// GetComments - GET /api/products/:id/comments
//
// Returns top-level comments in creation order, each carrying its replies in
// creation order.
func (h *CommentHandler) GetComments(c *fiber.Ctx) error {
	productID := c.Params("id")

	var product models.Product
	if err := h.DB.Select("id").First(&product, "id = ?", productID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Product not found"))
	}

	var comments []models.Comment
	err := h.DB.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, avatar_url")
	}).Where("product_id = ?", productID).
		Order("created_at asc").
		Find(&comments).Error
	if err != nil {
		logger.Log.Error("Could not fetch comments", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not fetch comments"))
	}

	return c.JSON(models.SuccessResponse("", models.BuildCommentTree(comments), nil))
}

// CreateComment - POST /api/products/:id/comments
func (h *CommentHandler) CreateComment(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)
	productID := c.Params("id")

	var product models.Product
	if err := h.DB.Select("id").First(&product, "id = ?", productID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Product not found"))
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input"))
	}

	// Trim first: whitespace-only content must fail the non-empty rule
	req.Content = strings.TrimSpace(req.Content)

	if errs := validation.Validate(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(errs))
	}

	comment := models.Comment{
		ProductID: productID,
		UserID:    userID,
		Content:   req.Content,
	}

	if err := h.DB.Create(&comment).Error; err != nil {
		logger.Log.Error("Could not create comment", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not create comment"))
	}

	h.DB.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, avatar_url")
	}).First(&comment, "id = ?", comment.ID)

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse("Comment added", comment, nil))
}

// CreateReply - POST /api/comments/:id/replies
//
// The discussion tree is exactly two levels: replying to a reply is rejected.
func (h *CommentHandler) CreateReply(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var parent models.Comment
	if err := h.DB.First(&parent, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Comment not found"))
	}

	if parent.ParentID != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Replies cannot be nested"))
	}

	var req CreateCommentRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input"))
	}

	req.Content = strings.TrimSpace(req.Content)

	if errs := validation.Validate(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(errs))
	}

	reply := models.Comment{
		ProductID: parent.ProductID,
		UserID:    userID,
		ParentID:  &parent.ID,
		Content:   req.Content,
	}

	if err := h.DB.Create(&reply).Error; err != nil {
		logger.Log.Error("Could not create reply", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not create reply"))
	}

	h.DB.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, avatar_url")
	}).First(&reply, "id = ?", reply.ID)

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse("Reply added", reply, nil))
}
