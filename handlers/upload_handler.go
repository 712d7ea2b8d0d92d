package handlers

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/gofiber/fiber/v2"

	"usedtech_backend/models"
)

// UploadHandler handles listing image uploads
type UploadHandler struct{}

func NewUploadHandler() *UploadHandler {
	return &UploadHandler{}
}

// UploadImage - POST /api/upload
//
// Saves one listing image and returns its public URL. Listings carry at most
// five images; that cap is enforced on the product payload.
func (h *UploadHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Image file is required"))
	}

	// Simple extension allow-list
	ext := filepath.Ext(file.Filename)
	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Only .jpg, .jpeg, and .png files are allowed"))
	}

	filename := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)
	destination := fmt.Sprintf("./uploads/products/%s", filename)

	if err := c.SaveFile(file, destination); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not save file"))
	}

	imageURL := fmt.Sprintf("/uploads/products/%s", filename)

	return c.JSON(models.SuccessResponse("Image uploaded", fiber.Map{"url": imageURL}, nil))
}
