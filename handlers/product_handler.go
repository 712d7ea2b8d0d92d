package handlers

import (
	"math"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"usedtech_backend/catalog"
	"usedtech_backend/logger"
	"usedtech_backend/models"
	"usedtech_backend/validation"
)

type ProductHandler struct {
	DB *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{DB: db}
}

// CreateProductRequest is shared by create and update
type CreateProductRequest struct {
	Name           string             `json:"name" validate:"required,min=5,max=200"`
	Description    string             `json:"description" validate:"required,min=20,max=2000"`
	Price          float64            `json:"price" validate:"required,gt=0"`
	OriginalPrice  *float64           `json:"original_price" validate:"omitempty,gt=0"`
	Condition      string             `json:"condition" validate:"required,oneof=new like-new good fair poor"`
	CategoryID     string             `json:"category_id" validate:"required,uuid"`
	SubcategoryID  *string            `json:"subcategory_id" validate:"omitempty,uuid"`
	Stock          int                `json:"stock" validate:"required,min=1"`
	Location       string             `json:"location" validate:"required,min=2,max=100"`
	Tags           []string           `json:"tags" validate:"omitempty,dive,min=1,max=50"`
	Specifications map[string]string  `json:"specifications"`
	Images         []string           `json:"images" validate:"omitempty,max=5"`
	ContactInfo    models.ContactInfo `json:"contact_info"`
}

type paginationQuery struct {
	Page  int `query:"page" validate:"omitempty,min=1"`
	Limit int `query:"limit" validate:"omitempty,min=1,max=100"`
}

// CreateProduct - POST /api/products
func (h *ProductHandler) CreateProduct(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input"))
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.Location = strings.TrimSpace(req.Location)

	if errs := validation.Validate(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(errs))
	}

	var category models.Category
	if err := h.DB.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Category not found"))
	}

	if req.SubcategoryID != nil {
		var subcategory models.Subcategory
		if err := h.DB.First(&subcategory, "id = ? AND category_id = ?", *req.SubcategoryID, category.ID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Subcategory not found"))
		}
	}

	product := models.Product{
		SellerID:       userID,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		OriginalPrice:  req.OriginalPrice,
		Condition:      req.Condition,
		CategoryID:     req.CategoryID,
		SubcategoryID:  req.SubcategoryID,
		Stock:          req.Stock,
		Location:       req.Location,
		Tags:           req.Tags,
		Specifications: req.Specifications,
		Images:         req.Images,
		ContactInfo:    req.ContactInfo,
	}

	if err := h.DB.Create(&product).Error; err != nil {
		logger.Log.Error("Could not create product", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not create product"))
	}

	return c.Status(fiber.StatusCreated).JSON(models.SuccessResponse("Product created", product, nil))
}

// GetProducts - GET /api/products
//
// Loads the unsold listings and runs them through the catalog pipeline, then
// paginates the ordered result.
func (h *ProductHandler) GetProducts(c *fiber.Ctx) error {
	var page paginationQuery
	if err := c.QueryParser(&page); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid query parameters"))
	}
	if errs := validation.Validate(page); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(errs))
	}
	if page.Page == 0 {
		page.Page = 1
	}
	if page.Limit == 0 {
		page.Limit = 20
	}

	opts, err := parseCatalogOptions(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse(err.Error()))
	}

	var products []models.Product
	query := h.DB.Preload("Seller", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, avatar_url, rating, total_sales, verified")
	}).Preload("Category").Preload("Subcategory").Where("sold = ?", false)

	if err := query.Find(&products).Error; err != nil {
		logger.Log.Error("Could not fetch products", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not fetch products"))
	}

	result := catalog.Apply(products, opts)

	total := int64(len(result))
	start := (page.Page - 1) * page.Limit
	if start > len(result) {
		start = len(result)
	}
	end := start + page.Limit
	if end > len(result) {
		end = len(result)
	}

	meta := models.NewPaginationMeta(page.Page, page.Limit, total)
	return c.JSON(models.SuccessResponse("", result[start:end], meta))
}

// GetFeaturedProducts - GET /api/products/featured
func (h *ProductHandler) GetFeaturedProducts(c *fiber.Ctx) error {
	var products []models.Product
	err := h.DB.Preload("Seller", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, avatar_url, rating, verified")
	}).Preload("Category").
		Where("featured = ? AND sold = ?", true, false).
		Order("created_at desc").
		Limit(8).
		Find(&products).Error
	if err != nil {
		logger.Log.Error("Could not fetch featured products", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not fetch products"))
	}

	return c.JSON(models.SuccessResponse("", products, nil))
}

// GetProduct - GET /api/products/:id
func (h *ProductHandler) GetProduct(c *fiber.Ctx) error {
	id := c.Params("id")

	var product models.Product
	err := h.DB.Preload("Seller", func(db *gorm.DB) *gorm.DB {
		return db.Select("id, name, email, avatar_url, location, rating, total_sales, verified")
	}).Preload("Category").Preload("Subcategory").First(&product, "id = ?", id).Error
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Product not found"))
	}

	// Single-statement counter bump, no read-modify-write
	if err := h.DB.Model(&product).UpdateColumn("views", gorm.Expr("views + 1")).Error; err != nil {
		logger.Log.Warn("Could not increment views", zap.String("product_id", id), zap.Error(err))
	} else {
		product.Views++
	}

	return c.JSON(models.SuccessResponse("", product, nil))
}

// UpdateProduct - PUT /api/products/:id
func (h *ProductHandler) UpdateProduct(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var product models.Product
	if err := h.DB.First(&product, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Product not found"))
	}

	// Check ownership
	if product.SellerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Not authorized"))
	}

	var req CreateProductRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse("Invalid input"))
	}

	req.Name = strings.TrimSpace(req.Name)
	req.Description = strings.TrimSpace(req.Description)
	req.Location = strings.TrimSpace(req.Location)

	if errs := validation.Validate(req); len(errs) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(models.ValidationErrorResponse(errs))
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = req.Price
	product.OriginalPrice = req.OriginalPrice
	product.Condition = req.Condition
	product.CategoryID = req.CategoryID
	product.SubcategoryID = req.SubcategoryID
	product.Stock = req.Stock
	product.Location = req.Location
	product.Tags = req.Tags
	product.Specifications = req.Specifications
	product.Images = req.Images
	product.ContactInfo = req.ContactInfo

	if err := h.DB.Save(&product).Error; err != nil {
		logger.Log.Error("Could not update product", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not update product"))
	}

	return c.JSON(models.SuccessResponse("Product updated", product, nil))
}

// MarkSold - POST /api/products/:id/sold
//
// Sold listings drop out of default browse results but keep their row.
func (h *ProductHandler) MarkSold(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var product models.Product
	if err := h.DB.First(&product, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Product not found"))
	}

	if product.SellerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Not authorized"))
	}

	if product.Sold {
		return c.Status(fiber.StatusConflict).JSON(models.ErrorResponse("Product is already sold"))
	}

	if err := h.DB.Model(&product).UpdateColumn("sold", true).Error; err != nil {
		logger.Log.Error("Could not mark product sold", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not update product"))
	}
	product.Sold = true

	return c.JSON(models.SuccessResponse("Product marked as sold", product, nil))
}

// DeleteProduct - DELETE /api/products/:id
func (h *ProductHandler) DeleteProduct(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var product models.Product
	if err := h.DB.First(&product, "id = ?", c.Params("id")).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Product not found"))
	}

	if product.SellerID != userID {
		return c.Status(fiber.StatusForbidden).JSON(models.ErrorResponse("Not authorized"))
	}

	if err := h.DB.Delete(&product).Error; err != nil {
		logger.Log.Error("Could not delete product", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not delete product"))
	}

	return c.JSON(models.SuccessResponse("Product deleted", nil, nil))
}

// GetMyProducts - GET /api/my-products
func (h *ProductHandler) GetMyProducts(c *fiber.Ctx) error {
	userID, _ := c.Locals("user_id").(string)

	var products []models.Product
	err := h.DB.Preload("Category").Preload("Subcategory").
		Where("seller_id = ?", userID).
		Order("created_at desc").
		Find(&products).Error
	if err != nil {
		logger.Log.Error("Could not fetch products", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse("Could not fetch products"))
	}

	return c.JSON(models.SuccessResponse("", products, nil))
}

func parseCatalogOptions(c *fiber.Ctx) (catalog.Options, error) {
	opts := catalog.Options{
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
		Condition:   c.Query("condition"),
		SearchText:  c.Query("search"),
		SortBy:      c.Query("sort"),
	}

	minRaw, maxRaw := c.Query("min_price"), c.Query("max_price")
	if minRaw != "" || maxRaw != "" {
		pr := catalog.PriceRange{Min: 0, Max: math.MaxFloat64}
		if minRaw != "" {
			min, err := strconv.ParseFloat(minRaw, 64)
			if err != nil {
				return opts, fiber.NewError(fiber.StatusBadRequest, "Invalid min_price")
			}
			pr.Min = min
		}
		if maxRaw != "" {
			max, err := strconv.ParseFloat(maxRaw, 64)
			if err != nil {
				return opts, fiber.NewError(fiber.StatusBadRequest, "Invalid max_price")
			}
			pr.Max = max
		}
		opts.PriceRange = &pr
	}

	return opts, nil
}
