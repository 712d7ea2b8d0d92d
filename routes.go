package main

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"usedtech_backend/config"
	"usedtech_backend/handlers"
	"usedtech_backend/utils"
)

func setupRoutes(app *fiber.App, db *gorm.DB, cfg *config.Config) {
	authHandler := handlers.NewAuthHandler(db, cfg)
	productHandler := handlers.NewProductHandler(db)
	categoryHandler := handlers.NewCategoryHandler(db)
	commentHandler := handlers.NewCommentHandler(db)
	orderHandler := handlers.NewOrderHandler(db)
	userHandler := handlers.NewUserHandler(db)
	uploadHandler := handlers.NewUploadHandler()
	adminHandler := handlers.NewAdminHandler(db)

	api := app.Group("/api")

	// Auth
	auth := api.Group("/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Post("/logout", authHandler.Logout)
	auth.Get("/profile", utils.AuthMiddleware, authHandler.GetProfile)
	auth.Put("/profile", utils.AuthMiddleware, authHandler.UpdateProfile)

	// Products ("featured" must be registered before ":id")
	products := api.Group("/products")
	products.Get("/", productHandler.GetProducts)
	products.Get("/featured", productHandler.GetFeaturedProducts)
	products.Get("/:id", productHandler.GetProduct)
	products.Post("/", utils.AuthMiddleware, productHandler.CreateProduct)
	products.Put("/:id", utils.AuthMiddleware, productHandler.UpdateProduct)
	products.Delete("/:id", utils.AuthMiddleware, productHandler.DeleteProduct)
	products.Post("/:id/sold", utils.AuthMiddleware, productHandler.MarkSold)

	// Comments
	products.Get("/:id/comments", commentHandler.GetComments)
	products.Post("/:id/comments", utils.AuthMiddleware, commentHandler.CreateComment)
	api.Post("/comments/:id/replies", utils.AuthMiddleware, commentHandler.CreateReply)

	// Categories
	api.Get("/categories", categoryHandler.GetCategories)
	api.Get("/categories/:slug", categoryHandler.GetCategoryBySlug)

	// Orders
	api.Post("/orders", utils.AuthMiddleware, orderHandler.CreateOrder)
	api.Get("/my-orders", utils.AuthMiddleware, orderHandler.GetMyOrders)

	// Seller dashboard & search
	api.Get("/my-products", utils.AuthMiddleware, productHandler.GetMyProducts)
	api.Get("/users", utils.AuthMiddleware, userHandler.SearchUsers)

	// Uploads
	api.Post("/upload", utils.AuthMiddleware, uploadHandler.UploadImage)

	// Admin
	admin := api.Group("/admin", utils.AuthMiddleware, utils.AdminMiddleware)
	admin.Get("/stats", adminHandler.GetStats)
}
