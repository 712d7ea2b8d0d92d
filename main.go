package main

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"usedtech_backend/config"
	"usedtech_backend/logger"
	"usedtech_backend/middleware"
	"usedtech_backend/models"
)

func main() {
	cfg := config.LoadConfig()

	logger.Initialize(cfg.AppEnv)
	defer logger.Log.Sync()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		logger.Log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Migrations and seeding are one-shot: a failure here kills the process
	if cfg.DBReset {
		err = config.ResetAndMigrate(db)
	} else {
		err = config.Migrate(db)
	}
	if err != nil {
		logger.Log.Fatal("Failed to migrate database", zap.Error(err))
	}
	config.SeedUsers(db)

	app := fiber.New(fiber.Config{
		AppName:      "UsedTech Backend",
		ServerHeader: "UsedTech Server/1.0",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			// Default 500 statuscode
			code := fiber.StatusInternalServerError
			msg := "Internal Server Error"

			// Retrieve the custom statuscode if it's a *fiber.Error
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
				msg = e.Message
			}

			return c.Status(code).JSON(models.ErrorResponse(msg))
		},
	})

	middleware.SetupMiddleware(app)

	// Health Check Endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(models.SuccessResponse("API is healthy", nil, nil))
	})

	// Listing images are served straight off disk
	app.Static("/uploads", "./uploads")

	setupRoutes(app, db, cfg)

	middleware.SetupNotFoundHandler(app)

	logger.Log.Info("🚀 Server starting",
		zap.String("host", cfg.Host),
		zap.String("port", cfg.AppPort),
		zap.String("env", cfg.AppEnv),
	)

	if err := app.Listen(cfg.Host + ":" + cfg.AppPort); err != nil {
		logger.Log.Fatal("Failed to start server", zap.Error(err))
	}
}
