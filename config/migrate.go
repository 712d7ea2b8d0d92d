package config

import (
	"go.uber.org/zap"
	"gorm.io/gorm"

	"usedtech_backend/logger"
	"usedtech_backend/models"
)

func Migrate(db *gorm.DB) error {
	// Migrate the schema
	err := db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Subcategory{},
		&models.Product{},
		&models.Comment{},
		&models.Order{},
	)

	if err != nil {
		logger.Log.Error("Failed to migrate database schema", zap.Error(err))
		return err
	}

	logger.Log.Info("Database migrations completed successfully...")

	// Ensure category metadata is refreshed even on normal migration
	SeedCategories(db)

	return nil
}

func ResetAndMigrate(db *gorm.DB) error {
	// Drop all tables
	tables := []interface{}{
		&models.User{},
		&models.Category{},
		&models.Subcategory{},
		&models.Product{},
		&models.Comment{},
		&models.Order{},
	}

	if err := db.Migrator().DropTable(tables...); err != nil {
		logger.Log.Error("Failed to drop tables", zap.Error(err))
		return err
	}

	logger.Log.Info("All tables dropped successfully.")

	if err := db.AutoMigrate(tables...); err != nil {
		logger.Log.Error("Failed to auto migrate", zap.Error(err))
		return err
	}

	SeedCategories(db)
	SeedUsers(db)

	logger.Log.Info("Database reset and migration completed successfully.")
	return nil
}
