package config

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"usedtech_backend/logger"
	"usedtech_backend/models"
	"usedtech_backend/utils"
)

type seedSubcategory struct {
	Name        string
	Slug        string
	Description string
}

type seedCategory struct {
	Name          string
	Slug          string
	Description   string
	Icon          string
	ImageURL      string
	Subcategories []seedSubcategory
}

var categorySeed = []seedCategory{
	{
		Name:        "Microcontrollers",
		Slug:        "microcontrollers",
		Description: "Arduino, ESP, Raspberry Pi and development boards",
		Icon:        "Cpu",
		ImageURL:    "https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=800&h=400&dpr=1",
		Subcategories: []seedSubcategory{
			{Name: "Arduino Boards", Slug: "arduino-boards", Description: "Arduino Uno, Nano, Mega and compatible boards"},
			{Name: "ESP Modules", Slug: "esp-modules", Description: "ESP8266, ESP32 development boards and modules"},
			{Name: "Raspberry Pi", Slug: "raspberry-pi", Description: "Raspberry Pi boards, Zero, and accessories"},
			{Name: "STM32 Boards", Slug: "stm32-boards", Description: "STM32 development boards and modules"},
		},
	},
	{
		Name:        "Motors & Drivers",
		Slug:        "motors-drivers",
		Description: "Servo motors, stepper motors, and motor drivers",
		Icon:        "Settings",
		ImageURL:    "https://images.pexels.com/photos/442150/pexels-photo-442150.jpeg?auto=compress&cs=tinysrgb&w=800&h=400&dpr=1",
		Subcategories: []seedSubcategory{
			{Name: "Servo Motors", Slug: "servo-motors", Description: "Standard and micro servo motors"},
			{Name: "Stepper Motors", Slug: "stepper-motors", Description: "NEMA 17, NEMA 23 stepper motors"},
			{Name: "DC Motors", Slug: "dc-motors", Description: "Brushed and brushless DC motors"},
			{Name: "Motor Drivers", Slug: "motor-drivers", Description: "H-bridge, stepper, and servo drivers"},
		},
	},
	{
		Name:        "Sensors",
		Slug:        "sensors",
		Description: "Temperature, humidity, motion, and environmental sensors",
		Icon:        "Radar",
		ImageURL:    "https://images.pexels.com/photos/163100/circuit-circuit-board-resistor-computer-163100.jpeg?auto=compress&cs=tinysrgb&w=800&h=400&dpr=1",
		Subcategories: []seedSubcategory{
			{Name: "Temperature Sensors", Slug: "temperature-sensors", Description: "DHT22, DS18B20, thermocouples"},
			{Name: "Motion Sensors", Slug: "motion-sensors", Description: "PIR, ultrasonic, accelerometers"},
			{Name: "Environmental", Slug: "environmental-sensors", Description: "Air quality, pressure, light sensors"},
		},
	},
}

// SeedCategories upserts the catalog taxonomy. The slug is the conflict key,
// so re-running never duplicates rows; metadata columns take the latest seed
// values on every run.
func SeedCategories(db *gorm.DB) {
	logger.Log.Info("🌱 Seeding categories...")

	for _, sc := range categorySeed {
		category := models.Category{
			Name:        sc.Name,
			Slug:        sc.Slug,
			Description: sc.Description,
			Icon:        sc.Icon,
			ImageURL:    sc.ImageURL,
		}

		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "slug"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "description", "icon", "image_url"}),
		}).Create(&category).Error
		if err != nil {
			logger.Log.Error("Failed to seed category", zap.String("slug", sc.Slug), zap.Error(err))
			continue
		}

		// Re-read: on conflict the generated ID is not the stored one
		if err := db.Where("slug = ?", sc.Slug).First(&category).Error; err != nil {
			logger.Log.Error("Failed to load seeded category", zap.String("slug", sc.Slug), zap.Error(err))
			continue
		}

		for _, ss := range sc.Subcategories {
			subcategory := models.Subcategory{
				CategoryID:  category.ID,
				Name:        ss.Name,
				Slug:        ss.Slug,
				Description: ss.Description,
			}

			err := db.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "category_id"}, {Name: "slug"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "description"}),
			}).Create(&subcategory).Error
			if err != nil {
				logger.Log.Error("Failed to seed subcategory", zap.String("slug", ss.Slug), zap.Error(err))
			}
		}
	}

	logger.Log.Info("✅ Category seeding complete.")
}

// SeedUsers inserts the default accounts. Existing rows win: a real password
// hash must never be overwritten by a redeploy, so the conflict action is a
// no-op rather than an update.
func SeedUsers(db *gorm.DB) {
	logger.Log.Info("🌱 Seeding users...")

	adminPassword, _ := utils.HashPassword("admin123")
	userPassword, _ := utils.HashPassword("password123")

	users := []models.User{
		{
			Name:          "Admin User",
			Email:         "admin@usedtech.com",
			PasswordHash:  adminPassword,
			Role:          "admin",
			Location:      "San Francisco, CA",
			Verified:      true,
			EmailVerified: true,
		},
		{
			Name:         "John Electronics",
			Email:        "john@example.com",
			PasswordHash: userPassword,
			Role:         "seller",
			Location:     "San Francisco, CA",
			Rating:       4.8,
			TotalSales:   127,
			Verified:     true,
		},
		{
			Name:         "Sarah Tech",
			Email:        "sarah@example.com",
			PasswordHash: userPassword,
			Role:         "seller",
			Location:     "Austin, TX",
			Rating:       4.9,
			TotalSales:   89,
			Verified:     true,
		},
		{
			Name:         "Mike Components",
			Email:        "mike@example.com",
			PasswordHash: userPassword,
			Role:         "seller",
			Location:     "Seattle, WA",
			Rating:       4.6,
			TotalSales:   203,
			Verified:     true,
		},
	}

	for i := range users {
		err := db.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "email"}},
			DoNothing: true,
		}).Create(&users[i]).Error
		if err != nil {
			logger.Log.Error("Failed to seed user", zap.String("email", users[i].Email), zap.Error(err))
		}
	}

	logger.Log.Info("✅ User seeding complete.")
}
