package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	ID          string `gorm:"size:36;primaryKey" json:"id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;not null;unique" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`
	Icon        string `gorm:"size:50" json:"icon,omitempty"`
	ImageURL    string `json:"image_url,omitempty"`

	// Derived from the products table, never stored
	ProductCount int64 `gorm:"-" json:"product_count"`

	Subcategories []Subcategory `gorm:"foreignKey:CategoryID" json:"subcategories,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

type Subcategory struct {
	ID          string `gorm:"size:36;primaryKey" json:"id"`
	CategoryID  string `gorm:"size:36;not null;uniqueIndex:idx_subcategories_category_slug" json:"category_id"`
	Name        string `gorm:"size:100;not null" json:"name"`
	Slug        string `gorm:"size:100;not null;uniqueIndex:idx_subcategories_category_slug" json:"slug"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	ProductCount int64 `gorm:"-" json:"product_count"`

	CreatedAt time.Time `json:"created_at"`
}

func (s *Subcategory) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}
