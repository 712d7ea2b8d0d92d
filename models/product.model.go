package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactInfo is how a buyer reaches the seller. Stored as a JSON column on
// the product.
type ContactInfo struct {
	Email            string `json:"email" validate:"omitempty,email"`
	Phone            string `json:"phone,omitempty"`
	PreferredContact string `json:"preferred_contact" validate:"omitempty,oneof=email phone both"`
	MeetupLocation   string `json:"meetup_location,omitempty"`
}

type Product struct {
	ID       string `gorm:"size:36;primaryKey" json:"id"`
	SellerID string `gorm:"size:36;index;not null" json:"seller_id"`

	Name          string   `gorm:"size:200;not null" json:"name"`
	Description   string   `gorm:"type:text;not null" json:"description"`
	Price         float64  `gorm:"not null" json:"price"`
	OriginalPrice *float64 `json:"original_price,omitempty"`
	Condition     string   `gorm:"size:20;not null" json:"condition"` // new, like-new, good, fair, poor

	CategoryID    string  `gorm:"size:36;index;not null" json:"category_id"`
	SubcategoryID *string `gorm:"size:36;index" json:"subcategory_id,omitempty"`

	Stock         int     `gorm:"not null;default:1" json:"stock"`
	Views         int64   `gorm:"default:0" json:"views"`
	AverageRating float64 `gorm:"default:0" json:"average_rating"`
	Location      string  `gorm:"size:100" json:"location"`

	Tags           []string          `gorm:"serializer:json" json:"tags"`
	Specifications map[string]string `gorm:"serializer:json" json:"specifications"`
	Images         []string          `gorm:"serializer:json" json:"images"`
	ContactInfo    ContactInfo       `gorm:"serializer:json" json:"contact_info"`

	Featured bool `gorm:"default:false" json:"featured"`
	Sold     bool `gorm:"default:false;index" json:"sold"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relations
	Seller      User         `gorm:"foreignKey:SellerID" json:"seller,omitempty"`
	Category    Category     `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
	Subcategory *Subcategory `gorm:"foreignKey:SubcategoryID" json:"subcategory,omitempty"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
