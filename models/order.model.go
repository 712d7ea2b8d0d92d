package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Order struct {
	ID        string `gorm:"size:36;primaryKey" json:"id"`
	BuyerID   string `gorm:"size:36;index;not null" json:"buyer_id"`
	SellerID  string `gorm:"size:36;index;not null" json:"seller_id"`
	ProductID string `gorm:"size:36;index;not null" json:"product_id"`

	Quantity    int     `gorm:"not null;default:1" json:"quantity"`
	TotalAmount float64 `gorm:"not null" json:"total_amount"`
	Status      string  `gorm:"default:'pending';size:20" json:"status"` // pending, confirmed, shipped, delivered, cancelled
	Notes       string  `gorm:"type:text" json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
