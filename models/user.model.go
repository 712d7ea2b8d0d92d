package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID string `gorm:"size:36;primaryKey" json:"id"`

	// Login
	Email        string `gorm:"unique;not null;size:100" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`

	// Profile
	Name      string  `gorm:"not null;size:100" json:"name"`
	Phone     *string `gorm:"size:20" json:"phone,omitempty"`
	AvatarURL string  `json:"avatar_url,omitempty"`
	Location  string  `gorm:"size:100" json:"location,omitempty"`

	// Role & Status
	Role          string  `gorm:"default:'user';size:20" json:"role"` // user, seller, admin
	Rating        float64 `gorm:"default:0" json:"rating"`
	TotalSales    int     `gorm:"default:0" json:"total_sales"`
	Verified      bool    `gorm:"default:false" json:"verified"`
	EmailVerified bool    `gorm:"default:false" json:"email_verified"`

	// System Timestamps
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
