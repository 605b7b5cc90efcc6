package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
	"gorm.io/gorm"
)

// User represents a staff or vendor account
type User struct {
	ID         uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	FirstName  string         `gorm:"size:255;not null" json:"firstName"`
	LastName   string         `gorm:"size:255;not null" json:"lastName"`
	Email      string         `gorm:"size:255;unique;not null" json:"email"`
	Password   string         `gorm:"size:255" json:"-"`
	Role       enum.Role      `gorm:"size:50;not null;default:'SALES_EXECUTIVE'" json:"role"`
	Provider   string         `gorm:"size:50;default:'local'" json:"provider"`
	ProviderID *string        `gorm:"size:255" json:"-"`
	// VendorID links a VENDOR-role account to its vendor record for portal access
	VendorID  *uuid.UUID     `gorm:"type:uuid;index" json:"vendorId,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new user
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}

// FullName returns the user's display name
func (u *User) FullName() string {
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
