package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Vendor represents a parts supplier
type Vendor struct {
	ID            uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	VendorName    string         `gorm:"size:255;unique;not null" json:"vendorName"`
	ContactPerson string         `gorm:"size:255" json:"contactPerson"`
	Email         string         `gorm:"size:255;unique" json:"email"`
	PhoneNumber   string         `gorm:"size:50" json:"phoneNumber"`
	Address       string         `gorm:"type:text" json:"address"`
	Status        string         `gorm:"size:50;default:'Active'" json:"status"`
	CreatedAt     time.Time      `json:"createdAt"`
	UpdatedAt     time.Time      `json:"updatedAt"`
	DeletedAt     gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new vendor
func (v *Vendor) BeforeCreate(tx *gorm.DB) error {
	if v.ID == uuid.Nil {
		v.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Vendor model
func (Vendor) TableName() string {
	return "vendors"
}
