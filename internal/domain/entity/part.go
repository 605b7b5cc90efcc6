package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Part represents a catalog line item in the shop's inventory. CurrentStock is
// authoritative here; terminal clients hold only an advisory mirror of it.
type Part struct {
	ID               uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PartCode         string         `gorm:"size:100;unique;not null" json:"partCode"`
	PartName         string         `gorm:"size:255;not null" json:"partName"`
	Description      string         `gorm:"type:text" json:"description"`
	ImageURL         *string        `gorm:"size:500" json:"imageUrl,omitempty"`
	CurrentStock     int            `gorm:"not null;default:0" json:"currentStock"`
	ReorderThreshold int            `gorm:"not null;default:10" json:"reorderThreshold"`
	UnitPrice        int64          `gorm:"not null;default:0" json:"-"` // Stored in cents
	RackLocation     *string        `gorm:"size:100" json:"rackLocation,omitempty"`
	CreatedAt        time.Time      `json:"createdAt"`
	UpdatedAt        time.Time      `json:"updatedAt"`
	DeletedAt        gorm.DeletedAt `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new part
func (p *Part) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Part model
func (Part) TableName() string {
	return "parts"
}

// GetUnitPriceDecimal returns the unit price as a decimal (for display)
func (p *Part) GetUnitPriceDecimal() float64 {
	return float64(p.UnitPrice) / 100
}

// SetUnitPriceFromDecimal sets the unit price from a decimal value
func (p *Part) SetUnitPriceFromDecimal(price float64) {
	p.UnitPrice = int64(price*100 + 0.5)
}

// MarshalJSON custom marshaler to convert cents to decimal on the wire
func (p Part) MarshalJSON() ([]byte, error) {
	type Alias Part
	return json.Marshal(&struct {
		Alias
		UnitPrice float64 `json:"unitPrice"`
	}{
		Alias:     Alias(p),
		UnitPrice: p.GetUnitPriceDecimal(),
	})
}

// IsLowStock reports whether the part has fallen to or below its reorder threshold
func (p *Part) IsLowStock() bool {
	return p.CurrentStock <= p.ReorderThreshold
}
