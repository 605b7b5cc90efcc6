package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
	"gorm.io/gorm"
)

// InventoryAlert records a part falling to or below its reorder threshold
type InventoryAlert struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	PartID       uuid.UUID        `gorm:"type:uuid;not null;index" json:"partId"`
	CurrentStock int              `gorm:"not null" json:"currentStock"`
	Threshold    int              `gorm:"not null" json:"threshold"`
	Status       enum.AlertStatus `gorm:"default:0;index" json:"status"`
	DetectedAt   time.Time        `gorm:"not null" json:"detectedAt"`
	ResolvedAt   *time.Time       `json:"resolvedAt,omitempty"`
	CreatedAt    time.Time        `json:"createdAt"`
	UpdatedAt    time.Time        `json:"updatedAt"`

	// Relationships
	Part Part `gorm:"foreignKey:PartID" json:"part,omitempty"`
}

// BeforeCreate generates a UUID and stamps detection time before creation
func (a *InventoryAlert) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.DetectedAt.IsZero() {
		a.DetectedAt = time.Now()
	}
	return nil
}

// TableName returns the table name for the InventoryAlert model
func (InventoryAlert) TableName() string {
	return "inventory_alerts"
}
