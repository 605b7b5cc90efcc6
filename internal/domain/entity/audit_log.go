package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuditLog is an append-only record of a state-changing action. Inventory
// mutations, sales, purchase-order receipts, and admin changes all write here.
type AuditLog struct {
	ID         uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Timestamp  time.Time  `gorm:"not null;index" json:"timestamp"`
	Username   string     `gorm:"size:255;not null" json:"username"`
	ActionType string     `gorm:"size:100;not null;index" json:"actionType"`
	EntityType string     `gorm:"size:100;index" json:"entityType"`
	EntityID   *uuid.UUID `gorm:"type:uuid;index" json:"entityId,omitempty"`
	OldValue   *string    `gorm:"type:text" json:"oldValue,omitempty"`
	NewValue   *string    `gorm:"type:text" json:"newValue,omitempty"`
	Details    string     `gorm:"type:text" json:"details"`
	CreatedAt  time.Time  `json:"createdAt"`
}

// BeforeCreate generates a UUID and stamps the entry before creation
func (a *AuditLog) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	if a.Timestamp.IsZero() {
		a.Timestamp = time.Now()
	}
	return nil
}

// TableName returns the table name for the AuditLog model
func (AuditLog) TableName() string {
	return "audit_logs"
}
