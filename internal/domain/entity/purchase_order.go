package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
	"gorm.io/gorm"
)

// PurchaseOrder represents a restocking order placed against a vendor
type PurchaseOrder struct {
	ID                   uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	OrderNo              string         `gorm:"size:100;unique;not null" json:"orderNo"`
	VendorID             uuid.UUID      `gorm:"type:uuid;not null;index" json:"vendorId"`
	OrderDate            time.Time      `gorm:"not null" json:"orderDate"`
	ExpectedDeliveryDate *time.Time     `json:"expectedDeliveryDate,omitempty"`
	ActualDeliveryDate   *time.Time     `json:"actualDeliveryDate,omitempty"`
	TotalOrderValue      int64          `gorm:"not null;default:0" json:"-"` // Stored in cents
	Status               enum.POStatus  `gorm:"default:0" json:"status"`
	PlacedBy             string         `gorm:"size:255;not null" json:"placedBy"`
	CreatedAt            time.Time      `json:"createdAt"`
	UpdatedAt            time.Time      `json:"updatedAt"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Vendor Vendor              `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Items  []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal on the wire
func (po PurchaseOrder) MarshalJSON() ([]byte, error) {
	type Alias PurchaseOrder
	return json.Marshal(&struct {
		Alias
		TotalOrderValue float64 `json:"totalOrderValue"`
	}{
		Alias:           Alias(po),
		TotalOrderValue: float64(po.TotalOrderValue) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new purchase order
func (po *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if po.ID == uuid.Nil {
		po.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItem represents a line item in a purchase order
type PurchaseOrderItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseOrderID uuid.UUID      `gorm:"type:uuid;not null;index" json:"purchaseOrderId"`
	PartID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"partId"`
	Quantity        int            `gorm:"not null" json:"quantity"`
	UnitCost        int64          `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	PurchaseOrder PurchaseOrder `gorm:"foreignKey:PurchaseOrderID" json:"-"`
	Part          Part          `gorm:"foreignKey:PartID" json:"part,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal on the wire
func (poi PurchaseOrderItem) MarshalJSON() ([]byte, error) {
	type Alias PurchaseOrderItem
	return json.Marshal(&struct {
		Alias
		UnitCost float64 `json:"unitCost"`
	}{
		Alias:    Alias(poi),
		UnitCost: float64(poi.UnitCost) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new purchase order item
func (poi *PurchaseOrderItem) BeforeCreate(tx *gorm.DB) error {
	if poi.ID == uuid.Nil {
		poi.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrderItem model
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}
