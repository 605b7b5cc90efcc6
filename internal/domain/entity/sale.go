package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Sale represents a recorded point-of-sale transaction
type Sale struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceNo       string         `gorm:"size:100;unique;not null" json:"invoiceNo"`
	TransactionDate time.Time      `gorm:"not null;index" json:"transactionDate"`
	CustomerName    string         `gorm:"size:255" json:"customerName"`
	RecordedBy      string         `gorm:"size:255;not null" json:"recordedBy"`
	SubTotal        int64          `gorm:"not null;default:0" json:"-"` // Stored in cents
	TaxAmount       int64          `gorm:"not null;default:0" json:"-"` // Stored in cents
	GrandTotal      int64          `gorm:"not null;default:0" json:"-"` // Stored in cents
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Items []SaleItem `gorm:"foreignKey:SaleID" json:"items,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal on the wire
func (s Sale) MarshalJSON() ([]byte, error) {
	type Alias Sale
	return json.Marshal(&struct {
		Alias
		SubTotal   float64 `json:"subTotal"`
		TaxAmount  float64 `json:"taxAmount"`
		GrandTotal float64 `json:"grandTotal"`
	}{
		Alias:      Alias(s),
		SubTotal:   float64(s.SubTotal) / 100,
		TaxAmount:  float64(s.TaxAmount) / 100,
		GrandTotal: float64(s.GrandTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale
func (s *Sale) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Sale model
func (Sale) TableName() string {
	return "sales"
}

// SaleItem represents a line item in a sale. Unit price is captured at sale
// time so later catalog price changes do not rewrite history.
type SaleItem struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	SaleID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"saleId"`
	PartID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"partId"`
	QuantitySold    int            `gorm:"not null" json:"quantitySold"`
	UnitPriceAtSale int64          `gorm:"not null" json:"-"` // Stored in cents
	LineTotal       int64          `gorm:"not null" json:"-"` // Stored in cents
	CreatedAt       time.Time      `json:"createdAt"`
	UpdatedAt       time.Time      `json:"updatedAt"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Sale Sale `gorm:"foreignKey:SaleID" json:"-"`
	Part Part `gorm:"foreignKey:PartID" json:"part,omitempty"`
}

// MarshalJSON custom marshaler to convert cents to decimal on the wire
func (si SaleItem) MarshalJSON() ([]byte, error) {
	type Alias SaleItem
	return json.Marshal(&struct {
		Alias
		UnitPriceAtSale float64 `json:"unitPriceAtSale"`
		LineTotal       float64 `json:"lineTotal"`
	}{
		Alias:           Alias(si),
		UnitPriceAtSale: float64(si.UnitPriceAtSale) / 100,
		LineTotal:       float64(si.LineTotal) / 100,
	})
}

// BeforeCreate generates a UUID before creating a new sale item
func (si *SaleItem) BeforeCreate(tx *gorm.DB) error {
	if si.ID == uuid.Nil {
		si.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the SaleItem model
func (SaleItem) TableName() string {
	return "sale_items"
}
