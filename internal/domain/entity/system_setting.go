package entity

import "time"

// Setting keys used by the application
const (
	SettingSalesTaxRate      = "SALES_TAX_RATE"
	SettingMinStockThreshold = "MIN_STOCK_THRESHOLD"
	SettingShopName          = "SHOP_NAME"
)

// SystemSetting is a key/value configuration entry. The sales tax rate lives
// here so the terminal's pricing engine and the backend always agree on it.
type SystemSetting struct {
	Key         string    `gorm:"primary_key;size:50" json:"key"`
	Value       string    `gorm:"size:255;not null" json:"value"`
	Description string    `gorm:"size:500" json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TableName returns the table name for the SystemSetting model
func (SystemSetting) TableName() string {
	return "system_settings"
}
