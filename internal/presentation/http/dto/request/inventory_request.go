package request

// CreatePartRequest represents the payload for adding a part to the catalog
type CreatePartRequest struct {
	PartCode         string  `json:"partCode"`
	PartName         string  `json:"partName" binding:"required"`
	Description      string  `json:"description"`
	ImageURL         *string `json:"imageUrl"`
	CurrentStock     int     `json:"currentStock" binding:"gte=0"`
	ReorderThreshold int     `json:"reorderThreshold" binding:"gte=0"`
	UnitPrice        float64 `json:"unitPrice" binding:"gte=0"`
	RackLocation     *string `json:"rackLocation"`
}

// UpdatePartRequest represents the payload for updating catalog fields.
// Absent fields are left unchanged.
type UpdatePartRequest struct {
	PartName         *string  `json:"partName"`
	Description      *string  `json:"description"`
	ImageURL         *string  `json:"imageUrl"`
	ReorderThreshold *int     `json:"reorderThreshold"`
	UnitPrice        *float64 `json:"unitPrice"`
	RackLocation     *string  `json:"rackLocation"`
}

// AdjustStockRequest represents a manual stock movement
type AdjustStockRequest struct {
	Quantity int    `json:"quantity" binding:"required,gt=0"`
	Reason   string `json:"reason"`
}
