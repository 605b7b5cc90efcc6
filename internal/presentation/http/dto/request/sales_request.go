package request

// RecordSaleItemRequest is one line of a sale submission
type RecordSaleItemRequest struct {
	PartID   string `json:"partId" binding:"required,uuid"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

// RecordSaleRequest represents a sale submitted from a terminal
type RecordSaleRequest struct {
	CustomerName string                  `json:"customerName"`
	Items        []RecordSaleItemRequest `json:"items" binding:"required,min=1,dive"`
}
