package request

import "time"

// CreateVendorRequest represents the payload for registering a supplier
type CreateVendorRequest struct {
	VendorName    string `json:"vendorName" binding:"required"`
	ContactPerson string `json:"contactPerson"`
	Email         string `json:"email" binding:"omitempty,email"`
	PhoneNumber   string `json:"phoneNumber"`
	Address       string `json:"address"`
}

// UpdateVendorRequest represents the payload for updating a supplier
type UpdateVendorRequest struct {
	VendorName    *string `json:"vendorName"`
	ContactPerson *string `json:"contactPerson"`
	Email         *string `json:"email" binding:"omitempty,email"`
	PhoneNumber   *string `json:"phoneNumber"`
	Address       *string `json:"address"`
	Status        *string `json:"status"`
}

// CreateOrderItemRequest is one line of a purchase order
type CreateOrderItemRequest struct {
	PartID   string  `json:"partId" binding:"required,uuid"`
	Quantity int     `json:"quantity" binding:"required,gt=0"`
	UnitCost float64 `json:"unitCost" binding:"gte=0"`
}

// CreateOrderRequest represents the payload for placing a purchase order
type CreateOrderRequest struct {
	VendorID             string                   `json:"vendorId" binding:"required,uuid"`
	ExpectedDeliveryDate *time.Time               `json:"expectedDeliveryDate"`
	Items                []CreateOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}

// MarkShippedRequest represents a vendor's shipment report
type MarkShippedRequest struct {
	ExpectedDeliveryDate *time.Time `json:"expectedDeliveryDate"`
}
