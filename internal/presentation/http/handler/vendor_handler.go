package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/application/service"
	"github.com/jakindah/motorshop-api/internal/presentation/http/dto/request"
	"github.com/jakindah/motorshop-api/internal/presentation/http/dto/response"
)

// VendorHandler handles supplier directory endpoints
type VendorHandler struct {
	vendorSvc *service.VendorService
	portalSvc *service.VendorPortalService
}

// NewVendorHandler creates a new vendor handler
func NewVendorHandler(vendorSvc *service.VendorService, portalSvc *service.VendorPortalService) *VendorHandler {
	return &VendorHandler{
		vendorSvc: vendorSvc,
		portalSvc: portalSvc,
	}
}

// ListVendors returns all suppliers
func (h *VendorHandler) ListVendors(c *gin.Context) {
	vendors, err := h.vendorSvc.ListVendors(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vendors retrieved", vendors)
}

// GetVendor returns a single supplier by ID
func (h *VendorHandler) GetVendor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	vendor, err := h.vendorSvc.GetVendor(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vendor retrieved", vendor)
}

// CreateVendor registers a new supplier
func (h *VendorHandler) CreateVendor(c *gin.Context) {
	var req request.CreateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	vendor, err := h.vendorSvc.CreateVendor(c.Request.Context(), &service.CreateVendorInput{
		VendorName:    req.VendorName,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		CreatedBy:     GetUserEmail(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Vendor created", vendor)
}

// UpdateVendor updates a supplier's details
func (h *VendorHandler) UpdateVendor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	var req request.UpdateVendorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	vendor, err := h.vendorSvc.UpdateVendor(c.Request.Context(), &service.UpdateVendorInput{
		ID:            id,
		VendorName:    req.VendorName,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		PhoneNumber:   req.PhoneNumber,
		Address:       req.Address,
		Status:        req.Status,
		UpdatedBy:     GetUserEmail(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Vendor updated", vendor)
}

// DeleteVendor removes a supplier
func (h *VendorHandler) DeleteVendor(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	if err := h.vendorSvc.DeleteVendor(c.Request.Context(), id, GetUserEmail(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// MyOrders returns the purchase orders placed against the caller's vendor
func (h *VendorHandler) MyOrders(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orders, err := h.portalSvc.MyOrders(c.Request.Context(), *userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Orders retrieved", orders)
}

// MarkShipped transitions one of the caller's pending orders to shipped
func (h *VendorHandler) MarkShipped(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	var req request.MarkShippedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	po, err := h.portalSvc.MarkShipped(c.Request.Context(), &service.MarkShippedInput{
		UserID:               *userID,
		Username:             GetUserEmail(c),
		OrderID:              orderID,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order marked as shipped", po)
}
