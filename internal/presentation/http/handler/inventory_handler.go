package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/application/service"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
	"github.com/jakindah/motorshop-api/internal/presentation/http/dto/request"
	"github.com/jakindah/motorshop-api/internal/presentation/http/dto/response"
)

// InventoryHandler handles parts catalog and stock endpoints
type InventoryHandler struct {
	inventorySvc *service.InventoryService
}

// NewInventoryHandler creates a new inventory handler
func NewInventoryHandler(inventorySvc *service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventorySvc: inventorySvc}
}

// ListParts returns the full parts catalog
func (h *InventoryHandler) ListParts(c *gin.Context) {
	parts, err := h.inventorySvc.ListParts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Parts retrieved", parts)
}

// SearchParts returns parts matching the query string
func (h *InventoryHandler) SearchParts(c *gin.Context) {
	parts, err := h.inventorySvc.SearchParts(c.Request.Context(), c.Query("query"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Parts retrieved", parts)
}

// GetPart returns a single part by ID
func (h *InventoryHandler) GetPart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid part ID")
		return
	}

	part, err := h.inventorySvc.GetPart(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Part retrieved", part)
}

// CreatePart adds a new part to the catalog
func (h *InventoryHandler) CreatePart(c *gin.Context) {
	var req request.CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	part, err := h.inventorySvc.CreatePart(c.Request.Context(), &service.CreatePartInput{
		PartCode:         req.PartCode,
		PartName:         req.PartName,
		Description:      req.Description,
		ImageURL:         req.ImageURL,
		CurrentStock:     req.CurrentStock,
		ReorderThreshold: req.ReorderThreshold,
		UnitPrice:        req.UnitPrice,
		RackLocation:     req.RackLocation,
		CreatedBy:        GetUserEmail(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Part created", part)
}

// UpdatePart updates catalog fields on a part
func (h *InventoryHandler) UpdatePart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid part ID")
		return
	}

	var req request.UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	part, err := h.inventorySvc.UpdatePart(c.Request.Context(), &service.UpdatePartInput{
		ID:               id,
		PartName:         req.PartName,
		Description:      req.Description,
		ImageURL:         req.ImageURL,
		ReorderThreshold: req.ReorderThreshold,
		UnitPrice:        req.UnitPrice,
		RackLocation:     req.RackLocation,
		UpdatedBy:        GetUserEmail(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Part updated", part)
}

// DeletePart removes a part from the catalog
func (h *InventoryHandler) DeletePart(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid part ID")
		return
	}

	if err := h.inventorySvc.DeletePart(c.Request.Context(), id, GetUserEmail(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// AddStock increases a part's stock level
func (h *InventoryHandler) AddStock(c *gin.Context) {
	h.adjustStock(c, true)
}

// DeductStock decreases a part's stock level
func (h *InventoryHandler) DeductStock(c *gin.Context) {
	h.adjustStock(c, false)
}

func (h *InventoryHandler) adjustStock(c *gin.Context, add bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid part ID")
		return
	}

	var req request.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	input := &service.AdjustStockInput{
		PartID:     id,
		Quantity:   req.Quantity,
		Reason:     req.Reason,
		AdjustedBy: GetUserEmail(c),
	}

	var part interface{}
	if add {
		part, err = h.inventorySvc.AddStock(c.Request.Context(), input)
	} else {
		part, err = h.inventorySvc.DeductStock(c.Request.Context(), input)
	}
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Stock adjusted", part)
}

// GetLowStockParts returns parts at or below their reorder threshold
func (h *InventoryHandler) GetLowStockParts(c *gin.Context) {
	parts, err := h.inventorySvc.GetLowStockParts(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Low stock parts retrieved", parts)
}

// ListAlerts returns inventory alerts, optionally filtered by status
func (h *InventoryHandler) ListAlerts(c *gin.Context) {
	status := enum.AlertStatusOpen
	if s := c.Query("status"); s != "" {
		parsed, ok := enum.ParseAlertStatus(s)
		if !ok {
			response.BadRequest(c, "Unknown alert status")
			return
		}
		status = parsed
	}

	alerts, err := h.inventorySvc.ListAlerts(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Alerts retrieved", alerts)
}

// AcknowledgeAlert marks an open alert as acknowledged
func (h *InventoryHandler) AcknowledgeAlert(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid alert ID")
		return
	}

	alert, err := h.inventorySvc.AcknowledgeAlert(c.Request.Context(), id, GetUserEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Alert acknowledged", alert)
}
