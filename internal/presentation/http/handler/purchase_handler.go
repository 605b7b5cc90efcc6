package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/application/service"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
	"github.com/jakindah/motorshop-api/internal/presentation/http/dto/request"
	"github.com/jakindah/motorshop-api/internal/presentation/http/dto/response"
)

// PurchaseHandler handles purchase order endpoints
type PurchaseHandler struct {
	purchaseSvc *service.PurchaseService
}

// NewPurchaseHandler creates a new purchase handler
func NewPurchaseHandler(purchaseSvc *service.PurchaseService) *PurchaseHandler {
	return &PurchaseHandler{purchaseSvc: purchaseSvc}
}

// ListOrders returns purchase orders, optionally filtered by status
func (h *PurchaseHandler) ListOrders(c *gin.Context) {
	if s := c.Query("status"); s != "" {
		status, ok := enum.ParsePOStatus(s)
		if !ok {
			response.BadRequest(c, "Unknown order status")
			return
		}
		orders, err := h.purchaseSvc.ListOrdersByStatus(c.Request.Context(), status)
		if err != nil {
			response.Error(c, err)
			return
		}
		response.OK(c, "Orders retrieved", orders)
		return
	}

	orders, err := h.purchaseSvc.ListOrders(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Orders retrieved", orders)
}

// GetOrder returns a purchase order with vendor and items
func (h *PurchaseHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	po, err := h.purchaseSvc.GetOrder(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order retrieved", po)
}

// CreateOrder places a new purchase order
func (h *PurchaseHandler) CreateOrder(c *gin.Context) {
	var req request.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	vendorID, err := uuid.Parse(req.VendorID)
	if err != nil {
		response.BadRequest(c, "Invalid vendor ID")
		return
	}

	items := make([]service.CreateOrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		partID, err := uuid.Parse(item.PartID)
		if err != nil {
			response.BadRequest(c, "Invalid part ID")
			return
		}
		items = append(items, service.CreateOrderItemInput{
			PartID:   partID,
			Quantity: item.Quantity,
			UnitCost: item.UnitCost,
		})
	}

	po, err := h.purchaseSvc.CreateOrder(c.Request.Context(), &service.CreateOrderInput{
		VendorID:             vendorID,
		ExpectedDeliveryDate: req.ExpectedDeliveryDate,
		Items:                items,
		PlacedBy:             GetUserEmail(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Order placed", po)
}

// ReceiveOrder marks an order as received and restocks its items
func (h *PurchaseHandler) ReceiveOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	po, err := h.purchaseSvc.ReceiveOrder(c.Request.Context(), id, GetUserEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order received", po)
}

// CancelOrder cancels a pending order
func (h *PurchaseHandler) CancelOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid order ID")
		return
	}

	po, err := h.purchaseSvc.CancelOrder(c.Request.Context(), id, GetUserEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Order cancelled", po)
}
