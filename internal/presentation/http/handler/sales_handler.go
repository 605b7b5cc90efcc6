package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/application/service"
	"github.com/jakindah/motorshop-api/internal/presentation/http/dto/request"
	"github.com/jakindah/motorshop-api/internal/presentation/http/dto/response"
	"github.com/jakindah/motorshop-api/pkg/pagination"
)

// SalesHandler handles sale recording and reporting endpoints
type SalesHandler struct {
	salesSvc *service.SalesService
}

// NewSalesHandler creates a new sales handler
func NewSalesHandler(salesSvc *service.SalesService) *SalesHandler {
	return &SalesHandler{salesSvc: salesSvc}
}

// RecordSale persists a sale submitted from a terminal and returns the
// invoice together with the refreshed daily summary
func (h *SalesHandler) RecordSale(c *gin.Context) {
	var req request.RecordSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	items := make([]service.RecordSaleItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		partID, err := uuid.Parse(item.PartID)
		if err != nil {
			response.BadRequest(c, "Invalid part ID")
			return
		}
		items = append(items, service.RecordSaleItemInput{
			PartID:   partID,
			Quantity: item.Quantity,
		})
	}

	output, err := h.salesSvc.RecordSale(c.Request.Context(), &service.RecordSaleInput{
		CustomerName: req.CustomerName,
		RecordedBy:   GetUserEmail(c),
		Items:        items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	resp := &response.RecordSaleResponse{Invoice: output.Sale}
	if output.Summary != nil {
		resp.UpdatedSummary = response.NewDailySummaryResponse(output.Sale.TransactionDate, output.Summary)
	}
	response.Created(c, "Sale recorded", resp)
}

// DailySummary returns the aggregate figures for a calendar day. Defaults to
// today when no date parameter is given.
func (h *SalesHandler) DailySummary(c *gin.Context) {
	date := time.Now()
	if d := c.Query("date"); d != "" {
		parsed, err := time.ParseInLocation("2006-01-02", d, time.Local)
		if err != nil {
			response.BadRequest(c, "Date must be in YYYY-MM-DD format")
			return
		}
		date = parsed
	}

	summary, err := h.salesSvc.DailySummary(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Daily summary retrieved", response.NewDailySummaryResponse(date, summary))
}

// GetSale returns a single sale with its line items
func (h *SalesHandler) GetSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.salesSvc.GetSale(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Sale retrieved", sale)
}

// History returns recorded sales, newest first
func (h *SalesHandler) History(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.salesSvc.History(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Sales retrieved", result)
}
