package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/application/service"
	"github.com/jakindah/motorshop-api/internal/presentation/http/dto/response"
	"github.com/jakindah/motorshop-api/pkg/pagination"
)

// AuditHandler handles audit trail endpoints
type AuditHandler struct {
	auditSvc *service.AuditService
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditSvc *service.AuditService) *AuditHandler {
	return &AuditHandler{auditSvc: auditSvc}
}

// List returns audit entries, newest first
func (h *AuditHandler) List(c *gin.Context) {
	params := pagination.DefaultPagination()
	if err := c.ShouldBindQuery(params); err != nil {
		response.BadRequest(c, "Invalid pagination parameters")
		return
	}

	result, err := h.auditSvc.List(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Audit log retrieved", result)
}

// ListByEntity returns the audit history for one record
func (h *AuditHandler) ListByEntity(c *gin.Context) {
	entityID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid entity ID")
		return
	}

	logs, err := h.auditSvc.ListByEntity(c.Request.Context(), c.Param("type"), entityID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Audit history retrieved", logs)
}
