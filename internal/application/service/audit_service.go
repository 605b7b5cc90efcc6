package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/internal/domain/repository"
	"github.com/jakindah/motorshop-api/pkg/pagination"
)

// AuditService records and queries the append-only audit trail
type AuditService struct {
	auditRepo repository.AuditLogRepository
}

// NewAuditService creates a new audit service
func NewAuditService(auditRepo repository.AuditLogRepository) *AuditService {
	return &AuditService{auditRepo: auditRepo}
}

// Log appends an audit entry. Audit failures are logged and swallowed so a
// broken trail never blocks the business operation it describes.
func (s *AuditService) Log(ctx context.Context, username, actionType, entityType string, entityID *uuid.UUID, details string) {
	entry := &entity.AuditLog{
		Username:   username,
		ActionType: actionType,
		EntityType: entityType,
		EntityID:   entityID,
		Details:    details,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		log.Printf("Failed to write audit log (%s %s): %v", actionType, entityType, err)
	}
}

// LogChange appends an audit entry capturing before and after values
func (s *AuditService) LogChange(ctx context.Context, username, actionType, entityType string, entityID *uuid.UUID, oldValue, newValue, details string) {
	entry := &entity.AuditLog{
		Username:   username,
		ActionType: actionType,
		EntityType: entityType,
		EntityID:   entityID,
		OldValue:   &oldValue,
		NewValue:   &newValue,
		Details:    details,
	}
	if err := s.auditRepo.Create(ctx, entry); err != nil {
		log.Printf("Failed to write audit log (%s %s): %v", actionType, entityType, err)
	}
}

// List returns audit entries, newest first
func (s *AuditService) List(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.AuditLog], error) {
	params.Validate()

	logs, total, err := s.auditRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(logs, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}

// ListByEntity returns the audit history for a single record
func (s *AuditService) ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]entity.AuditLog, error) {
	return s.auditRepo.ListByEntity(ctx, entityType, entityID)
}
