package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/pkg/pagination"
)

// AuditLogRepository defines the interface for the append-only audit trail
type AuditLogRepository interface {
	Create(ctx context.Context, log *entity.AuditLog) error
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.AuditLog, int64, error)
	ListByEntity(ctx context.Context, entityType string, entityID uuid.UUID) ([]entity.AuditLog, error)
}
