package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
)

// AlertRepository defines the interface for inventory alert operations
type AlertRepository interface {
	Create(ctx context.Context, alert *entity.InventoryAlert) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryAlert, error)
	// GetOpenByPart returns the open alert for a part, if any; at most one
	// open alert exists per part.
	GetOpenByPart(ctx context.Context, partID uuid.UUID) (*entity.InventoryAlert, error)
	Update(ctx context.Context, alert *entity.InventoryAlert) error
	ListByStatus(ctx context.Context, status enum.AlertStatus) ([]entity.InventoryAlert, error)
}
