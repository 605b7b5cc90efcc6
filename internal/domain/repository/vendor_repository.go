package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
)

// VendorRepository defines the interface for vendor data operations
type VendorRepository interface {
	Create(ctx context.Context, vendor *entity.Vendor) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Vendor, error)
	GetByName(ctx context.Context, name string) (*entity.Vendor, error)
	GetByEmail(ctx context.Context, email string) (*entity.Vendor, error)
	Update(ctx context.Context, vendor *entity.Vendor) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context) ([]entity.Vendor, error)
}

// PurchaseOrderRepository defines the interface for purchase order operations
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, po *entity.PurchaseOrder) error
	List(ctx context.Context) ([]entity.PurchaseOrder, error)
	ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]entity.PurchaseOrder, error)
	ListByStatus(ctx context.Context, status enum.POStatus) ([]entity.PurchaseOrder, error)
}
