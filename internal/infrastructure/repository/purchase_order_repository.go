package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
	domainRepo "github.com/jakindah/motorshop-api/internal/domain/repository"
	"gorm.io/gorm"
)

type purchaseOrderRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderRepository creates a new purchase order repository
func NewPurchaseOrderRepository(db *gorm.DB) domainRepo.PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(po).Error
}

func (r *purchaseOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.db.WithContext(ctx).First(&po, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &po, err
}

func (r *purchaseOrderRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Vendor").Preload("Items").Preload("Items.Part").
		First(&po, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &po, err
}

func (r *purchaseOrderRepository) Update(ctx context.Context, po *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Save(po).Error
}

func (r *purchaseOrderRepository) List(ctx context.Context) ([]entity.PurchaseOrder, error) {
	var orders []entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Vendor").Preload("Items").
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (r *purchaseOrderRepository) ListByVendor(ctx context.Context, vendorID uuid.UUID) ([]entity.PurchaseOrder, error) {
	var orders []entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Part").
		Where("vendor_id = ?", vendorID).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}

func (r *purchaseOrderRepository) ListByStatus(ctx context.Context, status enum.POStatus) ([]entity.PurchaseOrder, error) {
	var orders []entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Preload("Vendor").Preload("Items").
		Where("status = ?", status).
		Order("order_date DESC").
		Find(&orders).Error
	return orders, err
}
