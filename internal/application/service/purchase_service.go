package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
	"github.com/jakindah/motorshop-api/internal/domain/repository"
	"github.com/jakindah/motorshop-api/internal/infrastructure/cache"
	"github.com/jakindah/motorshop-api/pkg/apperror"
	"github.com/jakindah/motorshop-api/pkg/utils"
)

// PurchaseService manages restocking orders against vendors
type PurchaseService struct {
	poRepo       repository.PurchaseOrderRepository
	vendorRepo   repository.VendorRepository
	partRepo     repository.PartRepository
	inventorySvc *InventoryService
	auditSvc     *AuditService
	cache        *cache.Cache
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(
	poRepo repository.PurchaseOrderRepository,
	vendorRepo repository.VendorRepository,
	partRepo repository.PartRepository,
	inventorySvc *InventoryService,
	auditSvc *AuditService,
	c *cache.Cache,
) *PurchaseService {
	return &PurchaseService{
		poRepo:       poRepo,
		vendorRepo:   vendorRepo,
		partRepo:     partRepo,
		inventorySvc: inventorySvc,
		auditSvc:     auditSvc,
		cache:        c,
	}
}

// CreateOrderItemInput is one line of a purchase order
type CreateOrderItemInput struct {
	PartID   uuid.UUID
	Quantity int
	UnitCost float64
}

// CreateOrderInput represents the input for placing a purchase order
type CreateOrderInput struct {
	VendorID             uuid.UUID
	ExpectedDeliveryDate *time.Time
	Items                []CreateOrderItemInput
	PlacedBy             string
}

// CreateOrder places a new purchase order in PENDING status
func (s *PurchaseService) CreateOrder(ctx context.Context, input *CreateOrderInput) (*entity.PurchaseOrder, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Order must contain at least one item")
	}

	vendor, err := s.vendorRepo.GetByID(ctx, input.VendorID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	if vendor.Status != "Active" {
		return nil, apperror.NewBadRequestError("Cannot order from an inactive vendor")
	}

	partIDs := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Quantity must be positive")
		}
		if item.UnitCost < 0 {
			return nil, apperror.NewBadRequestError("Unit cost cannot be negative")
		}
		partIDs = append(partIDs, item.PartID)
	}

	parts, err := s.partRepo.GetByIDs(ctx, partIDs)
	if err != nil {
		return nil, err
	}
	if len(parts) != len(partIDs) {
		return nil, apperror.NewNotFoundError("Part")
	}

	var totalValue int64
	items := make([]entity.PurchaseOrderItem, 0, len(input.Items))
	for _, item := range input.Items {
		unitCost := int64(item.UnitCost*100 + 0.5)
		totalValue += unitCost * int64(item.Quantity)
		items = append(items, entity.PurchaseOrderItem{
			PartID:   item.PartID,
			Quantity: item.Quantity,
			UnitCost: unitCost,
		})
	}

	po := &entity.PurchaseOrder{
		OrderNo:              utils.GenerateOrderNo(),
		VendorID:             input.VendorID,
		OrderDate:            time.Now(),
		ExpectedDeliveryDate: input.ExpectedDeliveryDate,
		TotalOrderValue:      totalValue,
		Status:               enum.POStatusPending,
		PlacedBy:             input.PlacedBy,
		Items:                items,
	}

	if err := s.poRepo.Create(ctx, po); err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, input.PlacedBy, "PO_CREATED", "PurchaseOrder", &po.ID,
		fmt.Sprintf("Order %s placed with %s", po.OrderNo, vendor.VendorName))
	return po, nil
}

// GetOrder returns a purchase order with vendor and items
func (s *PurchaseService) GetOrder(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	po, err := s.poRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return po, nil
}

// ListOrders returns all purchase orders
func (s *PurchaseService) ListOrders(ctx context.Context) ([]entity.PurchaseOrder, error) {
	return s.poRepo.List(ctx)
}

// ListOrdersByStatus returns purchase orders in the given status
func (s *PurchaseService) ListOrdersByStatus(ctx context.Context, status enum.POStatus) ([]entity.PurchaseOrder, error) {
	return s.poRepo.ListByStatus(ctx, status)
}

// ReceiveOrder marks a shipped or pending order as received and adds the
// ordered quantities to stock in one atomic batch.
func (s *PurchaseService) ReceiveOrder(ctx context.Context, id uuid.UUID, receivedBy string) (*entity.PurchaseOrder, error) {
	po, err := s.poRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	if po.Status == enum.POStatusReceived {
		return nil, apperror.NewBadRequestError("Order has already been received")
	}
	if po.Status == enum.POStatusCancelled {
		return nil, apperror.NewBadRequestError("Cannot receive a cancelled order")
	}

	increments := make(map[uuid.UUID]int, len(po.Items))
	for _, item := range po.Items {
		increments[item.PartID] += item.Quantity
	}
	if err := s.partRepo.AtomicIncrementBatch(ctx, increments); err != nil {
		return nil, err
	}

	now := time.Now()
	po.Status = enum.POStatusReceived
	po.ActualDeliveryDate = &now
	if err := s.poRepo.Update(ctx, po); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, catalogCacheKey)
	s.auditSvc.Log(ctx, receivedBy, "PO_RECEIVED", "PurchaseOrder", &po.ID,
		fmt.Sprintf("Order %s received, stock updated for %d part(s)", po.OrderNo, len(increments)))

	// Receiving stock may resolve open low-stock alerts
	updatedIDs := make([]uuid.UUID, 0, len(increments))
	for partID := range increments {
		updatedIDs = append(updatedIDs, partID)
	}
	if parts, err := s.partRepo.GetByIDs(ctx, updatedIDs); err == nil {
		for i := range parts {
			s.inventorySvc.CheckStockLevel(ctx, &parts[i])
		}
	}

	return po, nil
}

// CancelOrder cancels a pending order
func (s *PurchaseService) CancelOrder(ctx context.Context, id uuid.UUID, cancelledBy string) (*entity.PurchaseOrder, error) {
	po, err := s.poRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	if po.Status != enum.POStatusPending {
		return nil, apperror.NewBadRequestError("Only pending orders can be cancelled")
	}

	po.Status = enum.POStatusCancelled
	if err := s.poRepo.Update(ctx, po); err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, cancelledBy, "PO_CANCELLED", "PurchaseOrder", &po.ID,
		fmt.Sprintf("Order %s cancelled", po.OrderNo))
	return po, nil
}
