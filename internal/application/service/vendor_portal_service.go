package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
	"github.com/jakindah/motorshop-api/internal/domain/repository"
	"github.com/jakindah/motorshop-api/pkg/apperror"
)

// VendorPortalService serves the vendor-facing portal. Vendor accounts see
// only their own orders and can report shipment progress; receiving stock
// stays with shop staff.
type VendorPortalService struct {
	poRepo   repository.PurchaseOrderRepository
	userRepo repository.UserRepository
	auditSvc *AuditService
}

// NewVendorPortalService creates a new vendor portal service
func NewVendorPortalService(
	poRepo repository.PurchaseOrderRepository,
	userRepo repository.UserRepository,
	auditSvc *AuditService,
) *VendorPortalService {
	return &VendorPortalService{
		poRepo:   poRepo,
		userRepo: userRepo,
		auditSvc: auditSvc,
	}
}

// vendorFor resolves the vendor record linked to a portal account
func (s *VendorPortalService) vendorFor(ctx context.Context, userID uuid.UUID) (uuid.UUID, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return uuid.Nil, err
	}
	if user == nil || user.VendorID == nil {
		return uuid.Nil, apperror.NewAppError(403, "Account is not linked to a vendor")
	}
	return *user.VendorID, nil
}

// MyOrders returns the purchase orders placed against the caller's vendor
func (s *VendorPortalService) MyOrders(ctx context.Context, userID uuid.UUID) ([]entity.PurchaseOrder, error) {
	vendorID, err := s.vendorFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.poRepo.ListByVendor(ctx, vendorID)
}

// MarkShippedInput represents a shipment report from a vendor
type MarkShippedInput struct {
	UserID               uuid.UUID
	Username             string
	OrderID              uuid.UUID
	ExpectedDeliveryDate *time.Time
}

// MarkShipped transitions one of the caller's pending orders to SHIPPED
func (s *VendorPortalService) MarkShipped(ctx context.Context, input *MarkShippedInput) (*entity.PurchaseOrder, error) {
	vendorID, err := s.vendorFor(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	po, err := s.poRepo.GetWithItems(ctx, input.OrderID)
	if err != nil {
		return nil, err
	}
	if po == nil || po.VendorID != vendorID {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	if po.Status != enum.POStatusPending {
		return nil, apperror.NewBadRequestError("Only pending orders can be marked as shipped")
	}

	po.Status = enum.POStatusShipped
	if input.ExpectedDeliveryDate != nil {
		po.ExpectedDeliveryDate = input.ExpectedDeliveryDate
	}
	if err := s.poRepo.Update(ctx, po); err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, input.Username, "PO_SHIPPED", "PurchaseOrder", &po.ID,
		fmt.Sprintf("Order %s marked shipped by vendor", po.OrderNo))
	return po, nil
}
