package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/internal/domain/repository"
	"github.com/jakindah/motorshop-api/pkg/apperror"
)

// VendorService manages the supplier directory
type VendorService struct {
	vendorRepo repository.VendorRepository
	auditSvc   *AuditService
}

// NewVendorService creates a new vendor service
func NewVendorService(vendorRepo repository.VendorRepository, auditSvc *AuditService) *VendorService {
	return &VendorService{
		vendorRepo: vendorRepo,
		auditSvc:   auditSvc,
	}
}

// CreateVendorInput represents the input for creating a vendor
type CreateVendorInput struct {
	VendorName    string
	ContactPerson string
	Email         string
	PhoneNumber   string
	Address       string
	CreatedBy     string
}

// CreateVendor registers a new supplier
func (s *VendorService) CreateVendor(ctx context.Context, input *CreateVendorInput) (*entity.Vendor, error) {
	if input.VendorName == "" {
		return nil, apperror.NewBadRequestError("Vendor name is required")
	}

	existing, err := s.vendorRepo.GetByName(ctx, input.VendorName)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Vendor name already exists")
	}

	vendor := &entity.Vendor{
		VendorName:    input.VendorName,
		ContactPerson: input.ContactPerson,
		Email:         input.Email,
		PhoneNumber:   input.PhoneNumber,
		Address:       input.Address,
		Status:        "Active",
	}

	if err := s.vendorRepo.Create(ctx, vendor); err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, input.CreatedBy, "VENDOR_CREATED", "Vendor", &vendor.ID,
		fmt.Sprintf("Vendor %s created", vendor.VendorName))
	return vendor, nil
}

// UpdateVendorInput represents the input for updating a vendor
type UpdateVendorInput struct {
	ID            uuid.UUID
	VendorName    *string
	ContactPerson *string
	Email         *string
	PhoneNumber   *string
	Address       *string
	Status        *string
	UpdatedBy     string
}

// UpdateVendor updates a supplier's details
func (s *VendorService) UpdateVendor(ctx context.Context, input *UpdateVendorInput) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}

	if input.VendorName != nil && *input.VendorName != "" && *input.VendorName != vendor.VendorName {
		existing, err := s.vendorRepo.GetByName(ctx, *input.VendorName)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != vendor.ID {
			return nil, apperror.NewConflictError("Vendor name already exists")
		}
		vendor.VendorName = *input.VendorName
	}
	if input.ContactPerson != nil {
		vendor.ContactPerson = *input.ContactPerson
	}
	if input.Email != nil {
		vendor.Email = *input.Email
	}
	if input.PhoneNumber != nil {
		vendor.PhoneNumber = *input.PhoneNumber
	}
	if input.Address != nil {
		vendor.Address = *input.Address
	}
	if input.Status != nil {
		if *input.Status != "Active" && *input.Status != "Inactive" {
			return nil, apperror.NewBadRequestError("Status must be Active or Inactive")
		}
		vendor.Status = *input.Status
	}

	if err := s.vendorRepo.Update(ctx, vendor); err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, input.UpdatedBy, "VENDOR_UPDATED", "Vendor", &vendor.ID,
		fmt.Sprintf("Vendor %s updated", vendor.VendorName))
	return vendor, nil
}

// DeleteVendor soft-deletes a supplier
func (s *VendorService) DeleteVendor(ctx context.Context, id uuid.UUID, deletedBy string) error {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if vendor == nil {
		return apperror.NewNotFoundError("Vendor")
	}

	if err := s.vendorRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.Log(ctx, deletedBy, "VENDOR_DELETED", "Vendor", &id,
		fmt.Sprintf("Vendor %s deleted", vendor.VendorName))
	return nil
}

// GetVendor returns a single vendor by ID
func (s *VendorService) GetVendor(ctx context.Context, id uuid.UUID) (*entity.Vendor, error) {
	vendor, err := s.vendorRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if vendor == nil {
		return nil, apperror.NewNotFoundError("Vendor")
	}
	return vendor, nil
}

// ListVendors returns all suppliers
func (s *VendorService) ListVendors(ctx context.Context) ([]entity.Vendor, error) {
	return s.vendorRepo.List(ctx)
}
