package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
	"github.com/jakindah/motorshop-api/internal/domain/repository"
	"github.com/jakindah/motorshop-api/internal/infrastructure/cache"
	"github.com/jakindah/motorshop-api/pkg/apperror"
	"github.com/jakindah/motorshop-api/pkg/utils"
)

const catalogCacheKey = "catalog:parts"
const catalogCacheTTL = 5 * time.Minute

// InventoryService handles the parts catalog, stock movements and low-stock alerts
type InventoryService struct {
	partRepo  repository.PartRepository
	alertRepo repository.AlertRepository
	auditSvc  *AuditService
	cache     *cache.Cache
}

// NewInventoryService creates a new inventory service
func NewInventoryService(
	partRepo repository.PartRepository,
	alertRepo repository.AlertRepository,
	auditSvc *AuditService,
	c *cache.Cache,
) *InventoryService {
	return &InventoryService{
		partRepo:  partRepo,
		alertRepo: alertRepo,
		auditSvc:  auditSvc,
		cache:     c,
	}
}

// CreatePartInput represents the input for creating a part
type CreatePartInput struct {
	PartCode         string
	PartName         string
	Description      string
	ImageURL         *string
	CurrentStock     int
	ReorderThreshold int
	UnitPrice        float64
	RackLocation     *string
	CreatedBy        string
}

// CreatePart adds a new part to the catalog
func (s *InventoryService) CreatePart(ctx context.Context, input *CreatePartInput) (*entity.Part, error) {
	if input.PartName == "" {
		return nil, apperror.NewBadRequestError("Part name is required")
	}
	if input.UnitPrice < 0 {
		return nil, apperror.NewBadRequestError("Unit price cannot be negative")
	}
	if input.CurrentStock < 0 {
		return nil, apperror.NewBadRequestError("Stock cannot be negative")
	}

	code := strings.TrimSpace(input.PartCode)
	if code == "" {
		code = utils.GeneratePartCode()
	} else {
		existing, err := s.partRepo.GetByCode(ctx, code)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, apperror.NewConflictError("Part code already exists")
		}
	}

	part := &entity.Part{
		PartCode:         code,
		PartName:         input.PartName,
		Description:      input.Description,
		ImageURL:         input.ImageURL,
		CurrentStock:     input.CurrentStock,
		ReorderThreshold: input.ReorderThreshold,
		RackLocation:     input.RackLocation,
	}
	part.SetUnitPriceFromDecimal(input.UnitPrice)

	if err := s.partRepo.Create(ctx, part); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, catalogCacheKey)
	s.auditSvc.Log(ctx, input.CreatedBy, "PART_CREATED", "Part", &part.ID,
		fmt.Sprintf("Part %s created with stock %d", part.PartName, part.CurrentStock))

	return part, nil
}

// UpdatePartInput represents the input for updating a part
type UpdatePartInput struct {
	ID               uuid.UUID
	PartName         *string
	Description      *string
	ImageURL         *string
	ReorderThreshold *int
	UnitPrice        *float64
	RackLocation     *string
	UpdatedBy        string
}

// UpdatePart updates catalog fields on a part. Stock is never set directly
// here; it moves only through AddStock, DeductStock and recorded sales.
func (s *InventoryService) UpdatePart(ctx context.Context, input *UpdatePartInput) (*entity.Part, error) {
	part, err := s.partRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, apperror.NewNotFoundError("Part")
	}

	oldPrice := part.GetUnitPriceDecimal()

	if input.PartName != nil && *input.PartName != "" {
		part.PartName = *input.PartName
	}
	if input.Description != nil {
		part.Description = *input.Description
	}
	if input.ImageURL != nil {
		part.ImageURL = input.ImageURL
	}
	if input.ReorderThreshold != nil {
		if *input.ReorderThreshold < 0 {
			return nil, apperror.NewBadRequestError("Reorder threshold cannot be negative")
		}
		part.ReorderThreshold = *input.ReorderThreshold
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Unit price cannot be negative")
		}
		part.SetUnitPriceFromDecimal(*input.UnitPrice)
	}
	if input.RackLocation != nil {
		part.RackLocation = input.RackLocation
	}

	if err := s.partRepo.Update(ctx, part); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, catalogCacheKey)
	if input.UnitPrice != nil {
		s.auditSvc.LogChange(ctx, input.UpdatedBy, "PART_UPDATED", "Part", &part.ID,
			fmt.Sprintf("%.2f", oldPrice), fmt.Sprintf("%.2f", *input.UnitPrice),
			fmt.Sprintf("Part %s updated", part.PartName))
	} else {
		s.auditSvc.Log(ctx, input.UpdatedBy, "PART_UPDATED", "Part", &part.ID,
			fmt.Sprintf("Part %s updated", part.PartName))
	}

	return part, nil
}

// DeletePart soft-deletes a part from the catalog
func (s *InventoryService) DeletePart(ctx context.Context, id uuid.UUID, deletedBy string) error {
	part, err := s.partRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if part == nil {
		return apperror.NewNotFoundError("Part")
	}

	if err := s.partRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.cache.Invalidate(ctx, catalogCacheKey)
	s.auditSvc.Log(ctx, deletedBy, "PART_DELETED", "Part", &id,
		fmt.Sprintf("Part %s deleted", part.PartName))
	return nil
}

// GetPart returns a single part by ID
func (s *InventoryService) GetPart(ctx context.Context, id uuid.UUID) (*entity.Part, error) {
	part, err := s.partRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, apperror.NewNotFoundError("Part")
	}
	return part, nil
}

// ListParts returns the full catalog. Reads go through the cache; any stock
// or catalog mutation invalidates it.
func (s *InventoryService) ListParts(ctx context.Context) ([]entity.Part, error) {
	var cached []entity.Part
	if s.cache.Get(ctx, catalogCacheKey, &cached) {
		return cached, nil
	}

	parts, err := s.partRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, catalogCacheKey, parts, catalogCacheTTL)
	return parts, nil
}

// SearchParts returns parts whose name or code matches the query
func (s *InventoryService) SearchParts(ctx context.Context, query string) ([]entity.Part, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.ListParts(ctx)
	}
	return s.partRepo.Search(ctx, query)
}

// AdjustStockInput represents a manual stock movement
type AdjustStockInput struct {
	PartID     uuid.UUID
	Quantity   int
	Reason     string
	AdjustedBy string
}

// AddStock increases a part's stock level
func (s *InventoryService) AddStock(ctx context.Context, input *AdjustStockInput) (*entity.Part, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}
	return s.adjustStock(ctx, input, input.Quantity, "STOCK_ADDED")
}

// DeductStock decreases a part's stock level. The decrement is atomic and is
// rejected when it would drive stock negative.
func (s *InventoryService) DeductStock(ctx context.Context, input *AdjustStockInput) (*entity.Part, error) {
	if input.Quantity <= 0 {
		return nil, apperror.NewBadRequestError("Quantity must be positive")
	}
	return s.adjustStock(ctx, input, -input.Quantity, "STOCK_DEDUCTED")
}

func (s *InventoryService) adjustStock(ctx context.Context, input *AdjustStockInput, delta int, action string) (*entity.Part, error) {
	part, err := s.partRepo.GetByID(ctx, input.PartID)
	if err != nil {
		return nil, err
	}
	if part == nil {
		return nil, apperror.NewNotFoundError("Part")
	}

	ok, err := s.partRepo.AtomicAdjustStock(ctx, input.PartID, delta)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperror.NewStockError(part.PartName)
	}

	// Re-read for the post-adjustment stock level
	part, err = s.partRepo.GetByID(ctx, input.PartID)
	if err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, catalogCacheKey)

	details := fmt.Sprintf("Stock for %s adjusted by %d to %d", part.PartName, delta, part.CurrentStock)
	if input.Reason != "" {
		details += " (" + input.Reason + ")"
	}
	s.auditSvc.Log(ctx, input.AdjustedBy, action, "Part", &part.ID, details)

	s.CheckStockLevel(ctx, part)

	return part, nil
}

// GetLowStockParts returns parts at or below their reorder threshold
func (s *InventoryService) GetLowStockParts(ctx context.Context) ([]entity.Part, error) {
	return s.partRepo.GetLowStock(ctx)
}

// CheckStockLevel opens a low-stock alert when a part falls to or below its
// threshold, and resolves the open alert when it is replenished above it.
// Alert failures never fail the stock movement that triggered the check.
func (s *InventoryService) CheckStockLevel(ctx context.Context, part *entity.Part) {
	open, err := s.alertRepo.GetOpenByPart(ctx, part.ID)
	if err != nil {
		return
	}

	if part.IsLowStock() {
		if open != nil {
			return
		}
		alert := &entity.InventoryAlert{
			PartID:       part.ID,
			CurrentStock: part.CurrentStock,
			Threshold:    part.ReorderThreshold,
			Status:       enum.AlertStatusOpen,
			DetectedAt:   time.Now(),
		}
		_ = s.alertRepo.Create(ctx, alert)
		return
	}

	if open != nil {
		now := time.Now()
		open.Status = enum.AlertStatusResolved
		open.ResolvedAt = &now
		_ = s.alertRepo.Update(ctx, open)
	}
}

// ListAlerts returns alerts filtered by status
func (s *InventoryService) ListAlerts(ctx context.Context, status enum.AlertStatus) ([]entity.InventoryAlert, error) {
	return s.alertRepo.ListByStatus(ctx, status)
}

// AcknowledgeAlert marks an open alert as acknowledged
func (s *InventoryService) AcknowledgeAlert(ctx context.Context, id uuid.UUID, acknowledgedBy string) (*entity.InventoryAlert, error) {
	alert, err := s.alertRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if alert == nil {
		return nil, apperror.NewNotFoundError("Alert")
	}
	if alert.Status != enum.AlertStatusOpen {
		return nil, apperror.NewBadRequestError("Only open alerts can be acknowledged")
	}

	alert.Status = enum.AlertStatusAcknowledged
	if err := s.alertRepo.Update(ctx, alert); err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, acknowledgedBy, "ALERT_ACKNOWLEDGED", "InventoryAlert", &alert.ID,
		"Low stock alert acknowledged")
	return alert, nil
}
