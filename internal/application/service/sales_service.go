package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/internal/domain/repository"
	"github.com/jakindah/motorshop-api/internal/infrastructure/cache"
	"github.com/jakindah/motorshop-api/pkg/apperror"
	"github.com/jakindah/motorshop-api/pkg/pagination"
	"github.com/jakindah/motorshop-api/pkg/utils"
	"github.com/shopspring/decimal"
)

const summaryCacheTTL = time.Minute

// SalesService records point-of-sale transactions and serves sales reporting
type SalesService struct {
	saleRepo     repository.SaleRepository
	saleItemRepo repository.SaleItemRepository
	partRepo     repository.PartRepository
	settingsSvc  *SettingsService
	inventorySvc *InventoryService
	auditSvc     *AuditService
	cache        *cache.Cache
}

// NewSalesService creates a new sales service
func NewSalesService(
	saleRepo repository.SaleRepository,
	saleItemRepo repository.SaleItemRepository,
	partRepo repository.PartRepository,
	settingsSvc *SettingsService,
	inventorySvc *InventoryService,
	auditSvc *AuditService,
	c *cache.Cache,
) *SalesService {
	return &SalesService{
		saleRepo:     saleRepo,
		saleItemRepo: saleItemRepo,
		partRepo:     partRepo,
		settingsSvc:  settingsSvc,
		inventorySvc: inventorySvc,
		auditSvc:     auditSvc,
		cache:        c,
	}
}

// RecordSaleItemInput is one line of a sale submission
type RecordSaleItemInput struct {
	PartID   uuid.UUID
	Quantity int
}

// RecordSaleInput represents a sale submission from a terminal
type RecordSaleInput struct {
	CustomerName string
	RecordedBy   string
	Items        []RecordSaleItemInput
}

// RecordSaleOutput carries the persisted sale together with the refreshed
// daily summary so terminals reconcile in the same round trip.
type RecordSaleOutput struct {
	Sale    *entity.Sale
	Summary *repository.SalesSummary
}

// RecordSale validates and persists a sale. Stock for every line is
// decremented atomically before anything is written; any line with
// insufficient stock rejects the whole sale and leaves stock untouched.
func (s *SalesService) RecordSale(ctx context.Context, input *RecordSaleInput) (*RecordSaleOutput, error) {
	if len(input.Items) == 0 {
		return nil, apperror.NewBadRequestError("Sale must contain at least one item")
	}

	// Merge duplicate part lines so the decrement sees one quantity per part
	quantities := make(map[uuid.UUID]int, len(input.Items))
	order := make([]uuid.UUID, 0, len(input.Items))
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return nil, apperror.NewBadRequestError("Quantity must be positive")
		}
		if _, seen := quantities[item.PartID]; !seen {
			order = append(order, item.PartID)
		}
		quantities[item.PartID] += item.Quantity
	}

	parts, err := s.partRepo.GetByIDs(ctx, order)
	if err != nil {
		return nil, err
	}
	partsByID := make(map[uuid.UUID]*entity.Part, len(parts))
	for i := range parts {
		partsByID[parts[i].ID] = &parts[i]
	}
	for _, id := range order {
		if _, ok := partsByID[id]; !ok {
			return nil, apperror.NewNotFoundError("Part")
		}
	}

	taxRate, err := s.settingsSvc.TaxRate(ctx)
	if err != nil {
		return nil, err
	}

	failedIDs, err := s.partRepo.AtomicDecrementBatch(ctx, quantities)
	if err != nil {
		return nil, err
	}
	if len(failedIDs) > 0 {
		return nil, apperror.NewStockError(partsByID[failedIDs[0]].PartName)
	}

	var subTotal int64
	items := make([]entity.SaleItem, 0, len(order))
	for _, id := range order {
		part := partsByID[id]
		qty := quantities[id]
		lineTotal := part.UnitPrice * int64(qty)
		subTotal += lineTotal
		items = append(items, entity.SaleItem{
			PartID:          part.ID,
			QuantitySold:    qty,
			UnitPriceAtSale: part.UnitPrice,
			LineTotal:       lineTotal,
		})
	}

	taxAmount := decimal.NewFromInt(subTotal).
		Mul(decimal.NewFromFloat(taxRate)).
		Round(0).
		IntPart()

	sale := &entity.Sale{
		InvoiceNo:       utils.GenerateInvoiceNo(),
		TransactionDate: time.Now(),
		CustomerName:    input.CustomerName,
		RecordedBy:      input.RecordedBy,
		SubTotal:        subTotal,
		TaxAmount:       taxAmount,
		GrandTotal:      subTotal + taxAmount,
	}

	if err := s.saleRepo.Create(ctx, sale); err != nil {
		s.restoreStock(ctx, quantities)
		return nil, err
	}

	for i := range items {
		items[i].SaleID = sale.ID
	}
	if err := s.saleItemRepo.CreateBatch(ctx, items); err != nil {
		s.restoreStock(ctx, quantities)
		return nil, err
	}
	sale.Items = items

	s.cache.Invalidate(ctx, catalogCacheKey, summaryCacheKey(sale.TransactionDate))

	s.auditSvc.Log(ctx, input.RecordedBy, "SALE_COMPLETED", "Sale", &sale.ID,
		fmt.Sprintf("Sale %s recorded, %d line(s), total %.2f", sale.InvoiceNo, len(items), float64(sale.GrandTotal)/100))

	// Low-stock detection runs on the post-sale levels
	updated, err := s.partRepo.GetByIDs(ctx, order)
	if err == nil {
		for i := range updated {
			s.inventorySvc.CheckStockLevel(ctx, &updated[i])
		}
	}

	// The sale is committed at this point. A summary recompute failure must
	// not fail the request, or a retry would record the sale again.
	summary, err := s.DailySummary(ctx, sale.TransactionDate)
	if err != nil {
		log.Printf("Daily summary recompute after sale %s failed: %v", sale.InvoiceNo, err)
		summary = nil
	}

	return &RecordSaleOutput{Sale: sale, Summary: summary}, nil
}

// restoreStock compensates a failed sale write by returning the decremented
// quantities. Errors here are swallowed; the audit trail still shows the gap.
func (s *SalesService) restoreStock(ctx context.Context, quantities map[uuid.UUID]int) {
	_ = s.partRepo.AtomicIncrementBatch(ctx, quantities)
}

func summaryCacheKey(date time.Time) string {
	return "summary:" + date.Format("2006-01-02")
}

// DailySummary aggregates the sales recorded on the given calendar day
func (s *SalesService) DailySummary(ctx context.Context, date time.Time) (*repository.SalesSummary, error) {
	key := summaryCacheKey(date)

	var cached repository.SalesSummary
	if s.cache.Get(ctx, key, &cached) {
		return &cached, nil
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	summary, err := s.saleRepo.SummaryBetween(ctx, dayStart, dayStart.AddDate(0, 0, 1))
	if err != nil {
		return nil, err
	}

	s.cache.Set(ctx, key, summary, summaryCacheTTL)
	return summary, nil
}

// GetSale returns a sale with its line items
func (s *SalesService) GetSale(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	sale, err := s.saleRepo.GetWithItems(ctx, id)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, apperror.NewNotFoundError("Sale")
	}
	return sale, nil
}

// History returns recorded sales, newest first
func (s *SalesService) History(ctx context.Context, params *pagination.PaginationParams) (*pagination.PaginatedResult[entity.Sale], error) {
	params.Validate()

	sales, total, err := s.saleRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	return pagination.NewPaginatedResult(sales, pagination.NewPagination(params.Page, params.PerPage, total)), nil
}
