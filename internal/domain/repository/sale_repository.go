package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/pkg/pagination"
)

// SalesSummary holds aggregate figures for a trading period. Amounts are in
// cents; gross is the pre-tax sum, net is the grand-total sum.
type SalesSummary struct {
	GrossSales        int64
	TaxCollected      int64
	NetRevenue        int64
	TotalTransactions int64
}

// SaleRepository defines the interface for sale data operations
type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error)
	List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Sale, int64, error)
	// SummaryBetween aggregates sales whose transaction date falls in [from, to)
	SummaryBetween(ctx context.Context, from, to time.Time) (*SalesSummary, error)
}

// SaleItemRepository defines the interface for sale line-item operations
type SaleItemRepository interface {
	CreateBatch(ctx context.Context, items []entity.SaleItem) error
}
