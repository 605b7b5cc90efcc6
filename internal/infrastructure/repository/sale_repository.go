package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
	domainRepo "github.com/jakindah/motorshop-api/internal/domain/repository"
	"github.com/jakindah/motorshop-api/pkg/pagination"
	"gorm.io/gorm"
)

type saleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) domainRepo.SaleRepository {
	return &saleRepository{db: db}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	return r.db.WithContext(ctx).Create(sale).Error
}

func (r *saleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) GetWithItems(ctx context.Context, id uuid.UUID) (*entity.Sale, error) {
	var sale entity.Sale
	err := r.db.WithContext(ctx).
		Preload("Items").Preload("Items.Part").
		First(&sale, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &sale, err
}

func (r *saleRepository) List(ctx context.Context, params *pagination.PaginationParams) ([]entity.Sale, int64, error) {
	var sales []entity.Sale
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Sale{})
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.
		Preload("Items").
		Order("transaction_date DESC").
		Offset(params.Offset()).Limit(params.PerPage).
		Find(&sales).Error
	return sales, total, err
}

func (r *saleRepository) SummaryBetween(ctx context.Context, from, to time.Time) (*domainRepo.SalesSummary, error) {
	var row struct {
		Gross int64
		Tax   int64
		Net   int64
		Count int64
	}
	err := r.db.WithContext(ctx).Model(&entity.Sale{}).
		Select("COALESCE(SUM(sub_total), 0) AS gross, COALESCE(SUM(tax_amount), 0) AS tax, COALESCE(SUM(grand_total), 0) AS net, COUNT(*) AS count").
		Where("transaction_date >= ? AND transaction_date < ?", from, to).
		Scan(&row).Error
	if err != nil {
		return nil, err
	}
	return &domainRepo.SalesSummary{
		GrossSales:        row.Gross,
		TaxCollected:      row.Tax,
		NetRevenue:        row.Net,
		TotalTransactions: row.Count,
	}, nil
}

type saleItemRepository struct {
	db *gorm.DB
}

// NewSaleItemRepository creates a new sale item repository
func NewSaleItemRepository(db *gorm.DB) domainRepo.SaleItemRepository {
	return &saleItemRepository{db: db}
}

func (r *saleItemRepository) CreateBatch(ctx context.Context, items []entity.SaleItem) error {
	if len(items) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&items).Error
}
