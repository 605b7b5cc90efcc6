package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
	domainRepo "github.com/jakindah/motorshop-api/internal/domain/repository"
	"gorm.io/gorm"
)

type partRepository struct {
	db *gorm.DB
}

// NewPartRepository creates a new part repository
func NewPartRepository(db *gorm.DB) domainRepo.PartRepository {
	return &partRepository{db: db}
}

func (r *partRepository) Create(ctx context.Context, part *entity.Part) error {
	return r.db.WithContext(ctx).Create(part).Error
}

func (r *partRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Part, error) {
	var part entity.Part
	err := r.db.WithContext(ctx).First(&part, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &part, err
}

func (r *partRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Part, error) {
	if len(ids) == 0 {
		return []entity.Part{}, nil
	}
	var parts []entity.Part
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&parts).Error
	return parts, err
}

func (r *partRepository) GetByCode(ctx context.Context, code string) (*entity.Part, error) {
	var part entity.Part
	err := r.db.WithContext(ctx).First(&part, "part_code = ?", code).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &part, err
}

func (r *partRepository) Update(ctx context.Context, part *entity.Part) error {
	return r.db.WithContext(ctx).Save(part).Error
}

func (r *partRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Part{}, "id = ?", id).Error
}

func (r *partRepository) List(ctx context.Context) ([]entity.Part, error) {
	var parts []entity.Part
	err := r.db.WithContext(ctx).Order("part_name ASC").Find(&parts).Error
	return parts, err
}

func (r *partRepository) Search(ctx context.Context, query string) ([]entity.Part, error) {
	var parts []entity.Part
	pattern := "%" + query + "%"
	err := r.db.WithContext(ctx).
		Where("part_name ILIKE ? OR part_code ILIKE ? OR description ILIKE ?",
			pattern, pattern, pattern).
		Order("part_name ASC").
		Find(&parts).Error
	return parts, err
}

func (r *partRepository) GetLowStock(ctx context.Context) ([]entity.Part, error) {
	var parts []entity.Part
	err := r.db.WithContext(ctx).
		Where("current_stock <= reorder_threshold").
		Order("current_stock ASC").
		Find(&parts).Error
	return parts, err
}

// AtomicAdjustStock applies delta with a conditional UPDATE so concurrent
// sales cannot drive stock negative.
func (r *partRepository) AtomicAdjustStock(ctx context.Context, id uuid.UUID, delta int) (bool, error) {
	query := r.db.WithContext(ctx).Model(&entity.Part{}).Where("id = ?", id)
	if delta < 0 {
		query = query.Where("current_stock >= ?", -delta)
	}
	result := query.UpdateColumn("current_stock", gorm.Expr("current_stock + ?", delta))
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *partRepository) AtomicDecrementBatch(ctx context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failedIDs []uuid.UUID

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, qty := range decrements {
			result := tx.Model(&entity.Part{}).
				Where("id = ? AND current_stock >= ?", id, qty).
				UpdateColumn("current_stock", gorm.Expr("current_stock - ?", qty))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				failedIDs = append(failedIDs, id)
			}
		}
		if len(failedIDs) > 0 {
			return fmt.Errorf("insufficient stock for %d part(s)", len(failedIDs))
		}
		return nil
	})

	if len(failedIDs) > 0 {
		return failedIDs, nil
	}
	return nil, err
}

func (r *partRepository) AtomicIncrementBatch(ctx context.Context, increments map[uuid.UUID]int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for id, qty := range increments {
			result := tx.Model(&entity.Part{}).
				Where("id = ?", id).
				UpdateColumn("current_stock", gorm.Expr("current_stock + ?", qty))
			if result.Error != nil {
				return result.Error
			}
		}
		return nil
	})
}
