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

type alertRepository struct {
	db *gorm.DB
}

// NewAlertRepository creates a new inventory alert repository
func NewAlertRepository(db *gorm.DB) domainRepo.AlertRepository {
	return &alertRepository{db: db}
}

func (r *alertRepository) Create(ctx context.Context, alert *entity.InventoryAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

func (r *alertRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.InventoryAlert, error) {
	var alert entity.InventoryAlert
	err := r.db.WithContext(ctx).Preload("Part").First(&alert, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &alert, err
}

func (r *alertRepository) GetOpenByPart(ctx context.Context, partID uuid.UUID) (*entity.InventoryAlert, error) {
	var alert entity.InventoryAlert
	err := r.db.WithContext(ctx).
		First(&alert, "part_id = ? AND status = ?", partID, enum.AlertStatusOpen).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &alert, err
}

func (r *alertRepository) Update(ctx context.Context, alert *entity.InventoryAlert) error {
	return r.db.WithContext(ctx).Save(alert).Error
}

func (r *alertRepository) ListByStatus(ctx context.Context, status enum.AlertStatus) ([]entity.InventoryAlert, error) {
	var alerts []entity.InventoryAlert
	err := r.db.WithContext(ctx).
		Preload("Part").
		Where("status = ?", status).
		Order("detected_at DESC").
		Find(&alerts).Error
	return alerts, err
}
