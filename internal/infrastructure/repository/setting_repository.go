package repository

import (
	"context"
	"errors"

	"github.com/jakindah/motorshop-api/internal/domain/entity"
	domainRepo "github.com/jakindah/motorshop-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type settingRepository struct {
	db *gorm.DB
}

// NewSettingRepository creates a new system setting repository
func NewSettingRepository(db *gorm.DB) domainRepo.SettingRepository {
	return &settingRepository{db: db}
}

func (r *settingRepository) GetByKey(ctx context.Context, key string) (*entity.SystemSetting, error) {
	var setting entity.SystemSetting
	err := r.db.WithContext(ctx).First(&setting, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &setting, err
}

func (r *settingRepository) List(ctx context.Context) ([]entity.SystemSetting, error) {
	var settings []entity.SystemSetting
	err := r.db.WithContext(ctx).Order("key ASC").Find(&settings).Error
	return settings, err
}

func (r *settingRepository) Upsert(ctx context.Context, setting *entity.SystemSetting) error {
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "description", "updated_at"}),
	}).Create(setting).Error
}

func (r *settingRepository) Delete(ctx context.Context, key string) error {
	return r.db.WithContext(ctx).Delete(&entity.SystemSetting{}, "key = ?", key).Error
}
