package repository

import (
	"context"

	"github.com/jakindah/motorshop-api/internal/domain/entity"
)

// SettingRepository defines the interface for system setting operations
type SettingRepository interface {
	GetByKey(ctx context.Context, key string) (*entity.SystemSetting, error)
	List(ctx context.Context) ([]entity.SystemSetting, error)
	Upsert(ctx context.Context, setting *entity.SystemSetting) error
	Delete(ctx context.Context, key string) error
}
