package service

import (
	"context"
	"strconv"

	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/internal/domain/repository"
	"github.com/jakindah/motorshop-api/pkg/apperror"
)

// SettingsService manages system-wide configuration entries
type SettingsService struct {
	settingRepo repository.SettingRepository
	auditSvc    *AuditService
}

// NewSettingsService creates a new settings service
func NewSettingsService(settingRepo repository.SettingRepository, auditSvc *AuditService) *SettingsService {
	return &SettingsService{
		settingRepo: settingRepo,
		auditSvc:    auditSvc,
	}
}

// Get returns a single setting by key
func (s *SettingsService) Get(ctx context.Context, key string) (*entity.SystemSetting, error) {
	setting, err := s.settingRepo.GetByKey(ctx, key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, apperror.NewNotFoundError("Setting")
	}
	return setting, nil
}

// List returns all settings
func (s *SettingsService) List(ctx context.Context) ([]entity.SystemSetting, error) {
	return s.settingRepo.List(ctx)
}

// UpdateInput represents a setting update
type SettingUpdateInput struct {
	Key         string
	Value       string
	Description string
	UpdatedBy   string
}

// Update creates or replaces a setting. The tax rate is validated here so a
// bad value can never reach the pricing path.
func (s *SettingsService) Update(ctx context.Context, input *SettingUpdateInput) (*entity.SystemSetting, error) {
	if input.Key == entity.SettingSalesTaxRate {
		rate, err := strconv.ParseFloat(input.Value, 64)
		if err != nil || rate < 0 || rate >= 1 {
			return nil, apperror.NewBadRequestError("Tax rate must be a decimal between 0 and 1")
		}
	}

	existing, err := s.settingRepo.GetByKey(ctx, input.Key)
	if err != nil {
		return nil, err
	}

	setting := &entity.SystemSetting{
		Key:         input.Key,
		Value:       input.Value,
		Description: input.Description,
	}
	if input.Description == "" && existing != nil {
		setting.Description = existing.Description
	}

	if err := s.settingRepo.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	oldValue := ""
	if existing != nil {
		oldValue = existing.Value
	}
	s.auditSvc.LogChange(ctx, input.UpdatedBy, "SETTING_UPDATED", "SystemSetting", nil, oldValue, input.Value, "Setting "+input.Key+" updated")

	return setting, nil
}

// TaxRate returns the configured sales tax rate, falling back to zero when
// the setting is missing or malformed.
func (s *SettingsService) TaxRate(ctx context.Context) (float64, error) {
	setting, err := s.settingRepo.GetByKey(ctx, entity.SettingSalesTaxRate)
	if err != nil {
		return 0, err
	}
	if setting == nil {
		return 0, nil
	}

	rate, err := strconv.ParseFloat(setting.Value, 64)
	if err != nil || rate < 0 {
		return 0, nil
	}
	return rate, nil
}
