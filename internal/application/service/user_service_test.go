package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
	"github.com/jakindah/motorshop-api/pkg/apperror"
	"github.com/jakindah/motorshop-api/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserFixture(users ...*entity.User) (*UserService, *fakeUserRepo, *fakeAuditRepo) {
	userRepo := newFakeUserRepo(users...)
	auditRepo := &fakeAuditRepo{}
	svc := NewUserService(userRepo, newFakeVendorRepo(), NewAuditService(auditRepo))
	return svc, userRepo, auditRepo
}

func TestResetPasswordReplacesHash(t *testing.T) {
	hashed, err := utils.HashPassword("old-password")
	require.NoError(t, err)

	account := &entity.User{
		ID:       uuid.New(),
		Email:    "clerk@motorshop.test",
		Password: hashed,
		Role:     enum.RoleSalesExecutive,
	}
	svc, userRepo, auditRepo := newUserFixture(account)

	require.NoError(t, svc.ResetPassword(context.Background(), account.ID, "brand-new-pass", "admin@motorshop.test"))

	stored, err := userRepo.GetByID(context.Background(), account.ID)
	require.NoError(t, err)
	assert.False(t, utils.CheckPasswordHash("old-password", stored.Password))
	assert.True(t, utils.CheckPasswordHash("brand-new-pass", stored.Password))

	require.NotEmpty(t, auditRepo.entries)
	assert.Equal(t, "PASSWORD_RESET", auditRepo.entries[len(auditRepo.entries)-1].ActionType)
}

func TestResetPasswordUnknownUser(t *testing.T) {
	svc, _, _ := newUserFixture()

	err := svc.ResetPassword(context.Background(), uuid.New(), "whatever-pass", "admin@motorshop.test")
	require.Error(t, err)
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
