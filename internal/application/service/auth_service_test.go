package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jakindah/motorshop-api/internal/domain/enum"
	"github.com/jakindah/motorshop-api/pkg/apperror"
	"github.com/jakindah/motorshop-api/pkg/utils"
)

func newAuthFixture() (*AuthService, *fakeUserRepo) {
	userRepo := newFakeUserRepo()
	auditSvc := NewAuditService(&fakeAuditRepo{})
	jwtManager := utils.NewJWTManager("test-secret", time.Hour, 24*time.Hour)
	return NewAuthService(userRepo, auditSvc, jwtManager, nil), userRepo
}

func TestRegisterAndLogin(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{
		FirstName: "Jane",
		LastName:  "Okoth",
		Email:     "jane@shop.test",
		Password:  "s3cret-pass",
	})
	require.NoError(t, err)
	assert.Equal(t, enum.RoleSalesExecutive, user.Role)
	assert.NotEqual(t, "s3cret-pass", user.Password, "password must be stored hashed")

	out, err := svc.Login(ctx, &LoginInput{Email: "jane@shop.test", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, user.ID, out.User.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{
		FirstName: "Jane", Email: "jane@shop.test", Password: "s3cret-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "jane@shop.test", Password: "wrong"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)

	_, err = svc.Login(ctx, &LoginInput{Email: "nobody@shop.test", Password: "s3cret-pass"})
	assert.ErrorIs(t, err, apperror.ErrInvalidCredentials)
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "jane@shop.test", Password: "pass-one"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, &RegisterInput{Email: "jane@shop.test", Password: "pass-two"})
	require.True(t, apperror.IsAppError(err))
	assert.Equal(t, 409, apperror.GetAppError(err).Code)
}

func TestRefreshTokenIssuesNewPair(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	_, err := svc.Register(ctx, &RegisterInput{Email: "jane@shop.test", Password: "s3cret-pass"})
	require.NoError(t, err)
	out, err := svc.Login(ctx, &LoginInput{Email: "jane@shop.test", Password: "s3cret-pass"})
	require.NoError(t, err)

	refreshed, err := svc.RefreshToken(ctx, out.RefreshToken)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshed.AccessToken)
	assert.Equal(t, out.User.ID, refreshed.User.ID)

	_, err = svc.RefreshToken(ctx, "garbage-token")
	assert.ErrorIs(t, err, apperror.ErrInvalidToken)
}

func TestChangePasswordRequiresCurrent(t *testing.T) {
	svc, _ := newAuthFixture()
	ctx := context.Background()

	user, err := svc.Register(ctx, &RegisterInput{Email: "jane@shop.test", Password: "old-pass"})
	require.NoError(t, err)

	err = svc.ChangePassword(ctx, &ChangePasswordInput{
		UserID: user.ID, CurrentPassword: "wrong", NewPassword: "new-pass",
	})
	require.True(t, apperror.IsAppError(err))

	err = svc.ChangePassword(ctx, &ChangePasswordInput{
		UserID: user.ID, CurrentPassword: "old-pass", NewPassword: "new-pass",
	})
	require.NoError(t, err)

	_, err = svc.Login(ctx, &LoginInput{Email: "jane@shop.test", Password: "new-pass"})
	assert.NoError(t, err)
}

func TestGoogleLoginUnconfigured(t *testing.T) {
	svc, _ := newAuthFixture()

	_, err := svc.GoogleAuthURL("state")
	assert.Error(t, err)

	_, err = svc.GoogleLogin(context.Background(), "code")
	assert.Error(t, err)
}
