package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/domain/entity"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
	"github.com/jakindah/motorshop-api/internal/domain/repository"
	"github.com/jakindah/motorshop-api/pkg/apperror"
	"github.com/jakindah/motorshop-api/pkg/utils"
)

// UserService handles staff account administration
type UserService struct {
	userRepo   repository.UserRepository
	vendorRepo repository.VendorRepository
	auditSvc   *AuditService
}

// NewUserService creates a new user service
func NewUserService(userRepo repository.UserRepository, vendorRepo repository.VendorRepository, auditSvc *AuditService) *UserService {
	return &UserService{
		userRepo:   userRepo,
		vendorRepo: vendorRepo,
		auditSvc:   auditSvc,
	}
}

// ListUsers returns all accounts
func (s *UserService) ListUsers(ctx context.Context) ([]entity.User, error) {
	return s.userRepo.List(ctx)
}

// GetUser returns a single account by ID
func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}
	return user, nil
}

// CreateUserInput represents an admin-created account
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Role      enum.Role
	VendorID  *uuid.UUID
	CreatedBy string
}

// CreateUser creates an account with an explicit role. VENDOR accounts must
// be linked to a vendor record so the portal knows whose orders to show.
func (s *UserService) CreateUser(ctx context.Context, input *CreateUserInput) (*entity.User, error) {
	if !input.Role.Valid() {
		return nil, apperror.NewBadRequestError("Unknown role")
	}

	existing, err := s.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("Email already registered")
	}

	if input.Role == enum.RoleVendor {
		if input.VendorID == nil {
			return nil, apperror.NewBadRequestError("Vendor accounts must be linked to a vendor")
		}
		vendor, err := s.vendorRepo.GetByID(ctx, *input.VendorID)
		if err != nil {
			return nil, err
		}
		if vendor == nil {
			return nil, apperror.NewNotFoundError("Vendor")
		}
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashedPassword,
		Role:      input.Role,
		Provider:  "local",
		VendorID:  input.VendorID,
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.auditSvc.Log(ctx, input.CreatedBy, "USER_CREATED", "User", &user.ID,
		fmt.Sprintf("User %s created with role %s", user.Email, user.Role))
	return user, nil
}

// ChangeRole reassigns a user's role
func (s *UserService) ChangeRole(ctx context.Context, id uuid.UUID, role enum.Role, changedBy string) (*entity.User, error) {
	if !role.Valid() {
		return nil, apperror.NewBadRequestError("Unknown role")
	}

	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperror.NewNotFoundError("User")
	}

	oldRole := string(user.Role)
	user.Role = role
	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.auditSvc.LogChange(ctx, changedBy, "ROLE_CHANGED", "User", &user.ID, oldRole, string(role),
		fmt.Sprintf("Role for %s changed", user.Email))
	return user, nil
}

// ResetPassword replaces an account's password with an admin-issued one
func (s *UserService) ResetPassword(ctx context.Context, id uuid.UUID, newPassword string, resetBy string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	hashedPassword, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}

	user.Password = hashedPassword
	if err := s.userRepo.Update(ctx, user); err != nil {
		return err
	}

	s.auditSvc.Log(ctx, resetBy, "PASSWORD_RESET", "User", &id,
		fmt.Sprintf("Password reset for %s", user.Email))
	return nil
}

// DeleteUser removes an account
func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID, deletedBy string) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if user == nil {
		return apperror.NewNotFoundError("User")
	}

	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.auditSvc.Log(ctx, deletedBy, "USER_DELETED", "User", &id,
		fmt.Sprintf("User %s deleted", user.Email))
	return nil
}
