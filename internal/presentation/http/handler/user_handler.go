package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jakindah/motorshop-api/internal/application/service"
	"github.com/jakindah/motorshop-api/internal/domain/enum"
	"github.com/jakindah/motorshop-api/internal/presentation/http/dto/request"
	"github.com/jakindah/motorshop-api/internal/presentation/http/dto/response"
)

// UserHandler handles staff account administration endpoints
type UserHandler struct {
	userSvc *service.UserService
}

// NewUserHandler creates a new user handler
func NewUserHandler(userSvc *service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

// List returns all accounts
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userSvc.ListUsers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Users retrieved", users)
}

// Get returns a single account by ID
func (h *UserHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	user, err := h.userSvc.GetUser(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "User retrieved", user)
}

// Create creates an account with an explicit role
func (h *UserHandler) Create(c *gin.Context) {
	var req request.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	var vendorID *uuid.UUID
	if req.VendorID != nil {
		id, err := uuid.Parse(*req.VendorID)
		if err != nil {
			response.BadRequest(c, "Invalid vendor ID")
			return
		}
		vendorID = &id
	}

	user, err := h.userSvc.CreateUser(c.Request.Context(), &service.CreateUserInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Role:      enum.Role(req.Role),
		VendorID:  vendorID,
		CreatedBy: GetUserEmail(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "User created", user)
}

// ChangeRole reassigns a user's role
func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	user, err := h.userSvc.ChangeRole(c.Request.Context(), id, enum.Role(req.Role), GetUserEmail(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Role updated", user)
}

// ResetPassword sets a new password for an account
func (h *UserHandler) ResetPassword(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	var req request.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	if err := h.userSvc.ResetPassword(c.Request.Context(), id, req.NewPassword, GetUserEmail(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Password reset", nil)
}

// Delete removes an account
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid user ID")
		return
	}

	if err := h.userSvc.DeleteUser(c.Request.Context(), id, GetUserEmail(c)); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
