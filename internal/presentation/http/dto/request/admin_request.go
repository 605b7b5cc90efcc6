package request

// UpdateSettingRequest represents the payload for changing a system setting
type UpdateSettingRequest struct {
	Value       string `json:"value" binding:"required"`
	Description string `json:"description"`
}

// CreateUserRequest represents an admin-created account
type CreateUserRequest struct {
	FirstName string  `json:"firstName" binding:"required"`
	LastName  string  `json:"lastName" binding:"required"`
	Email     string  `json:"email" binding:"required,email"`
	Password  string  `json:"password" binding:"required,min=8"`
	Role      string  `json:"role" binding:"required"`
	VendorID  *string `json:"vendorId" binding:"omitempty,uuid"`
}

// ChangeRoleRequest represents the payload for reassigning a user's role
type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// ResetPasswordRequest represents an admin-issued password reset
type ResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}
