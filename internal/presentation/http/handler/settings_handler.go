package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/jakindah/motorshop-api/internal/application/service"
	"github.com/jakindah/motorshop-api/internal/presentation/http/dto/request"
	"github.com/jakindah/motorshop-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles system setting endpoints
type SettingsHandler struct {
	settingsSvc *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsSvc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

// List returns all system settings
func (h *SettingsHandler) List(c *gin.Context) {
	settings, err := h.settingsSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings retrieved", settings)
}

// Get returns a single setting by key. Readable by any authenticated session
// so terminals can fetch the tax rate at startup.
func (h *SettingsHandler) Get(c *gin.Context) {
	setting, err := h.settingsSvc.Get(c.Request.Context(), c.Param("key"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Setting retrieved", setting)
}

// Update creates or replaces a setting
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.UpdateSettingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request payload")
		return
	}

	setting, err := h.settingsSvc.Update(c.Request.Context(), &service.SettingUpdateInput{
		Key:         c.Param("key"),
		Value:       req.Value,
		Description: req.Description,
		UpdatedBy:   GetUserEmail(c),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Setting updated", setting)
}
