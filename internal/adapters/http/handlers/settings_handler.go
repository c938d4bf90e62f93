package handlers

import (
	"errors"

	"e2d-ledger/internal/core/services"
	"e2d-ledger/internal/pkg/response"
	"e2d-ledger/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler handles configuration endpoints
type SettingsHandler struct {
	settingsService *services.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// List handles configuration listing
// @Summary List settings
// @Description List every configuration entry
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /settings [get]
func (h *SettingsHandler) List(c *fiber.Ctx) error {
	settings, err := h.settingsService.List(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list settings")
	}

	return response.Success(c, "Settings retrieved successfully", settings)
}

// Get handles setting detail
// @Summary Get setting
// @Description Get a configuration entry with its typed value
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param key path string true "Setting key"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /settings/{key} [get]
func (h *SettingsHandler) Get(c *fiber.Ctx) error {
	key := c.Params("key")

	setting, err := h.settingsService.Get(c.Context(), key)
	if err != nil {
		if errors.Is(err, services.ErrSettingNotFound) {
			return response.NotFound(c, "Setting not found")
		}
		return response.InternalServerError(c, "Failed to get setting")
	}

	value, err := h.settingsService.GetValue(c.Context(), key)
	if err != nil {
		return response.InternalServerError(c, "Failed to get setting")
	}

	return response.Success(c, "Setting retrieved successfully", fiber.Map{
		"setting": setting,
		"valeur":  value,
	})
}

// Set handles configuration writes
// @Summary Set setting
// @Description Create or update a configuration entry
// @Tags Settings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SetSettingInput true "Setting data"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /settings [put]
func (h *SettingsHandler) Set(c *fiber.Ctx) error {
	var input services.SetSettingInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	actorID, _ := c.Locals("userID").(uint)

	setting, err := h.settingsService.Set(c.Context(), &input, actorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBadSettingType):
			return response.BadRequest(c, "Value does not match the declared type")
		case errors.Is(err, services.ErrSettingReadOnly):
			return response.Conflict(c, "Setting is not modifiable")
		default:
			return response.InternalServerError(c, "Failed to save setting")
		}
	}

	return response.Success(c, "Setting saved successfully", setting)
}
