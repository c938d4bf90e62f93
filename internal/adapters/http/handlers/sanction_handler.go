package handlers

import (
	"errors"

	"e2d-ledger/internal/adapters/persistence/models"
	"e2d-ledger/internal/core/domain"
	"e2d-ledger/internal/core/services"
	"e2d-ledger/internal/pkg/pagination"
	"e2d-ledger/internal/pkg/response"
	"e2d-ledger/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// SanctionHandler handles sanction endpoints
type SanctionHandler struct {
	sanctionService *services.SanctionService
}

// NewSanctionHandler creates a new sanction handler
func NewSanctionHandler(sanctionService *services.SanctionService) *SanctionHandler {
	return &SanctionHandler{sanctionService: sanctionService}
}

// sanctionResponses maps sanctions to their DTOs.
func sanctionResponses(sanctions []*models.Sanction) []*models.SanctionResponse {
	out := make([]*models.SanctionResponse, 0, len(sanctions))
	for _, s := range sanctions {
		out = append(out, s.ToResponse())
	}
	return out
}

// payInput carries the optional payment date.
type payInput struct {
	PaymentDate string `json:"date_paiement,omitempty"`
}

// Create handles sanction creation
// @Summary Create sanction
// @Description Record a fine against a member
// @Tags Sanctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateSanctionInput true "Sanction data"
// @Success 201 {object} response.Response
// @Router /sanctions [post]
func (h *SanctionHandler) Create(c *fiber.Ctx) error {
	var input services.CreateSanctionInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	actorID, _ := c.Locals("userID").(uint)

	sanction, err := h.sanctionService.Create(c.Context(), &input, actorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, services.ErrSanctionTypeNotFound):
			return response.NotFound(c, "Sanction type not found")
		case errors.Is(err, services.ErrSanctionTypeInactive):
			return response.Conflict(c, "Sanction type is inactive")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to create sanction")
		}
	}

	return response.Created(c, "Sanction created successfully", sanction.ToResponse())
}

// List handles sanction listing
// @Summary List sanctions
// @Description List sanctions with optional status and category filters
// @Tags Sanctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param statut query string false "Filter by status (impayee, payee, annulee)"
// @Param categorie query string false "Filter by type category"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /sanctions [get]
func (h *SanctionHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	sanctions, total, err := h.sanctionService.List(c.Context(),
		c.Query("statut"), c.Query("categorie"), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list sanctions")
	}

	return response.Success(c, "Sanctions retrieved successfully",
		pagination.NewResponse(sanctionResponses(sanctions), params, total))
}

// Get handles sanction detail
// @Summary Get sanction
// @Description Get a sanction by ID
// @Tags Sanctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sanction ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sanctions/{id} [get]
func (h *SanctionHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid sanction ID")
	}

	sanction, err := h.sanctionService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrSanctionNotFound) {
			return response.NotFound(c, "Sanction not found")
		}
		return response.InternalServerError(c, "Failed to get sanction")
	}

	return response.Success(c, "Sanction retrieved successfully", sanction.ToResponse())
}

// ByMember handles a member's sanction history
// @Summary Member sanctions
// @Description List every sanction of a member, newest first
// @Tags Sanctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id}/sanctions [get]
func (h *SanctionHandler) ByMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	sanctions, err := h.sanctionService.GetByMember(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to list sanctions")
	}

	return response.Success(c, "Sanctions retrieved successfully", sanctionResponses(sanctions))
}

// Pay handles sanction payment
// @Summary Pay sanction
// @Description Mark an unpaid sanction as paid
// @Tags Sanctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sanction ID"
// @Param body body payInput false "Payment date"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /sanctions/{id}/pay [patch]
func (h *SanctionHandler) Pay(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid sanction ID")
	}

	var input payInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
	}

	sanction, err := h.sanctionService.Pay(c.Context(), id, input.PaymentDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSanctionNotFound):
			return response.NotFound(c, "Sanction not found")
		case errors.Is(err, services.ErrSanctionNotUnpaid):
			return response.Conflict(c, "Sanction is not unpaid")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to pay sanction")
		}
	}

	return response.Success(c, "Sanction paid successfully", sanction.ToResponse())
}

// Unpay handles payment reversal
// @Summary Unpay sanction
// @Description Revert a paid sanction back to unpaid
// @Tags Sanctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sanction ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /sanctions/{id}/unpay [patch]
func (h *SanctionHandler) Unpay(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid sanction ID")
	}

	sanction, err := h.sanctionService.Unpay(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSanctionNotFound):
			return response.NotFound(c, "Sanction not found")
		case errors.Is(err, services.ErrSanctionNotPaid):
			return response.Conflict(c, "Sanction is not paid")
		default:
			return response.InternalServerError(c, "Failed to unpay sanction")
		}
	}

	return response.Success(c, "Sanction reverted to unpaid", sanction.ToResponse())
}

// Cancel handles sanction cancellation
// @Summary Cancel sanction
// @Description Cancel a sanction; it no longer counts toward suspension
// @Tags Sanctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sanction ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /sanctions/{id}/cancel [patch]
func (h *SanctionHandler) Cancel(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid sanction ID")
	}

	sanction, err := h.sanctionService.Cancel(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSanctionNotFound):
			return response.NotFound(c, "Sanction not found")
		case errors.Is(err, services.ErrSanctionCancelled):
			return response.Conflict(c, "Sanction is already cancelled")
		default:
			return response.InternalServerError(c, "Failed to cancel sanction")
		}
	}

	return response.Success(c, "Sanction cancelled successfully", sanction.ToResponse())
}

// ListTypes handles the sanction-type catalog
// @Summary List sanction types
// @Description List the sanction-type catalog, optionally by category
// @Tags Sanctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param categorie query string false "Filter by category"
// @Success 200 {object} response.Response
// @Router /sanction-types [get]
func (h *SanctionHandler) ListTypes(c *fiber.Ctx) error {
	types, err := h.sanctionService.ListTypes(c.Context(), c.Query("categorie"))
	if err != nil {
		return response.InternalServerError(c, "Failed to list sanction types")
	}

	return response.Success(c, "Sanction types retrieved successfully", types)
}

// CreateType handles catalog additions
// @Summary Create sanction type
// @Description Add a sanction type to the catalog
// @Tags Sanctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.SanctionTypeInput true "Sanction type data"
// @Success 201 {object} response.Response
// @Router /sanction-types [post]
func (h *SanctionHandler) CreateType(c *fiber.Ctx) error {
	var input services.SanctionTypeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	sanctionType, err := h.sanctionService.CreateType(c.Context(), &input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create sanction type")
	}

	return response.Created(c, "Sanction type created successfully", sanctionType)
}

// UpdateType handles catalog edits
// @Summary Update sanction type
// @Description Edit a sanction type; existing sanctions keep their amounts
// @Tags Sanctions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Sanction type ID"
// @Param body body services.SanctionTypeInput true "Sanction type data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /sanction-types/{id} [put]
func (h *SanctionHandler) UpdateType(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid sanction type ID")
	}

	var input services.SanctionTypeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	active := c.QueryBool("actif", true)

	sanctionType, err := h.sanctionService.UpdateType(c.Context(), id, &input, active)
	if err != nil {
		if errors.Is(err, services.ErrSanctionTypeNotFound) {
			return response.NotFound(c, "Sanction type not found")
		}
		return response.InternalServerError(c, "Failed to update sanction type")
	}

	return response.Success(c, "Sanction type updated successfully", sanctionType)
}
