package handlers

import (
	"errors"
	"time"

	"e2d-ledger/internal/adapters/persistence/models"
	"e2d-ledger/internal/core/domain"
	"e2d-ledger/internal/core/services"
	"e2d-ledger/internal/pkg/pagination"
	"e2d-ledger/internal/pkg/response"
	"e2d-ledger/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// AidHandler handles social aid and sovereign-fund debt endpoints
type AidHandler struct {
	aidService *services.AidService
}

// NewAidHandler creates a new aid handler
func NewAidHandler(aidService *services.AidService) *AidHandler {
	return &AidHandler{aidService: aidService}
}

// aidResponses maps aids to their DTOs.
func aidResponses(aids []*models.SocialAid) []*models.SocialAidResponse {
	out := make([]*models.SocialAidResponse, 0, len(aids))
	for _, a := range aids {
		out = append(out, a.ToResponse())
	}
	return out
}

// debtResponses maps debts to their DTOs; the overdue and due-soon
// labels are derived against the given day.
func debtResponses(debts []*models.SovereignDebt, today time.Time) []*models.SovereignDebtResponse {
	out := make([]*models.SovereignDebtResponse, 0, len(debts))
	for _, d := range debts {
		out = append(out, d.ToResponse(today))
	}
	return out
}

// Create handles aid granting
// @Summary Grant social aid
// @Description Grant an aid and, when requested, open the sovereign-fund debt
// @Tags Aids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateAidInput true "Aid data"
// @Success 201 {object} response.Response
// @Router /aides [post]
func (h *AidHandler) Create(c *fiber.Ctx) error {
	var input services.CreateAidInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	actorID, _ := c.Locals("userID").(uint)

	aid, warning, err := h.aidService.Create(c.Context(), &input, actorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Beneficiary not found")
		case errors.Is(err, services.ErrAidTypeNotFound):
			return response.NotFound(c, "Aid type not found")
		case errors.Is(err, services.ErrAidTypeInactive):
			return response.Conflict(c, "Aid type is inactive")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to grant aid")
		}
	}

	if warning != "" {
		return response.CreatedWithWarning(c, "Aid granted", warning, aid.ToResponse())
	}
	return response.Created(c, "Aid granted successfully", aid.ToResponse())
}

// List handles aid listing
// @Summary List aids
// @Description List social aids with optional status filter
// @Tags Aids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param statut query string false "Filter by status (accordee, remboursee)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /aides [get]
func (h *AidHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	aids, total, err := h.aidService.List(c.Context(), c.Query("statut"), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list aids")
	}

	return response.Success(c, "Aids retrieved successfully",
		pagination.NewResponse(aidResponses(aids), params, total))
}

// Get handles aid detail
// @Summary Get aid
// @Description Get a social aid by ID
// @Tags Aids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Aid ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /aides/{id} [get]
func (h *AidHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid aid ID")
	}

	aid, err := h.aidService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrAidNotFound) {
			return response.NotFound(c, "Aid not found")
		}
		return response.InternalServerError(c, "Failed to get aid")
	}

	return response.Success(c, "Aid retrieved successfully", aid.ToResponse())
}

// ByMember handles a member's aid history
// @Summary Member aids
// @Description List every aid granted to a member
// @Tags Aids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id}/aides [get]
func (h *AidHandler) ByMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	aids, err := h.aidService.GetByMember(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to list aids")
	}

	return response.Success(c, "Aids retrieved successfully", aidResponses(aids))
}

// MarkRepaid handles aid repayment
// @Summary Mark aid repaid
// @Description Mark an aid as repaid; the matching debt is settled separately
// @Tags Aids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Aid ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /aides/{id}/repay [patch]
func (h *AidHandler) MarkRepaid(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid aid ID")
	}

	aid, err := h.aidService.MarkRepaid(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrAidNotFound):
			return response.NotFound(c, "Aid not found")
		case errors.Is(err, services.ErrAidAlreadyDone):
			return response.Conflict(c, "Aid is already marked repaid")
		default:
			return response.InternalServerError(c, "Failed to mark aid repaid")
		}
	}

	return response.Success(c, "Aid marked repaid successfully", aid.ToResponse())
}

// ListDebts handles debt listing
// @Summary List sovereign-fund debts
// @Description List debts with optional status filter
// @Tags Debts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param statut query string false "Filter by status (en_cours, soldee)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /dettes [get]
func (h *AidHandler) ListDebts(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	debts, total, err := h.aidService.ListDebts(c.Context(), c.Query("statut"), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list debts")
	}

	return response.Success(c, "Debts retrieved successfully",
		pagination.NewResponse(debtResponses(debts, domain.DateOnly(time.Now())), params, total))
}

// GetDebt handles debt detail
// @Summary Get debt
// @Description Get a sovereign-fund debt by ID
// @Tags Debts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Debt ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /dettes/{id} [get]
func (h *AidHandler) GetDebt(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid debt ID")
	}

	debt, err := h.aidService.GetDebt(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrDebtNotFound) {
			return response.NotFound(c, "Debt not found")
		}
		return response.InternalServerError(c, "Failed to get debt")
	}

	return response.Success(c, "Debt retrieved successfully", debt.ToResponse(domain.DateOnly(time.Now())))
}

// DebtsByMember handles a member's debts
// @Summary Member debts
// @Description List every sovereign-fund debt of a member
// @Tags Debts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id}/dettes [get]
func (h *AidHandler) DebtsByMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	debts, err := h.aidService.GetDebtsByMember(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to list debts")
	}

	return response.Success(c, "Debts retrieved successfully", debtResponses(debts, domain.DateOnly(time.Now())))
}

// RecordDebtPayment handles debt amortization
// @Summary Record debt payment
// @Description Record a payment against a debt; settled once remaining reaches zero
// @Tags Debts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Debt ID"
// @Param body body services.DebtPaymentInput true "Payment amount"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /dettes/{id}/payments [post]
func (h *AidHandler) RecordDebtPayment(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid debt ID")
	}

	var input services.DebtPaymentInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	debt, err := h.aidService.RecordDebtPayment(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDebtNotFound):
			return response.NotFound(c, "Debt not found")
		case errors.Is(err, services.ErrDebtSettled):
			return response.Conflict(c, "Debt is already settled")
		default:
			return response.InternalServerError(c, "Failed to record debt payment")
		}
	}

	return response.Success(c, "Debt payment recorded successfully", debt.ToResponse(domain.DateOnly(time.Now())))
}

// DebtAlerts handles the repayment watch list
// @Summary Debt alerts
// @Description Overdue debts and debts due within thirty days
// @Tags Debts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /dettes/alerts [get]
func (h *AidHandler) DebtAlerts(c *fiber.Ctx) error {
	alerts, err := h.aidService.DebtAlertsNow(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build debt alerts")
	}

	today := domain.DateOnly(time.Now())
	return response.Success(c, "Debt alerts retrieved successfully", fiber.Map{
		"en_retard":       debtResponses(alerts.Overdue, today),
		"echeance_proche": debtResponses(alerts.DueSoon, today),
	})
}

// ListAidTypes handles the aid-type catalog
// @Summary List aid types
// @Description List the aid-type catalog
// @Tags Aids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /aid-types [get]
func (h *AidHandler) ListAidTypes(c *fiber.Ctx) error {
	types, err := h.aidService.ListAidTypes(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list aid types")
	}

	return response.Success(c, "Aid types retrieved successfully", types)
}

// CreateAidType handles catalog additions
// @Summary Create aid type
// @Description Add an aid type to the catalog
// @Tags Aids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.AidTypeInput true "Aid type data"
// @Success 201 {object} response.Response
// @Router /aid-types [post]
func (h *AidHandler) CreateAidType(c *fiber.Ctx) error {
	var input services.AidTypeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	aidType, err := h.aidService.CreateAidType(c.Context(), &input)
	if err != nil {
		return response.InternalServerError(c, "Failed to create aid type")
	}

	return response.Created(c, "Aid type created successfully", aidType)
}

// UpdateAidType handles catalog edits
// @Summary Update aid type
// @Description Edit an aid type; granted aids keep their amounts
// @Tags Aids
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Aid type ID"
// @Param body body services.AidTypeInput true "Aid type data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /aid-types/{id} [put]
func (h *AidHandler) UpdateAidType(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid aid type ID")
	}

	var input services.AidTypeInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	active := c.QueryBool("actif", true)

	aidType, err := h.aidService.UpdateAidType(c.Context(), id, &input, active)
	if err != nil {
		if errors.Is(err, services.ErrAidTypeNotFound) {
			return response.NotFound(c, "Aid type not found")
		}
		return response.InternalServerError(c, "Failed to update aid type")
	}

	return response.Success(c, "Aid type updated successfully", aidType)
}
