package handlers

import (
	"errors"

	"e2d-ledger/internal/core/domain"
	"e2d-ledger/internal/core/services"
	"e2d-ledger/internal/pkg/response"
	"e2d-ledger/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// SavingsHandler handles savings and caisse endpoints
type SavingsHandler struct {
	savingsService *services.SavingsService
}

// NewSavingsHandler creates a new savings handler
func NewSavingsHandler(savingsService *services.SavingsService) *SavingsHandler {
	return &SavingsHandler{savingsService: savingsService}
}

// Deposit handles savings deposits
// @Summary Record deposit
// @Description Record a member's savings deposit for an exercise
// @Tags Savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateDepositInput true "Deposit data"
// @Success 201 {object} response.Response
// @Router /epargne/deposits [post]
func (h *SavingsHandler) Deposit(c *fiber.Ctx) error {
	var input services.CreateDepositInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	deposit, err := h.savingsService.Deposit(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to record deposit")
		}
	}

	return response.Created(c, "Deposit recorded successfully", deposit)
}

// ListDeposits handles deposit listing
// @Summary List deposits
// @Description List savings deposits, optionally limited to an exercise
// @Tags Savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercice query int false "Exercise year"
// @Success 200 {object} response.Response
// @Router /epargne/deposits [get]
func (h *SavingsHandler) ListDeposits(c *fiber.Ctx) error {
	exercise := c.QueryInt("exercice")

	deposits, err := h.savingsService.ListDeposits(c.Context(), exercise)
	if err != nil {
		return response.InternalServerError(c, "Failed to list deposits")
	}

	return response.Success(c, "Deposits retrieved successfully", deposits)
}

// GetDeposit handles deposit detail
// @Summary Get deposit
// @Description Get a savings deposit by ID
// @Tags Savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deposit ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /epargne/deposits/{id} [get]
func (h *SavingsHandler) GetDeposit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid deposit ID")
	}

	deposit, err := h.savingsService.GetDeposit(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrDepositNotFound) {
			return response.NotFound(c, "Deposit not found")
		}
		return response.InternalServerError(c, "Failed to get deposit")
	}

	return response.Success(c, "Deposit retrieved successfully", deposit)
}

// DepositsByMember handles a member's savings history
// @Summary Member deposits
// @Description List every savings deposit of a member
// @Tags Savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id}/epargne [get]
func (h *SavingsHandler) DepositsByMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	deposits, err := h.savingsService.GetDepositsByMember(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to list deposits")
	}

	return response.Success(c, "Deposits retrieved successfully", deposits)
}

// RepayDeposit handles exercise-end restitution
// @Summary Repay deposit
// @Description Return a deposit to its member at exercise end
// @Tags Savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deposit ID"
// @Param body body services.RepayDepositInput false "Repayment data"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /epargne/deposits/{id}/repay [patch]
func (h *SavingsHandler) RepayDeposit(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid deposit ID")
	}

	var input services.RepayDepositInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
	}

	deposit, err := h.savingsService.RepayDeposit(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrDepositNotFound):
			return response.NotFound(c, "Deposit not found")
		case errors.Is(err, services.ErrDepositNotActive):
			return response.Conflict(c, "Deposit is already repaid")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to repay deposit")
		}
	}

	return response.Success(c, "Deposit repaid successfully", deposit)
}

// InterestShare handles the interest projection
// @Summary Deposit interest share
// @Description Projected interest share of a deposit; zero until the bureau votes a formula
// @Tags Savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Deposit ID"
// @Success 200 {object} response.Response
// @Router /epargne/deposits/{id}/interest [get]
func (h *SavingsHandler) InterestShare(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid deposit ID")
	}

	share, err := h.savingsService.InterestShare(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrDepositNotFound) {
			return response.NotFound(c, "Deposit not found")
		}
		return response.InternalServerError(c, "Failed to compute interest share")
	}

	return response.Success(c, "Interest share computed successfully", fiber.Map{
		"depot_id":     id,
		"part_interet": share,
	})
}

// CreateCaisseDue handles caisse obligations
// @Summary Create caisse due
// @Description Open a member's yearly caisse obligation
// @Tags Savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateCaisseDueInput true "Caisse due data"
// @Success 201 {object} response.Response
// @Router /epargne/caisse [post]
func (h *SavingsHandler) CreateCaisseDue(c *fiber.Ctx) error {
	var input services.CreateCaisseDueInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	due, err := h.savingsService.CreateCaisseDue(c.Context(), &input)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to create caisse due")
	}

	return response.Created(c, "Caisse due created successfully", due)
}

// PayCaisseDue handles caisse payments
// @Summary Pay caisse due
// @Description Mark a caisse obligation as paid
// @Tags Savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Caisse due ID"
// @Param body body payInput false "Payment date"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /epargne/caisse/{id}/pay [patch]
func (h *SavingsHandler) PayCaisseDue(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid caisse due ID")
	}

	var input payInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
	}

	due, err := h.savingsService.PayCaisseDue(c.Context(), id, input.PaymentDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCaisseDueNotFound):
			return response.NotFound(c, "Caisse due not found")
		case errors.Is(err, services.ErrCaisseDuePaid):
			return response.Conflict(c, "Caisse due is already paid")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to pay caisse due")
		}
	}

	return response.Success(c, "Caisse due paid successfully", due)
}

// CaisseSummary handles the exercise summary
// @Summary Caisse summary
// @Description Dues and collected total of a caisse exercise
// @Tags Savings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param exercice query int true "Exercise year"
// @Success 200 {object} response.Response
// @Router /epargne/caisse/summary [get]
func (h *SavingsHandler) CaisseSummary(c *fiber.Ctx) error {
	exercise := c.QueryInt("exercice")
	if exercise == 0 {
		return response.BadRequest(c, "Exercise year is required")
	}

	summary, err := h.savingsService.CaisseSummary(c.Context(), exercise)
	if err != nil {
		return response.InternalServerError(c, "Failed to build caisse summary")
	}

	return response.Success(c, "Caisse summary retrieved successfully", summary)
}
