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

// LoanHandler handles loan endpoints
type LoanHandler struct {
	loanService *services.LoanService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService) *LoanHandler {
	return &LoanHandler{loanService: loanService}
}

// loanResponses maps loans to their DTOs; the overdue and due-soon
// labels are derived against the given day.
func loanResponses(loans []*models.Loan, today time.Time) []*models.LoanResponse {
	out := make([]*models.LoanResponse, 0, len(loans))
	for _, loan := range loans {
		out = append(out, loan.ToResponse(today))
	}
	return out
}

// repayInput carries the optional repayment date.
type repayInput struct {
	RepaymentDate string `json:"date_remboursement,omitempty"`
}

// Create handles loan granting
// @Summary Grant loan
// @Description Grant a loan, fixing interest at the current rate
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateLoanInput true "Loan data"
// @Success 201 {object} response.Response
// @Router /prets [post]
func (h *LoanHandler) Create(c *fiber.Ctx) error {
	var input services.CreateLoanInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	actorID, _ := c.Locals("userID").(uint)

	loan, err := h.loanService.Create(c.Context(), &input, actorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Borrower not found")
		case errors.Is(err, services.ErrInvalidAmount):
			return response.BadRequest(c, "Principal must be positive")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to grant loan")
		}
	}

	return response.Created(c, "Loan granted successfully", loan.ToResponse(domain.DateOnly(time.Now())))
}

// List handles loan listing
// @Summary List loans
// @Description List loans with optional status filter
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param statut query string false "Filter by status (en_cours, rembourse, reconduit)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /prets [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	status := c.Query("statut")

	loans, total, err := h.loanService.List(c.Context(), status, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list loans")
	}

	return response.Success(c, "Loans retrieved successfully",
		pagination.NewResponse(loanResponses(loans, domain.DateOnly(time.Now())), params, total))
}

// Get handles loan detail
// @Summary Get loan
// @Description Get a loan by ID
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /prets/{id} [get]
func (h *LoanHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	loan, err := h.loanService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrLoanNotFound) {
			return response.NotFound(c, "Loan not found")
		}
		return response.InternalServerError(c, "Failed to get loan")
	}

	return response.Success(c, "Loan retrieved successfully", loan.ToResponse(domain.DateOnly(time.Now())))
}

// ByMember handles a member's loan history
// @Summary Member loans
// @Description List every loan of a member, newest first
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id}/prets [get]
func (h *LoanHandler) ByMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	loans, err := h.loanService.GetByMember(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to list loans")
	}

	return response.Success(c, "Loans retrieved successfully", loanResponses(loans, domain.DateOnly(time.Now())))
}

// Repay handles loan settlement
// @Summary Repay loan
// @Description Close a loan, recording the repayment date
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Param body body repayInput false "Repayment date"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /prets/{id}/repay [patch]
func (h *LoanHandler) Repay(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	var input repayInput
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&input); err != nil {
			return response.BadRequest(c, "Invalid request body")
		}
	}

	loan, err := h.loanService.Repay(c.Context(), id, input.RepaymentDate)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLoanNotFound):
			return response.NotFound(c, "Loan not found")
		case errors.Is(err, services.ErrLoanNotOpen):
			return response.Conflict(c, "Loan is already repaid")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to repay loan")
		}
	}

	return response.Success(c, "Loan repaid successfully", loan.ToResponse(domain.DateOnly(time.Now())))
}

// Renew handles loan renewal
// @Summary Renew loan
// @Description Push the due date two months out, interest unchanged
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Loan ID"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /prets/{id}/renew [patch]
func (h *LoanHandler) Renew(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid loan ID")
	}

	loan, err := h.loanService.Renew(c.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrLoanNotFound):
			return response.NotFound(c, "Loan not found")
		case errors.Is(err, services.ErrLoanNotOpen):
			return response.Conflict(c, "Only an open loan can be renewed")
		default:
			return response.InternalServerError(c, "Failed to renew loan")
		}
	}

	return response.Success(c, "Loan renewed successfully", loan.ToResponse(domain.DateOnly(time.Now())))
}

// Alerts handles the due-date watch list
// @Summary Loan alerts
// @Description Overdue loans and loans due within seven days
// @Tags Loans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /prets/alerts [get]
func (h *LoanHandler) Alerts(c *fiber.Ctx) error {
	alerts, err := h.loanService.Alerts(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to build loan alerts")
	}

	today := domain.DateOnly(time.Now())
	return response.Success(c, "Loan alerts retrieved successfully", fiber.Map{
		"en_retard":       loanResponses(alerts.Overdue, today),
		"echeance_proche": loanResponses(alerts.DueSoon, today),
	})
}
