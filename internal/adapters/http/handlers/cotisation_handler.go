package handlers

import (
	"errors"

	"e2d-ledger/internal/adapters/persistence/models"
	"e2d-ledger/internal/core/domain"
	"e2d-ledger/internal/core/services"
	"e2d-ledger/internal/pkg/response"
	"e2d-ledger/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// CotisationHandler handles monthly-due endpoints
type CotisationHandler struct {
	cotisationService *services.CotisationService
	memberService     *services.MemberService
}

// NewCotisationHandler creates a new cotisation handler
func NewCotisationHandler(
	cotisationService *services.CotisationService,
	memberService *services.MemberService,
) *CotisationHandler {
	return &CotisationHandler{
		cotisationService: cotisationService,
		memberService:     memberService,
	}
}

// cotisationResponses maps cotisations to their DTOs, deriving the
// display status.
func cotisationResponses(cotisations []*models.Cotisation) []*models.CotisationResponse {
	out := make([]*models.CotisationResponse, 0, len(cotisations))
	for _, c := range cotisations {
		out = append(out, c.ToResponse())
	}
	return out
}

// Create handles cotisation entry
// @Summary Record cotisation
// @Description Record a member's monthly due for a period
// @Tags Cotisations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateCotisationInput true "Cotisation data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /cotisations [post]
func (h *CotisationHandler) Create(c *fiber.Ctx) error {
	var input services.CreateCotisationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	actorID, _ := c.Locals("userID").(uint)

	cotisation, err := h.cotisationService.Create(c.Context(), &input, actorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, services.ErrCotisationExists):
			return response.Conflict(c, "Cotisation already recorded for this member and period")
		case errors.Is(err, services.ErrInvalidPeriod):
			return response.BadRequest(c, "Invalid month or year")
		case errors.Is(err, services.ErrPartialNotAccepted):
			return h.partialWarning(c, input.MemberID, input.PaidAmount)
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to record cotisation")
		}
	}

	return response.Created(c, "Cotisation recorded successfully", cotisation.ToResponse())
}

// partialWarning replies 409 with the underpayment message so the
// treasurer can resubmit with confirm_partial.
func (h *CotisationHandler) partialWarning(c *fiber.Ctx, memberID uint, paid int64) error {
	member, err := h.memberService.GetByID(c.Context(), memberID)
	if err != nil {
		return response.InternalServerError(c, "Failed to record cotisation")
	}
	return response.Warning(c, services.PartialWarning(member.MonthlyDue, paid))
}

// Get handles cotisation detail
// @Summary Get cotisation
// @Description Get a cotisation entry by ID
// @Tags Cotisations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cotisation ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cotisations/{id} [get]
func (h *CotisationHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid cotisation ID")
	}

	cotisation, err := h.cotisationService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrCotisationNotFound) {
			return response.NotFound(c, "Cotisation not found")
		}
		return response.InternalServerError(c, "Failed to get cotisation")
	}

	return response.Success(c, "Cotisation retrieved successfully", cotisation.ToResponse())
}

// Update handles cotisation corrections
// @Summary Update cotisation
// @Description Adjust a recorded cotisation's payment fields
// @Tags Cotisations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Cotisation ID"
// @Param body body services.UpdateCotisationInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /cotisations/{id} [put]
func (h *CotisationHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid cotisation ID")
	}

	var input services.UpdateCotisationInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	cotisation, err := h.cotisationService.Update(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrCotisationNotFound):
			return response.NotFound(c, "Cotisation not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to update cotisation")
		}
	}

	return response.Success(c, "Cotisation updated successfully", cotisation.ToResponse())
}

// ByMember handles a member's cotisation history
// @Summary Member cotisations
// @Description List every cotisation of a member, newest period first
// @Tags Cotisations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id}/cotisations [get]
func (h *CotisationHandler) ByMember(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	cotisations, err := h.cotisationService.GetByMember(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to list cotisations")
	}

	return response.Success(c, "Cotisations retrieved successfully", cotisationResponses(cotisations))
}

// Period handles the monthly collection view
// @Summary Period summary
// @Description Entries and totals of a period, including members with no entry
// @Tags Cotisations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param mois query int true "Month (1-12)"
// @Param annee query int true "Year"
// @Success 200 {object} response.Response
// @Router /cotisations/period [get]
func (h *CotisationHandler) Period(c *fiber.Ctx) error {
	month := c.QueryInt("mois")
	year := c.QueryInt("annee")

	summary, err := h.cotisationService.GetPeriod(c.Context(), month, year)
	if err != nil {
		if errors.Is(err, services.ErrInvalidPeriod) {
			return response.BadRequest(c, "Invalid month or year")
		}
		return response.InternalServerError(c, "Failed to build period summary")
	}

	return response.Success(c, "Period summary retrieved successfully", summary)
}
