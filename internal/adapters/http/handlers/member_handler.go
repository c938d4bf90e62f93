package handlers

import (
	"errors"
	"strconv"

	"e2d-ledger/internal/core/domain"
	"e2d-ledger/internal/core/services"
	"e2d-ledger/internal/pkg/pagination"
	"e2d-ledger/internal/pkg/response"
	"e2d-ledger/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// MemberHandler handles member endpoints
type MemberHandler struct {
	memberService *services.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *services.MemberService) *MemberHandler {
	return &MemberHandler{memberService: memberService}
}

// Create handles member creation
// @Summary Create member
// @Description Register a new association member
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateMemberInput true "Member data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /members [post]
func (h *MemberHandler) Create(c *fiber.Ctx) error {
	var input services.CreateMemberInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	member, err := h.memberService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return response.Conflict(c, "Email already used by another member")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to create member")
		}
	}

	return response.Created(c, "Member created successfully", member)
}

// List handles member listing
// @Summary List members
// @Description List members with optional status filter
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param statut query string false "Filter by status (actif, inactif, suspendu)"
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /members [get]
func (h *MemberHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)
	status := c.Query("statut")

	members, total, err := h.memberService.List(c.Context(), status, params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list members")
	}

	return response.Success(c, "Members retrieved successfully",
		pagination.NewResponse(members, params, total))
}

// Get handles member detail
// @Summary Get member
// @Description Get a member by ID
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [get]
func (h *MemberHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	member, err := h.memberService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to get member")
	}

	return response.Success(c, "Member retrieved successfully", member)
}

// Update handles member profile edits
// @Summary Update member
// @Description Update a member's profile (status excluded)
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param body body services.UpdateMemberInput true "Fields to update"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [put]
func (h *MemberHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	var input services.UpdateMemberInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}

	member, err := h.memberService.Update(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, services.ErrEmailTaken):
			return response.Conflict(c, "Email already used by another member")
		default:
			return response.InternalServerError(c, "Failed to update member")
		}
	}

	return response.Success(c, "Member updated successfully", member)
}

// Delete handles member removal
// @Summary Delete member
// @Description Remove a member (soft delete)
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id} [delete]
func (h *MemberHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	if err := h.memberService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to delete member")
	}

	return response.Success(c, "Member deleted successfully", nil)
}

// ChangeStatus handles member status transitions
// @Summary Change member status
// @Description Change a member's status, appending the history entry
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Param body body services.ChangeStatusInput true "New status"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /members/{id}/status [patch]
func (h *MemberHandler) ChangeStatus(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	var input services.ChangeStatusInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	actorID, _ := c.Locals("userID").(uint)

	member, err := h.memberService.ChangeStatus(c.Context(), id, &input, actorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, services.ErrSameStatus):
			return response.Conflict(c, "Member already has this status")
		case errors.Is(err, services.ErrUnknownStatus):
			return response.BadRequest(c, "Unknown member status")
		default:
			return response.InternalServerError(c, "Failed to change member status")
		}
	}

	return response.Success(c, "Member status changed successfully", member)
}

// StatusHistory handles status history listing
// @Summary Member status history
// @Description List a member's status changes, newest first
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Member ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /members/{id}/status-history [get]
func (h *MemberHandler) StatusHistory(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid member ID")
	}

	history, err := h.memberService.GetStatusHistory(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrMemberNotFound) {
			return response.NotFound(c, "Member not found")
		}
		return response.InternalServerError(c, "Failed to get status history")
	}

	return response.Success(c, "Status history retrieved successfully", history)
}

// SuspensionCandidates handles the suspension watch list
// @Summary Suspension candidates
// @Description List active members whose unpaid sanctions reach the threshold
// @Tags Members
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /members/suspension-candidates [get]
func (h *MemberHandler) SuspensionCandidates(c *fiber.Ctx) error {
	candidates, err := h.memberService.SuspensionCandidates(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list suspension candidates")
	}

	return response.Success(c, "Suspension candidates retrieved successfully", candidates)
}

// parseID extracts the :id path parameter.
func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid id")
	}
	return uint(id), nil
}
