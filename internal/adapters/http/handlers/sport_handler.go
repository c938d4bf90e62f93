package handlers

import (
	"errors"

	"e2d-ledger/internal/core/domain"
	"e2d-ledger/internal/core/services"
	"e2d-ledger/internal/pkg/response"
	"e2d-ledger/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// SportHandler handles sport club endpoints
type SportHandler struct {
	sportService *services.SportService
}

// NewSportHandler creates a new sport handler
func NewSportHandler(sportService *services.SportService) *SportHandler {
	return &SportHandler{sportService: sportService}
}

// ListActivities handles activity listing
// @Summary List sport activities
// @Description List the association's sport clubs
// @Tags Sport
// @Accept json
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Response
// @Router /sport/activities [get]
func (h *SportHandler) ListActivities(c *fiber.Ctx) error {
	activities, err := h.sportService.ListActivities(c.Context())
	if err != nil {
		return response.InternalServerError(c, "Failed to list activities")
	}

	return response.Success(c, "Activities retrieved successfully", activities)
}

// RegisterParticipant handles player enrollment
// @Summary Register participant
// @Description Enroll a member or an external player in a club
// @Tags Sport
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RegisterParticipantInput true "Participant data"
// @Success 201 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /sport/participants [post]
func (h *SportHandler) RegisterParticipant(c *fiber.Ctx) error {
	var input services.RegisterParticipantInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	participant, err := h.sportService.RegisterParticipant(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrActivityNotFound):
			return response.NotFound(c, "Activity not found")
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Member not found")
		case errors.Is(err, services.ErrExternalNotAllowed):
			return response.Conflict(c, "External participants are only accepted in the Phoenix club")
		case errors.Is(err, services.ErrExternalNeedsName):
			return response.BadRequest(c, "External participant needs a first and last name")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to register participant")
		}
	}

	return response.Created(c, "Participant registered successfully", participant)
}

// ListParticipants handles roster listing
// @Summary List participants
// @Description List the roster of an activity
// @Tags Sport
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} response.Response
// @Router /sport/activities/{id}/participants [get]
func (h *SportHandler) ListParticipants(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid activity ID")
	}

	participants, err := h.sportService.ListParticipants(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			return response.NotFound(c, "Activity not found")
		}
		return response.InternalServerError(c, "Failed to list participants")
	}

	return response.Success(c, "Participants retrieved successfully", participants)
}

// CreateMatch handles match results
// @Summary Record match
// @Description Record a match result for an activity
// @Tags Sport
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.CreateMatchInput true "Match data"
// @Success 201 {object} response.Response
// @Router /sport/matches [post]
func (h *SportHandler) CreateMatch(c *fiber.Ctx) error {
	var input services.CreateMatchInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	match, err := h.sportService.CreateMatch(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrActivityNotFound):
			return response.NotFound(c, "Activity not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to record match")
		}
	}

	return response.Created(c, "Match recorded successfully", match)
}

// ListMatches handles match listing
// @Summary List matches
// @Description List the matches of an activity, newest first
// @Tags Sport
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Activity ID"
// @Success 200 {object} response.Response
// @Router /sport/activities/{id}/matches [get]
func (h *SportHandler) ListMatches(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid activity ID")
	}

	matches, err := h.sportService.ListMatches(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrActivityNotFound) {
			return response.NotFound(c, "Activity not found")
		}
		return response.InternalServerError(c, "Failed to list matches")
	}

	return response.Success(c, "Matches retrieved successfully", matches)
}

// MatchStats handles per-match player lines
// @Summary Match stats
// @Description List the player stat lines of a match
// @Tags Sport
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Match ID"
// @Success 200 {object} response.Response
// @Router /sport/matches/{id}/stats [get]
func (h *SportHandler) MatchStats(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid match ID")
	}

	stats, err := h.sportService.GetMatchStats(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrMatchNotFound) {
			return response.NotFound(c, "Match not found")
		}
		return response.InternalServerError(c, "Failed to list match stats")
	}

	return response.Success(c, "Match stats retrieved successfully", stats)
}

// RecordStat handles player stat entry
// @Summary Record player stat
// @Description Record a player's match line; a red card on a member fines them automatically
// @Tags Sport
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.RecordStatInput true "Stat data"
// @Success 201 {object} response.Response
// @Router /sport/stats [post]
func (h *SportHandler) RecordStat(c *fiber.Ctx) error {
	var input services.RecordStatInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	actorID, _ := c.Locals("userID").(uint)

	stat, warning, err := h.sportService.RecordStat(c.Context(), &input, actorID)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrParticipantNotFound):
			return response.NotFound(c, "Participant not found")
		case errors.Is(err, services.ErrMatchNotFound):
			return response.NotFound(c, "Match not found")
		default:
			return response.InternalServerError(c, "Failed to record stat")
		}
	}

	if warning != "" {
		return response.CreatedWithWarning(c, "Stat recorded", warning, stat)
	}
	return response.Created(c, "Stat recorded successfully", stat)
}
