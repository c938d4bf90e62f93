package handlers

import (
	"errors"

	"e2d-ledger/internal/core/domain"
	"e2d-ledger/internal/core/services"
	"e2d-ledger/internal/pkg/pagination"
	"e2d-ledger/internal/pkg/response"
	"e2d-ledger/internal/pkg/validation"

	"github.com/gofiber/fiber/v2"
)

// ReportHandler handles meeting report endpoints
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Create handles report creation
// @Summary Create meeting report
// @Description Record a meeting report with its agenda items
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body services.ReportInput true "Report data"
// @Success 201 {object} response.Response
// @Router /reports [post]
func (h *ReportHandler) Create(c *fiber.Ctx) error {
	var input services.ReportInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	report, err := h.reportService.Create(c.Context(), &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Host member not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to create report")
		}
	}

	return response.Created(c, "Report created successfully", report)
}

// List handles report listing
// @Summary List meeting reports
// @Description List meeting reports, newest first
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number"
// @Param limit query int false "Page size"
// @Success 200 {object} response.Response
// @Router /reports [get]
func (h *ReportHandler) List(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	reports, total, err := h.reportService.List(c.Context(), params.Offset, params.Limit)
	if err != nil {
		return response.InternalServerError(c, "Failed to list reports")
	}

	return response.Success(c, "Reports retrieved successfully",
		pagination.NewResponse(reports, params, total))
}

// Get handles report detail
// @Summary Get meeting report
// @Description Get a meeting report with its agenda
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/{id} [get]
func (h *ReportHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid report ID")
	}

	report, err := h.reportService.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return response.NotFound(c, "Report not found")
		}
		return response.InternalServerError(c, "Failed to get report")
	}

	return response.Success(c, "Report retrieved successfully", report)
}

// Update handles report edits
// @Summary Update meeting report
// @Description Update a report; agenda items are replaced wholesale
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Param body body services.ReportInput true "Report data"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/{id} [put]
func (h *ReportHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid report ID")
	}

	var input services.ReportInput
	if err := c.BodyParser(&input); err != nil {
		return response.BadRequest(c, "Invalid request body")
	}
	if err := validation.Struct(&input); err != nil {
		return response.UnprocessableEntity(c, err.Error())
	}

	report, err := h.reportService.Update(c.Context(), id, &input)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrReportNotFound):
			return response.NotFound(c, "Report not found")
		case errors.Is(err, services.ErrMemberNotFound):
			return response.NotFound(c, "Host member not found")
		case errors.Is(err, domain.ErrInvalidInput):
			return response.BadRequest(c, "Invalid date format, expected YYYY-MM-DD")
		default:
			return response.InternalServerError(c, "Failed to update report")
		}
	}

	return response.Success(c, "Report updated successfully", report)
}

// Delete handles report removal
// @Summary Delete meeting report
// @Description Remove a report and its agenda items
// @Tags Reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Report ID"
// @Success 200 {object} response.Response
// @Failure 404 {object} response.Response
// @Router /reports/{id} [delete]
func (h *ReportHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return response.BadRequest(c, "Invalid report ID")
	}

	if err := h.reportService.Delete(c.Context(), id); err != nil {
		if errors.Is(err, services.ErrReportNotFound) {
			return response.NotFound(c, "Report not found")
		}
		return response.InternalServerError(c, "Failed to delete report")
	}

	return response.Success(c, "Report deleted successfully", nil)
}
