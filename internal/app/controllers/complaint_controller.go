package controllers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rakibul/unibus/internal/app/models"
	"github.com/rakibul/unibus/internal/app/models/dto"
	"github.com/rakibul/unibus/internal/app/services"
	"github.com/rakibul/unibus/internal/middleware"
	"github.com/rakibul/unibus/internal/pkg/helpers"
)

// ComplaintController handles complaint operations
type ComplaintController struct {
	complaintService services.ComplaintService
	logger           zerolog.Logger
}

// NewComplaintController creates a new ComplaintController
func NewComplaintController(complaintService services.ComplaintService, logger zerolog.Logger) *ComplaintController {
	return &ComplaintController{
		complaintService: complaintService,
		logger:           logger,
	}
}

// CreateComplaint submits a new complaint
// @Summary Submit a complaint
// @Description Creates a complaint with status open
// @Tags complaints
// @Accept json
// @Produce json
// @Param request body dto.CreateComplaintRequest true "Complaint"
// @Success 201 {object} dto.APIResponse{data=models.Complaint} "Complaint submitted"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /complaints [post]
func (c *ComplaintController) CreateComplaint(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.CreateComplaintRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	complaint, err := c.complaintService.CreateComplaint(ctx.Request.Context(), userID, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("userID", userID).
		Int64("complaintID", complaint.ID).
		Str("category", string(complaint.Category)).
		Str("priority", string(complaint.Priority)).
		Msg("Complaint submitted")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      complaint,
		Timestamp: time.Now(),
	})
}

// GetComplaint retrieves a complaint
// @Summary Get a complaint
// @Description Returns a complaint. Students can only read their own.
// @Tags complaints
// @Produce json
// @Param id path int true "Complaint ID"
// @Success 200 {object} dto.APIResponse{data=models.Complaint} "Complaint"
// @Failure 403 {object} dto.ErrorResponse "Complaint belongs to another user"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Security BearerAuth
// @Router /complaints/{id} [get]
func (c *ComplaintController) GetComplaint(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid complaint ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	role := models.RoleType(ctx.GetString("roleType"))
	complaint, err := c.complaintService.GetComplaint(ctx.Request.Context(), id, userID, role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      complaint,
		Timestamp: time.Now(),
	})
}

// ListMyComplaints lists the caller's complaints
// @Summary List own complaints
// @Tags complaints
// @Produce json
// @Param status query string false "Status filter" Enums(open, in_progress, resolved, dismissed)
// @Param category query string false "Category filter"
// @Param priority query string false "Priority filter" Enums(low, medium, high)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Complaint list"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /complaints [get]
func (c *ComplaintController) ListMyComplaints(ctx *gin.Context) {
	userID, ok := middleware.UserIDFromContext(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var query dto.ComplaintListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	items, total, err := c.complaintService.ListUserComplaints(ctx.Request.Context(), userID, query, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      items,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// ListAllComplaints lists all complaints (admin)
// @Summary List all complaints
// @Tags complaints
// @Produce json
// @Param status query string false "Status filter" Enums(open, in_progress, resolved, dismissed)
// @Param category query string false "Category filter"
// @Param priority query string false "Priority filter" Enums(low, medium, high)
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Complaint list"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Security BearerAuth
// @Router /admin/complaints [get]
func (c *ComplaintController) ListAllComplaints(ctx *gin.Context) {
	var query dto.ComplaintListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	page, size := helpers.ParsePaginationParams(ctx)
	items, total, err := c.complaintService.ListAllComplaints(ctx.Request.Context(), query, page, size)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PaginatedResponse{
			Items:      items,
			Pagination: helpers.NewPaginationInfo(total, page, size),
		},
		Timestamp: time.Now(),
	})
}

// UpdateComplaintStatus moves a complaint through triage (admin)
// @Summary Update complaint status
// @Description Applies a status transition. Closing transitions require an admin response.
// @Tags complaints
// @Accept json
// @Produce json
// @Param id path int true "Complaint ID"
// @Param request body dto.UpdateComplaintStatusRequest true "New status"
// @Success 200 {object} dto.APIResponse{data=models.Complaint} "Complaint updated"
// @Failure 404 {object} dto.ErrorResponse "Complaint not found"
// @Failure 422 {object} dto.ErrorResponse "Invalid status transition or missing admin response"
// @Security BearerAuth
// @Router /admin/complaints/{id}/status [patch]
func (c *ComplaintController) UpdateComplaintStatus(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid complaint ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateComplaintStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	complaint, err := c.complaintService.UpdateStatus(ctx.Request.Context(), id, req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().
		Int64("complaintID", id).
		Str("status", string(complaint.Status)).
		Msg("Complaint status updated")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      complaint,
		Timestamp: time.Now(),
	})
}
