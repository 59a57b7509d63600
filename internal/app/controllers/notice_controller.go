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
	ws "github.com/rakibul/unibus/internal/pkg/websocket"
)

// NoticeController handles notice operations and the live notice feed
type NoticeController struct {
	noticeService services.NoticeService
	feedHandler   *ws.Handler
	logger        zerolog.Logger
}

// NewNoticeController creates a new NoticeController
func NewNoticeController(noticeService services.NoticeService, feedHandler *ws.Handler, logger zerolog.Logger) *NoticeController {
	return &NoticeController{
		noticeService: noticeService,
		feedHandler:   feedHandler,
		logger:        logger,
	}
}

// ListNotices lists published notices
// @Summary List notices
// @Description Lists notices, newest first
// @Tags notices
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} dto.APIResponse{data=dto.PaginatedResponse} "Notice list"
// @Security BearerAuth
// @Router /notices [get]
func (c *NoticeController) ListNotices(ctx *gin.Context) {
	page, size := helpers.ParsePaginationParams(ctx)
	items, total, err := c.noticeService.ListNotices(ctx.Request.Context(), page, size)
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

// GetNotice retrieves a notice
// @Summary Get a notice
// @Tags notices
// @Produce json
// @Param id path int true "Notice ID"
// @Success 200 {object} dto.APIResponse{data=models.Notice} "Notice"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Security BearerAuth
// @Router /notices/{id} [get]
func (c *NoticeController) GetNotice(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid notice ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	notice, err := c.noticeService.GetNoticeByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      notice,
		Timestamp: time.Now(),
	})
}

// NoticeFeed upgrades the connection to the live notice feed
// @Summary Live notice feed
// @Description Websocket endpoint that pushes notice events (published, updated, deleted) to connected clients
// @Tags notices
// @Success 101 {string} string "Switching protocols"
// @Failure 401 {object} dto.ErrorResponse "Authentication required"
// @Security BearerAuth
// @Router /notices/ws [get]
func (c *NoticeController) NoticeFeed(ctx *gin.Context) {
	c.feedHandler.HandleConnection(ctx)
}

// CreateNotice publishes a notice (admin)
// @Summary Publish a notice
// @Tags notices
// @Accept json
// @Produce json
// @Param request body dto.CreateNoticeRequest true "Notice"
// @Success 201 {object} dto.APIResponse{data=models.Notice} "Notice published"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Security BearerAuth
// @Router /admin/notices [post]
func (c *NoticeController) CreateNotice(ctx *gin.Context) {
	var req dto.CreateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	notice, err := c.noticeService.CreateNotice(ctx.Request.Context(), req.Title, req.Content)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("noticeID", notice.ID).Str("title", notice.Title).Msg("Notice published")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      notice,
		Timestamp: time.Now(),
	})
}

// UpdateNotice updates a notice (admin)
// @Summary Update a notice
// @Tags notices
// @Accept json
// @Produce json
// @Param id path int true "Notice ID"
// @Param request body dto.UpdateNoticeRequest true "Updated notice"
// @Success 200 {object} dto.APIResponse{data=models.Notice} "Notice updated"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Security BearerAuth
// @Router /admin/notices/{id} [put]
func (c *NoticeController) UpdateNotice(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid notice ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateNoticeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	notice := &models.Notice{
		ID:      id,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := c.noticeService.UpdateNotice(ctx.Request.Context(), notice); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      notice,
		Timestamp: time.Now(),
	})
}

// DeleteNotice removes a notice (admin)
// @Summary Delete a notice
// @Tags notices
// @Produce json
// @Param id path int true "Notice ID"
// @Success 200 {object} dto.APIResponse "Notice deleted"
// @Failure 404 {object} dto.ErrorResponse "Notice not found"
// @Security BearerAuth
// @Router /admin/notices/{id} [delete]
func (c *NoticeController) DeleteNotice(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid notice ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.noticeService.DeleteNotice(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("noticeID", id).Msg("Notice deleted")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Notice deleted",
		Timestamp: time.Now(),
	})
}
