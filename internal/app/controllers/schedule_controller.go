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
)

// ScheduleController handles bus schedule operations
type ScheduleController struct {
	scheduleService services.ScheduleService
	logger          zerolog.Logger
}

// NewScheduleController creates a new ScheduleController
func NewScheduleController(scheduleService services.ScheduleService, logger zerolog.Logger) *ScheduleController {
	return &ScheduleController{
		scheduleService: scheduleService,
		logger:          logger,
	}
}

// ListSchedules lists schedules with optional filters
// @Summary List bus schedules
// @Description Lists schedules ordered by departure time. Supports a free-text query over time, route and stops plus a category and direction filter.
// @Tags schedules
// @Produce json
// @Param q query string false "Free-text filter (case-insensitive substring)"
// @Param category query string false "Timetable category" Enums(all, regular, friday) default(all)
// @Param direction query string false "Travel direction" Enums(CAMPUS_TO_CITY, CITY_TO_CAMPUS)
// @Success 200 {object} dto.APIResponse{data=[]models.BusSchedule} "Schedules"
// @Failure 400 {object} dto.ErrorResponse "Invalid filter value"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /schedules [get]
func (c *ScheduleController) ListSchedules(ctx *gin.Context) {
	var query dto.ScheduleListQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedules, err := c.scheduleService.ListSchedules(ctx.Request.Context(), query)
	if err != nil {
		c.logger.Error().Err(err).Msg("Failed to list schedules")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schedules,
		Timestamp: time.Now(),
	})
}

// GetSchedule retrieves a single schedule by ID
// @Summary Get a bus schedule
// @Tags schedules
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse{data=models.BusSchedule} "Schedule"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Security BearerAuth
// @Router /schedules/{id} [get]
func (c *ScheduleController) GetSchedule(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	schedule, err := c.scheduleService.GetScheduleByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schedule,
		Timestamp: time.Now(),
	})
}

func scheduleFromRequest(req dto.CreateScheduleRequest) *models.BusSchedule {
	schedule := &models.BusSchedule{
		Time:          req.Time,
		StartingPoint: req.StartingPoint,
		Route:         req.Route,
		EndPoint:      req.EndPoint,
		Direction:     models.Direction(req.Direction),
		ScheduleType:  models.ScheduleType(req.ScheduleType),
	}
	if req.Gender != "" {
		gender := req.Gender
		schedule.Gender = &gender
	}
	if req.BusType != "" {
		busType := req.BusType
		schedule.BusType = &busType
	}
	if req.Remarks != "" {
		remarks := req.Remarks
		schedule.Remarks = &remarks
	}
	if req.Description != "" {
		description := req.Description
		schedule.Description = &description
	}
	return schedule
}

// CreateSchedule creates a new schedule (admin)
// @Summary Create a bus schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param request body dto.CreateScheduleRequest true "Schedule entry"
// @Success 201 {object} dto.APIResponse{data=models.BusSchedule} "Schedule created"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 403 {object} dto.ErrorResponse "Admin role required"
// @Security BearerAuth
// @Router /admin/schedules [post]
func (c *ScheduleController) CreateSchedule(ctx *gin.Context) {
	var req dto.CreateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedule := scheduleFromRequest(req)
	id, err := c.scheduleService.CreateSchedule(ctx.Request.Context(), schedule)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	schedule.ID = id

	c.logger.Info().Int64("scheduleID", id).Str("route", schedule.Route).Msg("Schedule created")

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      schedule,
		Timestamp: time.Now(),
	})
}

// UpdateSchedule updates an existing schedule (admin)
// @Summary Update a bus schedule
// @Tags schedules
// @Accept json
// @Produce json
// @Param id path int true "Schedule ID"
// @Param request body dto.UpdateScheduleRequest true "Updated schedule entry"
// @Success 200 {object} dto.APIResponse{data=models.BusSchedule} "Schedule updated"
// @Failure 400 {object} dto.ErrorResponse "Invalid request format"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Security BearerAuth
// @Router /admin/schedules/{id} [put]
func (c *ScheduleController) UpdateSchedule(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.UpdateScheduleRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(dto.HandleValidationError(err)))
		return
	}

	schedule := scheduleFromRequest(req)
	schedule.ID = id

	if err := c.scheduleService.UpdateSchedule(ctx.Request.Context(), schedule); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      schedule,
		Timestamp: time.Now(),
	})
}

// DeleteSchedule deletes a schedule (admin)
// @Summary Delete a bus schedule
// @Tags schedules
// @Produce json
// @Param id path int true "Schedule ID"
// @Success 200 {object} dto.APIResponse "Schedule deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid ID"
// @Failure 404 {object} dto.ErrorResponse "Schedule not found"
// @Security BearerAuth
// @Router /admin/schedules/{id} [delete]
func (c *ScheduleController) DeleteSchedule(ctx *gin.Context) {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid schedule ID")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if err := c.scheduleService.DeleteSchedule(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	c.logger.Info().Int64("scheduleID", id).Msg("Schedule deleted")

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Message:   "Schedule deleted",
		Timestamp: time.Now(),
	})
}
