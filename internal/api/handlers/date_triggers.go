package handlers

import (
	"github.com/dhima/auto-run-ac/internal/api/response"
	"github.com/dhima/auto-run-ac/internal/logging"
	"github.com/dhima/auto-run-ac/internal/models"
	"github.com/dhima/auto-run-ac/internal/validation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DateTriggerHandler handles the one-shot trigger routes.
type DateTriggerHandler struct {
	logger  logging.Logger
	service DateTriggerService
}

// NewDateTriggerHandler creates a new date trigger handler.
func NewDateTriggerHandler(logger logging.Logger, service DateTriggerService) *DateTriggerHandler {
	return &DateTriggerHandler{
		logger:  logger.With(zap.String("handler", "date_trigger")),
		service: service,
	}
}

// List godoc
// @Summary List date triggers
// @Description Returns every one-shot trigger in storage order
// @Tags DateTriggers
// @Produce json
// @Success 200 {object} models.DateTriggerListResponse
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/v1/dateTriggers [get]
func (h *DateTriggerHandler) List(c *gin.Context) {
	list, err := h.service.ListDateTriggers(c.Request.Context())
	if handleServiceError(c, h.logger, err, "list date triggers") {
		return
	}
	response.OK(c, models.DateTriggerListResponse{Triggers: list})
}

// Create godoc
// @Summary Create a date trigger
// @Description Stores a one-shot trigger under a freshly generated id
// @Tags DateTriggers
// @Accept json
// @Produce json
// @Param trigger body models.CreateDateTriggerRequest true "Trigger without id"
// @Success 201 {object} models.DateTriggerResponse
// @Header 201 {string} Location "URL of the new trigger"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 409 "Generated id already taken"
// @Router /api/v1/dateTriggers [post]
func (h *DateTriggerHandler) Create(c *gin.Context) {
	var req models.CreateDateTriggerRequest
	if !bindValidated(c, h.logger, validation.CreateDateTrigger, &req) {
		return
	}

	created, err := h.service.CreateDateTrigger(c.Request.Context(), req)
	if handleServiceError(c, h.logger, err, "create date trigger") {
		return
	}

	h.logger.Info("date trigger created",
		zap.String("trigger_id", created.ID),
		zap.String("request_id", response.GetRequestID(c)),
	)
	response.Created(c, resourceURL(c, created.ID), models.DateTriggerResponse{Trigger: created})
}

// Get godoc
// @Summary Get a date trigger
// @Tags DateTriggers
// @Produce json
// @Param id path string true "Trigger ID"
// @Success 200 {object} models.DateTriggerResponse
// @Failure 404 "Trigger not found"
// @Router /api/v1/dateTriggers/{id} [get]
func (h *DateTriggerHandler) Get(c *gin.Context) {
	trigger, err := h.service.GetDateTrigger(c.Request.Context(), c.Param("id"))
	if handleServiceError(c, h.logger, err, "get date trigger") {
		return
	}
	response.OK(c, models.DateTriggerResponse{Trigger: trigger})
}

// UpdateDateTime godoc
// @Summary Change a date trigger's fire date-time
// @Tags DateTriggers
// @Accept json
// @Param id path string true "Trigger ID"
// @Param body body models.UpdateDateTimeRequest true "New date-time (RFC 3339)"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 "Trigger not found"
// @Router /api/v1/dateTriggers/{id}/dateTime [put]
func (h *DateTriggerHandler) UpdateDateTime(c *gin.Context) {
	var req models.UpdateDateTimeRequest
	if !bindValidated(c, h.logger, validation.UpdateDateTime, &req) {
		return
	}
	err := h.service.UpdateDateTriggerDateTime(c.Request.Context(), c.Param("id"), req.DateTime)
	if handleServiceError(c, h.logger, err, "update date trigger date-time") {
		return
	}
	response.NoContent(c)
}

// UpdateTemp godoc
// @Summary Change a date trigger's threshold temperature
// @Tags DateTriggers
// @Accept json
// @Param id path string true "Trigger ID"
// @Param body body models.UpdateTempRequest true "New threshold"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 "Trigger not found"
// @Router /api/v1/dateTriggers/{id}/temp [put]
func (h *DateTriggerHandler) UpdateTemp(c *gin.Context) {
	var req models.UpdateTempRequest
	if !bindValidated(c, h.logger, validation.UpdateTemp, &req) {
		return
	}
	err := h.service.UpdateDateTriggerTemp(c.Request.Context(), c.Param("id"), req.Temp)
	if handleServiceError(c, h.logger, err, "update date trigger temp") {
		return
	}
	response.NoContent(c)
}

// UpdateACMode godoc
// @Summary Change a date trigger's AC mode
// @Tags DateTriggers
// @Accept json
// @Param id path string true "Trigger ID"
// @Param body body models.UpdateModeRequest true "New mode"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 "Trigger not found"
// @Router /api/v1/dateTriggers/{id}/acMode [put]
func (h *DateTriggerHandler) UpdateACMode(c *gin.Context) {
	var req models.UpdateModeRequest
	if !bindValidated(c, h.logger, validation.UpdateMode, &req) {
		return
	}
	err := h.service.UpdateDateTriggerACMode(c.Request.Context(), c.Param("id"), req.Mode)
	if handleServiceError(c, h.logger, err, "update date trigger ac mode") {
		return
	}
	response.NoContent(c)
}

// UpdateACTemp godoc
// @Summary Change a date trigger's AC target temperature
// @Tags DateTriggers
// @Accept json
// @Param id path string true "Trigger ID"
// @Param body body models.UpdateTempRequest true "New AC temperature"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 "Trigger not found"
// @Router /api/v1/dateTriggers/{id}/acTemp [put]
func (h *DateTriggerHandler) UpdateACTemp(c *gin.Context) {
	var req models.UpdateTempRequest
	if !bindValidated(c, h.logger, validation.UpdateTemp, &req) {
		return
	}
	err := h.service.UpdateDateTriggerACTemp(c.Request.Context(), c.Param("id"), req.Temp)
	if handleServiceError(c, h.logger, err, "update date trigger ac temp") {
		return
	}
	response.NoContent(c)
}

// Delete godoc
// @Summary Delete a date trigger
// @Tags DateTriggers
// @Param id path string true "Trigger ID"
// @Success 204 "No Content"
// @Failure 404 "Trigger not found"
// @Router /api/v1/dateTriggers/{id} [delete]
func (h *DateTriggerHandler) Delete(c *gin.Context) {
	if handleServiceError(c, h.logger, h.service.DeleteDateTrigger(c.Request.Context(), c.Param("id")), "delete date trigger") {
		return
	}
	response.NoContent(c)
}
