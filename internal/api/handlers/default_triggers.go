package handlers

import (
	"github.com/dhima/auto-run-ac/internal/api/response"
	"github.com/dhima/auto-run-ac/internal/logging"
	"github.com/dhima/auto-run-ac/internal/models"
	"github.com/dhima/auto-run-ac/internal/validation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// DefaultTriggerHandler handles the daily trigger routes.
type DefaultTriggerHandler struct {
	logger  logging.Logger
	service DefaultTriggerService
}

// NewDefaultTriggerHandler creates a new default trigger handler.
func NewDefaultTriggerHandler(logger logging.Logger, service DefaultTriggerService) *DefaultTriggerHandler {
	return &DefaultTriggerHandler{
		logger:  logger.With(zap.String("handler", "default_trigger")),
		service: service,
	}
}

// List godoc
// @Summary List default triggers
// @Description Returns every daily trigger in storage order
// @Tags DefaultTriggers
// @Produce json
// @Success 200 {object} models.DefaultTriggerListResponse
// @Failure 500 {object} response.ErrorResponse "Internal server error"
// @Router /api/v1/defaultTriggers [get]
func (h *DefaultTriggerHandler) List(c *gin.Context) {
	list, err := h.service.ListDefaultTriggers(c.Request.Context())
	if handleServiceError(c, h.logger, err, "list default triggers") {
		return
	}
	response.OK(c, models.DefaultTriggerListResponse{Triggers: list})
}

// Create godoc
// @Summary Create a default trigger
// @Description Stores a daily trigger under a freshly generated id
// @Tags DefaultTriggers
// @Accept json
// @Produce json
// @Param trigger body models.CreateDefaultTriggerRequest true "Trigger without id"
// @Success 201 {object} models.DefaultTriggerResponse
// @Header 201 {string} Location "URL of the new trigger"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 409 "Generated id already taken"
// @Router /api/v1/defaultTriggers [post]
func (h *DefaultTriggerHandler) Create(c *gin.Context) {
	var req models.CreateDefaultTriggerRequest
	if !bindValidated(c, h.logger, validation.CreateDefaultTrigger, &req) {
		return
	}

	created, err := h.service.CreateDefaultTrigger(c.Request.Context(), req)
	if handleServiceError(c, h.logger, err, "create default trigger") {
		return
	}

	h.logger.Info("default trigger created",
		zap.String("trigger_id", created.ID),
		zap.String("request_id", response.GetRequestID(c)),
	)
	response.Created(c, resourceURL(c, created.ID), models.DefaultTriggerResponse{Trigger: created})
}

// Get godoc
// @Summary Get a default trigger
// @Tags DefaultTriggers
// @Produce json
// @Param id path string true "Trigger ID"
// @Success 200 {object} models.DefaultTriggerResponse
// @Failure 404 "Trigger not found"
// @Router /api/v1/defaultTriggers/{id} [get]
func (h *DefaultTriggerHandler) Get(c *gin.Context) {
	trigger, err := h.service.GetDefaultTrigger(c.Request.Context(), c.Param("id"))
	if handleServiceError(c, h.logger, err, "get default trigger") {
		return
	}
	response.OK(c, models.DefaultTriggerResponse{Trigger: trigger})
}

// UpdateTime godoc
// @Summary Change a default trigger's time of day
// @Tags DefaultTriggers
// @Accept json
// @Param id path string true "Trigger ID"
// @Param body body models.UpdateTimeRequest true "New time of day"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 "Trigger not found"
// @Router /api/v1/defaultTriggers/{id}/time [put]
func (h *DefaultTriggerHandler) UpdateTime(c *gin.Context) {
	var req models.UpdateTimeRequest
	if !bindValidated(c, h.logger, validation.UpdateTime, &req) {
		return
	}
	err := h.service.UpdateDefaultTriggerTime(c.Request.Context(), c.Param("id"), req.Time)
	if handleServiceError(c, h.logger, err, "update default trigger time") {
		return
	}
	response.NoContent(c)
}

// UpdateTemp godoc
// @Summary Change a default trigger's threshold temperature
// @Tags DefaultTriggers
// @Accept json
// @Param id path string true "Trigger ID"
// @Param body body models.UpdateTempRequest true "New threshold"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 "Trigger not found"
// @Router /api/v1/defaultTriggers/{id}/temp [put]
func (h *DefaultTriggerHandler) UpdateTemp(c *gin.Context) {
	var req models.UpdateTempRequest
	if !bindValidated(c, h.logger, validation.UpdateTemp, &req) {
		return
	}
	err := h.service.UpdateDefaultTriggerTemp(c.Request.Context(), c.Param("id"), req.Temp)
	if handleServiceError(c, h.logger, err, "update default trigger temp") {
		return
	}
	response.NoContent(c)
}

// UpdateACMode godoc
// @Summary Change a default trigger's AC mode
// @Tags DefaultTriggers
// @Accept json
// @Param id path string true "Trigger ID"
// @Param body body models.UpdateModeRequest true "New mode"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 "Trigger not found"
// @Router /api/v1/defaultTriggers/{id}/acMode [put]
func (h *DefaultTriggerHandler) UpdateACMode(c *gin.Context) {
	var req models.UpdateModeRequest
	if !bindValidated(c, h.logger, validation.UpdateMode, &req) {
		return
	}
	err := h.service.UpdateDefaultTriggerACMode(c.Request.Context(), c.Param("id"), req.Mode)
	if handleServiceError(c, h.logger, err, "update default trigger ac mode") {
		return
	}
	response.NoContent(c)
}

// UpdateACTemp godoc
// @Summary Change a default trigger's AC target temperature
// @Tags DefaultTriggers
// @Accept json
// @Param id path string true "Trigger ID"
// @Param body body models.UpdateTempRequest true "New AC temperature"
// @Success 204 "No Content"
// @Failure 400 {object} response.ErrorResponse "Invalid request"
// @Failure 404 "Trigger not found"
// @Router /api/v1/defaultTriggers/{id}/acTemp [put]
func (h *DefaultTriggerHandler) UpdateACTemp(c *gin.Context) {
	var req models.UpdateTempRequest
	if !bindValidated(c, h.logger, validation.UpdateTemp, &req) {
		return
	}
	err := h.service.UpdateDefaultTriggerACTemp(c.Request.Context(), c.Param("id"), req.Temp)
	if handleServiceError(c, h.logger, err, "update default trigger ac temp") {
		return
	}
	response.NoContent(c)
}

// Delete godoc
// @Summary Delete a default trigger
// @Tags DefaultTriggers
// @Param id path string true "Trigger ID"
// @Success 204 "No Content"
// @Failure 404 "Trigger not found"
// @Router /api/v1/defaultTriggers/{id} [delete]
func (h *DefaultTriggerHandler) Delete(c *gin.Context) {
	if handleServiceError(c, h.logger, h.service.DeleteDefaultTrigger(c.Request.Context(), c.Param("id")), "delete default trigger") {
		return
	}
	response.NoContent(c)
}
