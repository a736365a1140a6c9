package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dhima/auto-run-ac/internal/api/response"
	"github.com/dhima/auto-run-ac/internal/logging"
	"github.com/dhima/auto-run-ac/internal/models"
	"github.com/dhima/auto-run-ac/internal/snapshot"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const contentTypeMessage = `Content-Type must be "application/json"`

// SnapshotHandler serves the cached default-trigger snapshot.
type SnapshotHandler struct {
	logger logging.Logger
	cache  SnapshotCache
}

// NewSnapshotHandler creates a new snapshot cache handler.
func NewSnapshotHandler(logger logging.Logger, cache SnapshotCache) *SnapshotHandler {
	return &SnapshotHandler{
		logger: logger.With(zap.String("handler", "snapshot")),
		cache:  cache,
	}
}

// Get godoc
// @Summary Read the default-trigger snapshot
// @Description Returns the cached copy of the default triggers. An empty cache reads as zero triggers.
// @Tags Cache
// @Produce json
// @Success 200 {object} response.CacheEnvelope{data=models.TriggerSnapshot}
// @Failure 500 {object} response.CacheEnvelope "Stored snapshot is corrupt"
// @Router /api/v1/cache/defaultTriggers [get]
func (h *SnapshotHandler) Get(c *gin.Context) {
	snap, err := h.cache.Read(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to read trigger snapshot",
			zap.Error(err),
			zap.Bool("corrupt", errors.Is(err, snapshot.ErrCorruptSnapshot)),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.CacheFailure(c, http.StatusInternalServerError, []string{"failed to read trigger snapshot"})
		return
	}
	response.CacheOK(c, snap)
}

// Put godoc
// @Summary Replace the default-trigger snapshot
// @Description Validates the body and schedules it to replace the cache. The write completes after the response.
// @Tags Cache
// @Accept json
// @Produce json
// @Param snapshot body models.PutSnapshotRequest true "Full trigger set"
// @Success 200 {object} response.CacheEnvelope
// @Failure 400 {object} response.CacheEnvelope "Wrong content type or invalid body"
// @Router /api/v1/cache/defaultTriggers [put]
func (h *SnapshotHandler) Put(c *gin.Context) {
	if c.ContentType() != gin.MIMEJSON {
		response.CacheFailure(c, http.StatusBadRequest, []string{contentTypeMessage})
		return
	}

	body, err := c.GetRawData()
	if err != nil {
		response.CacheFailure(c, http.StatusBadRequest, []string{"could not read request body"})
		return
	}
	if messages := h.cache.Validate(body); len(messages) > 0 {
		h.logger.Warn("snapshot body failed validation",
			zap.Strings("errors", messages),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.CacheFailure(c, http.StatusBadRequest, messages)
		return
	}

	var req models.PutSnapshotRequest
	if err := json.Unmarshal(body, &req); err != nil {
		response.CacheFailure(c, http.StatusBadRequest, []string{err.Error()})
		return
	}

	if err := h.cache.Write(req.Triggers); err != nil {
		h.logger.Error("failed to queue trigger snapshot",
			zap.Error(err),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.CacheFailure(c, http.StatusServiceUnavailable, []string{"snapshot writer unavailable"})
		return
	}

	response.CacheOK(c, gin.H{})
}
