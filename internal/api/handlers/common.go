package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dhima/auto-run-ac/internal/api/response"
	"github.com/dhima/auto-run-ac/internal/logging"
	"github.com/dhima/auto-run-ac/internal/storage"
	"github.com/dhima/auto-run-ac/internal/triggers"
	"github.com/dhima/auto-run-ac/internal/validation"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// bindValidated reads the raw body, checks it against schema and decodes it into dst.
// It writes the 400 itself and returns false when the body is unusable.
func bindValidated(c *gin.Context, logger logging.Logger, schema *validation.Schema, dst any) bool {
	body, err := c.GetRawData()
	if err != nil {
		response.ValidationFailed(c, []string{"could not read request body"})
		return false
	}

	if messages := schema.Validate(body); len(messages) > 0 {
		logger.Warn("request body failed validation",
			zap.String("schema", schema.Name()),
			zap.Strings("errors", messages),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.ValidationFailed(c, messages)
		return false
	}

	if err := json.Unmarshal(body, dst); err != nil {
		response.ValidationFailed(c, []string{err.Error()})
		return false
	}
	return true
}

// handleServiceError maps service outcomes to status codes. It returns true when it wrote
// a response.
func handleServiceError(c *gin.Context, logger logging.Logger, err error, operation string) bool {
	if err == nil {
		return false
	}

	var validationErr triggers.ValidationError
	switch {
	case errors.As(err, &validationErr):
		response.ValidationFailed(c, []string{validationErr.Error()})
	case errors.Is(err, storage.ErrTriggerNotFound):
		response.Empty(c, http.StatusNotFound)
	case errors.Is(err, storage.ErrTriggerConflict):
		logger.Warn(operation+" conflicted",
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.Empty(c, http.StatusConflict)
	default:
		logger.Error(operation+" failed",
			zap.Error(err),
			zap.String("trigger_id", c.Param("id")),
			zap.String("request_id", response.GetRequestID(c)),
		)
		response.InternalServerError(c, "internal server error")
	}
	return true
}

// resourceURL builds the absolute URL of a newly created resource under the request path.
func resourceURL(c *gin.Context, id string) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	} else if forwarded := c.GetHeader("X-Forwarded-Proto"); forwarded != "" {
		scheme = forwarded
	}

	host := c.Request.Host
	if forwardedHost := c.GetHeader("X-Forwarded-Host"); forwardedHost != "" {
		host = forwardedHost
	}

	path := strings.TrimSuffix(c.Request.URL.Path, "/") + "/" + id
	host = strings.TrimSpace(host)
	if host == "" {
		return path
	}
	return scheme + "://" + host + path
}
