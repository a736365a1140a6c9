package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SuccessResponse represents a successful API response.
type SuccessResponse struct {
	Data    any    `json:"data"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse represents an error API response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
	TraceID string `json:"trace_id,omitempty"`
}

// CacheEnvelope is the body shape of the snapshot cache endpoints, which downstream
// evaluators already parse.
type CacheEnvelope struct {
	Success  bool     `json:"success"`
	Data     any      `json:"data,omitempty"`
	Messages []string `json:"messages,omitempty"`
} // @name CacheEnvelope

// Success sends a successful response with data.
func Success(c *gin.Context, statusCode int, data any, message string) {
	c.JSON(statusCode, SuccessResponse{
		Data:    data,
		Message: message,
	})
}

// Error sends an error response with details.
func Error(c *gin.Context, statusCode int, err string, details any) {
	c.JSON(statusCode, ErrorResponse{
		Error:   err,
		Details: details,
		TraceID: GetRequestID(c),
	})
}

// BadRequest sends a 400 Bad Request response.
func BadRequest(c *gin.Context, err string, details any) {
	Error(c, http.StatusBadRequest, err, details)
}

// ValidationFailed sends a 400 listing every validation message.
func ValidationFailed(c *gin.Context, messages []string) {
	BadRequest(c, "validation failed", messages)
}

// InternalServerError sends a 500 Internal Server Error response.
func InternalServerError(c *gin.Context, err string) {
	Error(c, http.StatusInternalServerError, err, nil)
}

// ServiceUnavailable sends a 503 response.
func ServiceUnavailable(c *gin.Context, err string) {
	Error(c, http.StatusServiceUnavailable, err, nil)
}

// Empty sends the status code with no body. Not-found and conflict outcomes use it.
func Empty(c *gin.Context, statusCode int) {
	c.Status(statusCode)
}

// Created sends a 201 with a Location header pointing at the new resource.
func Created(c *gin.Context, location string, body any) {
	c.Header("Location", location)
	c.JSON(http.StatusCreated, body)
}

// OK sends a 200 with the body as-is.
func OK(c *gin.Context, body any) {
	c.JSON(http.StatusOK, body)
}

// NoContent sends a 204 No Content response.
func NoContent(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// CacheOK sends {"success": true, "data": data}.
func CacheOK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, CacheEnvelope{Success: true, Data: data})
}

// CacheFailure sends {"success": false, "messages": [...]}.
func CacheFailure(c *gin.Context, statusCode int, messages []string) {
	c.JSON(statusCode, CacheEnvelope{Success: false, Messages: messages})
}

// GetRequestID retrieves the request ID from context.
func GetRequestID(c *gin.Context) string {
	if requestID, exists := c.Get("request_id"); exists {
		if id, ok := requestID.(string); ok {
			return id
		}
	}
	return uuid.New().String()
}
