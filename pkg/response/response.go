package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Resp is the error body returned by every failing endpoint.
type Resp struct {
	Error string `json:"error"`
}

// OK sends 200 JSON with data as the whole body.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created sends 201 JSON with data as the whole body.
func Created(c *gin.Context, data any) {
	c.JSON(http.StatusCreated, data)
}

// Error sends status with {"error": msg}.
func Error(c *gin.Context, status int, msg string) {
	c.JSON(status, Resp{Error: msg})
}

// Abort is Error for middleware: the rest of the chain is skipped.
func Abort(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, Resp{Error: msg})
}

// BadRequest sends 400 response.
func BadRequest(c *gin.Context, msg string) {
	Error(c, http.StatusBadRequest, msg)
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context, msg string) {
	Error(c, http.StatusUnauthorized, msg)
}

// InternalError sends 500 response.
func InternalError(c *gin.Context, msg string) {
	if msg == "" {
		msg = DefaultErrorMessage
	}
	Error(c, http.StatusInternalServerError, msg)
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	Error(c, http.StatusTooManyRequests, MessageTooManyRequests)
}

// Unavailable sends 503 response.
func Unavailable(c *gin.Context, msg string) {
	Error(c, http.StatusServiceUnavailable, msg)
}
