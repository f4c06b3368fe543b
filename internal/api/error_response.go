package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIError is the body of every error response:
// { "error": { "code": "bad_request", "message": "text is required" } }
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error APIError `json:"error"`
}

// JSONError sends a structured error response and stops the chain.
func JSONError(c *gin.Context, status int, code, msg string) {
	c.AbortWithStatusJSON(status, errorResponse{Error: APIError{Code: code, Message: msg}})
}

func BadRequest(c *gin.Context, msg string) {
	JSONError(c, http.StatusBadRequest, "bad_request", msg)
}

func NotFound(c *gin.Context, msg string) {
	JSONError(c, http.StatusNotFound, "not_found", msg)
}

func Internal(c *gin.Context, msg string) {
	JSONError(c, http.StatusInternalServerError, "internal_error", msg)
}

func TooManyRequests(c *gin.Context, msg string) {
	JSONError(c, http.StatusTooManyRequests, "rate_limited", msg)
}
