package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents the error response envelope.
type ErrorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// errorResponse writes an error response with the given code and status.
func errorResponse(c *gin.Context, code string, message string, statusCode int) {
	resp := ErrorResponse{}
	resp.Error.Code = code
	resp.Error.Message = message
	c.JSON(statusCode, resp)
}

// notFoundResponse writes a 404 error response.
func notFoundResponse(c *gin.Context, message string) {
	errorResponse(c, "NOT_FOUND", message, http.StatusNotFound)
}

// unauthorizedResponse writes a 401 error response.
func unauthorizedResponse(c *gin.Context, message string) {
	errorResponse(c, "UNAUTHORIZED", message, http.StatusUnauthorized)
}

// conflictResponse writes a 409 error response.
func conflictResponse(c *gin.Context, message string) {
	errorResponse(c, "SLOT_TAKEN", message, http.StatusConflict)
}
