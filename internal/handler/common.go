package handler

import (
	"errors"
	"net/http"
	"strings"

	"scrumboard/internal/middleware"
	"scrumboard/internal/model"
	"scrumboard/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ErrorResponse struct {
	Error string `json:"error"`
}

func callerOrAbort(c *gin.Context) (model.Caller, bool) {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
		return model.Caller{}, false
	}
	return caller, true
}

// parseID reads a uuid path parameter. what names the resource in the error message.
func parseID(c *gin.Context, param, what string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(param))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + what + " ID format"})
		return uuid.Nil, false
	}
	return id, true
}

// respondError maps service errors to HTTP responses. Unexpected errors are attached to
// the context for the request logger and answered with "Failed to <action>".
func respondError(c *gin.Context, err error, what, action string) {
	var rejection *service.RejectionError
	switch {
	case errors.As(err, &rejection):
		c.JSON(http.StatusConflict, gin.H{"error": rejection.Reason})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": reason(err, service.ErrForbidden)})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": reason(err, service.ErrInvalidInput)})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to " + action})
	}
}

// reason strips the sentinel prefix from a wrapped error message.
func reason(err, sentinel error) string {
	msg := strings.TrimPrefix(err.Error(), sentinel.Error()+": ")
	if msg == "" {
		return sentinel.Error()
	}
	return msg
}

func optionalID(v *string) (*uuid.UUID, error) {
	if v == nil || *v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*v)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
