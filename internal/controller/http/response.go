package http

import (
	"errors"
	"net/http"

	"blog-backend/internal/apperr"
	"blog-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Responder renders every error as {"error": ..., "details"?: ...}.
type Responder struct {
	logger     *logger.Logger
	production bool
}

// NewResponder hides internal error details when production is true.
func NewResponder(logger *logger.Logger, production bool) *Responder {
	return &Responder{logger: logger, production: production}
}

func (r *Responder) Error(c *gin.Context, err error) {
	var appErr *apperr.Error
	if !errors.As(err, &appErr) {
		appErr = apperr.Internal("Internal server error", err)
	}

	status := statusFor(appErr.Kind)
	body := gin.H{"error": appErr.Message}

	if appErr.Kind == apperr.KindInternal {
		r.logger.Error("%s %s: %v", c.Request.Method, c.FullPath(), err)
		if !r.production && appErr.Err != nil {
			body["details"] = appErr.Err.Error()
		}
	} else if appErr.Details != "" {
		body["details"] = appErr.Details
	}

	c.AbortWithStatusJSON(status, body)
}

func (r *Responder) BadRequest(c *gin.Context, message string, err error) {
	details := ""
	if err != nil {
		details = err.Error()
	}
	r.Error(c, apperr.Validation(message, details))
}

func statusFor(kind apperr.Kind) int {
	switch kind {
	case apperr.KindValidation, apperr.KindConflict:
		return http.StatusBadRequest
	case apperr.KindUnauthenticated, apperr.KindInvalidCredential:
		return http.StatusUnauthorized
	case apperr.KindInvalidToken, apperr.KindForbidden:
		return http.StatusForbidden
	case apperr.KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
