package httperr

import (
	"log/slog"
	"net/http"

	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success bool                `json:"success"`
	Code    string              `json:"error_code"`
	Message string              `json:"message"`
	Errors  map[string][]string `json:"errors,omitempty"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

func Unauthorized(c *gin.Context, code, message string) {
	Write(c, http.StatusUnauthorized, code, message)
}

func AbortUnauthorized(c *gin.Context, code string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, HTTPError{
		Code:    code,
		Message: "No autenticado",
	})
}

func AbortForbidden(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, HTTPError{
		Code:    "forbidden",
		Message: "No autorizado",
	})
}

// Respond turns any error into the JSON error envelope. Business errors keep
// their message; everything else becomes a generic 500 and is reported.
func Respond(c *gin.Context, err error) {
	if be, ok := As(err); ok {
		msg := be.Message
		if msg == "" {
			msg = be.Code
		}
		c.JSON(be.Status(), HTTPError{
			Code:    be.Code,
			Message: msg,
			Errors:  be.Fields,
		})
		return
	}

	slog.ErrorContext(c.Request.Context(), "request failed",
		"method", c.Request.Method,
		"path", c.FullPath(),
		"error", err,
	)
	if hub := sentrygin.GetHubFromContext(c); hub != nil {
		hub.CaptureException(err)
	}

	Internal(c, "internal_error", "Error interno del servidor")
}
