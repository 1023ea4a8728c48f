package httperr

import (
	"errors"
	"net/http"

	"gorm.io/gorm"
)

type Kind string

const (
	KindValidation         Kind = "validation_error"
	KindAuthorization      Kind = "authorization_error"
	KindUnauthenticated    Kind = "unauthenticated"
	KindNotFound           Kind = "not_found"
	KindScheduleConflict   Kind = "schedule_conflict"
	KindInsufficientPoints Kind = "insufficient_points"
	KindPastTime           Kind = "past_time"
	KindUnavailable        Kind = "unavailable"
)

// BusinessError is an expected failure that maps to a 4xx response.
type BusinessError struct {
	Kind    Kind
	Code    string
	Message string
	Fields  map[string][]string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func (e BusinessError) Status() int {
	return StatusFor(e.Kind)
}

func New(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

// Validation carries per-field messages, rendered under "errors".
func Validation(fields map[string][]string) error {
	return BusinessError{
		Kind:    KindValidation,
		Code:    "validation_error",
		Message: "Error de validación",
		Fields:  fields,
	}
}

func ValidationField(field, message string) error {
	return Validation(map[string][]string{field: {message}})
}

func NotFound(code, message string) error {
	return New(KindNotFound, code, message)
}

func Forbidden() error {
	return New(KindAuthorization, "forbidden", "No autorizado")
}

// ------------------------------------------------------
// Booking errors
// ------------------------------------------------------

func ErrScheduleConflict() error {
	return New(KindScheduleConflict, "schedule_conflict",
		"Ya existe una cita reservada para esa fecha, hora y barbero")
}

func ErrInsufficientPoints() error {
	return New(KindInsufficientPoints, "insufficient_points",
		"No tienes suficientes puntos para un corte gratis. Necesitas 100 puntos.")
}

func ErrPastHour() error {
	return New(KindPastTime, "past_hour",
		"No se pueden reservar citas para horas pasadas")
}

func ErrTooClose() error {
	return New(KindPastTime, "too_close",
		"Para reservar en la hora actual, debe ser al menos 20 minutos antes")
}

// ------------------------------------------------------
// Inspection
// ------------------------------------------------------

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

func As(err error) (BusinessError, bool) {
	var be BusinessError
	ok := errors.As(err, &be)
	return be, ok
}

// IsUniqueViolation needs gorm.Config.TranslateError enabled.
func IsUniqueViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func StatusFor(kind Kind) int {
	switch kind {
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindAuthorization:
		return http.StatusForbidden
	case KindUnauthenticated:
		return http.StatusUnauthorized
	case KindNotFound:
		return http.StatusNotFound
	case KindUnavailable:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadRequest
	}
}
