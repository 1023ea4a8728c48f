package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/timezone"
)

var hhmmPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

var registerOnce sync.Once

// Register installs the booking rules on gin's validator. Safe to call more
// than once.
func Register() {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("hhmm", func(fl validator.FieldLevel) bool {
			return IsHHMM(fl.Field().String())
		})
		_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			return IsISODate(fl.Field().String())
		})
		_ = v.RegisterValidation("service_type", func(fl validator.FieldLevel) bool {
			return domain.ServiceType(fl.Field().String()).Valid()
		})
		_ = v.RegisterValidation("appointment_status", func(fl validator.FieldLevel) bool {
			return domain.Status(fl.Field().String()).Valid()
		})
	})
}

func IsHHMM(s string) bool {
	return hhmmPattern.MatchString(s)
}

func IsISODate(s string) bool {
	_, err := time.Parse(timezone.DateLayout, s)
	return err == nil
}

func jsonName(f reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// Translate turns a binding error into field -> messages.
func Translate(err error) map[string][]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string][]string{"body": {"El cuerpo de la petición no es válido."}}
	}

	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], message(fe))
	}
	return out
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("El campo %s es obligatorio.", field)
	case "isodate":
		return fmt.Sprintf("El campo %s no es una fecha válida.", field)
	case "hhmm":
		return fmt.Sprintf("El campo %s no corresponde al formato H:i.", field)
	case "service_type":
		return InvalidChoice(field, domain.ServiceTypes())
	case "appointment_status":
		return InvalidChoice(field, domain.Statuses())
	case "oneof":
		return InvalidChoice(field, strings.Fields(fe.Param()))
	case "max":
		return fmt.Sprintf("El campo %s no debe ser mayor que %s caracteres.", field, fe.Param())
	case "min":
		return fmt.Sprintf("El campo %s debe contener al menos %s caracteres.", field, fe.Param())
	case "email":
		return fmt.Sprintf("El campo %s debe ser una dirección de correo válida.", field)
	case "eqfield":
		return fmt.Sprintf("La confirmación del campo %s no coincide.", strings.ToLower(fe.Param()))
	case "gt":
		return fmt.Sprintf("El campo %s debe ser mayor que %s.", field, fe.Param())
	default:
		return fmt.Sprintf("El campo %s no es válido.", field)
	}
}

// InvalidChoice is the message for a value outside allowed.
func InvalidChoice[T ~string](field string, allowed []T) string {
	names := make([]string, len(allowed))
	for i, v := range allowed {
		names[i] = string(v)
	}
	return fmt.Sprintf("El campo %s seleccionado es inválido. Valores permitidos: %s.",
		field, strings.Join(names, ", "))
}
