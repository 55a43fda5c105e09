// Package validation holds the declarative form schemas and the validator
// that enforces them. Both the HTTP handlers and the bizctl client run it,
// so a form that fails here never reaches a data-access call.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"bizdesk_backend/internal/models"
)

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02T15:04"
)

var (
	datePattern     = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dateTimePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}$`)
)

// FieldErrors maps a json field name to a human-readable message.
type FieldErrors map[string]string

func (fe FieldErrors) Error() string {
	keys := make([]string, 0, len(fe))
	for k := range fe {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+fe[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// AsFieldErrors extracts FieldErrors from err, if present.
func AsFieldErrors(err error) (FieldErrors, bool) {
	var fe FieldErrors
	if errors.As(err, &fe) {
		return fe, true
	}
	return nil, false
}

// Normalizer is implemented by forms that trim input and turn blank optional
// fields into nil before validation.
type Normalizer interface {
	Normalize()
}

var (
	once     sync.Once
	validate *validator.Validate
)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		mustRegister(v, "ymd", func(fl validator.FieldLevel) bool {
			return IsDate(fl.Field().String())
		})
		mustRegister(v, "ymdhm", func(fl validator.FieldLevel) bool {
			return IsDateTime(fl.Field().String())
		})
		mustRegister(v, "timezone", func(fl validator.FieldLevel) bool {
			_, err := time.LoadLocation(fl.Field().String())
			return err == nil && fl.Field().String() != ""
		})
		mustRegister(v, "businesstype", func(fl validator.FieldLevel) bool {
			return models.IsValidBusinessType(fl.Field().String())
		})
		validate = v
	})
	return validate
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("register %s validation: %v", tag, err))
	}
}

// IsDate reports whether s is a zero-padded YYYY-MM-DD calendar date.
func IsDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsDateTime reports whether s is a zero-padded YYYY-MM-DDTHH:mm date-time.
func IsDateTime(s string) bool {
	if !dateTimePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateTimeLayout, s)
	return err == nil
}

// Struct normalizes form (when it is a Normalizer) and validates it.
// It returns nil or FieldErrors.
func Struct(form interface{}) error {
	if n, ok := form.(Normalizer); ok {
		n.Normalize()
	}
	err := engine().Struct(form)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"_": err.Error()}
	}
	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = message(fe)
	}
	return out
}

func message(fe validator.FieldError) string {
	label := humanize(fe.Field())
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "min":
		return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
	case "max":
		if fe.Kind() == reflect.Int {
			return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be %s characters or less.", label, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	case "email":
		return "Please enter a valid email address."
	case "ymd":
		return label + " must use the YYYY-MM-DD format."
	case "ymdhm":
		return label + " must use the YYYY-MM-DDTHH:mm format."
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s.", label, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "timezone":
		return label + " must be a valid IANA timezone."
	case "businesstype":
		return label + " is not a known business type."
	default:
		return fmt.Sprintf("%s is invalid (%s).", label, fe.Tag())
	}
}

func humanize(field string) string {
	s := strings.ReplaceAll(field, "_", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
