// Package forms decodifica formularios url-encoded/multipart a structs y los
// valida con tags `validate`. Los nombres de campo en los errores son los del tag `form`.
package forms

import (
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"regexp"
	"sort"
	"strings"

	"cat-collector/internal/domain/domainerr"

	"github.com/go-playground/form/v4"
	"github.com/go-playground/validator/v10"
)

// FieldErrors mapea nombre de campo (tag form) -> mensaje para mostrar en la plantilla.
type FieldErrors map[string]string

// ValidationError envuelve FieldErrors y hace errors.Is(err, domainerr.ErrInvalidInput).
type ValidationError struct {
	Fields FieldErrors
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "invalid input: " + strings.Join(parts, "; ")
}

func (e *ValidationError) Unwrap() error { return domainerr.ErrInvalidInput }

// NewValidationError arma un error con un solo campo.
func NewValidationError(field, msg string) *ValidationError {
	return &ValidationError{Fields: FieldErrors{field: msg}}
}

// Fields extrae los FieldErrors de err (nil si no es de validación).
func Fields(err error) FieldErrors {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Fields
	}
	return nil
}

var (
	decoder  = form.NewDecoder()
	validate = newValidator()

	usernameRe = regexp.MustCompile(`^[\w.@+-]+$`)
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("notnumeric", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return strings.TrimFunc(s, func(r rune) bool { return r >= '0' && r <= '9' }) != ""
	})
	return v
}

// Decode parsea el form del request y lo vuelca en dst (puntero a struct).
func Decode(r *http.Request, dst any) error {
	if err := r.ParseForm(); err != nil {
		return NewValidationError("form", "malformed form")
	}
	if err := decoder.Decode(dst, r.PostForm); err != nil {
		var de form.DecodeErrors
		if errors.As(err, &de) {
			out := FieldErrors{}
			for field := range de {
				out[field] = "Enter a valid value."
			}
			return &ValidationError{Fields: out}
		}
		return fmt.Errorf("decode form: %w", err)
	}
	return nil
}

// Validate corre las reglas `validate` del struct.
func Validate(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("validate: %w", err)
	}
	out := FieldErrors{}
	for _, fe := range verrs {
		if _, exists := out[fe.Field()]; exists {
			continue
		}
		out[fe.Field()] = message(fe)
	}
	return &ValidationError{Fields: out}
}

// DecodeAndValidate es el atajo que usan casi todos los handlers.
func DecodeAndValidate(r *http.Request, dst any) error {
	if err := Decode(r, dst); err != nil {
		return err
	}
	return Validate(dst)
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "max":
		return fmt.Sprintf("Ensure this value has at most %s characters.", fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Ensure this value has at least %s characters.", fe.Param())
		}
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "gte":
		return fmt.Sprintf("Ensure this value is greater than or equal to %s.", fe.Param())
	case "oneof":
		return "Select a valid choice."
	case "datetime":
		return "Enter a valid date (YYYY-MM-DD)."
	case "username":
		return "Use only letters, digits and @/./+/-/_ characters."
	case "notnumeric":
		return "This password is entirely numeric."
	case "eqfield":
		return "The two password fields didn't match."
	default:
		return "Enter a valid value."
	}
}
