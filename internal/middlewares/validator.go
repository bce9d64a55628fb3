package middlewares

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// FieldError is the outcome of a failed check. An empty Field means the
// payload as a whole was rejected.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("[%s]: %s", e.Field, e.Message)
}

func (e *FieldError) Status() int {
	if e.Field == "" {
		return http.StatusBadRequest
	}

	return http.StatusUnprocessableEntity
}

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// registration only fails on an empty tag or a nil func
	_ = validate.RegisterValidation("notblank", validators.NotBlank)

	return &Validator{validate: validate}
}

// Validate checks i against its validate tags and reports the first failure.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldsErr validator.ValidationErrors
	if !errors.As(err, &fieldsErr) || len(fieldsErr) == 0 {
		return &FieldError{Message: err.Error()}
	}

	fe := fieldsErr[0]
	return &FieldError{Field: fe.Field(), Message: ruleMessage(fe)}
}

// BindError converts a JSON decoding failure into a FieldError.
func BindError(err error) *FieldError {
	var fieldErr *FieldError
	if errors.As(err, &fieldErr) {
		return fieldErr
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return &FieldError{
			Field:   typeErr.Field,
			Message: fmt.Sprintf("Expected %s, received %s", jsonKind(typeErr.Type), typeErr.Value),
		}
	}

	return &FieldError{Message: "Invalid JSON body"}
}

// CheckPatch rejects empty bodies and keys outside allowed.
func CheckPatch(raw map[string]json.RawMessage, allowed []string) error {
	if len(raw) == 0 {
		return ErrNothingToUpdate
	}

	keys := make([]string, 0, len(raw))
	for key := range raw {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !slices.Contains(allowed, key) {
			return &FieldError{Field: key, Message: "Field cannot be updated"}
		}
	}

	return nil
}

func ruleMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Required"
	case "notblank":
		return "Cannot be blank"
	case "url":
		return "Invalid url"
	case "uuid4":
		return "Invalid uuid"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("String must contain at least %s character(s)", fe.Param())
		}
		return fmt.Sprintf("Number must be greater than or equal to %s", fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("String must contain at most %s character(s)", fe.Param())
		}
		return fmt.Sprintf("Number must be less than or equal to %s", fe.Param())
	default:
		return fmt.Sprintf("Invalid value (%s)", fe.Tag())
	}
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}

	switch t.Kind() {
	case reflect.Pointer:
		return jsonKind(t.Elem())
	case reflect.String:
		return "string"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "integer"
	case reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Bool:
		return "boolean"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}
