package validators

import (
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	appErr "github.com/rewear-app/backend/pkg/errors"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// New returns the shared validator instance. Struct tag names are taken from
// the json tag so error messages match the wire field names.
func New() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	})
	return validate
}

// Check validates a request struct and converts failures into a field-keyed
// validation error.
func Check(req any) error {
	err := New().Struct(req)
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return appErr.Wrap(err, appErr.CodeInvalid, "invalid request")
	}
	out := appErr.New(appErr.CodeInvalid, "validation failed")
	for _, fe := range verrs {
		out = out.WithField(fe.Field(), messageFor(fe))
	}
	return out
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "email":
		return "Enter a valid email address."
	case "gt":
		return "Must be greater than " + fe.Param() + "."
	case "oneof":
		return "Must be one of: " + fe.Param() + "."
	default:
		return "Invalid value."
	}
}
