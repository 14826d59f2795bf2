package validators

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// New returns a validator instance that reports fields by their json names,
// so error maps line up with the request body the client sent.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return v
}

// FieldErrors flattens validator failures into the per-field errors map used
// by ValidationErrorResponse.
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		fields["body"] = "Invalid request body!"
		return fields
	}

	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			fields[e.Field()] = fmt.Sprintf("%s is required!", e.Field())
		case "email":
			fields[e.Field()] = fmt.Sprintf("%s must be a valid email address!", e.Field())
		case "min":
			if e.Kind() == reflect.String {
				fields[e.Field()] = fmt.Sprintf("%s must be at least %s characters long!", e.Field(), e.Param())
			} else {
				fields[e.Field()] = fmt.Sprintf("%s must be at least %s!", e.Field(), e.Param())
			}
		case "max":
			if e.Kind() == reflect.String {
				fields[e.Field()] = fmt.Sprintf("%s must be at most %s characters long!", e.Field(), e.Param())
			} else {
				fields[e.Field()] = fmt.Sprintf("%s must be at most %s!", e.Field(), e.Param())
			}
		case "len":
			fields[e.Field()] = fmt.Sprintf("%s must be exactly %s characters long!", e.Field(), e.Param())
		case "gt":
			fields[e.Field()] = fmt.Sprintf("%s must be greater than %s!", e.Field(), e.Param())
		case "gte":
			fields[e.Field()] = fmt.Sprintf("%s must be %s or more!", e.Field(), e.Param())
		case "oneof":
			fields[e.Field()] = fmt.Sprintf("%s must be one of: %s!", e.Field(), strings.ReplaceAll(e.Param(), " ", ", "))
		default:
			fields[e.Field()] = fmt.Sprintf("%s is invalid!", e.Field())
		}
	}
	return fields
}
