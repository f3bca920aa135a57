package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// fieldMessages pins the human-readable text for known field/tag pairs so
// API responses stay stable across validator versions.
var fieldMessages = map[string]string{
	"email.required":             "Email is required",
	"email.email":                "Please enter a valid email address",
	"password.required":          "Password is required",
	"password.min":               "Password must be at least 5 characters long",
	"fullName.required":          "Full name is required",
	"phone.required":             "Phone is required",
	"phoneNumber.required":       "Phone number is required",
	"cdlLicense.required":        "CDL license is required",
	"state.required":             "State is required",
	"drivingExperience.required": "Driving experience is required",
	"truckTypes.required":        "Truck types are required",
	"truckTypes.min":             "Truck types are required",
	"longHaulTrips.required":     "Long haul trips preference is required",
}

// New builds a validator that reports fields by their json names, so
// normalized error maps match the wire format of the request.
func New() *validator.Validate {
	validate := validator.New()

	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return validate
}

// Normalize flattens a validation failure into a field -> message map.
// Any error that is not a validator.ValidationErrors, including nil,
// yields an empty map.
func Normalize(err error) map[string]string {
	fields := map[string]string{}

	var validateErrs validator.ValidationErrors
	if !errors.As(err, &validateErrs) {
		return fields
	}

	for _, fe := range validateErrs {
		fields[fe.Field()] = message(fe)
	}

	return fields
}

func message(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return "Please enter a valid email address"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s is not valid", fe.Field())
	}
}
