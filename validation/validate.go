// Package validation applies field-level constraints to inbound payloads.
// It reports every violated field, in struct-field order, as a readable
// message naming the json field.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"petclinic/models"
)

var (
	// Literal pattern checks only. Calendar correctness is out of scope:
	// "2024-02-30" is accepted.
	dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRe = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

	validate = newValidator()
)

func newValidator() *validator.Validate {
	v := validator.New()

	// Report errors against json field names, not Go field names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("dateformat", func(fl validator.FieldLevel) bool {
		return dateRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("timeformat", func(fl validator.FieldLevel) bool {
		return timeRe.MatchString(fl.Field().String())
	})
	v.RegisterValidation("simpleemail", func(fl validator.FieldLevel) bool {
		return IsSimpleEmail(fl.Field().String())
	})

	return v
}

// IsSimpleEmail applies the basic email shape check: an "@" with a dot
// somewhere in the domain part.
func IsSimpleEmail(email string) bool {
	at := strings.Index(email, "@")
	if at < 1 {
		return false
	}
	return strings.Contains(email[at+1:], ".")
}

// IsValidDate reports whether s matches the literal YYYY-MM-DD pattern.
func IsValidDate(s string) bool {
	return dateRe.MatchString(s)
}

// ValidateAppointment checks a create-appointment payload. It returns nil
// when the payload is valid, otherwise one message per violated field.
func ValidateAppointment(req models.CreateAppointmentRequest) []string {
	return collect(validate.Struct(req))
}

// ValidatePet checks a create-pet payload.
func ValidatePet(req models.CreatePetRequest) []string {
	return collect(validate.Struct(req))
}

func collect(err error) []string {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, message(fe))
	}
	return msgs
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gt":
		return fmt.Sprintf("%s must be a positive number", field)
	case "simpleemail":
		return fmt.Sprintf("%s must be a valid email address", field)
	case "dateformat":
		return fmt.Sprintf("%s must use the YYYY-MM-DD format", field)
	case "timeformat":
		return fmt.Sprintf("%s must use the HH:MM 24-hour format", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
