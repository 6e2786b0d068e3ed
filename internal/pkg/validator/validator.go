package validator

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	validate   *validator.Validate
	emailRegex = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
)

func init() {
	validate = validator.New()
	_ = validate.RegisterValidation("strict_email", func(fl validator.FieldLevel) bool {
		return IsValidEmail(fl.Field().String())
	})
}

// Validate struct fields. Returns nil when v is valid, otherwise field -> failed tag.
func Validate(v interface{}) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errors["_"] = err.Error()
		return errors
	}
	for _, err := range verrs {
		errors[err.Field()] = err.Tag()
	}
	return errors
}

// IsValidEmail is stricter than the stock "email" tag: no consecutive dots and
// no dot at either edge of the local or domain part.
func IsValidEmail(email string) bool {
	if !emailRegex.MatchString(email) {
		return false
	}
	if strings.Contains(email, "..") {
		return false
	}

	at := strings.LastIndex(email, "@")
	if at < 0 {
		return false
	}
	local, domain := email[:at], email[at+1:]
	if strings.HasPrefix(local, ".") || strings.HasSuffix(local, ".") {
		return false
	}
	if strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return true
}
