package validation

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Credential rules for signup and login payloads. Validation stops at the
// first violated rule; its message is reported to the client verbatim.

var validate = newValidator()

var phonePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

func newValidator() *validator.Validate {
	v := validator.New()

	// gin's binding engine has no plausible-phone rule, so register one.
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})

	return v
}

type signupCredentials struct {
	UserName           string `validate:"required"`
	UserEmail          string `validate:"required,email"`
	UserPassword       string `validate:"required,min=8"`
	ContactPhonenumber string `validate:"required,phone"`
}

type loginCredentials struct {
	UserEmail    string `validate:"required,email"`
	UserPassword string `validate:"required"`
}

var ruleMessages = map[string]string{
	"UserName.required":           `"user_name" is required`,
	"UserEmail.required":          `"user_email" is required`,
	"UserEmail.email":             `"user_email" must be a valid email`,
	"UserPassword.required":       `"user_password" is required`,
	"UserPassword.min":            `"user_password" length must be at least 8 characters long`,
	"ContactPhonenumber.required": `"contact_phonenumber" is required`,
	"ContactPhonenumber.phone":    `"contact_phonenumber" must be a valid phone number`,
}

func firstViolation(err error) error {
	if err == nil {
		return nil
	}

	violations, ok := err.(validator.ValidationErrors)

	if !ok || len(violations) == 0 {
		return err
	}

	first := violations[0]

	if message, ok := ruleMessages[first.StructField()+"."+first.Tag()]; ok {
		return fmt.Errorf("%s", message)
	}

	return first
}

func ValidateSignup(name, email, password, phoneNumber string) error {
	return firstViolation(validate.Struct(signupCredentials{
		UserName:           name,
		UserEmail:          email,
		UserPassword:       password,
		ContactPhonenumber: phoneNumber,
	}))
}

func ValidateLogin(email, password string) error {
	return firstViolation(validate.Struct(loginCredentials{
		UserEmail:    email,
		UserPassword: password,
	}))
}
