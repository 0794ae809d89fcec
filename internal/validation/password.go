package validation

import (
	"fmt"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// PasswordPolicy is the configurable strength predicate applied to signup
// passwords: a minimum length plus a minimum number of distinct character
// classes (lowercase, uppercase, digit, symbol).
type PasswordPolicy struct {
	MinLength  int `yaml:"min_length"`
	MinClasses int `yaml:"min_classes"`
}

// DefaultPasswordPolicy mirrors the usual "8 chars, three classes" baseline.
var DefaultPasswordPolicy = PasswordPolicy{MinLength: 8, MinClasses: 3}

// Check reports whether the password satisfies the policy.
func (p PasswordPolicy) Check(password string) bool {
	if len(password) < p.MinLength {
		return false
	}

	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		default:
			symbol = true
		}
	}

	classes := 0
	for _, ok := range []bool{lower, upper, digit, symbol} {
		if ok {
			classes++
		}
	}
	return classes >= p.MinClasses
}

// Message is the field-level error text reported on policy failure.
func (p PasswordPolicy) Message() string {
	return fmt.Sprintf("Password must be at least %d characters and contain %d of: lowercase, uppercase, digit, symbol", p.MinLength, p.MinClasses)
}

// StrongPasswordTag is the binding tag name registered for the policy.
const StrongPasswordTag = "strongpwd"

// RegisterStrongPassword wires the policy into a validator engine as the
// `strongpwd` binding tag.
func RegisterStrongPassword(v *validator.Validate, policy PasswordPolicy) error {
	return v.RegisterValidation(StrongPasswordTag, func(fl validator.FieldLevel) bool {
		return policy.Check(fl.Field().String())
	})
}
