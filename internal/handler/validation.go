package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"backend/internal/response"
	"backend/internal/validation"
)

// bindError turns a gin binding failure into the documented 400 response:
// field-level failures produce an errors map, anything else (malformed JSON,
// wrong types) a plain message.
func bindError(c *gin.Context, err error, policy validation.PasswordPolicy) {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		response.Error(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	fieldErrors := make(map[string]string, len(validationErrs))
	for _, fe := range validationErrs {
		fieldErrors[strings.ToLower(fe.Field())] = fieldMessage(fe, policy)
	}
	response.ValidationError(c, fieldErrors)
}

func fieldMessage(fe validator.FieldError, policy validation.PasswordPolicy) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "email":
		return "Email should be valid"
	case validation.StrongPasswordTag:
		return policy.Message()
	case "oneof":
		return fe.Field() + " must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	default:
		return fe.Field() + " is invalid"
	}
}
