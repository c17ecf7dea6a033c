package apperror

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func formatFieldName(s string) string {
	// userFullName -> user Full Name -> User Full Name
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	caser := cases.Title(language.Spanish)
	return caser.String(b.String())
}

// MapValidationError converts a gin binding failure into the Spanish
// message the client displays. Only the first violation is reported.
func MapValidationError(err error) error {
	if errs, ok := err.(validator.ValidationErrors); ok {
		e := errs[0]
		field := formatFieldName(e.Field())

		switch e.Tag() {
		case "required":
			return RequiredField(field)
		default:
			return InvalidField(field)
		}
	}

	return New(
		CodeInvalidInput,
		"Datos invalidos",
		http.StatusBadRequest,
	)
}

func RequiredField(field string) *AppError {
	return New(
		CodeInvalidInput,
		"El campo "+field+" es requerido",
		http.StatusBadRequest,
	)
}

func InvalidField(field string) *AppError {
	return New(
		CodeInvalidInput,
		"El campo "+field+" es invalido",
		http.StatusBadRequest,
	)
}
