package autherrors

import (
	"net/http"

	"rikimaka/internal/shared/apperror"
)

var (
	// The same message for unknown email and wrong password, so the login
	// form never reveals whether an email is registered.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Credenciales invalidas",
		http.StatusUnauthorized,
	)
	ErrInactiveAccount = apperror.New(
		apperror.CodeForbidden,
		"Usuario inactivo",
		http.StatusForbidden,
	)
	ErrUserExists = apperror.New(
		apperror.CodeConflict,
		"Usuario o email ya existe",
		http.StatusBadRequest,
	)
	ErrInvalidToken = apperror.New(
		apperror.CodeUnauthorized,
		"Token invalido",
		http.StatusUnauthorized,
	)
	ErrTokenGeneration = apperror.New(
		apperror.CodeInternalError,
		"Error en el servidor",
		http.StatusInternalServerError,
	)
)
