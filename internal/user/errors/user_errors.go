package usererrors

import (
	"net/http"

	"rikimaka/internal/shared/apperror"
)

var (
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Id de usuario invalido",
		http.StatusBadRequest,
	)
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"Usuario no encontrado",
		http.StatusNotFound,
	)
	ErrUserExists = apperror.New(
		apperror.CodeConflict,
		"Usuario o email ya existe",
		http.StatusBadRequest,
	)
)
