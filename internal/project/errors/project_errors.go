package projecterrors

import (
	"net/http"

	"rikimaka/internal/shared/apperror"
)

var (
	ErrInvalidProjectID = apperror.New(
		apperror.CodeInvalidInput,
		"Id de proyecto invalido",
		http.StatusBadRequest,
	)
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Proyecto no encontrado",
		http.StatusNotFound,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Id de usuario invalido",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Formato de fecha invalido, se espera YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidBudget = apperror.New(
		apperror.CodeInvalidInput,
		"El presupuesto debe ser mayor o igual a 0",
		http.StatusBadRequest,
	)
	ErrAssigneeNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"El usuario asignado no existe",
		http.StatusBadRequest,
	)
)
