package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Recurso no encontrado",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"No tiene permisos para esta accion",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Error en el servidor",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Token de acceso requerido",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Datos invalidos",
		http.StatusBadRequest,
	)
)
