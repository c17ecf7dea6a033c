package reporterrors

import (
	"net/http"

	"rikimaka/internal/shared/apperror"
)

var (
	ErrInvalidReportID = apperror.New(
		apperror.CodeInvalidInput,
		"Id de reporte invalido",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Id de usuario invalido",
		http.StatusBadRequest,
	)
	ErrReportNotFound = apperror.New(
		apperror.CodeNotFound,
		"Reporte no encontrado",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Formato de fecha invalido, se espera YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrNoActivities = apperror.New(
		apperror.CodeInvalidInput,
		"El reporte debe tener al menos una actividad",
		http.StatusBadRequest,
	)
	ErrInvalidHours = apperror.New(
		apperror.CodeInvalidInput,
		"Las horas de cada actividad deben estar entre 0.5 y 24",
		http.StatusBadRequest,
	)
	ErrDescriptionTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"La descripcion de la actividad debe tener al menos 10 caracteres",
		http.StatusBadRequest,
	)
	ErrDescriptionTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"La descripcion de la actividad no puede exceder 500 caracteres",
		http.StatusBadRequest,
	)
	ErrTotalTooHigh = apperror.New(
		apperror.CodeInvalidInput,
		"El total de horas del reporte no puede exceder 24",
		http.StatusBadRequest,
	)
	ErrActivityProjectNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"El proyecto de la actividad no existe",
		http.StatusBadRequest,
	)
	ErrOwnerNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"El usuario del reporte no existe",
		http.StatusBadRequest,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"No tiene permisos para esta accion",
		http.StatusForbidden,
	)
)
