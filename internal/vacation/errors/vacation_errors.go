package vacationerrors

import (
	"fmt"
	"net/http"

	"rikimaka/internal/shared/apperror"
)

var (
	ErrInvalidVacationID = apperror.New(
		apperror.CodeInvalidInput,
		"Id de solicitud invalido",
		http.StatusBadRequest,
	)
	ErrInvalidUserID = apperror.New(
		apperror.CodeInvalidInput,
		"Id de usuario invalido",
		http.StatusBadRequest,
	)
	ErrVacationNotFound = apperror.New(
		apperror.CodeNotFound,
		"Solicitud de vacaciones no encontrada",
		http.StatusNotFound,
	)
	ErrOwnerNotFound = apperror.New(
		apperror.CodeInvalidInput,
		"El usuario de la solicitud no existe",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Formato de fecha invalido, se espera YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrStartInPast = apperror.New(
		apperror.CodeInvalidInput,
		"La fecha de inicio no puede ser anterior a hoy",
		http.StatusBadRequest,
	)
	ErrEndBeforeStart = apperror.New(
		apperror.CodeInvalidInput,
		"La fecha de fin no puede ser anterior a la fecha de inicio",
		http.StatusBadRequest,
	)
	ErrReasonTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"La razon debe tener al menos 10 caracteres",
		http.StatusBadRequest,
	)
	ErrReasonTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"La razon no puede exceder 500 caracteres",
		http.StatusBadRequest,
	)
	ErrNotPendingEdit = apperror.New(
		apperror.CodeInvalidState,
		"Solo se pueden editar solicitudes pendientes",
		http.StatusBadRequest,
	)
	ErrNotPendingDelete = apperror.New(
		apperror.CodeInvalidState,
		"Solo se pueden eliminar solicitudes pendientes",
		http.StatusBadRequest,
	)
	ErrAlreadyDecided = apperror.New(
		apperror.CodeInvalidState,
		"Solo se pueden procesar solicitudes pendientes",
		http.StatusBadRequest,
	)
	ErrNotOwner = apperror.New(
		apperror.CodeForbidden,
		"No tiene permisos para esta accion",
		http.StatusForbidden,
	)
)

// BlackoutConflict names the blocking period in the message, the way the
// request form reports it.
func BlackoutConflict(periodName string, periodStart, periodEnd string) *apperror.AppError {
	return apperror.New(
		apperror.CodeConflict,
		fmt.Sprintf(
			"No se pueden solicitar vacaciones durante el periodo bloqueado: %s (%s - %s)",
			periodName, periodStart, periodEnd,
		),
		http.StatusBadRequest,
	)
}
