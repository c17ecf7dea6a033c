package vacationperioderrors

import (
	"net/http"

	"rikimaka/internal/shared/apperror"
)

var (
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"Periodo no encontrado",
		http.StatusNotFound,
	)
	ErrInvalidPeriodID = apperror.New(
		apperror.CodeInvalidInput,
		"Id de periodo invalido",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Formato de fecha invalido, se espera YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"La fecha de fin no puede ser anterior a la fecha de inicio",
		http.StatusBadRequest,
	)
)
