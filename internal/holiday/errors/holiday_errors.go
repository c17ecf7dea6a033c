package holidayerrors

import (
	"net/http"

	"rikimaka/internal/shared/apperror"
)

var (
	ErrInvalidHolidayID = apperror.New(
		apperror.CodeInvalidInput,
		"Id de feriado invalido",
		http.StatusBadRequest,
	)
	ErrHolidayNotFound = apperror.New(
		apperror.CodeNotFound,
		"Feriado no encontrado",
		http.StatusNotFound,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Formato de fecha invalido, se espera YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrDuplicateDate = apperror.New(
		apperror.CodeConflict,
		"Ya existe un feriado en esta fecha",
		http.StatusBadRequest,
	)
)
