package summaryerrors

import (
	"net/http"

	"go-ponto/internal/shared/apperror"
)

var (
	ErrInvalidDate = apperror.New(
		apperror.CodeInvalidInput,
		"Data inválida, use AAAA-MM-DD",
		http.StatusBadRequest,
	)
	ErrMissingDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Departamento é obrigatório",
		http.StatusBadRequest,
	)
	ErrInvalidEvent = apperror.New(
		apperror.CodeInvalidInput,
		"Evento de marcação inválido",
		http.StatusBadRequest,
	)
)
