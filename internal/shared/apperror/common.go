package apperror

import "net/http"

var (
	ErrNotFound = New(
		CodeNotFound,
		"Recurso não encontrado",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"Acesso negado",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"Erro interno do servidor",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Token não fornecido",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"Dados inválidos",
		http.StatusBadRequest,
	)
)
