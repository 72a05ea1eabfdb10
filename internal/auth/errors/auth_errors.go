package autherrors

import (
	"net/http"

	"go-ponto/internal/shared/apperror"
)

var (
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Credenciais inválidas",
		http.StatusUnauthorized,
	)
	ErrMissingCredentials = apperror.New(
		apperror.CodeInvalidInput,
		"Usuário e senha são obrigatórios",
		http.StatusBadRequest,
	)
	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Erro ao gerar token",
		http.StatusInternalServerError,
	)
)
