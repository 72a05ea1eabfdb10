package employeeerrors

import (
	"go-ponto/internal/shared/apperror"
	"net/http"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Usuário não encontrado",
		http.StatusNotFound,
	)
	ErrEmailAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"Email já cadastrado",
		http.StatusConflict,
	)
	ErrCPFAlreadyExists = apperror.New(
		apperror.CodeConflict,
		"CPF já cadastrado",
		http.StatusConflict,
	)
	ErrRegistrationConflict = apperror.New(
		apperror.CodeConflict,
		"Matrícula já utilizada por outro usuário",
		http.StatusConflict,
	)
	ErrAmbiguousRegistration = apperror.New(
		apperror.CodeConflict,
		"Matrícula corresponde a mais de um usuário",
		http.StatusConflict,
	)
	ErrInvalidCPF = apperror.New(
		apperror.CodeInvalidInput,
		"CPF deve conter 11 dígitos",
		http.StatusBadRequest,
	)
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Email inválido",
		http.StatusBadRequest,
	)
	ErrInvalidRegistration = apperror.New(
		apperror.CodeInvalidInput,
		"Matrícula inválida",
		http.StatusBadRequest,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"ID de usuário inválido",
		http.StatusBadRequest,
	)
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Todos os campos são obrigatórios",
		http.StatusBadRequest,
	)
	ErrMissingDepartment = apperror.New(
		apperror.CodeInvalidInput,
		"Departamento é obrigatório",
		http.StatusBadRequest,
	)
)
