package attendanceerrors

import (
	"net/http"

	"go-ponto/internal/sequencer"
	"go-ponto/internal/shared/apperror"
)

var (
	// ErrDailyLimitReached keeps sequencer.ErrDailyLimitReached reachable via errors.Is.
	ErrDailyLimitReached = apperror.Wrap(
		sequencer.ErrDailyLimitReached,
		apperror.CodeDailyLimitReached,
		sequencer.ErrDailyLimitReached.Error(),
		http.StatusBadRequest,
	)
	ErrRegistrationRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Matrícula é obrigatória",
		http.StatusBadRequest,
	)
	ErrConcurrentMark = apperror.New(
		apperror.CodeConflict,
		"Marcação simultânea detectada, tente novamente",
		http.StatusConflict,
	)
	ErrInvalidReportFormat = apperror.New(
		apperror.CodeInvalidInput,
		"Formato de relatório inválido",
		http.StatusBadRequest,
	)
	ErrReportFailed = apperror.New(
		apperror.CodeInternalError,
		"Erro ao gerar relatório de ponto",
		http.StatusInternalServerError,
	)
)
