package server

import (
	"errors"
	"net/http"

	"github.com/jonathan/essay-grader/internal/corrector"
	"github.com/jonathan/essay-grader/internal/pipeline"
	"github.com/jonathan/essay-grader/internal/types"
)

// ErrStoreUnavailable is returned by endpoints that need a database when none is configured.
var ErrStoreUnavailable = errors.New("database not configured")

// HTTPStatus returns the appropriate HTTP status code for an error
func HTTPStatus(err error) int {
	var validationErr *types.ValidationError
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, pipeline.ErrInvalidInput), errors.As(err, &validationErr):
		return http.StatusBadRequest
	case errors.Is(err, corrector.ErrUnavailable):
		return http.StatusBadGateway
	case errors.Is(err, ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// errorMessage returns the client-facing message for an error.
func errorMessage(err error) string {
	var validationErr *types.ValidationError
	var analysisErr *pipeline.AnalysisError
	switch {
	case errors.As(err, &validationErr):
		if validationErr.Field == "text" {
			return validationErr.Message
		}
		return validationErr.Error()
	case errors.Is(err, corrector.ErrUnavailable):
		return "Serviço de correção indisponível: " + err.Error()
	case errors.Is(err, ErrStoreUnavailable):
		return "Banco de dados não configurado"
	case errors.As(err, &analysisErr):
		return "Erro ao analisar redação: " + analysisErr.Error()
	default:
		return err.Error()
	}
}
