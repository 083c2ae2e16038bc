package handler

import (
	"net/http"

	"github.com/pkg/errors"

	"github.com/portalcondominio/clube-api/internal/usecases/advertising"
	"github.com/portalcondominio/clube-api/internal/usecases/authorizing"
	"github.com/portalcondominio/clube-api/internal/usecases/billing"
	"github.com/portalcondominio/clube-api/internal/usecases/dashboard"
	"github.com/portalcondominio/clube-api/pkg/apiErrors"
	"github.com/portalcondominio/clube-api/pkg/log"
)

// writeServiceError traduz os erros dos casos de uso para o envelope da API
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, message string) {
	logger := log.ForContext(r.Context()).WithField("path", r.URL.Path).WithError(err)

	switch {
	case errors.Is(err, authorizing.ErrNotAuthenticated):
		apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
		return
	case errors.Is(err, authorizing.ErrInsufficientPrivilege):
		apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
		return
	case errors.Is(err, dashboard.ErrMetricsUnavailable):
		logger.Warn("Indicadores do clube indisponíveis")
		apiErrors.WriteError(w, apiErrors.ErrMetricsUnavailable, err.Error(), nil)
		return
	}

	var billingErr *billing.BillingError
	if errors.As(err, &billingErr) {
		if apiErrors.StatusFor(billingErr.Code) >= http.StatusInternalServerError {
			logger.Error(message)
			apiErrors.WriteError(w, billingErr.Code, message, supportDetails(r))
			return
		}
		apiErrors.WriteError(w, billingErr.Code, billingErr.Error(), nil)
		return
	}

	switch {
	case advertising.IsValidationError(err):
		apiErrors.WriteError(w, apiErrors.ErrInvalidAdvertiser, err.Error(), nil)
	case errors.Is(err, advertising.ErrAdvertiserNotFound):
		apiErrors.WriteError(w, apiErrors.ErrAdvertiserNotFound, "Anunciante não encontrado", nil)
	case errors.Is(err, advertising.ErrDatabaseOperation):
		logger.Error(message)
		apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, message, supportDetails(r))
	default:
		logger.Error(message)
		apiErrors.WriteError(w, apiErrors.ErrInternalServer, message, supportDetails(r))
	}
}

// supportDetails leva o ID de correlação nas falhas internas para localizar o log
func supportDetails(r *http.Request) any {
	correlationID := log.GetCorrelationID(r.Context())
	if correlationID == "" {
		return nil
	}
	return map[string]string{"correlation_id": correlationID}
}
