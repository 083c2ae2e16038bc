package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/internal/usecases/billing"
	"github.com/portalcondominio/clube-api/pkg/apiErrors"
	"github.com/portalcondominio/clube-api/pkg/log"
)

// billingRunFailure mantém o formato {success, count} junto do código de erro
type billingRunFailure struct {
	domain.BillingRunResult
	apiErrors.APIError
}

func writeRunFailure(w http.ResponseWriter, r *http.Request, err error, message string) {
	if !errors.Is(err, billing.ErrBillingRunFailed) {
		writeServiceError(w, r, err, message)
		return
	}

	log.ForContext(r.Context()).WithField("path", r.URL.Path).WithError(err).Error(message)
	writeJSON(w, apiErrors.StatusFor(apiErrors.ErrBillingRunFailed), billingRunFailure{
		BillingRunResult: domain.BillingRunResult{Success: false, Count: 0},
		APIError: apiErrors.APIError{
			Code:    apiErrors.ErrBillingRunFailed,
			Message: message,
			Details: supportDetails(r),
		},
	})
}

// GenerateBilling cria ou atualiza as cobranças do mês para todos os anunciantes ativos
func GenerateBilling(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GenerateBilling")

		result, err := service.GenerateForCurrentMonth(r.Context())
		if err != nil {
			writeRunFailure(w, r, err, "Erro ao gerar cobranças do mês")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func MarkOverdueBilling(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - MarkOverdueBilling")

		result, err := service.MarkOverdue(r.Context())
		if err != nil {
			writeRunFailure(w, r, err, "Erro ao atualizar cobranças atrasadas")
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func ListCurrentMonthBilling(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListCurrentMonthBilling")

		records, err := service.ListCurrentMonth(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar pagamentos do mês")
			return
		}

		if records == nil {
			records = []*domain.FinancialRecordWithAdvertiser{}
		}

		writeJSON(w, http.StatusOK, records)
	})
}

// RegisterPayment quita um registro; sem valor_pago, usa o valor contratado
func RegisterPayment(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RegisterPayment")

		var req domain.RegisterPaymentRequest
		if !decodeBody(w, r, &req, true) {
			return
		}

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		record, err := service.RegisterPayment(r.Context(), id, req.AmountPaid)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao registrar pagamento")
			return
		}

		writeJSON(w, http.StatusOK, record)
	})
}
