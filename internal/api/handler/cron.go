package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/portalcondominio/clube-api/internal/scheduler"
	"github.com/portalcondominio/clube-api/pkg/apiErrors"
)

// CronController é a parte do agendador exposta ao admin
type CronController interface {
	TriggerManualRun(job string) error
	GetStatus() map[string]any
}

// RunCronJob executa manualmente uma rotina de cobrança
func RunCronJob(controller CronController) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		job := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if job == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de rotina não especificado", nil)
			return
		}

		if err := controller.TriggerManualRun(job); err != nil {
			if errors.Is(err, scheduler.ErrUnknownJob) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"Tipo de rotina inválido. Valores aceitos: "+scheduler.JobGenerateBilling+", "+scheduler.JobMarkOverdue, nil)
				return
			}
			writeServiceError(w, r, err, "Erro ao iniciar rotina")
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]any{
			"message": "Rotina iniciada com sucesso",
			"type":    job,
		})
	})
}

// GetCronStatus retorna o status das rotinas agendadas
func GetCronStatus(controller CronController) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		writeJSON(w, http.StatusOK, controller.GetStatus())
	})
}
