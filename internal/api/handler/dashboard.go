package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/portalcondominio/clube-api/internal/usecases/dashboard"
)

func GetDashboardMetrics(service dashboard.DashboardService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetDashboardMetrics")

		metrics, err := service.GetMetrics(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Erro ao calcular indicadores do clube")
			return
		}

		writeJSON(w, http.StatusOK, metrics)
	})
}
