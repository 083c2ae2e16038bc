package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte(time.Now().UTC().Format(time.RFC3339))); err != nil {
			logrus.WithError(err).Warn("Erro ao responder healthcheck")
		}
	})
}
