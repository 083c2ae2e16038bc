package handler

import (
	"net/http"
	"strings"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/internal/usecases/authenticating"
	"github.com/portalcondominio/clube-api/pkg/apiErrors"
)

type LoginRequest struct {
	Perfil string `json:"perfil"`
	Senha  string `json:"senha"`
}

func Login(service authenticating.Authenticator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - Login")

		var req LoginRequest
		if !decodeBody(w, r, &req, false) {
			return
		}

		perfil := domain.Perfil(strings.TrimSpace(strings.ToLower(req.Perfil)))

		result, err := service.Login(perfil, req.Senha)
		if err != nil {
			handleLoginError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, result)
	})
}

func handleLoginError(w http.ResponseWriter, err error) {
	var authErr *authenticating.AuthError
	if errors.As(err, &authErr) {
		if authenticating.IsCredentialsError(err) {
			logrus.WithField("perfil", authErr.Perfil).Warn("Tentativa de login inválida")
			apiErrors.WriteError(w, authErr.Code, "Perfil ou senha inválidos", nil)
			return
		}
		apiErrors.WriteError(w, authErr.Code, authErr.Error(), nil)
		return
	}

	logrus.WithError(err).Error("Erro ao realizar login")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao realizar login", nil)
}
