package middleware

import (
	"errors"
	"net/http"

	"github.com/portalcondominio/clube-api/internal/usecases/authorizing"
	"github.com/portalcondominio/clube-api/pkg/apiErrors"
	"github.com/portalcondominio/clube-api/pkg/log"
)

// ClubManagerOnly restringe a rota aos perfis que operam o financeiro do clube
func ClubManagerOnly() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			err := authorizing.RequireClubManager(r.Context())
			if err == nil {
				next.ServeHTTP(w, r)
				return
			}

			if errors.Is(err, authorizing.ErrNotAuthenticated) {
				log.ForContext(r.Context()).Warn("Tentativa de acesso sem autenticação")
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Usuário não autenticado", nil)
				return
			}

			log.ForContext(r.Context()).WithField("path", r.URL.Path).Warn("Acesso negado ao perfil da sessão")
			apiErrors.WriteError(w, apiErrors.ErrInsufficientPrivilege, "Você não tem permissão para acessar este recurso", nil)
		})
	}
}
