// Package authorizing concentra as regras de quem pode operar o financeiro do clube
package authorizing

import (
	"context"
	"errors"
	"time"

	"github.com/portalcondominio/clube-api/internal/domain"
)

var (
	ErrNotAuthenticated      = errors.New("sessão não autenticada")
	ErrInsufficientPrivilege = errors.New("perfil sem permissão para operar o clube de vantagens")
)

// RequireClubManager aceita síndico, gestor do clube e a sessão interna do agendador
func RequireClubManager(ctx context.Context) error {
	session, ok := domain.SessionFromContext(ctx)
	if !ok {
		return ErrNotAuthenticated
	}

	if !session.ExpiresAt.IsZero() && time.Now().After(session.ExpiresAt) {
		return ErrNotAuthenticated
	}

	switch session.Perfil {
	case domain.PerfilSindico, domain.PerfilGestorClube, domain.PerfilSistema:
		return nil
	}

	return ErrInsufficientPrivilege
}

// IsPolicyError indica se o erro veio de uma checagem de permissão
func IsPolicyError(err error) bool {
	return errors.Is(err, ErrNotAuthenticated) || errors.Is(err, ErrInsufficientPrivilege)
}
