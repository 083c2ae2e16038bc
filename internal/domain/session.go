package domain

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Perfil identifica quem está operando o back-office
type Perfil string

const (
	PerfilSindico     Perfil = "sindico"
	PerfilGestorClube Perfil = "gestor_clube"
	// PerfilSistema é usado pelas execuções agendadas
	PerfilSistema Perfil = "sistema"
)

func (p Perfil) IsValid() bool {
	switch p {
	case PerfilSindico, PerfilGestorClube, PerfilSistema:
		return true
	}
	return false
}

type Session struct {
	Perfil    Perfil    `json:"perfil"`
	ExpiresAt time.Time `json:"expires_at"`
}

type Claims struct {
	Perfil Perfil `json:"perfil"`
	jwt.RegisteredClaims
}

func (c *Claims) Session() *Session {
	session := &Session{Perfil: c.Perfil}
	if c.ExpiresAt != nil {
		session.ExpiresAt = c.ExpiresAt.Time
	}
	return session
}

type sessionContextKey struct{}

// ContextWithSession anexa a sessão autenticada ao contexto da requisição
func ContextWithSession(ctx context.Context, session *Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

func SessionFromContext(ctx context.Context) (*Session, bool) {
	if ctx == nil {
		return nil, false
	}
	session, ok := ctx.Value(sessionContextKey{}).(*Session)
	return session, ok && session != nil
}

// SystemContext cria um contexto com a sessão interna usada pelo agendador
func SystemContext(ctx context.Context) context.Context {
	return ContextWithSession(ctx, &Session{Perfil: PerfilSistema})
}
