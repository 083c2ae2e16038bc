package authenticating

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/portalcondominio/clube-api/internal/config"
	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/pkg/apiErrors"
	"github.com/portalcondominio/clube-api/pkg/utils"
)

const defaultTokenTTL = 12 * time.Hour

type Authenticator interface {
	Login(perfil domain.Perfil, password string) (*LoginResult, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type LoginResult struct {
	Token     string        `json:"token"`
	Perfil    domain.Perfil `json:"perfil"`
	ExpiresAt time.Time     `json:"expires_at"`
}

type Service struct {
	passwordHashes map[domain.Perfil]string
	secretKey      string
	tokenTTL       time.Duration
	now            func() time.Time
}

func NewService(cfg *config.Config) Authenticator {
	ttl := cfg.Auth.TokenTTL
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}

	return &Service{
		passwordHashes: map[domain.Perfil]string{
			domain.PerfilSindico:     cfg.Auth.SindicoPasswordHash,
			domain.PerfilGestorClube: cfg.Auth.GestorClubePasswordHash,
		},
		secretKey: cfg.SecretKey,
		tokenTTL:  ttl,
		now:       time.Now,
	}
}

// Login emite o token de sessão de um dos perfis administrativos.
// O perfil sistema não tem senha e nunca é aceito aqui.
func (s *Service) Login(perfil domain.Perfil, password string) (*LoginResult, error) {
	if perfil == "" || password == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "Perfil e senha são obrigatórios")
	}

	hash, ok := s.passwordHashes[perfil]
	if !ok {
		return nil, NewProfileAuthError(ErrInvalidProfile, apiErrors.ErrInvalidProfile, string(perfil), "Perfil não encontrado")
	}

	if hash == "" {
		return nil, NewProfileAuthError(ErrProfileDisabled, apiErrors.ErrInvalidCredentials, string(perfil), "Perfil sem senha configurada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return nil, NewProfileAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, string(perfil), "Senha incorreta")
	}

	expiresAt := s.now().Add(s.tokenTTL)

	token, err := s.generateJWT(perfil, expiresAt)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Erro ao gerar token de autenticação")
	}

	return &LoginResult{
		Token:     token,
		Perfil:    perfil,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *Service) generateJWT(perfil domain.Perfil, expiresAt time.Time) (string, error) {
	tokenID, err := utils.GenerateID()
	if err != nil {
		return "", err
	}

	claims := domain.Claims{
		Perfil: perfil,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID,
			Subject:   string(perfil),
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.secretKey), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	// tokens do agendador nunca são emitidos por login
	if claims.Perfil != domain.PerfilSindico && claims.Perfil != domain.PerfilGestorClube {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
