package apiErrors

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const (
	// Erros de autenticação
	ErrInvalidCredentials    = "AUTH_001" // Senha inválida
	ErrInvalidProfile        = "AUTH_002" // Perfil administrativo inexistente
	ErrInvalidToken          = "AUTH_006" // Token inválido
	ErrExpiredToken          = "AUTH_007" // Token expirado
	ErrInsufficientPrivilege = "AUTH_008" // Privilégios insuficientes

	// Erros de validação
	ErrInvalidRequest      = "VAL_001" // Requisição inválida
	ErrMissingRequiredData = "VAL_002" // Dados obrigatórios ausentes
	ErrInvalidFormat       = "VAL_003" // Formato de dados inválido
	ErrRouteNotFound       = "VAL_004" // Rota inexistente
	ErrMethodNotAllowed    = "VAL_005" // Método não suportado pela rota

	// Erros do clube de vantagens
	ErrRecordNotFound      = "BIL_001" // Registro financeiro não encontrado
	ErrRecordAlreadyPaid   = "BIL_002" // Registro já quitado
	ErrRecordCancelled     = "BIL_003" // Registro cancelado
	ErrAdvertiserNotFound  = "BIL_004" // Anunciante não encontrado
	ErrMetricsUnavailable  = "BIL_005" // Indicadores indisponíveis
	ErrBillingRunFailed    = "BIL_006" // Falha na geração ou atualização das cobranças
	ErrInvalidAdvertiser   = "BIL_007" // Dados do anunciante inválidos
	ErrInvalidPaymentValue = "BIL_008" // Valor de pagamento inválido

	// Erros do servidor
	ErrInternalServer    = "SRV_001" // Erro interno do servidor
	ErrDatabaseOperation = "SRV_002" // Erro de operação de banco de dados
)

var httpStatusMap = map[string]int{
	ErrInvalidCredentials:    http.StatusUnauthorized,
	ErrInvalidProfile:        http.StatusUnauthorized,
	ErrInvalidToken:          http.StatusUnauthorized,
	ErrExpiredToken:          http.StatusUnauthorized,
	ErrInsufficientPrivilege: http.StatusForbidden,
	ErrInvalidRequest:        http.StatusBadRequest,
	ErrMissingRequiredData:   http.StatusBadRequest,
	ErrInvalidFormat:         http.StatusBadRequest,
	ErrRouteNotFound:         http.StatusNotFound,
	ErrMethodNotAllowed:      http.StatusMethodNotAllowed,
	ErrRecordNotFound:        http.StatusNotFound,
	ErrRecordAlreadyPaid:     http.StatusConflict,
	ErrRecordCancelled:       http.StatusConflict,
	ErrAdvertiserNotFound:    http.StatusNotFound,
	ErrMetricsUnavailable:    http.StatusServiceUnavailable,
	ErrBillingRunFailed:      http.StatusInternalServerError,
	ErrInvalidAdvertiser:     http.StatusBadRequest,
	ErrInvalidPaymentValue:   http.StatusBadRequest,
	ErrInternalServer:        http.StatusInternalServerError,
	ErrDatabaseOperation:     http.StatusInternalServerError,
}

// APIError representa um erro de API padronizado
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
	Details any    `json:"details,omitempty"`
}

// StatusFor retorna o status HTTP associado a um código de erro
func StatusFor(code string) int {
	status, exists := httpStatusMap[code]
	if !exists {
		return http.StatusInternalServerError
	}
	return status
}

// WriteError escreve o erro padronizado para a resposta HTTP
func WriteError(w http.ResponseWriter, code string, message string, details any) {
	apiErr := APIError{
		Code:    code,
		Message: message,
		Details: details,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(StatusFor(code))
	json.NewEncoder(w).Encode(apiErr)
}
