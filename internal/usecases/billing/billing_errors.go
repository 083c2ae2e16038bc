package billing

import (
	"errors"
	"fmt"
)

// Erros específicos do financeiro do clube
var (
	// Erros de validação
	ErrAdvertiserRequired  = errors.New("advertiser is required")
	ErrRecordIDRequired    = errors.New("financial record ID is required")
	ErrInvalidPaymentValue = errors.New("payment value must be greater than zero")

	// Erros de estado
	ErrRecordNotFound    = errors.New("financial record not found")
	ErrAdvertiserMissing = errors.New("advertiser not found")
	ErrRecordAlreadyPaid = errors.New("financial record already paid")
	ErrRecordCancelled   = errors.New("financial record cancelled")

	// Erros de banco de dados
	ErrSyncFailed        = errors.New("error synchronizing financial record")
	ErrBillingRunFailed  = errors.New("error running billing routine")
	ErrDatabaseOperation = errors.New("database operation error")
)

// BillingError é um erro com contexto adicional para o financeiro
type BillingError struct {
	Err      error  // Erro base
	Code     string // Código de erro para API
	RecordID string // Anunciante ou registro envolvido (quando aplicável)
	Details  string // Detalhes adicionais
}

// Error implementa a interface error
func (e *BillingError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *BillingError) Unwrap() error {
	return e.Err
}

func NewBillingError(err error, code string, details string) *BillingError {
	return &BillingError{
		Err:     err,
		Code:    code,
		Details: details,
	}
}

func NewBillingErrorWithID(err error, code string, recordID string, details string) *BillingError {
	return &BillingError{
		Err:      err,
		Code:     code,
		RecordID: recordID,
		Details:  details,
	}
}
