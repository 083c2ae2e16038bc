package advertising

import "errors"

var (
	ErrAdvertiserIDRequired = errors.New("advertiser ID is required")
	ErrAdvertiserNotFound   = errors.New("advertiser not found")
	ErrCompanyNameRequired  = errors.New("nome_empresa is required")
	ErrInvalidPlan          = errors.New("plano must be bronze, prata or ouro")
	ErrInvalidDueDay        = errors.New("dia_vencimento must be between 1 and 31")
	ErrInvalidCommission    = errors.New("comissao_gestor must be between 0 and 100")
	ErrInvalidMonthlyFee    = errors.New("valor_mensal must not be negative")
	ErrInvalidContract      = errors.New("contrato_duracao must be positive")
	ErrInvalidContractStart = errors.New("contrato_inicio must be a date in the format YYYY-MM-DD")
	ErrDatabaseOperation    = errors.New("database operation error")
)

// IsValidationError indica erros causados pelos dados enviados
func IsValidationError(err error) bool {
	for _, target := range []error{
		ErrAdvertiserIDRequired,
		ErrCompanyNameRequired,
		ErrInvalidPlan,
		ErrInvalidDueDay,
		ErrInvalidCommission,
		ErrInvalidMonthlyFee,
		ErrInvalidContract,
		ErrInvalidContractStart,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
