package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/portalcondominio/clube-api/infrastructure/repository"
	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/internal/observability/metrics"
	"github.com/portalcondominio/clube-api/internal/usecases/authorizing"
	"github.com/portalcondominio/clube-api/pkg/apiErrors"
	"github.com/portalcondominio/clube-api/pkg/log"
	"github.com/portalcondominio/clube-api/pkg/utils"
)

// Synchronizer mantém o registro financeiro do mês corrente coerente com o anunciante
type Synchronizer interface {
	Sync(ctx context.Context, advertiser *domain.Advertiser) (domain.SyncAction, error)
}

type BillingService interface {
	Synchronizer
	SyncByAdvertiserID(ctx context.Context, advertiserID string) (domain.SyncAction, error)
	GenerateForCurrentMonth(ctx context.Context) (domain.BillingRunResult, error)
	MarkOverdue(ctx context.Context) (domain.BillingRunResult, error)
	RegisterPayment(ctx context.Context, recordID string, amountPaid *decimal.Decimal) (*domain.FinancialRecord, error)
	ListCurrentMonth(ctx context.Context) ([]*domain.FinancialRecordWithAdvertiser, error)
}

type Service struct {
	advertiserRepository      repository.AdvertiserRepository
	financialRecordRepository repository.FinancialRecordRepository
	metrics                   *metrics.BillingMetrics
	now                       func() time.Time
	newID                     func() string
}

func NewService(
	advertiserRepository repository.AdvertiserRepository,
	financialRecordRepository repository.FinancialRecordRepository,
	billingMetrics *metrics.BillingMetrics,
) *Service {
	return &Service{
		advertiserRepository:      advertiserRepository,
		financialRecordRepository: financialRecordRepository,
		metrics:                   billingMetrics,
		now:                       time.Now,
		newID:                     utils.NewUUID,
	}
}

func (s *Service) today() time.Time {
	return utils.DateOf(s.now())
}

func (s *Service) Sync(ctx context.Context, advertiser *domain.Advertiser) (domain.SyncAction, error) {
	if err := authorizing.RequireClubManager(ctx); err != nil {
		return "", err
	}

	if advertiser == nil || advertiser.ID == "" {
		return "", NewBillingError(ErrAdvertiserRequired, apiErrors.ErrInvalidAdvertiser, "")
	}

	action, err := s.sync(ctx, advertiser)
	if err != nil {
		s.metrics.ObserveSyncFailure(err)
		return "", err
	}

	return action, nil
}

func (s *Service) SyncByAdvertiserID(ctx context.Context, advertiserID string) (domain.SyncAction, error) {
	if err := authorizing.RequireClubManager(ctx); err != nil {
		return "", err
	}

	advertiser, err := s.advertiserRepository.GetAdvertiserByID(ctx, advertiserID)
	if err != nil {
		return "", NewBillingErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, advertiserID, err.Error())
	}

	if advertiser == nil {
		return "", NewBillingErrorWithID(ErrAdvertiserMissing, apiErrors.ErrAdvertiserNotFound, advertiserID, "")
	}

	return s.Sync(ctx, advertiser)
}

// sync faz uma leitura e no máximo uma escrita. Registros pagos nunca são tocados.
func (s *Service) sync(ctx context.Context, advertiser *domain.Advertiser) (domain.SyncAction, error) {
	today := s.today()
	month := utils.FirstDayOfMonth(today)
	dueDate := utils.DueDateInMonth(today, advertiser.DueDay)

	existing, err := s.financialRecordRepository.FindByAdvertiserAndMonth(ctx, advertiser.ID, month)
	if err != nil {
		return "", s.syncError(advertiser.ID, err)
	}

	if !advertiser.IsBillable() {
		if existing == nil || existing.IsPaid() {
			return s.observe(domain.SyncActionUnchanged), nil
		}

		if _, err := s.financialRecordRepository.DeleteIfUnpaid(ctx, advertiser.ID, month); err != nil {
			return "", s.syncError(advertiser.ID, err)
		}

		return s.observe(domain.SyncActionDeleted), nil
	}

	if existing != nil {
		if existing.IsPaid() {
			return s.observe(domain.SyncActionUnchanged), nil
		}

		if existing.AmountDue.Equal(advertiser.MonthlyFee) && utils.DateOf(existing.DueDate).Equal(dueDate) {
			return s.observe(domain.SyncActionUnchanged), nil
		}
	}

	record := &domain.FinancialRecord{
		ID:             s.newID(),
		AdvertiserID:   advertiser.ID,
		ReferenceMonth: month,
		AmountDue:      advertiser.MonthlyFee,
		Status:         domain.StatusPendente,
		DueDate:        dueDate,
	}

	// o status nunca é copiado da leitura: o ON CONFLICT preserva o status atual
	// e uma linha removida nesse meio tempo volta como pendente
	if existing != nil {
		record.ID = existing.ID
	}

	applied, err := s.financialRecordRepository.Upsert(ctx, record)
	if err != nil {
		return "", s.syncError(advertiser.ID, err)
	}

	// pago entre a leitura e a escrita
	if !applied {
		return s.observe(domain.SyncActionUnchanged), nil
	}

	if existing == nil {
		return s.observe(domain.SyncActionCreated), nil
	}

	return s.observe(domain.SyncActionUpdated), nil
}

func (s *Service) observe(action domain.SyncAction) domain.SyncAction {
	s.metrics.ObserveSync(action)
	return action
}

func (s *Service) syncError(advertiserID string, err error) error {
	return NewBillingErrorWithID(
		fmt.Errorf("%w: %w", ErrSyncFailed, err),
		apiErrors.ErrDatabaseOperation,
		advertiserID,
		"anunciante "+advertiserID,
	)
}

// GenerateForCurrentMonth sincroniza todos os anunciantes ativos em sequência.
// Falhas individuais são registradas em log e não interrompem o lote.
func (s *Service) GenerateForCurrentMonth(ctx context.Context) (domain.BillingRunResult, error) {
	if err := authorizing.RequireClubManager(ctx); err != nil {
		return domain.BillingRunResult{}, err
	}

	logger := log.ForOperation(ctx, metrics.OperationGenerate)
	logger.Info("Iniciando geração de cobranças do mês")

	advertisers, err := s.advertiserRepository.ListAdvertisers(ctx, domain.AdvertiserFilter{OnlyActive: true})
	if err != nil {
		s.metrics.ObserveRun(metrics.OperationGenerate, err)
		logger.WithError(err).Error("Erro ao buscar anunciantes ativos")
		return domain.BillingRunResult{}, NewBillingError(ErrBillingRunFailed, apiErrors.ErrBillingRunFailed, err.Error())
	}

	count := 0
	for _, advertiser := range advertisers {
		if _, err := s.sync(ctx, advertiser); err != nil {
			s.metrics.ObserveSyncFailure(err)
			logger.WithField("anunciante_id", advertiser.ID).WithError(err).Error("Erro ao sincronizar cobrança do anunciante")
		}
		count++
	}

	s.metrics.ObserveRun(metrics.OperationGenerate, nil)
	logger.WithField("count", count).Info("Geração de cobranças concluída")

	return domain.BillingRunResult{Success: true, Count: count}, nil
}

// MarkOverdue move para atrasado todo registro pendente com vencimento anterior a hoje
func (s *Service) MarkOverdue(ctx context.Context) (domain.BillingRunResult, error) {
	if err := authorizing.RequireClubManager(ctx); err != nil {
		return domain.BillingRunResult{}, err
	}

	logger := log.ForOperation(ctx, metrics.OperationOverdue)

	count, err := s.financialRecordRepository.BulkMarkOverdue(ctx, s.today())
	s.metrics.ObserveRun(metrics.OperationOverdue, err)
	if err != nil {
		logger.WithError(err).Error("Erro ao atualizar registros atrasados")
		return domain.BillingRunResult{}, NewBillingError(ErrBillingRunFailed, apiErrors.ErrBillingRunFailed, err.Error())
	}

	s.metrics.AddOverdueTransitions(count)
	logger.WithField("count", count).Info("Registros atrasados atualizados")

	return domain.BillingRunResult{Success: true, Count: int(count)}, nil
}

// RegisterPayment quita um registro em aberto. Sem valor informado, usa o valor contratado.
func (s *Service) RegisterPayment(ctx context.Context, recordID string, amountPaid *decimal.Decimal) (*domain.FinancialRecord, error) {
	if err := authorizing.RequireClubManager(ctx); err != nil {
		return nil, err
	}

	if recordID == "" {
		return nil, NewBillingError(ErrRecordIDRequired, apiErrors.ErrMissingRequiredData, "")
	}

	if amountPaid != nil && !amountPaid.GreaterThan(decimal.Zero) {
		return nil, NewBillingErrorWithID(ErrInvalidPaymentValue, apiErrors.ErrInvalidPaymentValue, recordID, amountPaid.String())
	}

	record, err := s.financialRecordRepository.GetByID(ctx, recordID)
	if err != nil {
		return nil, NewBillingErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, recordID, err.Error())
	}

	if record == nil {
		return nil, NewBillingErrorWithID(ErrRecordNotFound, apiErrors.ErrRecordNotFound, recordID, "")
	}

	switch record.Status {
	case domain.StatusPago:
		return nil, NewBillingErrorWithID(ErrRecordAlreadyPaid, apiErrors.ErrRecordAlreadyPaid, recordID, "")
	case domain.StatusCancelado:
		return nil, NewBillingErrorWithID(ErrRecordCancelled, apiErrors.ErrRecordCancelled, recordID, "")
	}

	amount := record.AmountDue
	if amountPaid != nil {
		amount = *amountPaid
	}
	paidAt := s.today()

	updated, err := s.financialRecordRepository.MarkAsPaid(ctx, recordID, amount, paidAt)
	if err != nil {
		return nil, NewBillingErrorWithID(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, recordID, err.Error())
	}

	if !updated {
		return nil, NewBillingErrorWithID(ErrRecordNotFound, apiErrors.ErrRecordNotFound, recordID, "registro não está mais em aberto")
	}

	s.metrics.ObservePayment()
	log.ForOperation(ctx, metrics.OperationPayment).
		WithField("registro_id", recordID).
		WithField("anunciante_id", record.AdvertiserID).
		Info("Pagamento registrado")

	record.Status = domain.StatusPago
	record.AmountPaid = decimal.NewNullDecimal(amount)
	record.PaidAt = &paidAt

	return record, nil
}

func (s *Service) ListCurrentMonth(ctx context.Context) ([]*domain.FinancialRecordWithAdvertiser, error) {
	if err := authorizing.RequireClubManager(ctx); err != nil {
		return nil, err
	}

	records, err := s.financialRecordRepository.ListByMonthWithAdvertiser(ctx, utils.FirstDayOfMonth(s.today()))
	if err != nil {
		return nil, NewBillingError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	return records, nil
}
