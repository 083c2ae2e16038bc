package dashboard

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/portalcondominio/clube-api/infrastructure/repository"
	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/internal/usecases/authorizing"
	"github.com/portalcondominio/clube-api/pkg/log"
	"github.com/portalcondominio/clube-api/pkg/utils"
)

// ErrMetricsUnavailable é retornado quando qualquer leitura falha; o painel
// nunca recebe números parciais
var ErrMetricsUnavailable = errors.New("indicadores do clube indisponíveis")

type DashboardService interface {
	GetMetrics(ctx context.Context) (*domain.DashboardMetrics, error)
}

type Service struct {
	advertiserRepository      repository.AdvertiserRepository
	financialRecordRepository repository.FinancialRecordRepository
	splitPercent              decimal.Decimal
	now                       func() time.Time
}

func NewService(
	advertiserRepository repository.AdvertiserRepository,
	financialRecordRepository repository.FinancialRecordRepository,
	splitPercent float64,
) DashboardService {
	return &Service{
		advertiserRepository:      advertiserRepository,
		financialRecordRepository: financialRecordRepository,
		splitPercent:              decimal.NewFromFloat(splitPercent),
		now:                       time.Now,
	}
}

func (s *Service) GetMetrics(ctx context.Context) (*domain.DashboardMetrics, error) {
	if err := authorizing.RequireClubManager(ctx); err != nil {
		return nil, err
	}

	logger := log.ForOperation(ctx, "dashboard")
	now := s.now()
	from := utils.PreviousMonth(now)

	records, err := s.financialRecordRepository.ListRecords(ctx, domain.FinancialRecordFilter{FromMonth: &from})
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar registros financeiros")
		return nil, ErrMetricsUnavailable
	}

	advertisers, err := s.advertiserRepository.ListAdvertisers(ctx, domain.AdvertiserFilter{OnlyActive: true})
	if err != nil {
		logger.WithError(err).Error("Erro ao buscar anunciantes")
		return nil, ErrMetricsUnavailable
	}

	metrics := ComputeMetrics(records, advertisers, now, s.splitPercent)

	return &metrics, nil
}
