package advertising

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/portalcondominio/clube-api/infrastructure/repository"
	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/internal/usecases/authorizing"
	"github.com/portalcondominio/clube-api/internal/usecases/billing"
	"github.com/portalcondominio/clube-api/pkg/log"
	"github.com/portalcondominio/clube-api/pkg/utils"
)

var (
	defaultCommission = decimal.NewFromInt(60)
	maxCommission     = decimal.NewFromInt(100)
)

type AdvertisingService interface {
	ListAdvertisers(ctx context.Context, filter domain.AdvertiserFilter) ([]*domain.Advertiser, error)
	GetAdvertiser(ctx context.Context, id string) (*domain.Advertiser, error)
	CreateAdvertiser(ctx context.Context, request *domain.CreateAdvertiserRequest) (*domain.Advertiser, error)
	UpdateAdvertiser(ctx context.Context, request *domain.UpdateAdvertiserRequest) (*domain.Advertiser, error)
	DeleteAdvertiser(ctx context.Context, id string) error
	TrackView(ctx context.Context, id string) error
	TrackClick(ctx context.Context, id string) error
}

type Service struct {
	advertiserRepository repository.AdvertiserRepository
	synchronizer         billing.Synchronizer
}

func NewService(advertiserRepository repository.AdvertiserRepository, synchronizer billing.Synchronizer) AdvertisingService {
	return &Service{
		advertiserRepository: advertiserRepository,
		synchronizer:         synchronizer,
	}
}

func (s *Service) ListAdvertisers(ctx context.Context, filter domain.AdvertiserFilter) ([]*domain.Advertiser, error) {
	advertisers, err := s.advertiserRepository.ListAdvertisers(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabaseOperation, err)
	}
	return advertisers, nil
}

func (s *Service) GetAdvertiser(ctx context.Context, id string) (*domain.Advertiser, error) {
	if id == "" {
		return nil, ErrAdvertiserIDRequired
	}

	advertiser, err := s.advertiserRepository.GetAdvertiserByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabaseOperation, err)
	}

	if advertiser == nil {
		return nil, ErrAdvertiserNotFound
	}

	return advertiser, nil
}

func (s *Service) CreateAdvertiser(ctx context.Context, request *domain.CreateAdvertiserRequest) (*domain.Advertiser, error) {
	if err := authorizing.RequireClubManager(ctx); err != nil {
		return nil, err
	}

	contractStart, err := parseContractStart(request.ContractStart)
	if err != nil {
		return nil, err
	}

	advertiser := &domain.Advertiser{
		ID:                utils.NewUUID(),
		CompanyName:       strings.TrimSpace(request.CompanyName),
		CategoryID:        request.CategoryID,
		Description:       request.Description,
		Phone:             request.Phone,
		Whatsapp:          request.Whatsapp,
		Email:             request.Email,
		Address:           request.Address,
		SiteURL:           request.SiteURL,
		Instagram:         request.Instagram,
		LogoURL:           request.LogoURL,
		BannerURL:         request.BannerURL,
		Plan:              request.Plan,
		Active:            true,
		Featured:          request.Featured,
		MonthlyFee:        request.MonthlyFee,
		DueDay:            request.DueDay,
		ManagerCommission: defaultCommission,
		ContractStart:     contractStart,
		ContractMonths:    request.ContractMonths,
	}

	if request.Active != nil {
		advertiser.Active = *request.Active
	}

	if request.ManagerCommission != nil {
		advertiser.ManagerCommission = *request.ManagerCommission
	}

	if advertiser.Plan == "" {
		advertiser.Plan = domain.PlanoBronze
	}

	if advertiser.DueDay == 0 {
		advertiser.DueDay = 10
	}

	if err := validate(advertiser); err != nil {
		return nil, err
	}

	if err := s.advertiserRepository.CreateAdvertiser(ctx, advertiser); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDatabaseOperation, err)
	}

	s.syncBilling(ctx, advertiser)

	return advertiser, nil
}

func (s *Service) UpdateAdvertiser(ctx context.Context, request *domain.UpdateAdvertiserRequest) (*domain.Advertiser, error) {
	if err := authorizing.RequireClubManager(ctx); err != nil {
		return nil, err
	}

	contractStart, err := parseContractStart(request.ContractStart)
	if err != nil {
		return nil, err
	}

	advertiser, err := s.GetAdvertiser(ctx, request.ID)
	if err != nil {
		return nil, err
	}

	applyUpdate(advertiser, request)
	if request.ContractStart != nil {
		// string vazia remove a data de início do contrato
		advertiser.ContractStart = contractStart
	}

	if err := validate(advertiser); err != nil {
		return nil, err
	}

	if err := s.advertiserRepository.UpdateAdvertiser(ctx, advertiser); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrAdvertiserNotFound
		}
		return nil, fmt.Errorf("%w: %w", ErrDatabaseOperation, err)
	}

	s.syncBilling(ctx, advertiser)

	return advertiser, nil
}

func (s *Service) DeleteAdvertiser(ctx context.Context, id string) error {
	if err := authorizing.RequireClubManager(ctx); err != nil {
		return err
	}

	if id == "" {
		return ErrAdvertiserIDRequired
	}

	if err := s.advertiserRepository.DeleteAdvertiser(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAdvertiserNotFound
		}
		return fmt.Errorf("%w: %w", ErrDatabaseOperation, err)
	}

	log.ForContext(ctx).WithField("anunciante_id", id).Info("Anunciante removido com o histórico financeiro")

	return nil
}

func (s *Service) TrackView(ctx context.Context, id string) error {
	return s.track(ctx, id, s.advertiserRepository.IncrementViews)
}

func (s *Service) TrackClick(ctx context.Context, id string) error {
	return s.track(ctx, id, s.advertiserRepository.IncrementClicks)
}

func (s *Service) track(ctx context.Context, id string, increment func(context.Context, string) error) error {
	if id == "" {
		return ErrAdvertiserIDRequired
	}

	if err := increment(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrAdvertiserNotFound
		}
		return fmt.Errorf("%w: %w", ErrDatabaseOperation, err)
	}

	return nil
}

// syncBilling não desfaz a gravação do anunciante quando a cobrança falha
func (s *Service) syncBilling(ctx context.Context, advertiser *domain.Advertiser) {
	if s.synchronizer == nil {
		return
	}

	logger := log.ForOperation(ctx, "sincronizar").WithField("anunciante_id", advertiser.ID)

	action, err := s.synchronizer.Sync(ctx, advertiser)
	if err != nil {
		logger.WithError(err).Error("Erro ao sincronizar cobrança do anunciante")
		return
	}

	logger.Debugf("Cobrança do mês sincronizada: %s", action)
}

func applyUpdate(advertiser *domain.Advertiser, request *domain.UpdateAdvertiserRequest) {
	if request.CompanyName != nil {
		advertiser.CompanyName = strings.TrimSpace(*request.CompanyName)
	}
	if request.CategoryID != nil {
		advertiser.CategoryID = request.CategoryID
	}
	if request.Description != nil {
		advertiser.Description = *request.Description
	}
	if request.Phone != nil {
		advertiser.Phone = request.Phone
	}
	if request.Whatsapp != nil {
		advertiser.Whatsapp = request.Whatsapp
	}
	if request.Email != nil {
		advertiser.Email = request.Email
	}
	if request.Address != nil {
		advertiser.Address = request.Address
	}
	if request.SiteURL != nil {
		advertiser.SiteURL = request.SiteURL
	}
	if request.Instagram != nil {
		advertiser.Instagram = request.Instagram
	}
	if request.LogoURL != nil {
		advertiser.LogoURL = request.LogoURL
	}
	if request.BannerURL != nil {
		advertiser.BannerURL = request.BannerURL
	}
	if request.Plan != nil {
		advertiser.Plan = *request.Plan
	}
	if request.Active != nil {
		advertiser.Active = *request.Active
	}
	if request.Featured != nil {
		advertiser.Featured = *request.Featured
	}
	if request.MonthlyFee != nil {
		advertiser.MonthlyFee = *request.MonthlyFee
	}
	if request.DueDay != nil {
		advertiser.DueDay = *request.DueDay
	}
	if request.ManagerCommission != nil {
		advertiser.ManagerCommission = *request.ManagerCommission
	}
	if request.ContractMonths != nil {
		advertiser.ContractMonths = request.ContractMonths
	}
}

func parseContractStart(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	date, err := utils.ParseDate(*value)
	if err == nil {
		return date, nil
	}

	// aceita também o formato devolvido pela própria API no GET
	if full, fullErr := time.Parse(time.RFC3339, *value); fullErr == nil {
		day := utils.DateOf(full)
		return &day, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrInvalidContractStart, *value)
}

func validate(advertiser *domain.Advertiser) error {
	if advertiser.CompanyName == "" {
		return ErrCompanyNameRequired
	}

	if !advertiser.Plan.IsValid() {
		return ErrInvalidPlan
	}

	if advertiser.DueDay < 1 || advertiser.DueDay > 31 {
		return ErrInvalidDueDay
	}

	if advertiser.ManagerCommission.IsNegative() || advertiser.ManagerCommission.GreaterThan(maxCommission) {
		return ErrInvalidCommission
	}

	if advertiser.MonthlyFee.IsNegative() {
		return ErrInvalidMonthlyFee
	}

	if advertiser.ContractMonths != nil && *advertiser.ContractMonths <= 0 {
		return ErrInvalidContract
	}

	return nil
}
