package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/portalcondominio/clube-api/internal/api/handler/router"
	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/internal/usecases/authenticating"
)

type stubBillingService struct {
	syncAction  domain.SyncAction
	runResult   domain.BillingRunResult
	record      *domain.FinancialRecord
	records     []*domain.FinancialRecordWithAdvertiser
	err         error
	paymentID   string
	paymentArg  *decimal.Decimal
	syncedID    string
	overdueRuns int
}

func (s *stubBillingService) Sync(context.Context, *domain.Advertiser) (domain.SyncAction, error) {
	return s.syncAction, s.err
}

func (s *stubBillingService) SyncByAdvertiserID(_ context.Context, id string) (domain.SyncAction, error) {
	s.syncedID = id
	return s.syncAction, s.err
}

func (s *stubBillingService) GenerateForCurrentMonth(context.Context) (domain.BillingRunResult, error) {
	return s.runResult, s.err
}

func (s *stubBillingService) MarkOverdue(context.Context) (domain.BillingRunResult, error) {
	s.overdueRuns++
	return s.runResult, s.err
}

func (s *stubBillingService) RegisterPayment(_ context.Context, id string, amount *decimal.Decimal) (*domain.FinancialRecord, error) {
	s.paymentID = id
	s.paymentArg = amount
	return s.record, s.err
}

func (s *stubBillingService) ListCurrentMonth(context.Context) ([]*domain.FinancialRecordWithAdvertiser, error) {
	return s.records, s.err
}

type stubAdvertisingService struct {
	advertisers []*domain.Advertiser
	advertiser  *domain.Advertiser
	err         error
	filter      domain.AdvertiserFilter
	created     *domain.CreateAdvertiserRequest
	updated     *domain.UpdateAdvertiserRequest
	deletedID   string
	views       int
	clicks      int
}

func (s *stubAdvertisingService) ListAdvertisers(_ context.Context, filter domain.AdvertiserFilter) ([]*domain.Advertiser, error) {
	s.filter = filter
	return s.advertisers, s.err
}

func (s *stubAdvertisingService) GetAdvertiser(context.Context, string) (*domain.Advertiser, error) {
	return s.advertiser, s.err
}

func (s *stubAdvertisingService) CreateAdvertiser(_ context.Context, request *domain.CreateAdvertiserRequest) (*domain.Advertiser, error) {
	s.created = request
	return s.advertiser, s.err
}

func (s *stubAdvertisingService) UpdateAdvertiser(_ context.Context, request *domain.UpdateAdvertiserRequest) (*domain.Advertiser, error) {
	s.updated = request
	return s.advertiser, s.err
}

func (s *stubAdvertisingService) DeleteAdvertiser(_ context.Context, id string) error {
	s.deletedID = id
	return s.err
}

func (s *stubAdvertisingService) TrackView(context.Context, string) error {
	s.views++
	return s.err
}

func (s *stubAdvertisingService) TrackClick(context.Context, string) error {
	s.clicks++
	return s.err
}

type stubDashboardService struct {
	metrics *domain.DashboardMetrics
	err     error
}

func (s stubDashboardService) GetMetrics(context.Context) (*domain.DashboardMetrics, error) {
	return s.metrics, s.err
}

type stubAuthenticator struct {
	result *authenticating.LoginResult
	err    error
	perfil domain.Perfil
}

func (s *stubAuthenticator) Login(perfil domain.Perfil, _ string) (*authenticating.LoginResult, error) {
	s.perfil = perfil
	return s.result, s.err
}

func (s *stubAuthenticator) ValidateToken(string) (*domain.Claims, error) {
	return nil, authenticating.ErrInvalidToken
}

type stubCronController struct {
	triggered []string
	err       error
}

func (s *stubCronController) TriggerManualRun(job string) error {
	if s.err != nil {
		return s.err
	}
	s.triggered = append(s.triggered, job)
	return nil
}

func (s *stubCronController) GetStatus() map[string]any {
	return map[string]any{"enabled": false}
}

// serve executa a requisição no router com a sessão informada (nil para anônimo)
func serve(routes []router.Route, method, path, body string, perfil domain.Perfil) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if perfil != "" {
		req = req.WithContext(domain.ContextWithSession(req.Context(), &domain.Session{Perfil: perfil}))
	}

	rec := httptest.NewRecorder()
	router.New(router.WithRoutes(routes...)).ServeHTTP(rec, req)

	return rec
}

func decodeResponse(rec *httptest.ResponseRecorder) map[string]any {
	body := map[string]any{}
	_ = json.NewDecoder(rec.Body).Decode(&body)
	return body
}
