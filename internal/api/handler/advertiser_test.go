package handler

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/portalcondominio/clube-api/infrastructure/repository/mocks"
	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/internal/usecases/advertising"
	"github.com/portalcondominio/clube-api/pkg/apiErrors"
)

func TestListAdvertisers_Filters(t *testing.T) {
	service := &stubAdvertisingService{
		advertisers: []*domain.Advertiser{{ID: "adv-1", CompanyName: "Padaria"}},
	}

	rec := serve(PublicAdvertisers(service), http.MethodGet, "/v1/clube/anunciantes?ativo=true&destaque=true&limite=5", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.AdvertiserFilter{OnlyActive: true, OnlyFeatured: true, Limit: 5}, service.filter)
	assert.Contains(t, rec.Body.String(), `"nome_empresa":"Padaria"`)
}

func TestListAdvertisers_InvalidParameter(t *testing.T) {
	service := &stubAdvertisingService{}

	rec := serve(PublicAdvertisers(service), http.MethodGet, "/v1/clube/anunciantes?ativo=talvez", "", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidFormat, decodeResponse(rec)["code"])
}

func TestListAdvertisers_EmptyList(t *testing.T) {
	rec := serve(PublicAdvertisers(&stubAdvertisingService{}), http.MethodGet, "/v1/clube/anunciantes", "", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestGetAdvertiser_NotFound(t *testing.T) {
	service := &stubAdvertisingService{err: advertising.ErrAdvertiserNotFound}

	rec := serve(PublicAdvertisers(service), http.MethodGet, "/v1/clube/anunciantes/adv-9", "", "")

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apiErrors.ErrAdvertiserNotFound, decodeResponse(rec)["code"])
}

func TestTrackAdvertiser(t *testing.T) {
	service := &stubAdvertisingService{}

	view := serve(PublicAdvertisers(service), http.MethodPost, "/v1/clube/anunciantes/adv-1/visualizacao", "", "")
	click := serve(PublicAdvertisers(service), http.MethodPost, "/v1/clube/anunciantes/adv-1/clique", "", "")

	assert.Equal(t, http.StatusNoContent, view.Code)
	assert.Equal(t, http.StatusNoContent, click.Code)
	assert.Equal(t, 1, service.views)
	assert.Equal(t, 1, service.clicks)
}

func TestCreateAdvertiser(t *testing.T) {
	service := &stubAdvertisingService{advertiser: &domain.Advertiser{ID: "adv-1", CompanyName: "Pet Shop"}}
	body := `{"nome_empresa":"Pet Shop","plano":"prata","valor_mensal":"150.00","dia_vencimento":5}`

	rec := serve(AdminAdvertisers(service, &stubBillingService{}), http.MethodPost, "/v1/admin/clube/anunciantes", body, domain.PerfilSindico)

	require.Equal(t, http.StatusCreated, rec.Code)
	require.NotNil(t, service.created)
	assert.Equal(t, "Pet Shop", service.created.CompanyName)
	assert.Equal(t, domain.PlanoPrata, service.created.Plan)
	assert.Equal(t, "150", service.created.MonthlyFee.String())
	assert.Equal(t, 5, service.created.DueDay)
}

func TestCreateAdvertiser_ValidationError(t *testing.T) {
	service := &stubAdvertisingService{err: advertising.ErrInvalidDueDay}

	rec := serve(AdminAdvertisers(service, &stubBillingService{}), http.MethodPost, "/v1/admin/clube/anunciantes",
		`{"nome_empresa":"X","dia_vencimento":40}`, domain.PerfilSindico)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidAdvertiser, decodeResponse(rec)["code"])
}

func TestCreateAdvertiser_RequiresClubSession(t *testing.T) {
	service := &stubAdvertisingService{}

	rec := serve(AdminAdvertisers(service, &stubBillingService{}), http.MethodPost, "/v1/admin/clube/anunciantes", `{}`, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Nil(t, service.created)
}

func TestUpdateAdvertiser_UsesRouteID(t *testing.T) {
	service := &stubAdvertisingService{advertiser: &domain.Advertiser{ID: "adv-1"}}

	rec := serve(AdminAdvertisers(service, &stubBillingService{}), http.MethodPut, "/v1/admin/clube/anunciantes/adv-1",
		`{"id":"outro","ativo":false}`, domain.PerfilGestorClube)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, service.updated)
	assert.Equal(t, "adv-1", service.updated.ID)
	require.NotNil(t, service.updated.Active)
	assert.False(t, *service.updated.Active)
}

func TestDeleteAdvertiser(t *testing.T) {
	service := &stubAdvertisingService{}

	rec := serve(AdminAdvertisers(service, &stubBillingService{}), http.MethodDelete, "/v1/admin/clube/anunciantes/adv-1", "", domain.PerfilSindico)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "adv-1", service.deletedID)
}

func TestDeleteAdvertiser_DatabaseError(t *testing.T) {
	service := &stubAdvertisingService{err: fmt.Errorf("%w: %w", advertising.ErrDatabaseOperation, fmt.Errorf("pq: deadlock"))}

	rec := serve(AdminAdvertisers(service, &stubBillingService{}), http.MethodDelete, "/v1/admin/clube/anunciantes/adv-1", "", domain.PerfilSindico)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decodeResponse(rec)
	assert.Equal(t, apiErrors.ErrDatabaseOperation, body["code"])
	assert.NotContains(t, body["message"], "deadlock")
}

func TestCreateAdvertiser_DateOnlyContractStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockAdvertiserRepository(ctrl)

	var stored *domain.Advertiser
	repo.EXPECT().CreateAdvertiser(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, a *domain.Advertiser) error {
			stored = a
			return nil
		},
	)

	service := advertising.NewService(repo, &stubBillingService{syncAction: domain.SyncActionCreated})
	body := `{"nome_empresa":"Padaria","valor_mensal":150,"dia_vencimento":5,"contrato_inicio":"2024-01-01"}`

	rec := serve(AdminAdvertisers(service, &stubBillingService{}), http.MethodPost, "/v1/admin/clube/anunciantes", body, domain.PerfilGestorClube)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	require.NotNil(t, stored)
	require.NotNil(t, stored.ContractStart)
	assert.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), *stored.ContractStart)
}

func TestCreateAdvertiser_InvalidContractStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	service := advertising.NewService(mocks.NewMockAdvertiserRepository(ctrl), &stubBillingService{})

	rec := serve(AdminAdvertisers(service, &stubBillingService{}), http.MethodPost, "/v1/admin/clube/anunciantes",
		`{"nome_empresa":"Padaria","contrato_inicio":"01/01/2024"}`, domain.PerfilGestorClube)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidAdvertiser, decodeResponse(rec)["code"])
}
