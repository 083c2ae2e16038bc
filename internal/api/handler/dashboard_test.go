package handler

import (
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/internal/usecases/dashboard"
	"github.com/portalcondominio/clube-api/pkg/apiErrors"
)

func TestGetDashboardMetrics(t *testing.T) {
	service := stubDashboardService{metrics: &domain.DashboardMetrics{
		ReferenceMonth:    "2024-03",
		MonthlyRevenue:    decimal.NewFromInt(500),
		PayingAdvertisers: 2,
	}}

	rec := serve(Dashboard(service), http.MethodGet, "/v1/admin/clube/dashboard", "", domain.PerfilGestorClube)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeResponse(rec)
	assert.Equal(t, "2024-03", body["mesReferencia"])
	assert.Equal(t, float64(2), body["anunciantesPagantesEsteMes"])
}

func TestGetDashboardMetrics_Unavailable(t *testing.T) {
	service := stubDashboardService{err: dashboard.ErrMetricsUnavailable}

	rec := serve(Dashboard(service), http.MethodGet, "/v1/admin/clube/dashboard", "", domain.PerfilSindico)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, apiErrors.ErrMetricsUnavailable, decodeResponse(rec)["code"])
}
