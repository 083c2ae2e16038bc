package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/internal/scheduler"
	"github.com/portalcondominio/clube-api/pkg/apiErrors"
)

func TestRunCronJob(t *testing.T) {
	controller := &stubCronController{}

	rec := serve(CronJobs(controller), http.MethodPost, "/v1/admin/cron/run/"+scheduler.JobMarkOverdue, "", domain.PerfilSindico)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, []string{scheduler.JobMarkOverdue}, controller.triggered)
}

func TestRunCronJob_UnknownJob(t *testing.T) {
	controller := &stubCronController{err: scheduler.ErrUnknownJob}

	rec := serve(CronJobs(controller), http.MethodPost, "/v1/admin/cron/run/meta", "", domain.PerfilSindico)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, apiErrors.ErrInvalidRequest, decodeResponse(rec)["code"])
}

func TestGetCronStatus(t *testing.T) {
	rec := serve(CronJobs(&stubCronController{}), http.MethodGet, "/v1/admin/cron/status", "", domain.PerfilGestorClube)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, false, decodeResponse(rec)["enabled"])
}

func TestCronRoutes_RequireClubSession(t *testing.T) {
	controller := &stubCronController{}

	rec := serve(CronJobs(controller), http.MethodPost, "/v1/admin/cron/run/"+scheduler.JobGenerateBilling, "", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, controller.triggered)
}
