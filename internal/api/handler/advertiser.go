package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"

	"github.com/portalcondominio/clube-api/internal/domain"
	"github.com/portalcondominio/clube-api/internal/usecases/advertising"
	"github.com/portalcondominio/clube-api/internal/usecases/billing"
	"github.com/portalcondominio/clube-api/pkg/apiErrors"
)

// ListAdvertisers lista os anunciantes do clube, em destaque primeiro
func ListAdvertisers(service advertising.AdvertisingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - ListAdvertisers")

		filter, ok := parseAdvertiserFilter(w, r)
		if !ok {
			return
		}

		advertisers, err := service.ListAdvertisers(r.Context(), filter)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao listar anunciantes")
			return
		}

		if advertisers == nil {
			advertisers = []*domain.Advertiser{}
		}

		writeJSON(w, http.StatusOK, advertisers)
	})
}

func parseAdvertiserFilter(w http.ResponseWriter, r *http.Request) (domain.AdvertiserFilter, bool) {
	var filter domain.AdvertiserFilter
	query := r.URL.Query()

	for param, target := range map[string]*bool{
		"ativo":    &filter.OnlyActive,
		"destaque": &filter.OnlyFeatured,
	} {
		value := query.Get(param)
		if value == "" {
			continue
		}

		parsed, err := strconv.ParseBool(value)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro "+param+" inválido", nil)
			return filter, false
		}
		*target = parsed
	}

	if limit := query.Get("limite"); limit != "" {
		parsed, err := strconv.ParseUint(limit, 10, 64)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Parâmetro limite inválido", nil)
			return filter, false
		}
		filter.Limit = parsed
	}

	return filter, true
}

func GetAdvertiser(service advertising.AdvertisingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetAdvertiser")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		advertiser, err := service.GetAdvertiser(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao buscar anunciante")
			return
		}

		writeJSON(w, http.StatusOK, advertiser)
	})
}

func CreateAdvertiser(service advertising.AdvertisingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - CreateAdvertiser")

		var req domain.CreateAdvertiserRequest
		if !decodeBody(w, r, &req, false) {
			return
		}

		advertiser, err := service.CreateAdvertiser(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao criar anunciante")
			return
		}

		writeJSON(w, http.StatusCreated, advertiser)
	})
}

func UpdateAdvertiser(service advertising.AdvertisingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - UpdateAdvertiser")

		var req domain.UpdateAdvertiserRequest
		if !decodeBody(w, r, &req, false) {
			return
		}

		// O id da rota prevalece sobre o do corpo
		req.ID = httprouter.ParamsFromContext(r.Context()).ByName("id")

		advertiser, err := service.UpdateAdvertiser(r.Context(), &req)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao atualizar anunciante")
			return
		}

		writeJSON(w, http.StatusOK, advertiser)
	})
}

func DeleteAdvertiser(service advertising.AdvertisingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - DeleteAdvertiser")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteAdvertiser(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao excluir anunciante")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

func TrackAdvertiserView(service advertising.AdvertisingService) http.Handler {
	return trackAdvertiser("TrackAdvertiserView", service.TrackView)
}

func TrackAdvertiserClick(service advertising.AdvertisingService) http.Handler {
	return trackAdvertiser("TrackAdvertiserClick", service.TrackClick)
}

func trackAdvertiser(name string, track func(ctx context.Context, id string) error) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Debug("INIT - " + name)

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := track(r.Context(), id); err != nil {
			writeServiceError(w, r, err, "Erro ao registrar interação com o anunciante")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	})
}

// SyncAdvertiserBilling reconcilia a cobrança do mês corrente de um anunciante
func SyncAdvertiserBilling(service billing.BillingService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - SyncAdvertiserBilling")

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		action, err := service.SyncByAdvertiserID(r.Context(), id)
		if err != nil {
			writeServiceError(w, r, err, "Erro ao sincronizar cobrança do anunciante")
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"success":       true,
			"anunciante_id": id,
			"acao":          action,
		})
	})
}
