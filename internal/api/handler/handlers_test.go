package handler

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shareholder-campaign-api/internal/api/handler/router"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	dashMocks "github.com/vfg2006/shareholder-campaign-api/internal/usecases/dashboarding/mocks"
	"github.com/vfg2006/shareholder-campaign-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

type envelope struct {
	Status     bool        `json:"status"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data"`
	Error      string      `json:"error"`
}

func doRequest(t *testing.T, rt router.Router, method, target string, body []byte) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	recorder := httptest.NewRecorder()
	rt.ServeHTTP(recorder, req)

	var resp envelope
	if recorder.Body.Len() > 0 {
		err := json.Unmarshal(recorder.Body.Bytes(), &resp)
		assert.NoError(t, err)
	}

	return recorder, resp
}

func TestDashboardRoutes(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	dashboarder := dashMocks.NewMockDashboarder(ctrl)
	rt := router.New(router.WithRoutes(Dashboard(dashboarder, nil)...))

	t.Run("card de estatísticas com sucesso", func(t *testing.T) {
		dashboarder.EXPECT().
			GetCampaignStatsCard(domain.DashboardFilter{Days: 7}).
			Return(&domain.CampaignStatsCard{ActiveCampaignCount: 3}, nil)

		recorder, resp := doRequest(t, rt, http.MethodGet, "/v1/dashboard/campaign-stats?days=7", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.True(t, resp.Status)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.NotNil(t, resp.Data)
	})

	t.Run("start_date malformado rejeitado antes do serviço", func(t *testing.T) {
		recorder, resp := doRequest(t, rt, http.MethodGet, "/v1/dashboard/campaign-stats?start_date=07-2025", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.False(t, resp.Status)
		assert.Equal(t, apiErrors.ErrInvalidRequest, resp.Error)
	})

	t.Run("days malformado rejeitado antes do serviço", func(t *testing.T) {
		recorder, resp := doRequest(t, rt, http.MethodGet, "/v1/dashboard/campaign-cost?days=abc", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, resp.Error)
	})

	t.Run("campaign_type desconhecido rejeitado", func(t *testing.T) {
		recorder, resp := doRequest(t, rt, http.MethodGet, "/v1/dashboard/campaign-cost?campaign_type=FLASH_SALE", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, resp.Error)
	})

	t.Run("erro de agregação vira 500 no envelope", func(t *testing.T) {
		dashboarder.EXPECT().
			GetCampaignStatsCard(gomock.Any()).
			Return(nil, apiErrors.NewAggregation("campaign_stats", "", errors.New("erro de banco de dados")))

		recorder, resp := doRequest(t, rt, http.MethodGet, "/v1/dashboard/campaign-stats", nil)

		assert.Equal(t, http.StatusInternalServerError, recorder.Code)
		assert.False(t, resp.Status)
		assert.Equal(t, apiErrors.ErrAggregationFailure, resp.Error)
	})
}

func TestAnalyticsRoutes_ValidacaoDeParametros(t *testing.T) {
	// Rotas montadas sem serviço: todos os casos abaixo devem ser rejeitados
	// antes de qualquer chamada
	rt := router.New(router.WithRoutes(CampaignAnalytics(nil)...))

	t.Run("time_grouping inválido", func(t *testing.T) {
		recorder, resp := doRequest(t, rt, http.MethodGet, "/v1/campaigns/CMP001/engagement?time_grouping=hour", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, resp.Error)
	})

	t.Run("age_group inválido", func(t *testing.T) {
		recorder, resp := doRequest(t, rt, http.MethodGet, "/v1/campaigns/CMP001/demographics?age_group=0-17", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, resp.Error)
	})

	t.Run("page inválida na paginação", func(t *testing.T) {
		recorder, resp := doRequest(t, rt, http.MethodGet, "/v1/campaigns/CMP001/rewards-claimed?page=x", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, resp.Error)
	})

	t.Run("days inválido na janela", func(t *testing.T) {
		recorder, resp := doRequest(t, rt, http.MethodGet, "/v1/campaigns/CMP001/clicks?days=trinta", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, resp.Error)
	})
}

func TestEventRoutes_ValidacaoDeCorpo(t *testing.T) {
	rt := router.New(router.WithRoutes(CampaignEvents(nil)...))

	t.Run("corpo malformado no e-mail", func(t *testing.T) {
		recorder, resp := doRequest(t, rt, http.MethodPost, "/v1/campaigns/CMP001/emails", []byte("{isOpened"))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, resp.Error)
	})

	t.Run("resgate de oferta sem userId", func(t *testing.T) {
		recorder, resp := doRequest(t, rt, http.MethodPost, "/v1/campaigns/CMP001/offers-redeemed", []byte(`{}`))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, resp.Error)
	})

	t.Run("recompensa sem userId", func(t *testing.T) {
		recorder, resp := doRequest(t, rt, http.MethodPost, "/v1/campaigns/CMP001/rewards-claimed", []byte(`{}`))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, resp.Error)
	})
}

func TestInvoiceRoutes_ValidacaoDeParametros(t *testing.T) {
	rt := router.New(router.WithRoutes(Invoices(nil)...))

	t.Run("status de filtro inválido", func(t *testing.T) {
		recorder, resp := doRequest(t, rt, http.MethodGet, "/v1/invoices?status=ARCHIVED", nil)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, resp.Error)
	})

	t.Run("corpo malformado na emissão", func(t *testing.T) {
		recorder, resp := doRequest(t, rt, http.MethodPost, "/v1/campaigns/CMP001/invoice", []byte("{"))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Equal(t, apiErrors.ErrInvalidRequest, resp.Error)
	})
}
