package handler

import (
	"net/http"

	"github.com/vfg2006/shareholder-campaign-api/infrastructure/repository"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	"github.com/vfg2006/shareholder-campaign-api/internal/usecases/dashboarding"
	"github.com/vfg2006/shareholder-campaign-api/pkg/log"
)

// dashboardCard encapsula o padrão comum de todos os cards: parse do filtro,
// chamada do serviço e envelope da resposta
func dashboardCard(name string, fetch func(domain.DashboardFilter) (interface{}, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		filter, err := parseDashboardFilter(r)
		if err != nil {
			logger.WithError(err).Warn("dashboard: filtro inválido")
			respondError(w, err)
			return
		}

		card, err := fetch(filter)
		if err != nil {
			logger.WithFields(log.Fields{
				"card":  name,
				"error": err.Error(),
			}).Error("dashboard: erro ao computar card")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, card)
	})
}

func GetCampaignStatsCard(service dashboarding.Dashboarder) http.Handler {
	return dashboardCard("campaign_stats", func(filter domain.DashboardFilter) (interface{}, error) {
		return service.GetCampaignStatsCard(filter)
	})
}

func GetCampaignCostCard(service dashboarding.Dashboarder) http.Handler {
	return dashboardCard("campaign_cost", func(filter domain.DashboardFilter) (interface{}, error) {
		return service.GetCampaignCostCard(filter)
	})
}

func GetShareholderConcentration(service dashboarding.Dashboarder) http.Handler {
	return dashboardCard("shareholder_concentration", func(filter domain.DashboardFilter) (interface{}, error) {
		return service.GetShareholderConcentration(filter)
	})
}

func GetShareholdersByCountry(service dashboarding.Dashboarder) http.Handler {
	return dashboardCard("shareholders_by_country", func(filter domain.DashboardFilter) (interface{}, error) {
		return service.GetShareholdersByCountry(filter)
	})
}

func GetNotificationCard(service dashboarding.Dashboarder) http.Handler {
	return dashboardCard("notifications", func(filter domain.DashboardFilter) (interface{}, error) {
		return service.GetNotificationCard(filter)
	})
}

func GetShareholderSpendingCard(service dashboarding.Dashboarder) http.Handler {
	return dashboardCard("shareholder_spending", func(filter domain.DashboardFilter) (interface{}, error) {
		return service.GetShareholderSpendingCard(filter)
	})
}

func GetDashboardMetrics(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		metrics, err := service.GetDashboardMetrics()
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao computar métricas do broker")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, metrics)
	})
}

// GetLatestSnapshot retorna a última fotografia persistida do dashboard
func GetLatestSnapshot(snapshotRepo repository.DashboardSnapshotRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		snapshot, err := snapshotRepo.GetLatest()
		if err != nil {
			logger.WithError(err).Error("dashboard: erro ao buscar snapshot")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, snapshot)
	})
}
