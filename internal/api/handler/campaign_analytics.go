package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	"github.com/vfg2006/shareholder-campaign-api/internal/usecases/analyzing"
	"github.com/vfg2006/shareholder-campaign-api/pkg/apiErrors"
	"github.com/vfg2006/shareholder-campaign-api/pkg/log"
)

// windowedAnalytics encapsula o padrão das consultas por campanha com janela
// em dias: id na rota, days opcional na query
func windowedAnalytics(operation string, fetch func(campaignID string, days int) (interface{}, error)) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		days, err := parseIntParam(r, "days", 0)
		if err != nil {
			logger.WithField("campaign_id", campaignID).WithError(err).Warn("analytics: parâmetro days inválido")
			respondError(w, err)
			return
		}

		result, err := fetch(campaignID, days)
		if err != nil {
			logger.WithFields(log.Fields{
				"operation":   operation,
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("analytics: erro ao consultar campanha")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, result)
	})
}

func GetCampaignAnalytics(service analyzing.Analyzer) http.Handler {
	return windowedAnalytics("campaign_analytics", func(campaignID string, days int) (interface{}, error) {
		return service.GetCampaignAnalytics(campaignID, days)
	})
}

func GetCampaignClicks(service analyzing.Analyzer) http.Handler {
	return windowedAnalytics("campaign_clicks", func(campaignID string, days int) (interface{}, error) {
		return service.GetCampaignClicks(campaignID, days)
	})
}

func GetCampaignEmails(service analyzing.Analyzer) http.Handler {
	return windowedAnalytics("campaign_emails", func(campaignID string, days int) (interface{}, error) {
		return service.GetCampaignEmails(campaignID, days)
	})
}

func GetCampaignOffersRedeemed(service analyzing.Analyzer) http.Handler {
	return windowedAnalytics("campaign_offers_redeemed", func(campaignID string, days int) (interface{}, error) {
		return service.GetCampaignOffersRedeemed(campaignID, days)
	})
}

func GetCampaignRewardsClaimed(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		page, err := parseIntParam(r, "page", 0)
		if err != nil {
			respondError(w, err)
			return
		}

		limit, err := parseIntParam(r, "limit", 0)
		if err != nil {
			respondError(w, err)
			return
		}

		result, err := service.GetCampaignRewardsClaimed(campaignID, page, limit)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"page":        page,
				"error":       err.Error(),
			}).Error("analytics: erro ao listar recompensas resgatadas")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, result)
	})
}

func GetCampaignShareholders(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		result, err := service.GetCampaignShareholders(campaignID)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("analytics: erro ao listar acionistas da campanha")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, result)
	})
}

func GetCampaignSharesDistribution(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		result, err := service.GetCampaignSharesDistribution(campaignID)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("analytics: erro ao computar distribuição de ações")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, result)
	})
}

func GetShareholdersEngagement(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		days, err := parseIntParam(r, "days", 0)
		if err != nil {
			respondError(w, err)
			return
		}

		grouping := r.URL.Query().Get("time_grouping")
		if grouping != "" && !domain.ValidTimeGrouping(grouping) {
			respondError(w, apiErrors.NewValidation(fmt.Sprintf("parâmetro time_grouping inválido: %s", grouping)))
			return
		}

		result, err := service.GetShareholdersEngagement(campaignID, days, domain.TimeGrouping(grouping))
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id":   campaignID,
				"time_grouping": grouping,
				"error":         err.Error(),
			}).Error("analytics: erro ao computar engajamento")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, result)
	})
}

func GetShareholderDemographics(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		ageGroup := r.URL.Query().Get("age_group")
		if ageGroup != "" && !domain.ValidAgeGroup(ageGroup) {
			respondError(w, apiErrors.NewValidation(fmt.Sprintf("parâmetro age_group inválido: %s", ageGroup)))
			return
		}

		result, err := service.GetShareholderDemographics(campaignID, domain.AgeGroup(ageGroup))
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"age_group":   ageGroup,
				"error":       err.Error(),
			}).Error("analytics: erro ao computar demografia")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, result)
	})
}

// GetRegionalConcentration atende os dois modos da consulta regional: com
// campaign_id na query responde a campanha específica, sem ele agrega todas
// as campanhas da janela
func GetRegionalConcentration(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		region := r.URL.Query().Get("region")
		campaignID := r.URL.Query().Get("campaign_id")

		days, err := parseIntParam(r, "days", 0)
		if err != nil {
			respondError(w, err)
			return
		}

		var result interface{}
		if campaignID != "" {
			result, err = service.GetCampaignRegionalConcentration(campaignID, region)
		} else {
			result, err = service.GetAllCampaignsRegionalConcentration(region, days)
		}

		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"region":      region,
				"error":       err.Error(),
			}).Error("analytics: erro ao computar concentração regional")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, result)
	})
}
