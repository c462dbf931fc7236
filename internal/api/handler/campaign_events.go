package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	"github.com/vfg2006/shareholder-campaign-api/internal/usecases/analyzing"
	"github.com/vfg2006/shareholder-campaign-api/pkg/apiErrors"
	"github.com/vfg2006/shareholder-campaign-api/pkg/log"
)

// CreateCampaignClick registra um clique na campanha da rota
func CreateCampaignClick(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		click, err := service.CreateCampaignClick(domain.CreateCampaignClickInput{
			CampaignID: campaignID,
		})
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("ingestão: erro ao registrar clique")
			respondError(w, err)
			return
		}

		respond(w, http.StatusCreated, click)
	})
}

// CreateCampaignEmail registra um envio de e-mail da campanha
func CreateCampaignEmail(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input domain.CreateCampaignEmailInput
		if r.Body != nil && r.ContentLength != 0 {
			if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
				respondError(w, apiErrors.NewValidation("corpo da requisição inválido"))
				return
			}
		}
		input.CampaignID = campaignID

		email, err := service.CreateCampaignEmail(input)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("ingestão: erro ao registrar e-mail")
			respondError(w, err)
			return
		}

		respond(w, http.StatusCreated, email)
	})
}

// CreateCampaignOfferRedeemed registra o resgate de uma oferta
func CreateCampaignOfferRedeemed(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input domain.CreateCampaignOfferRedeemedInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondError(w, apiErrors.NewValidation("corpo da requisição inválido"))
			return
		}
		input.CampaignID = campaignID

		if input.UserID == "" {
			respondError(w, apiErrors.NewValidation("userId é obrigatório"))
			return
		}

		offer, err := service.CreateCampaignOfferRedeemed(input)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"user_id":     input.UserID,
				"error":       err.Error(),
			}).Error("ingestão: erro ao registrar resgate de oferta")
			respondError(w, err)
			return
		}

		respond(w, http.StatusCreated, offer)
	})
}

// CreateCampaignRewardClaim registra o resgate de uma recompensa
func CreateCampaignRewardClaim(service analyzing.Analyzer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input domain.CreateCampaignRewardClaimInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondError(w, apiErrors.NewValidation("corpo da requisição inválido"))
			return
		}
		input.CampaignID = campaignID

		if input.UserID == "" {
			respondError(w, apiErrors.NewValidation("userId é obrigatório"))
			return
		}

		claim, err := service.CreateCampaignRewardClaim(input)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"user_id":     input.UserID,
				"error":       err.Error(),
			}).Error("ingestão: erro ao registrar recompensa")
			respondError(w, err)
			return
		}

		respond(w, http.StatusCreated, claim)
	})
}
