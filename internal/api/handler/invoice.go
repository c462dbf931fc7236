package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	"github.com/vfg2006/shareholder-campaign-api/internal/usecases/invoicing"
	"github.com/vfg2006/shareholder-campaign-api/pkg/apiErrors"
	"github.com/vfg2006/shareholder-campaign-api/pkg/log"
)

// CreateInvoice emite a fatura da campanha da rota
func CreateInvoice(service invoicing.Invoicer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input domain.CreateInvoiceInput
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondError(w, apiErrors.NewValidation("corpo da requisição inválido"))
			return
		}
		input.CampaignID = campaignID

		invoice, err := service.CreateInvoice(input)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("fatura: erro ao emitir fatura")
			respondError(w, err)
			return
		}

		respond(w, http.StatusCreated, invoice)
	})
}

// GetInvoiceByCampaign retorna a fatura da campanha com os totais derivados
func GetInvoiceByCampaign(service invoicing.Invoicer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		campaignID := httprouter.ParamsFromContext(r.Context()).ByName("id")

		invoice, err := service.GetInvoiceByCampaign(campaignID)
		if err != nil {
			logger.WithFields(log.Fields{
				"campaign_id": campaignID,
				"error":       err.Error(),
			}).Error("fatura: erro ao buscar fatura da campanha")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, invoice)
	})
}

func GetInvoice(service invoicing.Invoicer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		invoice, err := service.GetInvoice(id)
		if err != nil {
			logger.WithFields(log.Fields{
				"invoice_id": id,
				"error":      err.Error(),
			}).Error("fatura: erro ao buscar fatura")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, invoice)
	})
}

// ListInvoices lista as faturas, com filtro opcional de status na query
func ListInvoices(service invoicing.Invoicer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var status *domain.InvoiceStatus
		if raw := r.URL.Query().Get("status"); raw != "" {
			if !domain.ValidInvoiceStatus(raw) {
				respondError(w, apiErrors.NewValidation(fmt.Sprintf("parâmetro status inválido: %s", raw)))
				return
			}
			parsed := domain.InvoiceStatus(raw)
			status = &parsed
		}

		invoices, err := service.ListInvoices(status)
		if err != nil {
			logger.WithError(err).Error("fatura: erro ao listar faturas")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, invoices)
	})
}

// UpdateInvoiceStatus altera o status da fatura
func UpdateInvoiceStatus(service invoicing.Invoicer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		var input struct {
			Status string `json:"status"`
		}
		if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
			respondError(w, apiErrors.NewValidation("corpo da requisição inválido"))
			return
		}

		invoice, err := service.UpdateInvoiceStatus(id, input.Status)
		if err != nil {
			logger.WithFields(log.Fields{
				"invoice_id": id,
				"status":     input.Status,
				"error":      err.Error(),
			}).Error("fatura: erro ao atualizar status")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, invoice)
	})
}

// DeleteInvoice remove a fatura via soft delete
func DeleteInvoice(service invoicing.Invoicer) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")

		if err := service.DeleteInvoice(id); err != nil {
			logger.WithFields(log.Fields{
				"invoice_id": id,
				"error":      err.Error(),
			}).Error("fatura: erro ao remover fatura")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, map[string]string{"id": id})
	})
}
