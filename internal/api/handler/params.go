package handler

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	"github.com/vfg2006/shareholder-campaign-api/pkg/apiErrors"
	"github.com/vfg2006/shareholder-campaign-api/pkg/utils"
)

// parseIntParam lê um parâmetro inteiro opcional da query string; ausência
// retorna o valor padrão informado
func parseIntParam(r *http.Request, name string, defaultValue int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, apiErrors.NewValidation(fmt.Sprintf("parâmetro %s inválido: %s", name, raw))
	}

	return value, nil
}

// parseDashboardFilter monta o filtro comum dos cards do dashboard a partir
// da query string, validando cada parâmetro antes de chamar o serviço
func parseDashboardFilter(r *http.Request) (domain.DashboardFilter, error) {
	filter := domain.DashboardFilter{}

	startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
	if err != nil {
		return filter, apiErrors.NewValidation(fmt.Sprintf("parâmetro start_date inválido: %s", r.URL.Query().Get("start_date")))
	}
	filter.StartDate = startDate

	endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
	if err != nil {
		return filter, apiErrors.NewValidation(fmt.Sprintf("parâmetro end_date inválido: %s", r.URL.Query().Get("end_date")))
	}
	filter.EndDate = endDate

	days, err := parseIntParam(r, "days", 0)
	if err != nil {
		return filter, err
	}
	filter.Days = days

	if raw := r.URL.Query().Get("campaign_type"); raw != "" {
		if !domain.ValidCampaignType(raw) {
			return filter, apiErrors.NewValidation(fmt.Sprintf("parâmetro campaign_type inválido: %s", raw))
		}
		campaignType := domain.CampaignType(raw)
		filter.CampaignType = &campaignType
	}

	if raw := r.URL.Query().Get("campaign_id"); raw != "" {
		campaignID := raw
		filter.CampaignID = &campaignID
	}

	return filter, nil
}
