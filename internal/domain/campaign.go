package domain

import (
	"strings"
	"time"
)

type CampaignStatus string

const (
	CampaignStatusActive   CampaignStatus = "Active"
	CampaignStatusRunning  CampaignStatus = "RUNNING"
	CampaignStatusUpcoming CampaignStatus = "UPCOMING"
	CampaignStatusFinished CampaignStatus = "FINISHED"
)

type CampaignType string

const (
	CampaignTypeDiscountedProducts    CampaignType = "DISCOUNTED_PRODUCTS"
	CampaignTypeEarlyAccessToProducts CampaignType = "EARLY_ACCESS_TO_PRODUCTS"
	CampaignTypeEarlyAccessToEvents   CampaignType = "EARLY_ACCESS_TO_EVENTS"
	CampaignTypeExclusiveEvents       CampaignType = "EXCLUSIVE_EVENTS"
)

// ValidCampaignType informa se o valor corresponde a um tipo de campanha conhecido
func ValidCampaignType(value string) bool {
	switch CampaignType(value) {
	case CampaignTypeDiscountedProducts,
		CampaignTypeEarlyAccessToProducts,
		CampaignTypeEarlyAccessToEvents,
		CampaignTypeExclusiveEvents:
		return true
	}
	return false
}

// CampaignDetails é o payload livre armazenado como JSONB junto da campanha.
// Campanhas antigas podem não preencher todos os campos.
type CampaignDetails struct {
	FormType    string   `json:"formType,omitempty"`
	Discount    *float64 `json:"discount,omitempty"`
	IsEvent     bool     `json:"isEvent,omitempty"`
	IsExclusive bool     `json:"isExclusive,omitempty"`
}

type Campaign struct {
	ID              string           `json:"id"`
	Title           string           `json:"title"`
	Description     string           `json:"description"`
	Status          CampaignStatus   `json:"status"`
	CampaignType    CampaignType     `json:"campaignType"`
	CampaignDetails *CampaignDetails `json:"campaignDetails,omitempty"`
	CampaignBudget  float64          `json:"campaignBudget"`
	StartDate       *time.Time       `json:"startDate,omitempty"`
	EndDate         *time.Time       `json:"endDate,omitempty"`
	InvoiceID       *string          `json:"invoiceId,omitempty"`
	Deleted         bool             `json:"-"`
	CreatedAt       time.Time        `json:"createdAt"`
}

// CampaignRef é a referência mínima usada nas respostas de analytics
type CampaignRef struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}

// Classify resolve a categoria de exibição de uma campanha a partir do tipo
// declarado e dos detalhes. A ordem dos testes importa: o primeiro que casar
// vence, e campanhas sem nenhuma pista caem em acesso antecipado a produtos.
func (c *Campaign) Classify() CampaignType {
	details := c.CampaignDetails
	if details == nil {
		details = &CampaignDetails{}
	}

	campaignType := string(c.CampaignType)

	switch {
	case campaignType == string(CampaignTypeDiscountedProducts),
		details.FormType == string(CampaignTypeDiscountedProducts),
		details.Discount != nil:
		return CampaignTypeDiscountedProducts

	case campaignType == string(CampaignTypeEarlyAccessToProducts),
		details.FormType == string(CampaignTypeEarlyAccessToProducts):
		return CampaignTypeEarlyAccessToProducts

	case campaignType == string(CampaignTypeEarlyAccessToEvents),
		details.FormType == string(CampaignTypeEarlyAccessToEvents):
		return CampaignTypeEarlyAccessToEvents

	case campaignType == string(CampaignTypeExclusiveEvents),
		details.FormType == string(CampaignTypeExclusiveEvents):
		return CampaignTypeExclusiveEvents

	case details.IsEvent || strings.Contains(campaignType, "EVENT"):
		if details.IsExclusive || strings.Contains(campaignType, "EXCLUSIVE") {
			return CampaignTypeExclusiveEvents
		}
		return CampaignTypeEarlyAccessToEvents

	case details.Discount != nil || strings.Contains(campaignType, "DISCOUNT"):
		return CampaignTypeDiscountedProducts
	}

	return CampaignTypeEarlyAccessToProducts
}

type DeliveryMethodType string

const (
	DeliveryMethodEmail              DeliveryMethodType = "EMAIL"
	DeliveryMethodInAppNotification  DeliveryMethodType = "IN_APP_NOTIFICATION"
	DeliveryMethodMobileAppMarket    DeliveryMethodType = "MOBILE_APP_MARKET_PLACE"
	DeliveryMethodWebAppMarket       DeliveryMethodType = "WEB_APP_MARKET_PLACE"
)

// DeliveryMethod descreve um canal de entrega contratado para uma campanha.
// MaxCount é o teto de notificações contratadas para o canal.
type DeliveryMethod struct {
	ID         string             `json:"id"`
	CampaignID string             `json:"campaignId"`
	Type       DeliveryMethodType `json:"type"`
	MaxCount   int                `json:"maxCount"`
	Deleted    bool               `json:"-"`
	CreatedAt  time.Time          `json:"createdAt"`
}
