package domain

import (
	"encoding/json"
	"time"

	"github.com/vfg2006/shareholder-campaign-api/pkg/utils"
)

// DashboardFilter reúne os filtros aceitos pelos cards do dashboard. Days só
// é considerado quando o par StartDate/EndDate não vem preenchido.
type DashboardFilter struct {
	Days         int
	StartDate    *time.Time
	EndDate      *time.Time
	CampaignType *CampaignType
	CampaignID   *string
}

type CampaignTypeDistribution struct {
	DiscountedProductCount    int `json:"discountedProductCount"`
	EarlyAccessProductCount   int `json:"earlyAccessProductCount"`
	EarlyAccessEventCount     int `json:"earlyAccessEventCount"`
	ExclusiveAccessEventCount int `json:"exclusiveAccessEventCount"`
}

type CampaignStatsCard struct {
	ActiveCampaignCount      int                      `json:"activeCampaignCount"`
	GrowthPercentage         float64                  `json:"growthPercentage"`
	TimePeriod               string                   `json:"timePeriod"`
	CampaignTypeDistribution CampaignTypeDistribution `json:"campaignTypeDistribution"`
}

type CampaignCostCard struct {
	TotalCost            float64             `json:"totalCost"`
	GrowthPercentage     float64             `json:"growthPercentage"`
	TimePeriod           string              `json:"timePeriod"`
	SelectedCampaignType CampaignType        `json:"selectedCampaignType"`
	CostOverTime         []utils.SeriesPoint `json:"costOverTime"`
}

type BrokerConcentration struct {
	Broker     string  `json:"broker"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type ShareholderConcentrationCard struct {
	TotalShareholderCount int                   `json:"totalShareholderCount"`
	GrowthPercentage      float64               `json:"growthPercentage"`
	TimePeriod            string                `json:"timePeriod"`
	BrokerConcentration   []BrokerConcentration `json:"brokerConcentration"`
}

type CountryConcentration struct {
	Country    string  `json:"country"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

type NotificationMethod struct {
	Method         string `json:"method"`
	Count          int    `json:"count"`
	CountFormatted string `json:"countFormatted"`
}

type NotificationApplicationStatus struct {
	NotifiedShareholderCount          int     `json:"notifiedShareholderCount"`
	NotifiedShareholderCountFormatted string  `json:"notifiedShareholderCountFormatted"`
	FailureRate                       float64 `json:"failureRate"`
}

type NotificationCard struct {
	TotalNotifications          int                           `json:"totalNotifications"`
	TotalNotificationsFormatted string                        `json:"totalNotificationsFormatted"`
	GrowthPercentage            float64                       `json:"growthPercentage"`
	TimePeriod                  string                        `json:"timePeriod"`
	NotificationMethods         []NotificationMethod          `json:"notificationMethods"`
	ApplicationStatus           NotificationApplicationStatus `json:"applicationStatus"`
}

type ShareholderSpendingCard struct {
	TotalSpending          float64             `json:"totalSpending"`
	TotalSpendingFormatted string              `json:"totalSpendingFormatted"`
	GrowthPercentage       float64             `json:"growthPercentage"`
	TimePeriod             string              `json:"timePeriod"`
	SelectedCampaignType   *CampaignType       `json:"selectedCampaignType,omitempty"`
	CampaignID             *string             `json:"campaignId,omitempty"`
	SpendingOverTime       []utils.SeriesPoint `json:"spendingOverTime"`
}

// Metric é um indicador do dashboard de corretoras: valor atual e variação
// frente a um mês atrás, nas formas bruta e formatada
type Metric struct {
	Value        string  `json:"value"`
	RawValue     float64 `json:"rawValue"`
	Change       string  `json:"change"`
	RawChange    float64 `json:"rawChange"`
	IncreaseType string  `json:"increaseType"`
}

type DashboardMetrics struct {
	TotalSharesOwned    Metric `json:"totalSharesOwned"`
	TotalShareholders   Metric `json:"totalShareholders"`
	AvgSharePrice       Metric `json:"avgSharePrice"`
	AvgSharePriceRepeat Metric `json:"avgSharePriceRepeat"`
}

// DashboardSnapshot é a fotografia diária dos cards, persistida como JSONB
// pelo job agendado
type DashboardSnapshot struct {
	ID        string          `json:"id"`
	Date      time.Time       `json:"date"`
	Payload   json.RawMessage `json:"payload"`
	CreatedAt time.Time       `json:"createdAt"`
}

// SnapshotPayload é o conteúdo serializado de um DashboardSnapshot
type SnapshotPayload struct {
	Stats         *CampaignStatsCard            `json:"stats,omitempty"`
	Cost          *CampaignCostCard             `json:"cost,omitempty"`
	Concentration *ShareholderConcentrationCard `json:"concentration,omitempty"`
	Countries     []CountryConcentration        `json:"countries,omitempty"`
	Notifications *NotificationCard             `json:"notifications,omitempty"`
	Spending      *ShareholderSpendingCard      `json:"spending,omitempty"`
}
