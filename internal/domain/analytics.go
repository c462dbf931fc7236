package domain

import "time"

// Registros enxutos devolvidos pelas listagens de analytics

type ClickRecord struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type EmailRecord struct {
	ID        string    `json:"id"`
	IsOpened  bool      `json:"isOpened"`
	CreatedAt time.Time `json:"createdAt"`
}

// CampaignSummary é o cabeçalho da campanha na visão consolidada
type CampaignSummary struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Description  string         `json:"description"`
	StartDate    *time.Time     `json:"startDate,omitempty"`
	EndDate      *time.Time     `json:"endDate,omitempty"`
	Status       CampaignStatus `json:"status"`
	CampaignType CampaignType   `json:"campaignType"`
}

type AnalyticsMetrics struct {
	TotalClicks         int     `json:"totalClicks"`
	TotalEmails         int     `json:"totalEmails"`
	EmailsOpened        int     `json:"emailsOpened"`
	EmailOpenRate       float64 `json:"emailOpenRate"`
	TotalOffersRedeemed int     `json:"totalOffersRedeemed"`
	TotalRewardsClaimed int     `json:"totalRewardsClaimed"`
}

type AnalyticsRecords struct {
	Clicks         []ClickRecord           `json:"clicks"`
	OffersRedeemed []CampaignOfferRedeemed `json:"offersRedeemed"`
}

// CampaignAnalytics é a visão consolidada de uma campanha
type CampaignAnalytics struct {
	Campaign     CampaignSummary  `json:"campaign"`
	ShareHolders []*ShareHolder   `json:"shareHolders"`
	Metrics      AnalyticsMetrics `json:"metrics"`
	Records      AnalyticsRecords `json:"records"`
}

type CampaignClicksResult struct {
	Campaign CampaignRef `json:"campaign"`
	Metrics  struct {
		TotalClicks int `json:"totalClicks"`
	} `json:"metrics"`
	Records []ClickRecord `json:"records"`
}

type CampaignEmailsResult struct {
	Campaign CampaignRef `json:"campaign"`
	Metrics  struct {
		TotalEmails   int     `json:"totalEmails"`
		EmailsOpened  int     `json:"emailsOpened"`
		EmailOpenRate float64 `json:"emailOpenRate"`
	} `json:"metrics"`
	Records []EmailRecord `json:"records"`
}

type CampaignOffersResult struct {
	Campaign CampaignRef `json:"campaign"`
	Metrics  struct {
		TotalOffersRedeemed int `json:"totalOffersRedeemed"`
	} `json:"metrics"`
	Records []CampaignOfferRedeemed `json:"records"`
}

// RewardsClaimedMetrics acompanha a paginação junto do total
type RewardsClaimedMetrics struct {
	TotalRewardsClaimed int `json:"totalRewardsClaimed"`
	TotalPages          int `json:"totalPages"`
	CurrentPage         int `json:"currentPage"`
	PageSize            int `json:"pageSize"`
}

type CampaignRewardsClaimedResult struct {
	Campaign CampaignRef           `json:"campaign"`
	Metrics  RewardsClaimedMetrics `json:"metrics"`
	Records  []CampaignRewardClaim `json:"records"`
}

type CampaignShareholdersResult struct {
	Campaign     CampaignRef    `json:"campaign"`
	ShareHolders []*ShareHolder `json:"shareHolders"`
	Metrics      struct {
		TotalShareHolders int `json:"totalShareHolders"`
	} `json:"metrics"`
}

// BrokerSharesDistribution agrega participações por corretora. Cada linha de
// ação soma um tanto na contagem de acionistas quanto no total de ações.
type BrokerSharesDistribution struct {
	BrokerID         string `json:"brokerId"`
	BrokerName       string `json:"brokerName"`
	ShareholderCount int    `json:"shareholderCount"`
	TotalShares      int    `json:"totalShares"`
}

type SharesDistributionResult struct {
	Campaign                   CampaignRef                `json:"campaign"`
	TotalSharesCount           int                        `json:"totalSharesCount"`
	SharesDistributionByBroker []BrokerSharesDistribution `json:"sharesDistributionByBroker"`
}

// TimeGrouping define a granularidade da série de engajamento
type TimeGrouping string

const (
	TimeGroupingDay   TimeGrouping = "day"
	TimeGroupingWeek  TimeGrouping = "week"
	TimeGroupingMonth TimeGrouping = "month"
)

// ValidTimeGrouping informa se o valor corresponde a uma granularidade aceita
func ValidTimeGrouping(value string) bool {
	switch TimeGrouping(value) {
	case TimeGroupingDay, TimeGroupingWeek, TimeGroupingMonth:
		return true
	}
	return false
}

type EngagementPoint struct {
	DateRange       string `json:"date_range"`
	EngagementCount int    `json:"engagement_count"`
}

type EngagementSeries struct {
	Data         []EngagementPoint `json:"data"`
	HighestValue int               `json:"highest_value"`
	LowestValue  int               `json:"lowest_value"`
	Average      float64           `json:"average"`
}

type ShareholdersEngagementResult struct {
	TotalReached          int              `json:"total_reached"`
	TotalReachedFormatted string           `json:"total_reached_formatted"`
	EngagementOverTime    EngagementSeries `json:"engagement_over_time"`
}

// AgeGroupStats acumula contagens de uma faixa etária para uma corretora
type AgeGroupStats struct {
	Count              int                `json:"count"`
	TotalShares        int                `json:"totalShares"`
	ConcentrationLevel ConcentrationLevel `json:"concentrationLevel"`
}

type BrokerDemographics struct {
	Broker    string                     `json:"broker"`
	AgeGroups map[AgeGroup]AgeGroupStats `json:"ageGroups"`
}

type Demographics struct {
	Brokers   []BrokerDemographics `json:"brokers"`
	AgeGroups []AgeGroup           `json:"ageGroups"`
}

type ShareholderDemographicsResult struct {
	Campaign     CampaignRef  `json:"campaign"`
	Demographics Demographics `json:"demographics"`
}

// RegionalConcentration é a participação de um país ou região no total de
// acionistas, com percentual inteiro
type RegionalConcentration struct {
	Name             string `json:"name"`
	ShareholderCount int    `json:"shareholderCount"`
	Percentage       int    `json:"percentage"`
}

type ConcentrationSet struct {
	Countries []RegionalConcentration `json:"countries"`
	Regions   []RegionalConcentration `json:"regions"`
}

type CampaignRegionalResult struct {
	Campaign      CampaignRef      `json:"campaign"`
	Concentration ConcentrationSet `json:"concentration"`
}

type CampaignRegionalEntry struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Concentration ConcentrationSet `json:"concentration"`
}

type AllCampaignsRegionalResult struct {
	Days               int                     `json:"days"`
	Campaigns          []CampaignRegionalEntry `json:"campaigns"`
	TotalConcentration ConcentrationSet        `json:"totalConcentration"`
}
