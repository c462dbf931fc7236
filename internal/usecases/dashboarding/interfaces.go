package dashboarding

import (
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
)

// Dashboarder expõe as agregações dos cards do painel de campanhas
type Dashboarder interface {
	GetCampaignStatsCard(filter domain.DashboardFilter) (*domain.CampaignStatsCard, error)
	GetCampaignCostCard(filter domain.DashboardFilter) (*domain.CampaignCostCard, error)
	GetShareholderConcentration(filter domain.DashboardFilter) (*domain.ShareholderConcentrationCard, error)
	GetShareholdersByCountry(filter domain.DashboardFilter) ([]domain.CountryConcentration, error)
	GetNotificationCard(filter domain.DashboardFilter) (*domain.NotificationCard, error)
	GetShareholderSpendingCard(filter domain.DashboardFilter) (*domain.ShareholderSpendingCard, error)
	GetDashboardMetrics() (*domain.DashboardMetrics, error)
}
