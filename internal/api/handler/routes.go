package handler

import (
	"net/http"

	"github.com/vfg2006/shareholder-campaign-api/infrastructure/repository"
	"github.com/vfg2006/shareholder-campaign-api/internal/api/handler/router"
	"github.com/vfg2006/shareholder-campaign-api/internal/metrics"
	"github.com/vfg2006/shareholder-campaign-api/internal/scheduler"
	"github.com/vfg2006/shareholder-campaign-api/internal/usecases/analyzing"
	"github.com/vfg2006/shareholder-campaign-api/internal/usecases/dashboarding"
	"github.com/vfg2006/shareholder-campaign-api/internal/usecases/invoicing"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: metrics.Handler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder, snapshotRepo repository.DashboardSnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard/campaign-stats",
			Method:  http.MethodGet,
			Handler: GetCampaignStatsCard(service),
		},
		{
			Path:    "/v1/dashboard/campaign-cost",
			Method:  http.MethodGet,
			Handler: GetCampaignCostCard(service),
		},
		{
			Path:    "/v1/dashboard/shareholder-concentration",
			Method:  http.MethodGet,
			Handler: GetShareholderConcentration(service),
		},
		{
			Path:    "/v1/dashboard/shareholders-by-country",
			Method:  http.MethodGet,
			Handler: GetShareholdersByCountry(service),
		},
		{
			Path:    "/v1/dashboard/notifications",
			Method:  http.MethodGet,
			Handler: GetNotificationCard(service),
		},
		{
			Path:    "/v1/dashboard/shareholder-spending",
			Method:  http.MethodGet,
			Handler: GetShareholderSpendingCard(service),
		},
		{
			Path:    "/v1/dashboard/metrics",
			Method:  http.MethodGet,
			Handler: GetDashboardMetrics(service),
		},
		{
			Path:    "/v1/dashboard/snapshot",
			Method:  http.MethodGet,
			Handler: GetLatestSnapshot(snapshotRepo),
		},
	}
}

func CampaignAnalytics(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns/regional-concentration",
			Method:  http.MethodGet,
			Handler: GetRegionalConcentration(service),
		},
		{
			Path:    "/v1/campaigns/:id/analytics",
			Method:  http.MethodGet,
			Handler: GetCampaignAnalytics(service),
		},
		{
			Path:    "/v1/campaigns/:id/clicks",
			Method:  http.MethodGet,
			Handler: GetCampaignClicks(service),
		},
		{
			Path:    "/v1/campaigns/:id/emails",
			Method:  http.MethodGet,
			Handler: GetCampaignEmails(service),
		},
		{
			Path:    "/v1/campaigns/:id/offers-redeemed",
			Method:  http.MethodGet,
			Handler: GetCampaignOffersRedeemed(service),
		},
		{
			Path:    "/v1/campaigns/:id/rewards-claimed",
			Method:  http.MethodGet,
			Handler: GetCampaignRewardsClaimed(service),
		},
		{
			Path:    "/v1/campaigns/:id/shareholders",
			Method:  http.MethodGet,
			Handler: GetCampaignShareholders(service),
		},
		{
			Path:    "/v1/campaigns/:id/shares-distribution",
			Method:  http.MethodGet,
			Handler: GetCampaignSharesDistribution(service),
		},
		{
			Path:    "/v1/campaigns/:id/engagement",
			Method:  http.MethodGet,
			Handler: GetShareholdersEngagement(service),
		},
		{
			Path:    "/v1/campaigns/:id/demographics",
			Method:  http.MethodGet,
			Handler: GetShareholderDemographics(service),
		},
	}
}

func CampaignEvents(service analyzing.Analyzer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns/:id/clicks",
			Method:  http.MethodPost,
			Handler: CreateCampaignClick(service),
		},
		{
			Path:    "/v1/campaigns/:id/emails",
			Method:  http.MethodPost,
			Handler: CreateCampaignEmail(service),
		},
		{
			Path:    "/v1/campaigns/:id/offers-redeemed",
			Method:  http.MethodPost,
			Handler: CreateCampaignOfferRedeemed(service),
		},
		{
			Path:    "/v1/campaigns/:id/rewards-claimed",
			Method:  http.MethodPost,
			Handler: CreateCampaignRewardClaim(service),
		},
	}
}

func Invoices(service invoicing.Invoicer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/campaigns/:id/invoice",
			Method:  http.MethodPost,
			Handler: CreateInvoice(service),
		},
		{
			Path:    "/v1/campaigns/:id/invoice",
			Method:  http.MethodGet,
			Handler: GetInvoiceByCampaign(service),
		},
		{
			Path:    "/v1/invoices",
			Method:  http.MethodGet,
			Handler: ListInvoices(service),
		},
		{
			Path:    "/v1/invoices/:id",
			Method:  http.MethodGet,
			Handler: GetInvoice(service),
		},
		{
			Path:    "/v1/invoices/:id/status",
			Method:  http.MethodPut,
			Handler: UpdateInvoiceStatus(service),
		},
		{
			Path:    "/v1/invoices/:id",
			Method:  http.MethodDelete,
			Handler: DeleteInvoice(service),
		},
	}
}

func CronJobs(snapshotService *scheduler.DashboardSnapshotService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/dashboard-snapshot/run",
			Method:  http.MethodPost,
			Handler: RunDashboardSnapshot(snapshotService),
		},
	}
}
