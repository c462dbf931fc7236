package analyzing

import (
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
)

// Analyzer expõe a ingestão de eventos de engajamento e as consultas de
// analytics por campanha
type Analyzer interface {
	CreateCampaignClick(input domain.CreateCampaignClickInput) (*domain.CampaignClick, error)
	CreateCampaignEmail(input domain.CreateCampaignEmailInput) (*domain.CampaignEmail, error)
	CreateCampaignOfferRedeemed(input domain.CreateCampaignOfferRedeemedInput) (*domain.CampaignOfferRedeemed, error)
	CreateCampaignRewardClaim(input domain.CreateCampaignRewardClaimInput) (*domain.CampaignRewardClaim, error)

	GetCampaignAnalytics(campaignID string, days int) (*domain.CampaignAnalytics, error)
	GetCampaignClicks(campaignID string, days int) (*domain.CampaignClicksResult, error)
	GetCampaignEmails(campaignID string, days int) (*domain.CampaignEmailsResult, error)
	GetCampaignOffersRedeemed(campaignID string, days int) (*domain.CampaignOffersResult, error)
	GetCampaignRewardsClaimed(campaignID string, page, limit int) (*domain.CampaignRewardsClaimedResult, error)
	GetCampaignShareholders(campaignID string) (*domain.CampaignShareholdersResult, error)
	GetCampaignSharesDistribution(campaignID string) (*domain.SharesDistributionResult, error)

	GetShareholdersEngagement(campaignID string, days int, grouping domain.TimeGrouping) (*domain.ShareholdersEngagementResult, error)
	GetShareholderDemographics(campaignID string, ageGroup domain.AgeGroup) (*domain.ShareholderDemographicsResult, error)
	GetCampaignRegionalConcentration(campaignID, region string) (*domain.CampaignRegionalResult, error)
	GetAllCampaignsRegionalConcentration(region string, days int) (*domain.AllCampaignsRegionalResult, error)
}
