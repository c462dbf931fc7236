package analyzing

import (
	"math"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shareholder-campaign-api/infrastructure/repository"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	"github.com/vfg2006/shareholder-campaign-api/internal/metrics"
	"github.com/vfg2006/shareholder-campaign-api/pkg/apiErrors"
	"github.com/vfg2006/shareholder-campaign-api/pkg/utils"
)

const (
	defaultWindowDays = 30
	defaultPageSize   = 10
)

// Service implementa a interface Analyzer
type Service struct {
	campaignRepo    repository.CampaignRepository
	shareHolderRepo repository.ShareHolderRepository
	brokerRepo      repository.BrokerRepository
	eventRepo       repository.CampaignEventRepository
}

func NewService(
	campaignRepo repository.CampaignRepository,
	shareHolderRepo repository.ShareHolderRepository,
	brokerRepo repository.BrokerRepository,
	eventRepo repository.CampaignEventRepository,
) Analyzer {
	return &Service{
		campaignRepo:    campaignRepo,
		shareHolderRepo: shareHolderRepo,
		brokerRepo:      brokerRepo,
		eventRepo:       eventRepo,
	}
}

// sinceFor converte a janela em dias no corte inferior dos filtros de eventos
func sinceFor(days int) *time.Time {
	if days < 1 {
		days = defaultWindowDays
	}

	since := time.Now().AddDate(0, 0, -days)
	return &since
}

func countIngestedEvent(eventType string) {
	if metrics.DefaultMetrics != nil {
		metrics.DefaultMetrics.IngestedEvents.WithLabelValues(eventType).Inc()
	}
}

// requireCampaign busca a campanha e traduz a ausência em erro de recurso
// inexistente
func (s *Service) requireCampaign(operation, campaignID string) (*domain.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(campaignID)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", campaignID).Error("Erro ao buscar campanha")
		return nil, apiErrors.NewAggregation(operation, campaignID, err)
	}

	if campaign == nil {
		return nil, apiErrors.NewNotFound(operation, "campanha", campaignID)
	}

	return campaign, nil
}

// CreateCampaignClick registra um clique. A campanha precisa existir.
func (s *Service) CreateCampaignClick(input domain.CreateCampaignClickInput) (*domain.CampaignClick, error) {
	if _, err := s.requireCampaign("create_campaign_click", input.CampaignID); err != nil {
		return nil, err
	}

	click, err := s.eventRepo.CreateClick(input.CampaignID)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", input.CampaignID).Error("Erro ao registrar clique")
		return nil, apiErrors.NewAggregation("create_campaign_click", input.CampaignID, err)
	}

	countIngestedEvent("click")
	return click, nil
}

// CreateCampaignEmail registra um envio de email e se ele foi aberto
func (s *Service) CreateCampaignEmail(input domain.CreateCampaignEmailInput) (*domain.CampaignEmail, error) {
	if _, err := s.requireCampaign("create_campaign_email", input.CampaignID); err != nil {
		return nil, err
	}

	email, err := s.eventRepo.CreateEmail(input.CampaignID, input.IsOpened)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", input.CampaignID).Error("Erro ao registrar email")
		return nil, apiErrors.NewAggregation("create_campaign_email", input.CampaignID, err)
	}

	countIngestedEvent("email")
	return email, nil
}

// CreateCampaignOfferRedeemed registra o resgate de uma oferta por um acionista
func (s *Service) CreateCampaignOfferRedeemed(input domain.CreateCampaignOfferRedeemedInput) (*domain.CampaignOfferRedeemed, error) {
	if _, err := s.requireCampaign("create_campaign_offer_redeemed", input.CampaignID); err != nil {
		return nil, err
	}

	offer, err := s.eventRepo.CreateOfferRedeemed(input.CampaignID, input.UserID)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", input.CampaignID).Error("Erro ao registrar resgate de oferta")
		return nil, apiErrors.NewAggregation("create_campaign_offer_redeemed", input.CampaignID, err)
	}

	countIngestedEvent("offer_redeemed")
	return offer, nil
}

// CreateCampaignRewardClaim registra o saque de recompensa de uma corretora.
// Diferente dos demais eventos, não há verificação prévia da campanha.
func (s *Service) CreateCampaignRewardClaim(input domain.CreateCampaignRewardClaimInput) (*domain.CampaignRewardClaim, error) {
	claim, err := s.eventRepo.CreateRewardClaim(input.CampaignID, input.UserID)
	if err != nil {
		logrus.WithError(err).WithField("campaign_id", input.CampaignID).Error("Erro ao registrar saque de recompensa")
		return nil, apiErrors.NewAggregation("create_campaign_reward_claim", input.CampaignID, err)
	}

	countIngestedEvent("reward_claim")
	return claim, nil
}

// GetCampaignAnalytics consolida contagens e registros de todos os tipos de
// evento da campanha dentro da janela
func (s *Service) GetCampaignAnalytics(campaignID string, days int) (*domain.CampaignAnalytics, error) {
	const op = "campaign_analytics"

	campaign, err := s.requireCampaign(op, campaignID)
	if err != nil {
		return nil, err
	}

	since := sinceFor(days)

	totalClicks, err := s.eventRepo.CountClicks(campaignID, since)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	clickRecords, err := s.eventRepo.ListClicks(campaignID, since)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	totalEmails, err := s.eventRepo.CountEmails(campaignID, since, false)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	emailsOpened, err := s.eventRepo.CountEmails(campaignID, since, true)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	totalOffers, err := s.eventRepo.CountOffers(campaignID, since)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	offerRecords, err := s.eventRepo.ListOffers(campaignID, since)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	totalRewards, err := s.eventRepo.CountRewards(campaignID)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	shareholders, err := s.shareHolderRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	return &domain.CampaignAnalytics{
		Campaign: domain.CampaignSummary{
			ID:           campaign.ID,
			Title:        campaign.Title,
			Description:  campaign.Description,
			StartDate:    campaign.StartDate,
			EndDate:      campaign.EndDate,
			Status:       campaign.Status,
			CampaignType: campaign.CampaignType,
		},
		ShareHolders: shareholders,
		Metrics: domain.AnalyticsMetrics{
			TotalClicks:         totalClicks,
			TotalEmails:         totalEmails,
			EmailsOpened:        emailsOpened,
			EmailOpenRate:       emailOpenRate(emailsOpened, totalEmails),
			TotalOffersRedeemed: totalOffers,
			TotalRewardsClaimed: totalRewards,
		},
		Records: domain.AnalyticsRecords{
			Clicks:         clickRecords,
			OffersRedeemed: offerRecords,
		},
	}, nil
}

// GetCampaignClicks lista os cliques da campanha dentro da janela
func (s *Service) GetCampaignClicks(campaignID string, days int) (*domain.CampaignClicksResult, error) {
	const op = "campaign_clicks"

	campaign, err := s.requireCampaign(op, campaignID)
	if err != nil {
		return nil, err
	}

	since := sinceFor(days)

	totalClicks, err := s.eventRepo.CountClicks(campaignID, since)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	records, err := s.eventRepo.ListClicks(campaignID, since)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	result := &domain.CampaignClicksResult{
		Campaign: domain.CampaignRef{ID: campaign.ID, Title: campaign.Title},
		Records:  records,
	}
	result.Metrics.TotalClicks = totalClicks

	return result, nil
}

// GetCampaignEmails lista os emails da campanha e a taxa de abertura
func (s *Service) GetCampaignEmails(campaignID string, days int) (*domain.CampaignEmailsResult, error) {
	const op = "campaign_emails"

	campaign, err := s.requireCampaign(op, campaignID)
	if err != nil {
		return nil, err
	}

	since := sinceFor(days)

	totalEmails, err := s.eventRepo.CountEmails(campaignID, since, false)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	emailsOpened, err := s.eventRepo.CountEmails(campaignID, since, true)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	records, err := s.eventRepo.ListEmails(campaignID, since)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	result := &domain.CampaignEmailsResult{
		Campaign: domain.CampaignRef{ID: campaign.ID, Title: campaign.Title},
		Records:  records,
	}
	result.Metrics.TotalEmails = totalEmails
	result.Metrics.EmailsOpened = emailsOpened
	result.Metrics.EmailOpenRate = emailOpenRate(emailsOpened, totalEmails)

	return result, nil
}

// GetCampaignOffersRedeemed lista os resgates da campanha com os dados do
// acionista
func (s *Service) GetCampaignOffersRedeemed(campaignID string, days int) (*domain.CampaignOffersResult, error) {
	const op = "campaign_offers_redeemed"

	campaign, err := s.requireCampaign(op, campaignID)
	if err != nil {
		return nil, err
	}

	since := sinceFor(days)

	totalOffers, err := s.eventRepo.CountOffers(campaignID, since)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	records, err := s.eventRepo.ListOffers(campaignID, since)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	result := &domain.CampaignOffersResult{
		Campaign: domain.CampaignRef{ID: campaign.ID, Title: campaign.Title},
		Records:  records,
	}
	result.Metrics.TotalOffersRedeemed = totalOffers

	return result, nil
}

// GetCampaignRewardsClaimed lista os saques de recompensa paginados. É a única
// consulta de analytics sem filtro de janela.
func (s *Service) GetCampaignRewardsClaimed(campaignID string, page, limit int) (*domain.CampaignRewardsClaimedResult, error) {
	const op = "campaign_rewards_claimed"

	campaign, err := s.requireCampaign(op, campaignID)
	if err != nil {
		return nil, err
	}

	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageSize
	}

	total, err := s.eventRepo.CountRewards(campaignID)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	records, err := s.eventRepo.ListRewards(campaignID, limit, (page-1)*limit)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	return &domain.CampaignRewardsClaimedResult{
		Campaign: domain.CampaignRef{ID: campaign.ID, Title: campaign.Title},
		Metrics: domain.RewardsClaimedMetrics{
			TotalRewardsClaimed: total,
			TotalPages:          int(math.Ceil(float64(total) / float64(limit))),
			CurrentPage:         page,
			PageSize:            limit,
		},
		Records: records,
	}, nil
}

// GetCampaignShareholders lista os acionistas vinculados à campanha com suas
// participações
func (s *Service) GetCampaignShareholders(campaignID string) (*domain.CampaignShareholdersResult, error) {
	const op = "campaign_shareholders"

	campaign, err := s.requireCampaign(op, campaignID)
	if err != nil {
		return nil, err
	}

	shareholders, err := s.shareHolderRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	result := &domain.CampaignShareholdersResult{
		Campaign:     domain.CampaignRef{ID: campaign.ID, Title: campaign.Title},
		ShareHolders: shareholders,
	}
	result.Metrics.TotalShareHolders = len(shareholders)

	return result, nil
}

// GetCampaignSharesDistribution agrega as participações dos acionistas da
// campanha por corretora. Cada linha de ação conta como uma unidade.
func (s *Service) GetCampaignSharesDistribution(campaignID string) (*domain.SharesDistributionResult, error) {
	const op = "campaign_shares_distribution"

	campaign, err := s.requireCampaign(op, campaignID)
	if err != nil {
		return nil, err
	}

	shareholders, err := s.shareHolderRepo.ListByCampaign(campaignID)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}

	totalShares := 0
	byBroker := make(map[string]*domain.BrokerSharesDistribution)
	order := make([]string, 0)

	for _, shareholder := range shareholders {
		for _, share := range shareholder.Shares {
			totalShares++

			entry, ok := byBroker[share.BrokerID]
			if !ok {
				entry = &domain.BrokerSharesDistribution{
					BrokerID:   share.BrokerID,
					BrokerName: share.BrokerName,
				}
				byBroker[share.BrokerID] = entry
				order = append(order, share.BrokerID)
			}

			entry.ShareholderCount++
			entry.TotalShares++
		}
	}

	distribution := make([]domain.BrokerSharesDistribution, 0, len(order))
	for _, brokerID := range order {
		distribution = append(distribution, *byBroker[brokerID])
	}

	return &domain.SharesDistributionResult{
		Campaign:                   domain.CampaignRef{ID: campaign.ID, Title: campaign.Title},
		TotalSharesCount:           totalShares,
		SharesDistributionByBroker: distribution,
	}, nil
}

func (s *Service) aggErr(operation, campaignID string, err error) error {
	logrus.WithError(err).WithFields(logrus.Fields{
		"operation":   operation,
		"campaign_id": campaignID,
	}).Error("Erro ao consultar analytics da campanha")

	return apiErrors.NewAggregation(operation, campaignID, err)
}

func emailOpenRate(opened, total int) float64 {
	if total <= 0 {
		return 0
	}

	return utils.RoundWithOneDecimalPlace(float64(opened) / float64(total) * 100)
}
