package dashboarding

import (
	"fmt"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shareholder-campaign-api/infrastructure/repository"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	"github.com/vfg2006/shareholder-campaign-api/internal/metrics"
	"github.com/vfg2006/shareholder-campaign-api/pkg/apiErrors"
	"github.com/vfg2006/shareholder-campaign-api/pkg/utils"
)

const defaultWindowDays = 30

// Service implementa a interface Dashboarder sobre os repositórios de
// campanhas, acionistas e eventos de engajamento
type Service struct {
	campaignRepo       repository.CampaignRepository
	shareHolderRepo    repository.ShareHolderRepository
	shareRepo          repository.ShareRepository
	eventRepo          repository.CampaignEventRepository
	deliveryMethodRepo repository.DeliveryMethodRepository
}

func NewService(
	campaignRepo repository.CampaignRepository,
	shareHolderRepo repository.ShareHolderRepository,
	shareRepo repository.ShareRepository,
	eventRepo repository.CampaignEventRepository,
	deliveryMethodRepo repository.DeliveryMethodRepository,
) Dashboarder {
	return &Service{
		campaignRepo:       campaignRepo,
		shareHolderRepo:    shareHolderRepo,
		shareRepo:          shareRepo,
		eventRepo:          eventRepo,
		deliveryMethodRepo: deliveryMethodRepo,
	}
}

// resolvePeriod aplica o padrão de 30 dias e traduz janelas inválidas em erro
// de validação
func resolvePeriod(filter domain.DashboardFilter) (utils.Period, error) {
	days := filter.Days
	if days < 1 && (filter.StartDate == nil || filter.EndDate == nil) {
		days = defaultWindowDays
	}

	period, err := utils.ResolvePeriod(filter.StartDate, filter.EndDate, days)
	if err != nil {
		return utils.Period{}, apiErrors.NewValidation(err.Error())
	}

	return period, nil
}

// observeCard recebe o ponteiro do erro de retorno para ler o valor final
// quando o defer roda
func observeCard(card string, start time.Time, err *error) {
	if metrics.DefaultMetrics != nil {
		metrics.DefaultMetrics.ObserveCard(card, time.Since(start), *err)
	}
}

// GetCampaignStatsCard conta as campanhas ativas, compara com a base anterior
// à janela e distribui as ativas pelos quatro tipos de exibição
func (s *Service) GetCampaignStatsCard(filter domain.DashboardFilter) (card *domain.CampaignStatsCard, err error) {
	defer observeCard("campaign_stats", time.Now(), &err)

	period, err := resolvePeriod(filter)
	if err != nil {
		return nil, err
	}

	activeCount, err := s.campaignRepo.CountActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao contar campanhas ativas")
		return nil, apiErrors.NewAggregation("campaign_stats_card", "", err)
	}

	previousCount, err := s.campaignRepo.CountActiveCreatedBefore(period.Start)
	if err != nil {
		logrus.WithError(err).Error("Erro ao contar campanhas ativas do período anterior")
		return nil, apiErrors.NewAggregation("campaign_stats_card", "", err)
	}

	campaigns, err := s.campaignRepo.ListActive()
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar campanhas ativas")
		return nil, apiErrors.NewAggregation("campaign_stats_card", "", err)
	}

	distribution := domain.CampaignTypeDistribution{}
	for _, campaign := range campaigns {
		switch campaign.Classify() {
		case domain.CampaignTypeDiscountedProducts:
			distribution.DiscountedProductCount++
		case domain.CampaignTypeEarlyAccessToProducts:
			distribution.EarlyAccessProductCount++
		case domain.CampaignTypeEarlyAccessToEvents:
			distribution.EarlyAccessEventCount++
		case domain.CampaignTypeExclusiveEvents:
			distribution.ExclusiveAccessEventCount++
		}
	}

	return &domain.CampaignStatsCard{
		ActiveCampaignCount:      activeCount,
		GrowthPercentage:         utils.GrowthPercentage(float64(activeCount), float64(previousCount)),
		TimePeriod:               utils.TimePeriodLabel(period.Days),
		CampaignTypeDistribution: distribution,
	}, nil
}

// GetCampaignCostCard soma os orçamentos das campanhas criadas na janela e
// monta a série de custo em segmentos de 7 dias
func (s *Service) GetCampaignCostCard(filter domain.DashboardFilter) (card *domain.CampaignCostCard, err error) {
	defer observeCard("campaign_cost", time.Now(), &err)

	period, err := resolvePeriod(filter)
	if err != nil {
		return nil, err
	}

	campaigns, err := s.campaignRepo.ListCreatedBetween(period.Start, period.End, filter.CampaignType)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar campanhas da janela de custo")
		return nil, apiErrors.NewAggregation("campaign_cost_card", "", err)
	}

	var totalCost float64
	points := make([]utils.DatedValue, 0, len(campaigns))
	for _, campaign := range campaigns {
		totalCost += campaign.CampaignBudget
		points = append(points, utils.DatedValue{Date: campaign.CreatedAt, Value: campaign.CampaignBudget})
	}

	previous := period.Previous()
	previousTotal, err := s.campaignRepo.SumBudgetInPreviousWindow(previous.Start, previous.End, filter.CampaignType)
	if err != nil {
		logrus.WithError(err).Error("Erro ao somar orçamentos do período anterior")
		return nil, apiErrors.NewAggregation("campaign_cost_card", "", err)
	}

	selected := domain.CampaignTypeDiscountedProducts
	if filter.CampaignType != nil {
		selected = *filter.CampaignType
	}

	return &domain.CampaignCostCard{
		TotalCost:            totalCost,
		GrowthPercentage:     utils.GrowthPercentage(totalCost, previousTotal),
		TimePeriod:           utils.TimePeriodLabel(period.Days),
		SelectedCampaignType: selected,
		CostOverTime:         utils.SegmentSeries(period, points),
	}, nil
}

// GetShareholderConcentration conta os acionistas criados na janela e
// distribui os toques de participação por corretora. Cada ação conta um toque
// para a corretora que a intermediou.
func (s *Service) GetShareholderConcentration(filter domain.DashboardFilter) (card *domain.ShareholderConcentrationCard, err error) {
	defer observeCard("shareholder_concentration", time.Now(), &err)

	period, err := resolvePeriod(filter)
	if err != nil {
		return nil, err
	}

	shareholders, err := s.shareHolderRepo.ListCreatedBetween(period.Start, period.End)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar acionistas da janela")
		return nil, apiErrors.NewAggregation("shareholder_concentration_card", "", err)
	}

	previous := period.Previous()
	previousCount, err := s.shareHolderRepo.CountCreatedBetween(previous.Start, previous.End)
	if err != nil {
		logrus.WithError(err).Error("Erro ao contar acionistas do período anterior")
		return nil, apiErrors.NewAggregation("shareholder_concentration_card", "", err)
	}

	totalCount := len(shareholders)

	brokerCounts := make(map[string]int)
	for _, shareholder := range shareholders {
		for _, share := range shareholder.Shares {
			if share.BrokerName != "" {
				brokerCounts[share.BrokerName]++
			}
		}
	}

	concentration := make([]domain.BrokerConcentration, 0, len(brokerCounts))
	for broker, count := range brokerCounts {
		var percentage float64
		if totalCount > 0 {
			percentage = utils.RoundWithOneDecimalPlace(float64(count) / float64(totalCount) * 100)
		}

		concentration = append(concentration, domain.BrokerConcentration{
			Broker:     broker,
			Count:      count,
			Percentage: percentage,
		})
	}

	sort.Slice(concentration, func(i, j int) bool {
		if concentration[i].Count != concentration[j].Count {
			return concentration[i].Count > concentration[j].Count
		}
		return concentration[i].Broker < concentration[j].Broker
	})

	return &domain.ShareholderConcentrationCard{
		TotalShareholderCount: totalCount,
		GrowthPercentage:      utils.GrowthPercentage(float64(totalCount), float64(previousCount)),
		TimePeriod:            utils.TimePeriodLabel(period.Days),
		BrokerConcentration:   concentration,
	}, nil
}

// GetShareholdersByCountry agrupa os acionistas criados na janela por país
func (s *Service) GetShareholdersByCountry(filter domain.DashboardFilter) (countries []domain.CountryConcentration, err error) {
	defer observeCard("shareholders_by_country", time.Now(), &err)

	period, err := resolvePeriod(filter)
	if err != nil {
		return nil, err
	}

	shareholders, err := s.shareHolderRepo.ListCreatedBetween(period.Start, period.End)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar acionistas da janela")
		return nil, apiErrors.NewAggregation("shareholders_by_country", "", err)
	}

	totalCount := len(shareholders)

	countryCounts := make(map[string]int)
	for _, shareholder := range shareholders {
		country := shareholder.Country
		if country == "" {
			country = "Unknown"
		}
		countryCounts[country]++
	}

	countries = make([]domain.CountryConcentration, 0, len(countryCounts))
	for country, count := range countryCounts {
		var percentage float64
		if totalCount > 0 {
			percentage = utils.RoundWithOneDecimalPlace(float64(count) / float64(totalCount) * 100)
		}

		countries = append(countries, domain.CountryConcentration{
			Country:    country,
			Count:      count,
			Percentage: percentage,
		})
	}

	sort.Slice(countries, func(i, j int) bool {
		if countries[i].Count != countries[j].Count {
			return countries[i].Count > countries[j].Count
		}
		return countries[i].Country < countries[j].Country
	})

	return countries, nil
}

// GetNotificationCard soma os tetos contratados dos canais de entrega da
// janela e mede a taxa de falha frente aos cliques registrados
func (s *Service) GetNotificationCard(filter domain.DashboardFilter) (card *domain.NotificationCard, err error) {
	defer observeCard("notifications", time.Now(), &err)

	period, err := resolvePeriod(filter)
	if err != nil {
		return nil, err
	}

	methods, err := s.deliveryMethodRepo.ListCreatedBetween(period.Start, period.End)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar métodos de entrega da janela")
		return nil, apiErrors.NewAggregation("notification_card", "", err)
	}

	previous := period.Previous()
	previousMethods, err := s.deliveryMethodRepo.ListCreatedInPreviousWindow(previous.Start, previous.End)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar métodos de entrega do período anterior")
		return nil, apiErrors.NewAggregation("notification_card", "", err)
	}

	var totalNotifications, previousTotal int
	countsByType := make(map[domain.DeliveryMethodType]int)
	campaignIDSet := make(map[string]struct{})
	for _, method := range methods {
		totalNotifications += method.MaxCount
		countsByType[method.Type] += method.MaxCount
		campaignIDSet[method.CampaignID] = struct{}{}
	}
	for _, method := range previousMethods {
		previousTotal += method.MaxCount
	}

	campaignIDs := make([]string, 0, len(campaignIDSet))
	for id := range campaignIDSet {
		campaignIDs = append(campaignIDs, id)
	}
	sort.Strings(campaignIDs)

	clicks, err := s.eventRepo.CountClicksForCampaigns(campaignIDs, period.Start, period.End)
	if err != nil {
		logrus.WithError(err).Error("Erro ao contar cliques das campanhas notificadas")
		return nil, apiErrors.NewAggregation("notification_card", "", err)
	}

	notifiedCount, err := s.eventRepo.CountOffersForCampaigns(campaignIDs, period.Start, period.End)
	if err != nil {
		logrus.WithError(err).Error("Erro ao contar resgates das campanhas notificadas")
		return nil, apiErrors.NewAggregation("notification_card", "", err)
	}

	var failureRate float64
	if totalNotifications > 0 {
		failed := totalNotifications - clicks
		if failed < 0 {
			failed = 0
		}
		failureRate = utils.RoundWithOneDecimalPlace(float64(failed) / float64(totalNotifications) * 100)
	}

	inAppCount := countsByType[domain.DeliveryMethodInAppNotification]
	emailCount := countsByType[domain.DeliveryMethodEmail]

	return &domain.NotificationCard{
		TotalNotifications:          totalNotifications,
		TotalNotificationsFormatted: utils.FormatLargeNumber(float64(totalNotifications)),
		GrowthPercentage:            utils.GrowthPercentage(float64(totalNotifications), float64(previousTotal)),
		TimePeriod:                  utils.TimePeriodLabel(period.Days),
		NotificationMethods: []domain.NotificationMethod{
			{
				Method:         "In App Push Notification",
				Count:          inAppCount,
				CountFormatted: utils.FormatLargeNumber(float64(inAppCount)),
			},
			{
				Method:         "Email",
				Count:          emailCount,
				CountFormatted: utils.FormatLargeNumber(float64(emailCount)),
			},
		},
		ApplicationStatus: domain.NotificationApplicationStatus{
			NotifiedShareholderCount:          notifiedCount,
			NotifiedShareholderCountFormatted: utils.FormatLargeNumber(float64(notifiedCount)),
			FailureRate:                       failureRate,
		},
	}, nil
}

// GetShareholderSpendingCard soma o orçamento da campanha a cada resgate da
// janela. O resgate carrega o orçamento inteiro da campanha, não uma fração.
func (s *Service) GetShareholderSpendingCard(filter domain.DashboardFilter) (card *domain.ShareholderSpendingCard, err error) {
	defer observeCard("shareholder_spending", time.Now(), &err)

	period, err := resolvePeriod(filter)
	if err != nil {
		return nil, err
	}

	spends, err := s.eventRepo.ListRedemptionSpends(period.Start, period.End, filter.CampaignID, filter.CampaignType)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar resgates da janela")
		return nil, apiErrors.NewAggregation("shareholder_spending_card", "", err)
	}

	previous := period.Previous()
	previousSpends, err := s.eventRepo.ListRedemptionSpendsInPreviousWindow(previous.Start, previous.End, filter.CampaignID, filter.CampaignType)
	if err != nil {
		logrus.WithError(err).Error("Erro ao listar resgates do período anterior")
		return nil, apiErrors.NewAggregation("shareholder_spending_card", "", err)
	}

	var totalSpending, previousSpending float64
	points := make([]utils.DatedValue, 0, len(spends))
	for _, spend := range spends {
		totalSpending += spend.CampaignBudget
		points = append(points, utils.DatedValue{Date: spend.CreatedAt, Value: spend.CampaignBudget})
	}
	for _, spend := range previousSpends {
		previousSpending += spend.CampaignBudget
	}

	return &domain.ShareholderSpendingCard{
		TotalSpending:          totalSpending,
		TotalSpendingFormatted: utils.FormatCurrency(totalSpending),
		GrowthPercentage:       utils.GrowthPercentage(totalSpending, previousSpending),
		TimePeriod:             utils.TimePeriodLabel(period.Days),
		SelectedCampaignType:   filter.CampaignType,
		CampaignID:             filter.CampaignID,
		SpendingOverTime:       utils.SegmentSeries(period, points),
	}, nil
}

// GetDashboardMetrics monta os indicadores do painel de corretoras comparando
// os totais atuais com a base de um mês atrás. As três consultas correm em
// paralelo.
func (s *Service) GetDashboardMetrics() (*domain.DashboardMetrics, error) {
	monthAgo := time.Now().AddDate(0, -1, 0)

	var (
		sharesNow, holdersNow   int
		sharesPrev, holdersPrev int
		priceNow, pricePrev     float64
		sharesErr, holdersErr   error
		priceErr                error
	)

	wg := sync.WaitGroup{}
	wg.Add(3)

	go func() {
		defer wg.Done()
		sharesNow, sharesErr = s.shareRepo.CountAll()
		if sharesErr != nil {
			return
		}
		sharesPrev, sharesErr = s.shareRepo.CountCreatedBefore(monthAgo)
	}()

	go func() {
		defer wg.Done()
		holdersNow, holdersErr = s.shareHolderRepo.CountAll()
		if holdersErr != nil {
			return
		}
		holdersPrev, holdersErr = s.shareHolderRepo.CountCreatedBefore(monthAgo)
	}()

	go func() {
		defer wg.Done()
		priceNow, priceErr = s.shareRepo.AvgPrice()
		if priceErr != nil {
			return
		}
		pricePrev, priceErr = s.shareRepo.AvgPriceBefore(monthAgo)
	}()

	wg.Wait()

	for _, err := range []error{sharesErr, holdersErr, priceErr} {
		if err != nil {
			logrus.WithError(err).Error("Erro ao computar indicadores do painel de corretoras")
			return nil, apiErrors.NewAggregation("dashboard_metrics", "", err)
		}
	}

	avgPriceMetric := buildMetric(priceNow, pricePrev, utils.FormatCurrency)

	return &domain.DashboardMetrics{
		TotalSharesOwned:    buildMetric(float64(sharesNow), float64(sharesPrev), utils.FormatLargeNumber),
		TotalShareholders:   buildMetric(float64(holdersNow), float64(holdersPrev), utils.FormatLargeNumber),
		AvgSharePrice:       avgPriceMetric,
		AvgSharePriceRepeat: avgPriceMetric,
	}, nil
}

// buildMetric compõe um indicador com a variação percentual frente à base
// anterior, sempre exibida em módulo com a direção separada
func buildMetric(current, previous float64, format func(float64) string) domain.Metric {
	change := utils.GrowthPercentage(current, previous)

	return domain.Metric{
		Value:        format(current),
		RawValue:     current,
		Change:       fmt.Sprintf("%.1f%%", math.Abs(change)),
		RawChange:    change,
		IncreaseType: utils.ChangeDirection(change),
	}
}
