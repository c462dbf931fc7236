package dashboarding

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shareholder-campaign-api/infrastructure/repository/mocks"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	"github.com/vfg2006/shareholder-campaign-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (
	*Service,
	*mocks.MockCampaignRepository,
	*mocks.MockShareHolderRepository,
	*mocks.MockShareRepository,
	*mocks.MockCampaignEventRepository,
	*mocks.MockDeliveryMethodRepository,
) {
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)
	shareHolderRepo := mocks.NewMockShareHolderRepository(ctrl)
	shareRepo := mocks.NewMockShareRepository(ctrl)
	eventRepo := mocks.NewMockCampaignEventRepository(ctrl)
	deliveryMethodRepo := mocks.NewMockDeliveryMethodRepository(ctrl)

	service := &Service{
		campaignRepo:       campaignRepo,
		shareHolderRepo:    shareHolderRepo,
		shareRepo:          shareRepo,
		eventRepo:          eventRepo,
		deliveryMethodRepo: deliveryMethodRepo,
	}

	return service, campaignRepo, shareHolderRepo, shareRepo, eventRepo, deliveryMethodRepo
}

func TestService_GetCampaignStatsCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, campaignRepo, _, _, _, _ := newTestService(ctrl)

	discount := 10.0

	tests := []struct {
		name     string
		filter   domain.DashboardFilter
		setup    func()
		validate func(t *testing.T, card *domain.CampaignStatsCard, err error)
	}{
		{
			name:   "Distribui as campanhas ativas pelas quatro categorias",
			filter: domain.DashboardFilter{Days: 30},
			setup: func() {
				campaignRepo.EXPECT().CountActive().Return(10, nil)
				campaignRepo.EXPECT().CountActiveCreatedBefore(gomock.Any()).Return(8, nil)
				campaignRepo.EXPECT().ListActive().Return([]*domain.Campaign{
					{ID: "CMP001", CampaignDetails: &domain.CampaignDetails{Discount: &discount}},
					{ID: "CMP002", CampaignType: domain.CampaignTypeEarlyAccessToProducts},
					{ID: "CMP003", CampaignDetails: &domain.CampaignDetails{IsEvent: true}},
					{ID: "CMP004", CampaignDetails: &domain.CampaignDetails{IsEvent: true, IsExclusive: true}},
				}, nil)
			},
			validate: func(t *testing.T, card *domain.CampaignStatsCard, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 10, card.ActiveCampaignCount)
				assert.Equal(t, 25.0, card.GrowthPercentage)
				assert.Equal(t, "Last 30 days", card.TimePeriod)
				assert.Equal(t, 1, card.CampaignTypeDistribution.DiscountedProductCount)
				assert.Equal(t, 1, card.CampaignTypeDistribution.EarlyAccessProductCount)
				assert.Equal(t, 1, card.CampaignTypeDistribution.EarlyAccessEventCount)
				assert.Equal(t, 1, card.CampaignTypeDistribution.ExclusiveAccessEventCount)
			},
		},
		{
			name:   "Sem baseline anterior o crescimento é zero",
			filter: domain.DashboardFilter{},
			setup: func() {
				campaignRepo.EXPECT().CountActive().Return(5, nil)
				campaignRepo.EXPECT().CountActiveCreatedBefore(gomock.Any()).Return(0, nil)
				campaignRepo.EXPECT().ListActive().Return(nil, nil)
			},
			validate: func(t *testing.T, card *domain.CampaignStatsCard, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0.0, card.GrowthPercentage)
				assert.Equal(t, "Last 30 days", card.TimePeriod)
			},
		},
		{
			name:   "Falha do repositório vira erro de agregação",
			filter: domain.DashboardFilter{Days: 7},
			setup: func() {
				campaignRepo.EXPECT().CountActive().Return(0, errors.New("conexão recusada"))
			},
			validate: func(t *testing.T, card *domain.CampaignStatsCard, err error) {
				assert.Nil(t, card)
				var apiErr *apiErrors.APIError
				assert.ErrorAs(t, err, &apiErr)
				assert.Equal(t, apiErrors.ErrAggregationFailure, apiErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			card, err := service.GetCampaignStatsCard(tt.filter)
			tt.validate(t, card, err)
		})
	}
}

func TestService_GetCampaignCostCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, campaignRepo, _, _, _, _ := newTestService(ctrl)

	campaignType := domain.CampaignTypeExclusiveEvents

	tests := []struct {
		name     string
		filter   domain.DashboardFilter
		setup    func()
		validate func(t *testing.T, card *domain.CampaignCostCard, err error)
	}{
		{
			name:   "Soma os orçamentos da janela e compara com o período anterior",
			filter: domain.DashboardFilter{Days: 30},
			setup: func() {
				campaignRepo.EXPECT().
					ListCreatedBetween(gomock.Any(), gomock.Any(), nil).
					Return([]*domain.Campaign{
						{ID: "CMP001", CampaignBudget: 1000, CreatedAt: time.Now().AddDate(0, 0, -1)},
						{ID: "CMP002", CampaignBudget: 2000, CreatedAt: time.Now().AddDate(0, 0, -2)},
					}, nil)
				campaignRepo.EXPECT().
					SumBudgetInPreviousWindow(gomock.Any(), gomock.Any(), nil).
					Return(1500.0, nil)
			},
			validate: func(t *testing.T, card *domain.CampaignCostCard, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 3000.0, card.TotalCost)
				assert.Equal(t, 100.0, card.GrowthPercentage)
				assert.Equal(t, domain.CampaignTypeDiscountedProducts, card.SelectedCampaignType)
				assert.NotEmpty(t, card.CostOverTime)

				var seriesTotal float64
				for _, point := range card.CostOverTime {
					seriesTotal += point.Value
				}
				assert.Equal(t, 3000.0, seriesTotal)
			},
		},
		{
			name:   "Filtro de tipo é repassado e ecoado na resposta",
			filter: domain.DashboardFilter{Days: 7, CampaignType: &campaignType},
			setup: func() {
				campaignRepo.EXPECT().
					ListCreatedBetween(gomock.Any(), gomock.Any(), &campaignType).
					Return(nil, nil)
				campaignRepo.EXPECT().
					SumBudgetInPreviousWindow(gomock.Any(), gomock.Any(), &campaignType).
					Return(0.0, nil)
			},
			validate: func(t *testing.T, card *domain.CampaignCostCard, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0.0, card.TotalCost)
				assert.Equal(t, domain.CampaignTypeExclusiveEvents, card.SelectedCampaignType)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			card, err := service.GetCampaignCostCard(tt.filter)
			tt.validate(t, card, err)
		})
	}
}

func TestService_GetShareholderConcentration(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, shareHolderRepo, _, _, _ := newTestService(ctrl)

	shareHolderRepo.EXPECT().
		ListCreatedBetween(gomock.Any(), gomock.Any()).
		Return([]*domain.ShareHolder{
			{
				ID: "SH001",
				Shares: []domain.Share{
					{BrokerName: "XP Investimentos"},
					{BrokerName: "XP Investimentos"},
				},
			},
			{
				ID: "SH002",
				Shares: []domain.Share{
					{BrokerName: "XP Investimentos"},
					{BrokerName: "NuInvest"},
				},
			},
		}, nil)
	shareHolderRepo.EXPECT().
		CountCreatedBetween(gomock.Any(), gomock.Any()).
		Return(1, nil)

	card, err := service.GetShareholderConcentration(domain.DashboardFilter{Days: 30})

	assert.NoError(t, err)
	assert.Equal(t, 2, card.TotalShareholderCount)
	assert.Equal(t, 100.0, card.GrowthPercentage)

	// Cada ação conta um toque; a ordenação é por contagem decrescente
	assert.Len(t, card.BrokerConcentration, 2)
	assert.Equal(t, "XP Investimentos", card.BrokerConcentration[0].Broker)
	assert.Equal(t, 3, card.BrokerConcentration[0].Count)
	assert.Equal(t, 150.0, card.BrokerConcentration[0].Percentage)
	assert.Equal(t, "NuInvest", card.BrokerConcentration[1].Broker)
	assert.Equal(t, 1, card.BrokerConcentration[1].Count)
	assert.Equal(t, 50.0, card.BrokerConcentration[1].Percentage)
}

func TestService_GetShareholdersByCountry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, shareHolderRepo, _, _, _ := newTestService(ctrl)

	shareHolderRepo.EXPECT().
		ListCreatedBetween(gomock.Any(), gomock.Any()).
		Return([]*domain.ShareHolder{
			{ID: "SH001", Country: "Brazil"},
			{ID: "SH002", Country: "Brazil"},
			{ID: "SH003", Country: ""},
		}, nil)

	countries, err := service.GetShareholdersByCountry(domain.DashboardFilter{Days: 30})

	assert.NoError(t, err)
	assert.Len(t, countries, 2)
	assert.Equal(t, "Brazil", countries[0].Country)
	assert.Equal(t, 2, countries[0].Count)
	assert.Equal(t, 66.7, countries[0].Percentage)
	assert.Equal(t, "Unknown", countries[1].Country)
	assert.Equal(t, 1, countries[1].Count)
	assert.Equal(t, 33.3, countries[1].Percentage)
}

func TestService_GetNotificationCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, eventRepo, deliveryMethodRepo := newTestService(ctrl)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, card *domain.NotificationCard, err error)
	}{
		{
			name: "Soma os tetos por canal e calcula a taxa de falha",
			setup: func() {
				deliveryMethodRepo.EXPECT().
					ListCreatedBetween(gomock.Any(), gomock.Any()).
					Return([]domain.DeliveryMethod{
						{CampaignID: "CMP001", Type: domain.DeliveryMethodInAppNotification, MaxCount: 100},
						{CampaignID: "CMP002", Type: domain.DeliveryMethodEmail, MaxCount: 50},
					}, nil)
				deliveryMethodRepo.EXPECT().
					ListCreatedInPreviousWindow(gomock.Any(), gomock.Any()).
					Return([]domain.DeliveryMethod{
						{CampaignID: "CMP003", Type: domain.DeliveryMethodEmail, MaxCount: 100},
					}, nil)
				eventRepo.EXPECT().
					CountClicksForCampaigns([]string{"CMP001", "CMP002"}, gomock.Any(), gomock.Any()).
					Return(120, nil)
				eventRepo.EXPECT().
					CountOffersForCampaigns([]string{"CMP001", "CMP002"}, gomock.Any(), gomock.Any()).
					Return(80, nil)
			},
			validate: func(t *testing.T, card *domain.NotificationCard, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 150, card.TotalNotifications)
				assert.Equal(t, 50.0, card.GrowthPercentage)

				assert.Len(t, card.NotificationMethods, 2)
				assert.Equal(t, "In App Push Notification", card.NotificationMethods[0].Method)
				assert.Equal(t, 100, card.NotificationMethods[0].Count)
				assert.Equal(t, "Email", card.NotificationMethods[1].Method)
				assert.Equal(t, 50, card.NotificationMethods[1].Count)

				assert.Equal(t, 80, card.ApplicationStatus.NotifiedShareholderCount)
				assert.Equal(t, 20.0, card.ApplicationStatus.FailureRate)
			},
		},
		{
			name: "Cliques acima do teto não geram taxa de falha negativa",
			setup: func() {
				deliveryMethodRepo.EXPECT().
					ListCreatedBetween(gomock.Any(), gomock.Any()).
					Return([]domain.DeliveryMethod{
						{CampaignID: "CMP001", Type: domain.DeliveryMethodEmail, MaxCount: 10},
					}, nil)
				deliveryMethodRepo.EXPECT().
					ListCreatedInPreviousWindow(gomock.Any(), gomock.Any()).
					Return(nil, nil)
				eventRepo.EXPECT().
					CountClicksForCampaigns([]string{"CMP001"}, gomock.Any(), gomock.Any()).
					Return(25, nil)
				eventRepo.EXPECT().
					CountOffersForCampaigns([]string{"CMP001"}, gomock.Any(), gomock.Any()).
					Return(5, nil)
			},
			validate: func(t *testing.T, card *domain.NotificationCard, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0.0, card.ApplicationStatus.FailureRate)
			},
		},
		{
			name: "Janela sem métodos de entrega devolve o card zerado",
			setup: func() {
				deliveryMethodRepo.EXPECT().
					ListCreatedBetween(gomock.Any(), gomock.Any()).
					Return(nil, nil)
				deliveryMethodRepo.EXPECT().
					ListCreatedInPreviousWindow(gomock.Any(), gomock.Any()).
					Return(nil, nil)
				eventRepo.EXPECT().
					CountClicksForCampaigns([]string{}, gomock.Any(), gomock.Any()).
					Return(0, nil)
				eventRepo.EXPECT().
					CountOffersForCampaigns([]string{}, gomock.Any(), gomock.Any()).
					Return(0, nil)
			},
			validate: func(t *testing.T, card *domain.NotificationCard, err error) {
				assert.NoError(t, err)
				assert.Equal(t, 0, card.TotalNotifications)
				assert.Equal(t, 0.0, card.ApplicationStatus.FailureRate)
				assert.Len(t, card.NotificationMethods, 2)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			card, err := service.GetNotificationCard(domain.DashboardFilter{Days: 30})
			tt.validate(t, card, err)
		})
	}
}

func TestService_GetShareholderSpendingCard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, eventRepo, _ := newTestService(ctrl)

	campaignID := "CMP001"

	eventRepo.EXPECT().
		ListRedemptionSpends(gomock.Any(), gomock.Any(), &campaignID, nil).
		Return([]domain.RedemptionSpend{
			{CreatedAt: time.Now().AddDate(0, 0, -1), CampaignBudget: 2500},
			{CreatedAt: time.Now().AddDate(0, 0, -3), CampaignBudget: 2500},
		}, nil)
	eventRepo.EXPECT().
		ListRedemptionSpendsInPreviousWindow(gomock.Any(), gomock.Any(), &campaignID, nil).
		Return([]domain.RedemptionSpend{
			{CreatedAt: time.Now().AddDate(0, 0, -40), CampaignBudget: 2500},
		}, nil)

	card, err := service.GetShareholderSpendingCard(domain.DashboardFilter{Days: 30, CampaignID: &campaignID})

	assert.NoError(t, err)
	assert.Equal(t, 5000.0, card.TotalSpending)
	assert.Equal(t, "$5.0K", card.TotalSpendingFormatted)
	assert.Equal(t, 100.0, card.GrowthPercentage)
	assert.Equal(t, &campaignID, card.CampaignID)
	assert.Nil(t, card.SelectedCampaignType)

	var seriesTotal float64
	for _, point := range card.SpendingOverTime {
		seriesTotal += point.Value
	}
	assert.Equal(t, 5000.0, seriesTotal)
}

func TestService_GetDashboardMetrics(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, shareHolderRepo, shareRepo, _, _ := newTestService(ctrl)

	shareRepo.EXPECT().CountAll().Return(1_200_000, nil)
	shareRepo.EXPECT().CountCreatedBefore(gomock.Any()).Return(1_000_000, nil)
	shareHolderRepo.EXPECT().CountAll().Return(5000, nil)
	shareHolderRepo.EXPECT().CountCreatedBefore(gomock.Any()).Return(4000, nil)
	shareRepo.EXPECT().AvgPrice().Return(25.5, nil)
	shareRepo.EXPECT().AvgPriceBefore(gomock.Any()).Return(30.0, nil)

	result, err := service.GetDashboardMetrics()

	assert.NoError(t, err)

	assert.Equal(t, "1.20M", result.TotalSharesOwned.Value)
	assert.Equal(t, 20.0, result.TotalSharesOwned.RawChange)
	assert.Equal(t, "20.0%", result.TotalSharesOwned.Change)
	assert.Equal(t, "increase", result.TotalSharesOwned.IncreaseType)

	assert.Equal(t, "5.0K", result.TotalShareholders.Value)
	assert.Equal(t, 25.0, result.TotalShareholders.RawChange)

	// Queda de preço vira variação em módulo com direção de queda
	assert.Equal(t, "$25.50", result.AvgSharePrice.Value)
	assert.Equal(t, -15.0, result.AvgSharePrice.RawChange)
	assert.Equal(t, "15.0%", result.AvgSharePrice.Change)
	assert.Equal(t, "decrease", result.AvgSharePrice.IncreaseType)

	// O quarto indicador repete o preço médio
	assert.Equal(t, result.AvgSharePrice, result.AvgSharePriceRepeat)
}

func TestService_GetDashboardMetrics_ErroDeRepositorio(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, shareHolderRepo, shareRepo, _, _ := newTestService(ctrl)

	shareRepo.EXPECT().CountAll().Return(0, errors.New("conexão recusada"))
	shareHolderRepo.EXPECT().CountAll().Return(5000, nil)
	shareHolderRepo.EXPECT().CountCreatedBefore(gomock.Any()).Return(4000, nil)
	shareRepo.EXPECT().AvgPrice().Return(25.5, nil)
	shareRepo.EXPECT().AvgPriceBefore(gomock.Any()).Return(30.0, nil)

	result, err := service.GetDashboardMetrics()

	assert.Nil(t, result)
	var apiErr *apiErrors.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apiErrors.ErrAggregationFailure, apiErr.Code)
}

func TestService_FiltroDeDatasInvalido(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _, _, _, _, _ := newTestService(ctrl)

	start := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	card, err := service.GetCampaignStatsCard(domain.DashboardFilter{StartDate: &start, EndDate: &end})

	assert.Nil(t, card)
	var apiErr *apiErrors.APIError
	assert.ErrorAs(t, err, &apiErr)
	assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
}
