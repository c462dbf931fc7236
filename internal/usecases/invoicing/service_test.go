package invoicing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/shareholder-campaign-api/infrastructure/repository/mocks"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	"github.com/vfg2006/shareholder-campaign-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newTestService(ctrl *gomock.Controller) (*Service, *mocks.MockInvoiceRepository, *mocks.MockCampaignRepository) {
	invoiceRepo := mocks.NewMockInvoiceRepository(ctrl)
	campaignRepo := mocks.NewMockCampaignRepository(ctrl)

	service := &Service{
		invoiceRepo:  invoiceRepo,
		campaignRepo: campaignRepo,
	}

	return service, invoiceRepo, campaignRepo
}

func TestService_CreateInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, invoiceRepo, campaignRepo := newTestService(ctrl)

	campaign := &domain.Campaign{ID: "CMP001", Title: "Campanha de Verão", Status: domain.CampaignStatusActive}

	tests := []struct {
		name     string
		input    domain.CreateInvoiceInput
		setup    func()
		validate func(t *testing.T, view *domain.InvoiceView, err error)
	}{
		{
			name: "Emite a fatura com os padrões de status e alíquota",
			input: domain.CreateInvoiceInput{
				CampaignID:       "CMP001",
				NotificationCost: 1000,
				MicillenousCost:  200,
				AudienceCost:     300,
				ReachCost:        400,
				BrokerBreakdowns: []domain.CreateBrokerBreakdownInput{
					{BrokerID: "BRK001", ReachCost: 250, EngagementFee: 50},
				},
			},
			setup: func() {
				campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)
				invoiceRepo.EXPECT().GetByCampaignID("CMP001").Return(nil, nil)
				invoiceRepo.EXPECT().
					Create(gomock.Any()).
					DoAndReturn(func(invoice *domain.Invoice) error {
						assert.Equal(t, domain.InvoiceStatusPending, invoice.Status)
						assert.Equal(t, 0.05, invoice.TaxRate)
						assert.Len(t, invoice.BrokerBreakdowns, 1)

						invoice.ID = "INV001"
						return nil
					})
				invoiceRepo.EXPECT().
					GetByID("INV001").
					Return(&domain.Invoice{
						ID:               "INV001",
						CampaignID:       "CMP001",
						NotificationCost: 1000,
						MicillenousCost:  200,
						AudienceCost:     300,
						ReachCost:        400,
						TaxRate:          0.05,
						Status:           domain.InvoiceStatusPending,
						BrokerBreakdowns: []domain.BrokerBreakdown{
							{ID: "BRD001", BrokerID: "BRK001", BrokerName: "XP Investimentos", ReachCost: 250, EngagementFee: 50},
						},
					}, nil)
			},
			validate: func(t *testing.T, view *domain.InvoiceView, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "INV001", view.ID)

				// subtotal 1900, imposto 95, total 1995
				assert.Equal(t, 1900.0, view.Subtotal)
				assert.Equal(t, 95.0, view.TaxAmount)
				assert.Equal(t, 1995.0, view.TotalCost)
				assert.Equal(t, 300.0, view.CostBreakdown.AudienceCost)
				assert.Equal(t, 1600.0, view.CostBreakdown.Reach)
				assert.Equal(t, 1995.0, view.TotalDue.Amount)

				assert.Len(t, view.BrokerBreakdowns, 1)
				assert.Equal(t, "XP Investimentos", view.BrokerBreakdowns[0].BrokerName)
				assert.Equal(t, 300.0, view.BrokerBreakdowns[0].Total)

				assert.Equal(t, "Campanha de Verão", view.CampaignTitle)
			},
		},
		{
			name:  "Campanha inexistente devolve recurso não encontrado",
			input: domain.CreateInvoiceInput{CampaignID: "CMP999"},
			setup: func() {
				campaignRepo.EXPECT().GetByID("CMP999").Return(nil, nil)
			},
			validate: func(t *testing.T, view *domain.InvoiceView, err error) {
				assert.Nil(t, view)
				var apiErr *apiErrors.APIError
				assert.ErrorAs(t, err, &apiErr)
				assert.Equal(t, apiErrors.ErrResourceNotFound, apiErr.Code)
			},
		},
		{
			name:  "Campanha já faturada devolve conflito",
			input: domain.CreateInvoiceInput{CampaignID: "CMP001"},
			setup: func() {
				campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)
				invoiceRepo.EXPECT().
					GetByCampaignID("CMP001").
					Return(&domain.Invoice{ID: "INV001", CampaignID: "CMP001"}, nil)
			},
			validate: func(t *testing.T, view *domain.InvoiceView, err error) {
				assert.Nil(t, view)
				var apiErr *apiErrors.APIError
				assert.ErrorAs(t, err, &apiErr)
				assert.Equal(t, apiErrors.ErrResourceConflict, apiErr.Code)
			},
		},
		{
			name:  "Status desconhecido devolve erro de validação",
			input: domain.CreateInvoiceInput{CampaignID: "CMP001", Status: "ARCHIVED"},
			setup: func() {
				campaignRepo.EXPECT().GetByID("CMP001").Return(campaign, nil)
				invoiceRepo.EXPECT().GetByCampaignID("CMP001").Return(nil, nil)
			},
			validate: func(t *testing.T, view *domain.InvoiceView, err error) {
				assert.Nil(t, view)
				var apiErr *apiErrors.APIError
				assert.ErrorAs(t, err, &apiErr)
				assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			view, err := service.CreateInvoice(tt.input)
			tt.validate(t, view, err)
		})
	}
}

func TestService_GetInvoiceByCampaign(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, invoiceRepo, campaignRepo := newTestService(ctrl)

	t.Run("Fatura existente vem com os totais derivados", func(t *testing.T) {
		invoiceRepo.EXPECT().
			GetByCampaignID("CMP001").
			Return(&domain.Invoice{
				ID:           "INV001",
				CampaignID:   "CMP001",
				AudienceCost: 500,
				ReachCost:    500,
				TaxRate:      0.1,
				BogoDiscount: 100,
				Status:       domain.InvoiceStatusPaid,
			}, nil)
		campaignRepo.EXPECT().
			GetByID("CMP001").
			Return(&domain.Campaign{ID: "CMP001", Title: "Campanha"}, nil)

		view, err := service.GetInvoiceByCampaign("CMP001")

		assert.NoError(t, err)
		assert.Equal(t, 1000.0, view.Subtotal)
		assert.Equal(t, 100.0, view.TaxAmount)
		assert.Equal(t, 1000.0, view.TotalCost)
		assert.Equal(t, 100.0, view.TotalDue.BogoDiscount)
	})

	t.Run("Campanha sem fatura devolve recurso não encontrado", func(t *testing.T) {
		invoiceRepo.EXPECT().GetByCampaignID("CMP002").Return(nil, nil)

		view, err := service.GetInvoiceByCampaign("CMP002")

		assert.Nil(t, view)
		var apiErr *apiErrors.APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, apiErrors.ErrResourceNotFound, apiErr.Code)
	})
}

func TestService_ListInvoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, invoiceRepo, campaignRepo := newTestService(ctrl)

	status := domain.InvoiceStatusPaid

	invoiceRepo.EXPECT().
		ListAll(&status).
		Return([]*domain.Invoice{
			{ID: "INV001", CampaignID: "CMP001", ReachCost: 100, Status: domain.InvoiceStatusPaid},
			{ID: "INV002", CampaignID: "CMP002", ReachCost: 200, Status: domain.InvoiceStatusPaid},
		}, nil)
	campaignRepo.EXPECT().GetByID("CMP001").Return(&domain.Campaign{ID: "CMP001", Title: "A"}, nil)
	campaignRepo.EXPECT().GetByID("CMP002").Return(&domain.Campaign{ID: "CMP002", Title: "B"}, nil)

	views, err := service.ListInvoices(&status)

	assert.NoError(t, err)
	assert.Len(t, views, 2)
	assert.Equal(t, "A", views[0].CampaignTitle)
	assert.Equal(t, "B", views[1].CampaignTitle)
}

func TestService_UpdateInvoiceStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, invoiceRepo, campaignRepo := newTestService(ctrl)

	tests := []struct {
		name     string
		status   string
		setup    func()
		validate func(t *testing.T, view *domain.InvoiceView, err error)
	}{
		{
			name:   "Status válido é persistido",
			status: "PAID",
			setup: func() {
				invoiceRepo.EXPECT().
					GetByID("INV001").
					Return(&domain.Invoice{ID: "INV001", CampaignID: "CMP001", Status: domain.InvoiceStatusPending}, nil)
				invoiceRepo.EXPECT().UpdateStatus("INV001", domain.InvoiceStatusPaid).Return(nil)
				campaignRepo.EXPECT().GetByID("CMP001").Return(&domain.Campaign{ID: "CMP001"}, nil)
			},
			validate: func(t *testing.T, view *domain.InvoiceView, err error) {
				assert.NoError(t, err)
				assert.Equal(t, domain.InvoiceStatusPaid, view.Status)
			},
		},
		{
			name:   "Status desconhecido devolve erro de validação",
			status: "ARCHIVED",
			setup:  func() {},
			validate: func(t *testing.T, view *domain.InvoiceView, err error) {
				assert.Nil(t, view)
				var apiErr *apiErrors.APIError
				assert.ErrorAs(t, err, &apiErr)
				assert.Equal(t, apiErrors.ErrInvalidRequest, apiErr.Code)
			},
		},
		{
			name:   "Fatura inexistente devolve recurso não encontrado",
			status: "PAID",
			setup: func() {
				invoiceRepo.EXPECT().GetByID("INV001").Return(nil, nil)
			},
			validate: func(t *testing.T, view *domain.InvoiceView, err error) {
				assert.Nil(t, view)
				var apiErr *apiErrors.APIError
				assert.ErrorAs(t, err, &apiErr)
				assert.Equal(t, apiErrors.ErrResourceNotFound, apiErr.Code)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			view, err := service.UpdateInvoiceStatus("INV001", tt.status)
			tt.validate(t, view, err)
		})
	}
}

func TestService_DeleteInvoice(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, invoiceRepo, _ := newTestService(ctrl)

	t.Run("Fatura existente é marcada como excluída", func(t *testing.T) {
		invoiceRepo.EXPECT().
			GetByID("INV001").
			Return(&domain.Invoice{ID: "INV001", CampaignID: "CMP001"}, nil)
		invoiceRepo.EXPECT().SoftDelete("INV001").Return(nil)

		assert.NoError(t, service.DeleteInvoice("INV001"))
	})

	t.Run("Falha de banco vira erro de agregação", func(t *testing.T) {
		invoiceRepo.EXPECT().GetByID("INV001").Return(nil, errors.New("conexão recusada"))

		err := service.DeleteInvoice("INV001")

		var apiErr *apiErrors.APIError
		assert.ErrorAs(t, err, &apiErr)
		assert.Equal(t, apiErrors.ErrAggregationFailure, apiErr.Code)
	})
}
