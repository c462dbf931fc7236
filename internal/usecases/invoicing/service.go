package invoicing

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shareholder-campaign-api/infrastructure/repository"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	"github.com/vfg2006/shareholder-campaign-api/pkg/apiErrors"
)

// Alíquota aplicada quando a emissão não informa uma
const defaultTaxRate = 0.05

// Service implementa a interface Invoicer
type Service struct {
	invoiceRepo  repository.InvoiceRepository
	campaignRepo repository.CampaignRepository
}

func NewService(invoiceRepo repository.InvoiceRepository, campaignRepo repository.CampaignRepository) Invoicer {
	return &Service{
		invoiceRepo:  invoiceRepo,
		campaignRepo: campaignRepo,
	}
}

// CreateInvoice emite a fatura de uma campanha. Cada campanha admite uma
// única fatura, e a emissão vincula o id da fatura à campanha.
func (s *Service) CreateInvoice(input domain.CreateInvoiceInput) (*domain.InvoiceView, error) {
	const op = "create_invoice"

	campaign, err := s.campaignRepo.GetByID(input.CampaignID)
	if err != nil {
		return nil, s.aggErr(op, input.CampaignID, err)
	}
	if campaign == nil {
		return nil, apiErrors.NewNotFound(op, "campanha", input.CampaignID)
	}

	existing, err := s.invoiceRepo.GetByCampaignID(input.CampaignID)
	if err != nil {
		return nil, s.aggErr(op, input.CampaignID, err)
	}
	if existing != nil {
		return nil, apiErrors.NewConflict(op, "já existe uma fatura para esta campanha", input.CampaignID)
	}

	status := domain.InvoiceStatusPending
	if input.Status != "" {
		if !domain.ValidInvoiceStatus(input.Status) {
			return nil, apiErrors.NewValidation(fmt.Sprintf("status de fatura inválido: %s", input.Status))
		}
		status = domain.InvoiceStatus(input.Status)
	}

	taxRate := defaultTaxRate
	if input.TaxRate != nil {
		taxRate = *input.TaxRate
	}

	breakdowns := make([]domain.BrokerBreakdown, 0, len(input.BrokerBreakdowns))
	for _, breakdown := range input.BrokerBreakdowns {
		breakdowns = append(breakdowns, domain.BrokerBreakdown{
			BrokerID:      breakdown.BrokerID,
			ReachCost:     breakdown.ReachCost,
			EngagementFee: breakdown.EngagementFee,
		})
	}

	invoice := &domain.Invoice{
		CampaignID:              input.CampaignID,
		NotificationCost:        input.NotificationCost,
		MicillenousCost:         input.MicillenousCost,
		AudienceCost:            input.AudienceCost,
		ReachCost:               input.ReachCost,
		TaxRate:                 taxRate,
		CampaignTransactionCost: input.CampaignTransactionCost,
		BogoDiscount:            input.BogoDiscount,
		Status:                  status,
		Notes:                   input.Notes,
		BrokerBreakdowns:        breakdowns,
	}

	if err := s.invoiceRepo.Create(invoice); err != nil {
		logrus.WithError(err).WithField("campaign_id", input.CampaignID).Error("Erro ao emitir fatura")
		return nil, s.aggErr(op, input.CampaignID, err)
	}

	// Recarrega para devolver os nomes das corretoras dos detalhamentos
	created, err := s.invoiceRepo.GetByID(invoice.ID)
	if err != nil {
		return nil, s.aggErr(op, input.CampaignID, err)
	}
	if created == nil {
		created = invoice
	}

	return buildView(created, campaign), nil
}

// GetInvoice busca uma fatura pelo id com os totais derivados
func (s *Service) GetInvoice(id string) (*domain.InvoiceView, error) {
	const op = "get_invoice"

	invoice, err := s.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, s.aggErr(op, id, err)
	}
	if invoice == nil {
		return nil, apiErrors.NewNotFound(op, "fatura", id)
	}

	return s.viewWithCampaign(op, invoice)
}

// GetInvoiceByCampaign busca a fatura vinculada a uma campanha
func (s *Service) GetInvoiceByCampaign(campaignID string) (*domain.InvoiceView, error) {
	const op = "get_invoice_by_campaign"

	invoice, err := s.invoiceRepo.GetByCampaignID(campaignID)
	if err != nil {
		return nil, s.aggErr(op, campaignID, err)
	}
	if invoice == nil {
		return nil, apiErrors.NewNotFound(op, "fatura da campanha", campaignID)
	}

	return s.viewWithCampaign(op, invoice)
}

// ListInvoices lista as faturas não excluídas, opcionalmente por status
func (s *Service) ListInvoices(status *domain.InvoiceStatus) ([]*domain.InvoiceView, error) {
	const op = "list_invoices"

	invoices, err := s.invoiceRepo.ListAll(status)
	if err != nil {
		return nil, s.aggErr(op, "", err)
	}

	views := make([]*domain.InvoiceView, 0, len(invoices))
	for _, invoice := range invoices {
		view, err := s.viewWithCampaign(op, invoice)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}

	return views, nil
}

// UpdateInvoiceStatus muda o status de uma fatura existente
func (s *Service) UpdateInvoiceStatus(id, status string) (*domain.InvoiceView, error) {
	const op = "update_invoice_status"

	if !domain.ValidInvoiceStatus(status) {
		return nil, apiErrors.NewValidation(fmt.Sprintf("status de fatura inválido: %s", status))
	}

	invoice, err := s.invoiceRepo.GetByID(id)
	if err != nil {
		return nil, s.aggErr(op, id, err)
	}
	if invoice == nil {
		return nil, apiErrors.NewNotFound(op, "fatura", id)
	}

	if err := s.invoiceRepo.UpdateStatus(id, domain.InvoiceStatus(status)); err != nil {
		logrus.WithError(err).WithField("invoice_id", id).Error("Erro ao atualizar status da fatura")
		return nil, s.aggErr(op, id, err)
	}

	invoice.Status = domain.InvoiceStatus(status)

	return s.viewWithCampaign(op, invoice)
}

// DeleteInvoice marca a fatura como excluída sem removê-la do banco
func (s *Service) DeleteInvoice(id string) error {
	const op = "delete_invoice"

	invoice, err := s.invoiceRepo.GetByID(id)
	if err != nil {
		return s.aggErr(op, id, err)
	}
	if invoice == nil {
		return apiErrors.NewNotFound(op, "fatura", id)
	}

	if err := s.invoiceRepo.SoftDelete(id); err != nil {
		logrus.WithError(err).WithField("invoice_id", id).Error("Erro ao excluir fatura")
		return s.aggErr(op, id, err)
	}

	return nil
}

func (s *Service) viewWithCampaign(op string, invoice *domain.Invoice) (*domain.InvoiceView, error) {
	campaign, err := s.campaignRepo.GetByID(invoice.CampaignID)
	if err != nil {
		return nil, s.aggErr(op, invoice.CampaignID, err)
	}

	return buildView(invoice, campaign), nil
}

func (s *Service) aggErr(operation, entityID string, err error) error {
	logrus.WithError(err).WithFields(logrus.Fields{
		"operation": operation,
		"entity_id": entityID,
	}).Error("Erro ao consultar faturas")

	return apiErrors.NewAggregation(operation, entityID, err)
}

// buildView deriva subtotal, imposto e total devido da fatura e anexa os
// dados da campanha quando disponíveis
func buildView(invoice *domain.Invoice, campaign *domain.Campaign) *domain.InvoiceView {
	subtotal, taxAmount, totalCost := invoice.Totals()

	breakdowns := make([]domain.BrokerBreakdownView, 0, len(invoice.BrokerBreakdowns))
	for _, breakdown := range invoice.BrokerBreakdowns {
		breakdowns = append(breakdowns, domain.BrokerBreakdownView{
			ID:            breakdown.ID,
			BrokerID:      breakdown.BrokerID,
			BrokerName:    breakdown.BrokerName,
			ReachCost:     breakdown.ReachCost,
			EngagementFee: breakdown.EngagementFee,
			Total:         breakdown.ReachCost + breakdown.EngagementFee,
		})
	}

	view := &domain.InvoiceView{
		ID:                      invoice.ID,
		NotificationCost:        invoice.NotificationCost,
		MicillenousCost:         invoice.MicillenousCost,
		AudienceCost:            invoice.AudienceCost,
		ReachCost:               invoice.ReachCost,
		CampaignTransactionCost: invoice.CampaignTransactionCost,
		TaxRate:                 invoice.TaxRate,
		TaxAmount:               taxAmount,
		BogoDiscount:            invoice.BogoDiscount,
		Status:                  invoice.Status,
		Subtotal:                subtotal,
		TotalCost:               totalCost,
		CostBreakdown: domain.InvoiceCostBreakdown{
			AudienceCost: invoice.AudienceCost,
			Reach:        subtotal - invoice.AudienceCost,
			TotalCost:    totalCost,
		},
		TotalDue: domain.InvoiceTotalDue{
			Amount:                  totalCost,
			Tax:                     taxAmount,
			ReachCost:               invoice.ReachCost,
			CampaignTransactionCost: invoice.CampaignTransactionCost,
			BogoDiscount:            invoice.BogoDiscount,
		},
		CampaignID:       invoice.CampaignID,
		BrokerBreakdowns: breakdowns,
		CreatedAt:        invoice.CreatedAt,
	}

	if !invoice.UpdatedAt.IsZero() {
		updatedAt := invoice.UpdatedAt
		view.UpdatedAt = &updatedAt
	}

	if campaign != nil {
		view.CampaignTitle = campaign.Title
		view.CampaignStatus = campaign.Status
		view.CampaignType = campaign.CampaignType
		view.CampaignStartDate = campaign.StartDate
		view.CampaignEndDate = campaign.EndDate
	}

	return view
}
