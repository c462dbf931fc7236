package invoicing

import (
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
)

// Invoicer expõe a emissão e a consulta de faturas de campanhas
type Invoicer interface {
	CreateInvoice(input domain.CreateInvoiceInput) (*domain.InvoiceView, error)
	GetInvoice(id string) (*domain.InvoiceView, error)
	GetInvoiceByCampaign(campaignID string) (*domain.InvoiceView, error)
	ListInvoices(status *domain.InvoiceStatus) ([]*domain.InvoiceView, error)
	UpdateInvoiceStatus(id, status string) (*domain.InvoiceView, error)
	DeleteInvoice(id string) error
}
