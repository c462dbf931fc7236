package domain

import "time"

type InvoiceStatus string

const (
	InvoiceStatusPending   InvoiceStatus = "PENDING"
	InvoiceStatusPaid      InvoiceStatus = "PAID"
	InvoiceStatusCancelled InvoiceStatus = "CANCELLED"
	InvoiceStatusOverdue   InvoiceStatus = "OVERDUE"
	InvoiceStatusDue       InvoiceStatus = "DUE"
)

// ValidInvoiceStatus informa se o valor corresponde a um status de fatura
func ValidInvoiceStatus(value string) bool {
	switch InvoiceStatus(value) {
	case InvoiceStatusPending, InvoiceStatusPaid, InvoiceStatusCancelled,
		InvoiceStatusOverdue, InvoiceStatusDue:
		return true
	}
	return false
}

// Invoice é a fatura de uma campanha. Cada campanha admite no máximo uma
// fatura ativa.
type Invoice struct {
	ID                      string            `json:"id"`
	CampaignID              string            `json:"campaignId"`
	NotificationCost        float64           `json:"notificationCost"`
	MicillenousCost         float64           `json:"micillenousCost"`
	AudienceCost            float64           `json:"audienceCost"`
	ReachCost               float64           `json:"reachCost"`
	TaxRate                 float64           `json:"taxRate"`
	CampaignTransactionCost float64           `json:"campaignTransactionCost"`
	BogoDiscount            float64           `json:"bogoDiscount"`
	Status                  InvoiceStatus     `json:"status"`
	Notes                   *string           `json:"notes,omitempty"`
	Deleted                 bool              `json:"-"`
	CreatedAt               time.Time         `json:"createdAt"`
	UpdatedAt               time.Time         `json:"updatedAt"`
	BrokerBreakdowns        []BrokerBreakdown `json:"brokerBreakdowns,omitempty"`
}

type BrokerBreakdown struct {
	ID            string  `json:"id"`
	InvoiceID     string  `json:"-"`
	BrokerID      string  `json:"brokerId"`
	BrokerName    string  `json:"brokerName"`
	ReachCost     float64 `json:"reachCost"`
	EngagementFee float64 `json:"engagementFee"`
}

// CreateInvoiceInput carrega os custos informados na emissão. Os campos
// zerados assumem os padrões do negócio no usecase.
type CreateInvoiceInput struct {
	CampaignID              string                       `json:"campaignId"`
	NotificationCost        float64                      `json:"notificationCost"`
	MicillenousCost         float64                      `json:"micillenousCost"`
	AudienceCost            float64                      `json:"audienceCost"`
	ReachCost               float64                      `json:"reachCost"`
	TaxRate                 *float64                     `json:"taxRate,omitempty"`
	CampaignTransactionCost float64                      `json:"campaignTransactionCost"`
	BogoDiscount            float64                      `json:"bogoDiscount"`
	Status                  string                       `json:"status,omitempty"`
	Notes                   *string                      `json:"notes,omitempty"`
	BrokerBreakdowns        []CreateBrokerBreakdownInput `json:"brokerBreakdowns,omitempty"`
}

type CreateBrokerBreakdownInput struct {
	BrokerID      string  `json:"brokerId"`
	ReachCost     float64 `json:"reachCost"`
	EngagementFee float64 `json:"engagementFee"`
}

// InvoiceCostBreakdown separa o custo de audiência do restante do subtotal
type InvoiceCostBreakdown struct {
	AudienceCost float64 `json:"audienceCost"`
	Reach        float64 `json:"reach"`
	TotalCost    float64 `json:"totalCost"`
}

type InvoiceTotalDue struct {
	Amount                  float64 `json:"amount"`
	Tax                     float64 `json:"tax"`
	ReachCost               float64 `json:"reachCost"`
	CampaignTransactionCost float64 `json:"campaignTransactionCost"`
	BogoDiscount            float64 `json:"bogoDiscount"`
}

type BrokerBreakdownView struct {
	ID            string  `json:"id"`
	BrokerID      string  `json:"brokerId"`
	BrokerName    string  `json:"brokerName"`
	ReachCost     float64 `json:"reachCost"`
	EngagementFee float64 `json:"engagementFee"`
	Total         float64 `json:"total"`
}

// InvoiceView é a fatura com os totais derivados já calculados, no formato
// devolvido pela API
type InvoiceView struct {
	ID                      string                `json:"id"`
	NotificationCost        float64               `json:"notificationCost"`
	MicillenousCost         float64               `json:"micillenousCost"`
	AudienceCost            float64               `json:"audienceCost"`
	ReachCost               float64               `json:"reachCost"`
	CampaignTransactionCost float64               `json:"campaignTransactionCost"`
	TaxRate                 float64               `json:"taxRate"`
	TaxAmount               float64               `json:"taxAmount"`
	BogoDiscount            float64               `json:"bogoDiscount"`
	Status                  InvoiceStatus         `json:"status"`
	Subtotal                float64               `json:"subtotal"`
	TotalCost               float64               `json:"totalCost"`
	CostBreakdown           InvoiceCostBreakdown  `json:"costBreakdown"`
	TotalDue                InvoiceTotalDue       `json:"totalDue"`
	CampaignID              string                `json:"campaignId"`
	CampaignTitle           string                `json:"campaignTitle,omitempty"`
	CampaignStatus          CampaignStatus        `json:"campaignStatus,omitempty"`
	CampaignType            CampaignType          `json:"campaignType,omitempty"`
	CampaignStartDate       *time.Time            `json:"campaignStartDate,omitempty"`
	CampaignEndDate         *time.Time            `json:"campaignEndDate,omitempty"`
	BrokerBreakdowns        []BrokerBreakdownView `json:"brokerBreakdowns"`
	CreatedAt               time.Time             `json:"createdAt"`
	UpdatedAt               *time.Time            `json:"updatedAt,omitempty"`
}

// Totals calcula subtotal, imposto e total devido da fatura. O desconto BOGO
// é abatido depois do imposto.
func (i *Invoice) Totals() (subtotal, taxAmount, totalCost float64) {
	subtotal = i.NotificationCost + i.MicillenousCost + i.AudienceCost +
		i.ReachCost + i.CampaignTransactionCost
	taxAmount = subtotal * i.TaxRate
	totalCost = subtotal + taxAmount - i.BogoDiscount
	return subtotal, taxAmount, totalCost
}
