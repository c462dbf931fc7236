package domain

import "time"

// Eventos de engajamento gravados pelos endpoints de ingestão. Todos usam
// soft delete e carimbo de criação, que é a base de todos os filtros de
// janela.

type CampaignClick struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaignId"`
	Deleted    bool      `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CampaignEmail struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaignId"`
	IsOpened   bool      `json:"isOpened"`
	Deleted    bool      `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CampaignOfferRedeemed struct {
	ID            string       `json:"id"`
	CampaignID    string       `json:"campaignId"`
	ShareHolderID string       `json:"shareHolderId"`
	ShareHolder   *ShareHolder `json:"shareHolder,omitempty"`
	Deleted       bool         `json:"-"`
	CreatedAt     time.Time    `json:"createdAt"`
}

type CampaignRewardClaim struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaignId"`
	BrokerID   string    `json:"brokerId"`
	Broker     *Broker   `json:"broker,omitempty"`
	Deleted    bool      `json:"-"`
	CreatedAt  time.Time `json:"createdAt"`
}

// RedemptionSpend é um resgate com o orçamento da campanha associada. O
// gasto do acionista é contabilizado como o orçamento inteiro da campanha a
// cada resgate.
type RedemptionSpend struct {
	CreatedAt      time.Time `json:"createdAt"`
	CampaignBudget float64   `json:"campaignBudget"`
}

// Entradas dos endpoints de ingestão

type CreateCampaignClickInput struct {
	CampaignID string `json:"campaignId"`
}

type CreateCampaignEmailInput struct {
	CampaignID string `json:"campaignId"`
	IsOpened   bool   `json:"isOpened"`
}

type CreateCampaignOfferRedeemedInput struct {
	CampaignID string `json:"campaignId"`
	UserID     string `json:"userId"`
}

type CreateCampaignRewardClaimInput struct {
	CampaignID string `json:"campaignId"`
	UserID     string `json:"userId"`
}
