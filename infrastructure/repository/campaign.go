package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/shareholder-campaign-api/infrastructure/database/postgres"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
)

const (
	campaignsTable = "campaigns c"
)

var campaignColumns = []string{
	"c.id", "c.title", "c.description", "c.status", "c.campaign_type",
	"c.campaign_details", "c.campaign_budget", "c.start_date", "c.end_date",
	"c.invoice_id", "c.deleted", "c.created_at",
}

type CampaignRepository interface {
	GetByID(id string) (*domain.Campaign, error)
	CountActive() (int, error)
	CountActiveCreatedBefore(moment time.Time) (int, error)
	ListActive() ([]*domain.Campaign, error)
	ListCreatedBetween(start, end time.Time, campaignType *domain.CampaignType) ([]*domain.Campaign, error)
	SumBudgetInPreviousWindow(start, end time.Time, campaignType *domain.CampaignType) (float64, error)
}

type campaignRepository struct {
	conn *postgres.Connection
}

func NewCampaignRepository(conn *postgres.Connection) CampaignRepository {
	return &campaignRepository{
		conn: conn,
	}
}

func (r *campaignRepository) GetByID(id string) (*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"c.id": id, "c.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	campaign, err := r.scanCampaign(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
	}

	return campaign, nil
}

func (r *campaignRepository) CountActive() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(campaignsTable).
		Where(squirrel.Eq{"c.deleted": false, "c.status": domain.CampaignStatusActive}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar campanhas ativas: %w", err)
	}

	return count, nil
}

func (r *campaignRepository) CountActiveCreatedBefore(moment time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(campaignsTable).
		Where(squirrel.Eq{"c.deleted": false, "c.status": domain.CampaignStatusActive}).
		Where(squirrel.Lt{"c.created_at": moment}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar campanhas ativas anteriores: %w", err)
	}

	return count, nil
}

func (r *campaignRepository) ListActive() ([]*domain.Campaign, error) {
	query, args, err := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"c.deleted": false, "c.status": domain.CampaignStatusActive}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryCampaigns(query, args)
}

func (r *campaignRepository) ListCreatedBetween(start, end time.Time, campaignType *domain.CampaignType) ([]*domain.Campaign, error) {
	builder := squirrel.
		Select(campaignColumns...).
		From(campaignsTable).
		Where(squirrel.Eq{"c.deleted": false}).
		Where(squirrel.GtOrEq{"c.created_at": start}).
		Where(squirrel.LtOrEq{"c.created_at": end})

	if campaignType != nil {
		builder = builder.Where(squirrel.Eq{"c.campaign_type": *campaignType})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryCampaigns(query, args)
}

// SumBudgetInPreviousWindow soma os orçamentos das campanhas criadas na
// janela, com limite superior exclusivo para não contar a fronteira duas vezes
func (r *campaignRepository) SumBudgetInPreviousWindow(start, end time.Time, campaignType *domain.CampaignType) (float64, error) {
	builder := squirrel.
		Select("COALESCE(SUM(c.campaign_budget), 0)").
		From(campaignsTable).
		Where(squirrel.Eq{"c.deleted": false}).
		Where(squirrel.GtOrEq{"c.created_at": start}).
		Where(squirrel.Lt{"c.created_at": end})

	if campaignType != nil {
		builder = builder.Where(squirrel.Eq{"c.campaign_type": *campaignType})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var total float64
	if err := r.conn.QueryRow(query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("erro ao somar orçamentos: %w", err)
	}

	return total, nil
}

func (r *campaignRepository) queryCampaigns(query string, args []interface{}) ([]*domain.Campaign, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	campaigns := make([]*domain.Campaign, 0)
	for rows.Next() {
		campaign, err := r.scanCampaign(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear campanha: %w", err)
		}
		campaigns = append(campaigns, campaign)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return campaigns, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *campaignRepository) scanCampaign(row rowScanner) (*domain.Campaign, error) {
	campaign := &domain.Campaign{}

	var detailsJSON []byte
	var description sql.NullString
	var startDate, endDate sql.NullTime
	var invoiceID sql.NullString

	err := row.Scan(
		&campaign.ID,
		&campaign.Title,
		&description,
		&campaign.Status,
		&campaign.CampaignType,
		&detailsJSON,
		&campaign.CampaignBudget,
		&startDate,
		&endDate,
		&invoiceID,
		&campaign.Deleted,
		&campaign.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	campaign.Description = description.String
	if startDate.Valid {
		campaign.StartDate = &startDate.Time
	}
	if endDate.Valid {
		campaign.EndDate = &endDate.Time
	}
	if invoiceID.Valid {
		campaign.InvoiceID = &invoiceID.String
	}

	if len(detailsJSON) > 0 {
		details := &domain.CampaignDetails{}
		if err := json.Unmarshal(detailsJSON, details); err != nil {
			return nil, fmt.Errorf("erro ao deserializar campaign_details: %w", err)
		}
		campaign.CampaignDetails = details
	}

	return campaign, nil
}
