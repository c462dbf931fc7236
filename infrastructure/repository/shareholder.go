package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/shareholder-campaign-api/infrastructure/database/postgres"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
)

const (
	shareholdersTable         = "shareholders sh"
	campaignShareholdersTable = "campaign_shareholders cs"
)

type ShareHolderRepository interface {
	ListCreatedBetween(start, end time.Time) ([]*domain.ShareHolder, error)
	CountCreatedBetween(start, end time.Time) (int, error)
	CountAll() (int, error)
	CountCreatedBefore(moment time.Time) (int, error)
	ListByCampaign(campaignID string) ([]*domain.ShareHolder, error)
	CountByCampaign(campaignID string) (int, error)
}

type shareHolderRepository struct {
	conn *postgres.Connection
}

func NewShareHolderRepository(conn *postgres.Connection) ShareHolderRepository {
	return &shareHolderRepository{
		conn: conn,
	}
}

// ListCreatedBetween devolve os acionistas criados na janela, já com as
// linhas de ações e o nome da corretora de cada uma
func (r *shareHolderRepository) ListCreatedBetween(start, end time.Time) ([]*domain.ShareHolder, error) {
	query, args, err := squirrel.
		Select(
			"sh.id", "sh.name", "sh.country", "sh.region", "sh.age",
			"sh.gender", "sh.income", "sh.created_at",
		).
		From(shareholdersTable).
		Where(squirrel.Eq{"sh.deleted": false}).
		Where(squirrel.GtOrEq{"sh.created_at": start}).
		Where(squirrel.LtOrEq{"sh.created_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	shareholders, err := r.queryShareholders(query, args)
	if err != nil {
		return nil, err
	}

	return r.attachShares(shareholders)
}

func (r *shareHolderRepository) CountCreatedBetween(start, end time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(shareholdersTable).
		Where(squirrel.Eq{"sh.deleted": false}).
		Where(squirrel.GtOrEq{"sh.created_at": start}).
		Where(squirrel.Lt{"sh.created_at": end}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar acionistas: %w", err)
	}

	return count, nil
}

func (r *shareHolderRepository) CountAll() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(shareholdersTable).
		Where(squirrel.Eq{"sh.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar acionistas: %w", err)
	}

	return count, nil
}

func (r *shareHolderRepository) CountCreatedBefore(moment time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(shareholdersTable).
		Where(squirrel.Eq{"sh.deleted": false}).
		Where(squirrel.Lt{"sh.created_at": moment}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar acionistas anteriores: %w", err)
	}

	return count, nil
}

// ListByCampaign devolve os acionistas vinculados à campanha com suas ações
func (r *shareHolderRepository) ListByCampaign(campaignID string) ([]*domain.ShareHolder, error) {
	query, args, err := squirrel.
		Select(
			"sh.id", "sh.name", "sh.country", "sh.region", "sh.age",
			"sh.gender", "sh.income", "sh.created_at",
		).
		From(shareholdersTable).
		Join("campaign_shareholders cs ON cs.shareholder_id = sh.id").
		Where(squirrel.Eq{"cs.campaign_id": campaignID, "sh.deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	shareholders, err := r.queryShareholders(query, args)
	if err != nil {
		return nil, err
	}

	return r.attachShares(shareholders)
}

func (r *shareHolderRepository) CountByCampaign(campaignID string) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(shareholdersTable).
		Join("campaign_shareholders cs ON cs.shareholder_id = sh.id").
		Where(squirrel.Eq{"cs.campaign_id": campaignID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar acionistas da campanha: %w", err)
	}

	return count, nil
}

func (r *shareHolderRepository) queryShareholders(query string, args []interface{}) ([]*domain.ShareHolder, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	shareholders := make([]*domain.ShareHolder, 0)
	for rows.Next() {
		shareholder := &domain.ShareHolder{}
		err := rows.Scan(
			&shareholder.ID,
			&shareholder.Name,
			&shareholder.Country,
			&shareholder.Region,
			&shareholder.Age,
			&shareholder.Gender,
			&shareholder.Income,
			&shareholder.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear acionista: %w", err)
		}
		shareholders = append(shareholders, shareholder)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return shareholders, nil
}

// attachShares carrega as ações dos acionistas em uma única query e as
// distribui por dono
func (r *shareHolderRepository) attachShares(shareholders []*domain.ShareHolder) ([]*domain.ShareHolder, error) {
	if len(shareholders) == 0 {
		return shareholders, nil
	}

	ids := make([]string, 0, len(shareholders))
	byID := make(map[string]*domain.ShareHolder, len(shareholders))
	for _, shareholder := range shareholders {
		ids = append(ids, shareholder.ID)
		byID[shareholder.ID] = shareholder
	}

	query, args, err := squirrel.
		Select(
			"s.id", "s.shareholder_id", "s.broker_id", "s.company_id",
			"s.price", "b.name", "s.created_at",
		).
		From("shares s").
		Join("brokers b ON b.id = s.broker_id").
		Where(squirrel.Eq{"s.shareholder_id": ids}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		share := domain.Share{}
		err := rows.Scan(
			&share.ID,
			&share.ShareHolderID,
			&share.BrokerID,
			&share.CompanyID,
			&share.Price,
			&share.BrokerName,
			&share.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear ação: %w", err)
		}

		if owner, ok := byID[share.ShareHolderID]; ok {
			owner.Shares = append(owner.Shares, share)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return shareholders, nil
}
