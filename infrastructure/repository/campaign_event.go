package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/shareholder-campaign-api/infrastructure/database/postgres"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	"github.com/vfg2006/shareholder-campaign-api/pkg/utils"
)

const (
	clicksTable  = "campaign_clicks cc"
	emailsTable  = "campaign_emails ce"
	offersTable  = "campaign_offers_redeemed co"
	rewardsTable = "campaign_reward_claims cr"
)

// engagementTimesQuery une os carimbos de clique, e-mail aberto e resgate de
// uma campanha a partir de uma data
const engagementTimesQuery = `
	SELECT created_at FROM campaign_clicks
	WHERE campaign_id = $1 AND deleted = false AND created_at >= $2
	UNION ALL
	SELECT created_at FROM campaign_emails
	WHERE campaign_id = $1 AND is_opened = TRUE AND deleted = false AND created_at >= $2
	UNION ALL
	SELECT created_at FROM campaign_offers_redeemed
	WHERE campaign_id = $1 AND deleted = false AND created_at >= $2
`

type CampaignEventRepository interface {
	CreateClick(campaignID string) (*domain.CampaignClick, error)
	CreateEmail(campaignID string, isOpened bool) (*domain.CampaignEmail, error)
	CreateOfferRedeemed(campaignID, shareHolderID string) (*domain.CampaignOfferRedeemed, error)
	CreateRewardClaim(campaignID, brokerID string) (*domain.CampaignRewardClaim, error)

	CountClicks(campaignID string, since *time.Time) (int, error)
	ListClicks(campaignID string, since *time.Time) ([]domain.ClickRecord, error)
	CountClicksForCampaigns(campaignIDs []string, start, end time.Time) (int, error)

	CountEmails(campaignID string, since *time.Time, openedOnly bool) (int, error)
	ListEmails(campaignID string, since *time.Time) ([]domain.EmailRecord, error)

	CountOffers(campaignID string, since *time.Time) (int, error)
	ListOffers(campaignID string, since *time.Time) ([]domain.CampaignOfferRedeemed, error)
	CountOffersForCampaigns(campaignIDs []string, start, end time.Time) (int, error)
	ListRedemptionSpends(start, end time.Time, campaignID *string, campaignType *domain.CampaignType) ([]domain.RedemptionSpend, error)
	ListRedemptionSpendsInPreviousWindow(start, end time.Time, campaignID *string, campaignType *domain.CampaignType) ([]domain.RedemptionSpend, error)

	CountRewards(campaignID string) (int, error)
	ListRewards(campaignID string, limit, offset int) ([]domain.CampaignRewardClaim, error)

	ListEngagementTimes(campaignID string, since time.Time) ([]time.Time, error)
}

type campaignEventRepository struct {
	conn *postgres.Connection
}

func NewCampaignEventRepository(conn *postgres.Connection) CampaignEventRepository {
	return &campaignEventRepository{
		conn: conn,
	}
}

func (r *campaignEventRepository) CreateClick(campaignID string) (*domain.CampaignClick, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id: %w", err)
	}

	query, args, err := squirrel.
		Insert("campaign_clicks").
		Columns("id", "campaign_id").
		Values(id, campaignID).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	click := &domain.CampaignClick{ID: id, CampaignID: campaignID}
	if err := r.conn.QueryRow(query, args...).Scan(&click.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao gravar clique: %w", err)
	}

	return click, nil
}

func (r *campaignEventRepository) CreateEmail(campaignID string, isOpened bool) (*domain.CampaignEmail, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id: %w", err)
	}

	query, args, err := squirrel.
		Insert("campaign_emails").
		Columns("id", "campaign_id", "is_opened").
		Values(id, campaignID, isOpened).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	email := &domain.CampaignEmail{ID: id, CampaignID: campaignID, IsOpened: isOpened}
	if err := r.conn.QueryRow(query, args...).Scan(&email.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao gravar e-mail: %w", err)
	}

	return email, nil
}

func (r *campaignEventRepository) CreateOfferRedeemed(campaignID, shareHolderID string) (*domain.CampaignOfferRedeemed, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id: %w", err)
	}

	query, args, err := squirrel.
		Insert("campaign_offers_redeemed").
		Columns("id", "campaign_id", "shareholder_id").
		Values(id, campaignID, shareHolderID).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	offer := &domain.CampaignOfferRedeemed{ID: id, CampaignID: campaignID, ShareHolderID: shareHolderID}
	if err := r.conn.QueryRow(query, args...).Scan(&offer.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao gravar resgate: %w", err)
	}

	return offer, nil
}

func (r *campaignEventRepository) CreateRewardClaim(campaignID, brokerID string) (*domain.CampaignRewardClaim, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, fmt.Errorf("erro ao gerar id: %w", err)
	}

	query, args, err := squirrel.
		Insert("campaign_reward_claims").
		Columns("id", "campaign_id", "broker_id").
		Values(id, campaignID, brokerID).
		Suffix("RETURNING created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	claim := &domain.CampaignRewardClaim{ID: id, CampaignID: campaignID, BrokerID: brokerID}
	if err := r.conn.QueryRow(query, args...).Scan(&claim.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao gravar coleta de recompensa: %w", err)
	}

	return claim, nil
}

func (r *campaignEventRepository) CountClicks(campaignID string, since *time.Time) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(clicksTable).
		Where(squirrel.Eq{"cc.campaign_id": campaignID, "cc.deleted": false})

	if since != nil {
		builder = builder.Where(squirrel.GtOrEq{"cc.created_at": *since})
	}

	return r.count(builder)
}

func (r *campaignEventRepository) ListClicks(campaignID string, since *time.Time) ([]domain.ClickRecord, error) {
	builder := squirrel.
		Select("cc.id", "cc.created_at").
		From(clicksTable).
		Where(squirrel.Eq{"cc.campaign_id": campaignID, "cc.deleted": false}).
		OrderBy("cc.created_at DESC")

	if since != nil {
		builder = builder.Where(squirrel.GtOrEq{"cc.created_at": *since})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.ClickRecord, 0)
	for rows.Next() {
		record := domain.ClickRecord{}
		if err := rows.Scan(&record.ID, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear clique: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *campaignEventRepository) CountClicksForCampaigns(campaignIDs []string, start, end time.Time) (int, error) {
	if len(campaignIDs) == 0 {
		return 0, nil
	}

	builder := squirrel.
		Select("COUNT(*)").
		From(clicksTable).
		Where(squirrel.Eq{"cc.campaign_id": campaignIDs, "cc.deleted": false}).
		Where(squirrel.GtOrEq{"cc.created_at": start}).
		Where(squirrel.LtOrEq{"cc.created_at": end})

	return r.count(builder)
}

func (r *campaignEventRepository) CountEmails(campaignID string, since *time.Time, openedOnly bool) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(emailsTable).
		Where(squirrel.Eq{"ce.campaign_id": campaignID, "ce.deleted": false})

	if openedOnly {
		builder = builder.Where(squirrel.Eq{"ce.is_opened": true})
	}
	if since != nil {
		builder = builder.Where(squirrel.GtOrEq{"ce.created_at": *since})
	}

	return r.count(builder)
}

func (r *campaignEventRepository) ListEmails(campaignID string, since *time.Time) ([]domain.EmailRecord, error) {
	builder := squirrel.
		Select("ce.id", "ce.is_opened", "ce.created_at").
		From(emailsTable).
		Where(squirrel.Eq{"ce.campaign_id": campaignID, "ce.deleted": false}).
		OrderBy("ce.created_at DESC")

	if since != nil {
		builder = builder.Where(squirrel.GtOrEq{"ce.created_at": *since})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]domain.EmailRecord, 0)
	for rows.Next() {
		record := domain.EmailRecord{}
		if err := rows.Scan(&record.ID, &record.IsOpened, &record.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear e-mail: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func (r *campaignEventRepository) CountOffers(campaignID string, since *time.Time) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(offersTable).
		Where(squirrel.Eq{"co.campaign_id": campaignID, "co.deleted": false})

	if since != nil {
		builder = builder.Where(squirrel.GtOrEq{"co.created_at": *since})
	}

	return r.count(builder)
}

// ListOffers devolve os resgates com os dados do acionista que resgatou
func (r *campaignEventRepository) ListOffers(campaignID string, since *time.Time) ([]domain.CampaignOfferRedeemed, error) {
	builder := squirrel.
		Select(
			"co.id", "co.campaign_id", "co.shareholder_id", "co.created_at",
			"sh.id", "sh.name", "sh.country", "sh.region", "sh.age",
			"sh.gender", "sh.income", "sh.created_at",
		).
		From(offersTable).
		Join("shareholders sh ON sh.id = co.shareholder_id").
		Where(squirrel.Eq{"co.campaign_id": campaignID, "co.deleted": false}).
		OrderBy("co.created_at DESC")

	if since != nil {
		builder = builder.Where(squirrel.GtOrEq{"co.created_at": *since})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	offers := make([]domain.CampaignOfferRedeemed, 0)
	for rows.Next() {
		offer := domain.CampaignOfferRedeemed{ShareHolder: &domain.ShareHolder{}}
		err := rows.Scan(
			&offer.ID,
			&offer.CampaignID,
			&offer.ShareHolderID,
			&offer.CreatedAt,
			&offer.ShareHolder.ID,
			&offer.ShareHolder.Name,
			&offer.ShareHolder.Country,
			&offer.ShareHolder.Region,
			&offer.ShareHolder.Age,
			&offer.ShareHolder.Gender,
			&offer.ShareHolder.Income,
			&offer.ShareHolder.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resgate: %w", err)
		}
		offers = append(offers, offer)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return offers, nil
}

func (r *campaignEventRepository) CountOffersForCampaigns(campaignIDs []string, start, end time.Time) (int, error) {
	if len(campaignIDs) == 0 {
		return 0, nil
	}

	builder := squirrel.
		Select("COUNT(*)").
		From(offersTable).
		Where(squirrel.Eq{"co.campaign_id": campaignIDs, "co.deleted": false}).
		Where(squirrel.GtOrEq{"co.created_at": start}).
		Where(squirrel.LtOrEq{"co.created_at": end})

	return r.count(builder)
}

// ListRedemptionSpends devolve cada resgate da janela com o orçamento da
// campanha associada
func (r *campaignEventRepository) ListRedemptionSpends(start, end time.Time, campaignID *string, campaignType *domain.CampaignType) ([]domain.RedemptionSpend, error) {
	builder := squirrel.
		Select("co.created_at", "c.campaign_budget").
		From(offersTable).
		Join("campaigns c ON c.id = co.campaign_id").
		Where(squirrel.Eq{"co.deleted": false}).
		Where(squirrel.GtOrEq{"co.created_at": start}).
		Where(squirrel.LtOrEq{"co.created_at": end})

	return r.queryRedemptionSpends(builder, campaignID, campaignType)
}

// ListRedemptionSpendsInPreviousWindow usa limite superior exclusivo para que
// a fronteira entre janelas não conte o mesmo resgate duas vezes
func (r *campaignEventRepository) ListRedemptionSpendsInPreviousWindow(start, end time.Time, campaignID *string, campaignType *domain.CampaignType) ([]domain.RedemptionSpend, error) {
	builder := squirrel.
		Select("co.created_at", "c.campaign_budget").
		From(offersTable).
		Join("campaigns c ON c.id = co.campaign_id").
		Where(squirrel.Eq{"co.deleted": false}).
		Where(squirrel.GtOrEq{"co.created_at": start}).
		Where(squirrel.Lt{"co.created_at": end})

	return r.queryRedemptionSpends(builder, campaignID, campaignType)
}

func (r *campaignEventRepository) queryRedemptionSpends(builder squirrel.SelectBuilder, campaignID *string, campaignType *domain.CampaignType) ([]domain.RedemptionSpend, error) {
	if campaignID != nil {
		builder = builder.Where(squirrel.Eq{"co.campaign_id": *campaignID})
	}
	if campaignType != nil {
		builder = builder.Where(squirrel.Eq{"c.campaign_type": *campaignType})
	}

	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	spends := make([]domain.RedemptionSpend, 0)
	for rows.Next() {
		spend := domain.RedemptionSpend{}
		if err := rows.Scan(&spend.CreatedAt, &spend.CampaignBudget); err != nil {
			return nil, fmt.Errorf("erro ao escanear resgate: %w", err)
		}
		spends = append(spends, spend)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return spends, nil
}

func (r *campaignEventRepository) CountRewards(campaignID string) (int, error) {
	builder := squirrel.
		Select("COUNT(*)").
		From(rewardsTable).
		Where(squirrel.Eq{"cr.campaign_id": campaignID, "cr.deleted": false})

	return r.count(builder)
}

// ListRewards pagina as coletas de recompensa com os dados da corretora
func (r *campaignEventRepository) ListRewards(campaignID string, limit, offset int) ([]domain.CampaignRewardClaim, error) {
	query, args, err := squirrel.
		Select(
			"cr.id", "cr.campaign_id", "cr.broker_id", "cr.created_at",
			"b.id", "b.name", "b.email", "b.created_at",
		).
		From(rewardsTable).
		Join("brokers b ON b.id = cr.broker_id").
		Where(squirrel.Eq{"cr.campaign_id": campaignID, "cr.deleted": false}).
		OrderBy("cr.created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
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

	claims := make([]domain.CampaignRewardClaim, 0)
	for rows.Next() {
		claim := domain.CampaignRewardClaim{Broker: &domain.Broker{}}
		err := rows.Scan(
			&claim.ID,
			&claim.CampaignID,
			&claim.BrokerID,
			&claim.CreatedAt,
			&claim.Broker.ID,
			&claim.Broker.Name,
			&claim.Broker.Email,
			&claim.Broker.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear coleta de recompensa: %w", err)
		}
		claims = append(claims, claim)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return claims, nil
}

// ListEngagementTimes une os carimbos de cliques, e-mails abertos e resgates
// da campanha; o agrupamento em faixas acontece em memória no usecase
func (r *campaignEventRepository) ListEngagementTimes(campaignID string, since time.Time) ([]time.Time, error) {
	rows, err := r.conn.Query(engagementTimesQuery, campaignID, since)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	times := make([]time.Time, 0)
	for rows.Next() {
		var moment time.Time
		if err := rows.Scan(&moment); err != nil {
			return nil, fmt.Errorf("erro ao escanear carimbo de engajamento: %w", err)
		}
		times = append(times, moment)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return times, nil
}

func (r *campaignEventRepository) count(builder squirrel.SelectBuilder) (int, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao executar contagem: %w", err)
	}

	return count, nil
}
