package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/shareholder-campaign-api/infrastructure/database/postgres"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
)

const deliveryMethodsTable = "delivery_methods dm"

var deliveryMethodColumns = []string{
	"dm.id", "dm.campaign_id", "dm.type", "dm.max_count", "dm.created_at",
}

type DeliveryMethodRepository interface {
	ListCreatedBetween(start, end time.Time) ([]domain.DeliveryMethod, error)
	ListCreatedInPreviousWindow(start, end time.Time) ([]domain.DeliveryMethod, error)
}

type deliveryMethodRepository struct {
	conn *postgres.Connection
}

func NewDeliveryMethodRepository(conn *postgres.Connection) DeliveryMethodRepository {
	return &deliveryMethodRepository{
		conn: conn,
	}
}

func (r *deliveryMethodRepository) ListCreatedBetween(start, end time.Time) ([]domain.DeliveryMethod, error) {
	builder := squirrel.
		Select(deliveryMethodColumns...).
		From(deliveryMethodsTable).
		Where(squirrel.Eq{"dm.deleted": false}).
		Where(squirrel.GtOrEq{"dm.created_at": start}).
		Where(squirrel.LtOrEq{"dm.created_at": end})

	return r.queryDeliveryMethods(builder)
}

// ListCreatedInPreviousWindow usa limite superior exclusivo para que a
// fronteira entre janelas não conte o mesmo registro duas vezes
func (r *deliveryMethodRepository) ListCreatedInPreviousWindow(start, end time.Time) ([]domain.DeliveryMethod, error) {
	builder := squirrel.
		Select(deliveryMethodColumns...).
		From(deliveryMethodsTable).
		Where(squirrel.Eq{"dm.deleted": false}).
		Where(squirrel.GtOrEq{"dm.created_at": start}).
		Where(squirrel.Lt{"dm.created_at": end})

	return r.queryDeliveryMethods(builder)
}

func (r *deliveryMethodRepository) queryDeliveryMethods(builder squirrel.SelectBuilder) ([]domain.DeliveryMethod, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	methods := make([]domain.DeliveryMethod, 0)
	for rows.Next() {
		method := domain.DeliveryMethod{}
		err := rows.Scan(
			&method.ID,
			&method.CampaignID,
			&method.Type,
			&method.MaxCount,
			&method.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear método de entrega: %w", err)
		}
		methods = append(methods, method)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return methods, nil
}
