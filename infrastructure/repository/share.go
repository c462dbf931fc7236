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
	sharesTable  = "shares s"
	brokersTable = "brokers b"
)

type ShareRepository interface {
	CountAll() (int, error)
	CountCreatedBefore(moment time.Time) (int, error)
	AvgPrice() (float64, error)
	AvgPriceBefore(moment time.Time) (float64, error)
}

type shareRepository struct {
	conn *postgres.Connection
}

func NewShareRepository(conn *postgres.Connection) ShareRepository {
	return &shareRepository{
		conn: conn,
	}
}

func (r *shareRepository) CountAll() (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(sharesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar ações: %w", err)
	}

	return count, nil
}

func (r *shareRepository) CountCreatedBefore(moment time.Time) (int, error) {
	query, args, err := squirrel.
		Select("COUNT(*)").
		From(sharesTable).
		Where(squirrel.Lt{"s.created_at": moment}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var count int
	if err := r.conn.QueryRow(query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("erro ao contar ações anteriores: %w", err)
	}

	return count, nil
}

// AvgPrice devolve o preço médio das ações; zero quando não há linhas
func (r *shareRepository) AvgPrice() (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(AVG(s.price), 0)").
		From(sharesTable).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var avg float64
	if err := r.conn.QueryRow(query, args...).Scan(&avg); err != nil {
		return 0, fmt.Errorf("erro ao calcular preço médio: %w", err)
	}

	return avg, nil
}

func (r *shareRepository) AvgPriceBefore(moment time.Time) (float64, error) {
	query, args, err := squirrel.
		Select("COALESCE(AVG(s.price), 0)").
		From(sharesTable).
		Where(squirrel.Lt{"s.created_at": moment}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	var avg float64
	if err := r.conn.QueryRow(query, args...).Scan(&avg); err != nil {
		return 0, fmt.Errorf("erro ao calcular preço médio anterior: %w", err)
	}

	return avg, nil
}

type BrokerRepository interface {
	ListAll() ([]*domain.Broker, error)
}

type brokerRepository struct {
	conn *postgres.Connection
}

func NewBrokerRepository(conn *postgres.Connection) BrokerRepository {
	return &brokerRepository{
		conn: conn,
	}
}

func (r *brokerRepository) ListAll() ([]*domain.Broker, error) {
	query, args, err := squirrel.
		Select("b.id", "b.name", "b.email", "b.created_at").
		From(brokersTable).
		OrderBy("b.name ASC").
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

	brokers := make([]*domain.Broker, 0)
	for rows.Next() {
		broker := &domain.Broker{}
		if err := rows.Scan(&broker.ID, &broker.Name, &broker.Email, &broker.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear corretora: %w", err)
		}
		brokers = append(brokers, broker)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return brokers, nil
}
