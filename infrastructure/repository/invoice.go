package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/vfg2006/shareholder-campaign-api/infrastructure/database/postgres"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	"github.com/vfg2006/shareholder-campaign-api/pkg/utils"
)

const (
	invoicesTable   = "invoices i"
	breakdownsTable = "invoice_broker_breakdowns ib"
)

var invoiceColumns = []string{
	"i.id", "i.campaign_id", "i.notification_cost", "i.micillenous_cost",
	"i.audience_cost", "i.reach_cost", "i.tax_rate", "i.campaign_transaction_cost",
	"i.bogo_discount", "i.status", "i.notes", "i.created_at", "i.updated_at",
}

type InvoiceRepository interface {
	Create(invoice *domain.Invoice) error
	GetByID(id string) (*domain.Invoice, error)
	GetByCampaignID(campaignID string) (*domain.Invoice, error)
	ListAll(status *domain.InvoiceStatus) ([]*domain.Invoice, error)
	UpdateStatus(id string, status domain.InvoiceStatus) error
	SoftDelete(id string) error
}

type invoiceRepository struct {
	conn *postgres.Connection
}

func NewInvoiceRepository(conn *postgres.Connection) InvoiceRepository {
	return &invoiceRepository{
		conn: conn,
	}
}

// Create grava a fatura, seus detalhamentos por corretora e o vínculo na
// campanha dentro de uma única transação
func (r *invoiceRepository) Create(invoice *domain.Invoice) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id: %w", err)
	}
	invoice.ID = id

	return r.conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert("invoices").
			Columns(
				"id", "campaign_id", "notification_cost", "micillenous_cost",
				"audience_cost", "reach_cost", "tax_rate", "campaign_transaction_cost",
				"bogo_discount", "status", "notes",
			).
			Values(
				invoice.ID, invoice.CampaignID, invoice.NotificationCost,
				invoice.MicillenousCost, invoice.AudienceCost, invoice.ReachCost,
				invoice.TaxRate, invoice.CampaignTransactionCost,
				invoice.BogoDiscount, invoice.Status, invoice.Notes,
			).
			Suffix("RETURNING created_at, updated_at").
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if err := tx.QueryRow(query, args...).Scan(&invoice.CreatedAt, &invoice.UpdatedAt); err != nil {
			return fmt.Errorf("erro ao gravar fatura: %w", err)
		}

		for idx := range invoice.BrokerBreakdowns {
			breakdown := &invoice.BrokerBreakdowns[idx]

			breakdownID, err := utils.GenerateID()
			if err != nil {
				return fmt.Errorf("erro ao gerar id: %w", err)
			}
			breakdown.ID = breakdownID
			breakdown.InvoiceID = invoice.ID

			query, args, err := squirrel.
				Insert("invoice_broker_breakdowns").
				Columns("id", "invoice_id", "broker_id", "reach_cost", "engagement_fee").
				Values(breakdown.ID, invoice.ID, breakdown.BrokerID, breakdown.ReachCost, breakdown.EngagementFee).
				PlaceholderFormat(squirrel.Dollar).
				ToSql()
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := tx.Exec(query, args...); err != nil {
				return fmt.Errorf("erro ao gravar detalhamento por corretora: %w", err)
			}
		}

		query, args, err = squirrel.
			Update("campaigns").
			Set("invoice_id", invoice.ID).
			Where(squirrel.Eq{"id": invoice.CampaignID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir a query: %w", err)
		}

		if _, err := tx.Exec(query, args...); err != nil {
			return fmt.Errorf("erro ao vincular fatura à campanha: %w", err)
		}

		return nil
	})
}

func (r *invoiceRepository) GetByID(id string) (*domain.Invoice, error) {
	builder := squirrel.
		Select(invoiceColumns...).
		From(invoicesTable).
		Where(squirrel.Eq{"i.id": id, "i.deleted": false})

	return r.queryInvoice(builder)
}

func (r *invoiceRepository) GetByCampaignID(campaignID string) (*domain.Invoice, error) {
	builder := squirrel.
		Select(invoiceColumns...).
		From(invoicesTable).
		Where(squirrel.Eq{"i.campaign_id": campaignID, "i.deleted": false})

	return r.queryInvoice(builder)
}

func (r *invoiceRepository) ListAll(status *domain.InvoiceStatus) ([]*domain.Invoice, error) {
	builder := squirrel.
		Select(invoiceColumns...).
		From(invoicesTable).
		Where(squirrel.Eq{"i.deleted": false}).
		OrderBy("i.created_at DESC")

	if status != nil {
		builder = builder.Where(squirrel.Eq{"i.status": *status})
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

	invoices := make([]*domain.Invoice, 0)
	for rows.Next() {
		invoice, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, invoice)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return r.attachBreakdowns(invoices)
}

func (r *invoiceRepository) UpdateStatus(id string, status domain.InvoiceStatus) error {
	query, args, err := squirrel.
		Update("invoices").
		Set("status", status).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id, "deleted": false}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar status da fatura: %w", err)
	}

	return nil
}

func (r *invoiceRepository) SoftDelete(id string) error {
	query, args, err := squirrel.
		Update("invoices").
		Set("deleted", true).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao remover fatura: %w", err)
	}

	return nil
}

func (r *invoiceRepository) queryInvoice(builder squirrel.SelectBuilder) (*domain.Invoice, error) {
	query, args, err := builder.PlaceholderFormat(squirrel.Dollar).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	invoice, err := scanInvoice(r.conn.QueryRow(query, args...))
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, nil
	}

	invoices, err := r.attachBreakdowns([]*domain.Invoice{invoice})
	if err != nil {
		return nil, err
	}

	return invoices[0], nil
}

func scanInvoice(row rowScanner) (*domain.Invoice, error) {
	invoice := &domain.Invoice{}
	var notes sql.NullString

	err := row.Scan(
		&invoice.ID,
		&invoice.CampaignID,
		&invoice.NotificationCost,
		&invoice.MicillenousCost,
		&invoice.AudienceCost,
		&invoice.ReachCost,
		&invoice.TaxRate,
		&invoice.CampaignTransactionCost,
		&invoice.BogoDiscount,
		&invoice.Status,
		&notes,
		&invoice.CreatedAt,
		&invoice.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear fatura: %w", err)
	}

	if notes.Valid {
		invoice.Notes = &notes.String
	}

	return invoice, nil
}

// attachBreakdowns carrega em lote os detalhamentos por corretora das faturas,
// com o nome da corretora resolvido no join
func (r *invoiceRepository) attachBreakdowns(invoices []*domain.Invoice) ([]*domain.Invoice, error) {
	if len(invoices) == 0 {
		return invoices, nil
	}

	ids := make([]string, 0, len(invoices))
	byID := make(map[string]*domain.Invoice, len(invoices))
	for _, invoice := range invoices {
		ids = append(ids, invoice.ID)
		byID[invoice.ID] = invoice
	}

	query, args, err := squirrel.
		Select("ib.id", "ib.invoice_id", "ib.broker_id", "b.name", "ib.reach_cost", "ib.engagement_fee").
		From(breakdownsTable).
		Join("brokers b ON b.id = ib.broker_id").
		Where(squirrel.Eq{"ib.invoice_id": ids}).
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
		breakdown := domain.BrokerBreakdown{}
		err := rows.Scan(
			&breakdown.ID,
			&breakdown.InvoiceID,
			&breakdown.BrokerID,
			&breakdown.BrokerName,
			&breakdown.ReachCost,
			&breakdown.EngagementFee,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear detalhamento por corretora: %w", err)
		}

		if invoice, ok := byID[breakdown.InvoiceID]; ok {
			invoice.BrokerBreakdowns = append(invoice.BrokerBreakdowns, breakdown)
		}
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return invoices, nil
}
