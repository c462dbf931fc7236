package repository

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
)

func TestInvoiceRepository_Create(t *testing.T) {
	conn, mock := setupMockConnection(t)
	repo := NewInvoiceRepository(conn)

	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO invoices").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))
	mock.ExpectExec("INSERT INTO invoice_broker_breakdowns").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE campaigns").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	invoice := &domain.Invoice{
		CampaignID:       "camp_01",
		NotificationCost: 100,
		AudienceCost:     250,
		TaxRate:          0.05,
		Status:           domain.InvoiceStatusPending,
		BrokerBreakdowns: []domain.BrokerBreakdown{
			{BrokerID: "brk_01", ReachCost: 80, EngagementFee: 20},
		},
	}

	err := repo.Create(invoice)

	require.NoError(t, err)
	assert.NotEmpty(t, invoice.ID)
	assert.NotEmpty(t, invoice.BrokerBreakdowns[0].ID)
	assert.Equal(t, invoice.ID, invoice.BrokerBreakdowns[0].InvoiceID)
	assert.Equal(t, now, invoice.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_Create_RollbackEmErro(t *testing.T) {
	conn, mock := setupMockConnection(t)
	repo := NewInvoiceRepository(conn)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO invoices").
		WillReturnError(sql.ErrConnDone)
	mock.ExpectRollback()

	err := repo.Create(&domain.Invoice{CampaignID: "camp_01"})

	require.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_GetByCampaignID(t *testing.T) {
	t.Run("fatura inexistente devolve nil sem erro", func(t *testing.T) {
		conn, mock := setupMockConnection(t)
		repo := NewInvoiceRepository(conn)

		mock.ExpectQuery("SELECT (.+) FROM invoices").
			WillReturnError(sql.ErrNoRows)

		invoice, err := repo.GetByCampaignID("camp_01")

		require.NoError(t, err)
		assert.Nil(t, invoice)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("fatura existente vem com os detalhamentos por corretora", func(t *testing.T) {
		conn, mock := setupMockConnection(t)
		repo := NewInvoiceRepository(conn)

		now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

		invoiceRows := sqlmock.NewRows([]string{
			"id", "campaign_id", "notification_cost", "micillenous_cost",
			"audience_cost", "reach_cost", "tax_rate", "campaign_transaction_cost",
			"bogo_discount", "status", "notes", "created_at", "updated_at",
		}).AddRow(
			"inv_01", "camp_01", 100.0, 50.0, 250.0, 80.0, 0.05, 30.0,
			0.0, "PENDING", nil, now, now,
		)

		breakdownRows := sqlmock.NewRows([]string{
			"id", "invoice_id", "broker_id", "name", "reach_cost", "engagement_fee",
		}).AddRow("bd_01", "inv_01", "brk_01", "XP Investimentos", 80.0, 20.0)

		mock.ExpectQuery("SELECT (.+) FROM invoices").
			WillReturnRows(invoiceRows)
		mock.ExpectQuery("SELECT (.+) FROM invoice_broker_breakdowns").
			WillReturnRows(breakdownRows)

		invoice, err := repo.GetByCampaignID("camp_01")

		require.NoError(t, err)
		require.NotNil(t, invoice)
		assert.Equal(t, "inv_01", invoice.ID)
		assert.Equal(t, domain.InvoiceStatusPending, invoice.Status)
		assert.Nil(t, invoice.Notes)
		require.Len(t, invoice.BrokerBreakdowns, 1)
		assert.Equal(t, "XP Investimentos", invoice.BrokerBreakdowns[0].BrokerName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestInvoiceRepository_ListAll(t *testing.T) {
	conn, mock := setupMockConnection(t)
	repo := NewInvoiceRepository(conn)

	now := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)

	invoiceRows := sqlmock.NewRows([]string{
		"id", "campaign_id", "notification_cost", "micillenous_cost",
		"audience_cost", "reach_cost", "tax_rate", "campaign_transaction_cost",
		"bogo_discount", "status", "notes", "created_at", "updated_at",
	}).
		AddRow("inv_01", "camp_01", 100.0, 0.0, 250.0, 80.0, 0.05, 0.0, 0.0, "PAID", nil, now, now).
		AddRow("inv_02", "camp_02", 40.0, 0.0, 90.0, 10.0, 0.05, 0.0, 0.0, "PAID", nil, now, now)

	mock.ExpectQuery("SELECT (.+) FROM invoices").
		WillReturnRows(invoiceRows)
	mock.ExpectQuery("SELECT (.+) FROM invoice_broker_breakdowns").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "invoice_id", "broker_id", "name", "reach_cost", "engagement_fee",
		}))

	status := domain.InvoiceStatusPaid
	invoices, err := repo.ListAll(&status)

	require.NoError(t, err)
	require.Len(t, invoices, 2)
	assert.Equal(t, "inv_02", invoices[1].ID)
	assert.Empty(t, invoices[1].BrokerBreakdowns)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestInvoiceRepository_UpdateStatus(t *testing.T) {
	conn, mock := setupMockConnection(t)
	repo := NewInvoiceRepository(conn)

	mock.ExpectExec("UPDATE invoices").
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.UpdateStatus("inv_01", domain.InvoiceStatusPaid)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
