package repository

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/shareholder-campaign-api/infrastructure/database/postgres"
)

func setupMockConnection(t *testing.T) (*postgres.Connection, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &postgres.Connection{DB: db}, mock
}

func TestCampaignEventRepository_CreateClick(t *testing.T) {
	conn, mock := setupMockConnection(t)
	repo := NewCampaignEventRepository(conn)

	createdAt := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("INSERT INTO campaign_clicks").
		WillReturnRows(sqlmock.NewRows([]string{"created_at"}).AddRow(createdAt))

	click, err := repo.CreateClick("camp_01")

	require.NoError(t, err)
	assert.NotEmpty(t, click.ID)
	assert.Equal(t, "camp_01", click.CampaignID)
	assert.Equal(t, createdAt, click.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignEventRepository_CountClicks(t *testing.T) {
	conn, mock := setupMockConnection(t)
	repo := NewCampaignEventRepository(conn)

	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(42))

	count, err := repo.CountClicks("camp_01", &since)

	require.NoError(t, err)
	assert.Equal(t, 42, count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignEventRepository_CountClicksForCampaigns(t *testing.T) {
	t.Run("lista vazia de campanhas não consulta o banco", func(t *testing.T) {
		conn, mock := setupMockConnection(t)
		repo := NewCampaignEventRepository(conn)

		count, err := repo.CountClicksForCampaigns(nil, time.Now().AddDate(0, 0, -7), time.Now())

		require.NoError(t, err)
		assert.Zero(t, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conta cliques das campanhas dentro da janela", func(t *testing.T) {
		conn, mock := setupMockConnection(t)
		repo := NewCampaignEventRepository(conn)

		mock.ExpectQuery("SELECT COUNT").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		count, err := repo.CountClicksForCampaigns(
			[]string{"camp_01", "camp_02"},
			time.Now().AddDate(0, 0, -7),
			time.Now(),
		)

		require.NoError(t, err)
		assert.Equal(t, 7, count)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestCampaignEventRepository_ListOffers(t *testing.T) {
	conn, mock := setupMockConnection(t)
	repo := NewCampaignEventRepository(conn)

	redeemedAt := time.Date(2026, 3, 5, 9, 30, 0, 0, time.UTC)
	joinedAt := time.Date(2025, 11, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "campaign_id", "shareholder_id", "created_at",
		"sh_id", "name", "country", "region", "age", "gender", "income", "sh_created_at",
	}).AddRow(
		"offer_01", "camp_01", "sh_01", redeemedAt,
		"sh_01", "Maria Souza", "Brazil", "Sudeste", 34, "FEMALE", 120000.0, joinedAt,
	)

	mock.ExpectQuery("SELECT (.+) FROM campaign_offers_redeemed").
		WillReturnRows(rows)

	offers, err := repo.ListOffers("camp_01", nil)

	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, "offer_01", offers[0].ID)
	require.NotNil(t, offers[0].ShareHolder)
	assert.Equal(t, "Maria Souza", offers[0].ShareHolder.Name)
	assert.Equal(t, 34, offers[0].ShareHolder.Age)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignEventRepository_ListRewards(t *testing.T) {
	conn, mock := setupMockConnection(t)
	repo := NewCampaignEventRepository(conn)

	claimedAt := time.Date(2026, 3, 8, 15, 45, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{
		"id", "campaign_id", "broker_id", "created_at",
		"b_id", "name", "email", "b_created_at",
	}).AddRow(
		"claim_01", "camp_01", "brk_01", claimedAt,
		"brk_01", "XP Investimentos", "contato@xp.com", claimedAt,
	)

	mock.ExpectQuery("SELECT (.+) FROM campaign_reward_claims").
		WillReturnRows(rows)

	claims, err := repo.ListRewards("camp_01", 10, 0)

	require.NoError(t, err)
	require.Len(t, claims, 1)
	assert.Equal(t, "claim_01", claims[0].ID)
	require.NotNil(t, claims[0].Broker)
	assert.Equal(t, "XP Investimentos", claims[0].Broker.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignEventRepository_ListRedemptionSpends(t *testing.T) {
	conn, mock := setupMockConnection(t)
	repo := NewCampaignEventRepository(conn)

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 3, 31, 23, 59, 59, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"created_at", "campaign_budget"}).
		AddRow(start.AddDate(0, 0, 3), 5000.0).
		AddRow(start.AddDate(0, 0, 10), 5000.0)

	mock.ExpectQuery("SELECT (.+) FROM campaign_offers_redeemed (.+) JOIN campaigns").
		WillReturnRows(rows)

	spends, err := repo.ListRedemptionSpends(start, end, nil, nil)

	require.NoError(t, err)
	require.Len(t, spends, 2)
	assert.Equal(t, 5000.0, spends[0].CampaignBudget)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCampaignEventRepository_ListEngagementTimes(t *testing.T) {
	conn, mock := setupMockConnection(t)
	repo := NewCampaignEventRepository(conn)

	since := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows([]string{"created_at"}).
		AddRow(since.AddDate(0, 0, 1)).
		AddRow(since.AddDate(0, 0, 2)).
		AddRow(since.AddDate(0, 0, 15))

	mock.ExpectQuery("SELECT created_at FROM campaign_clicks").
		WillReturnRows(rows)

	times, err := repo.ListEngagementTimes("camp_01", since)

	require.NoError(t, err)
	assert.Len(t, times, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}
