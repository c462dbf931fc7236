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
	"github.com/vfg2006/shareholder-campaign-api/pkg/utils"
)

const snapshotsTable = "dashboard_snapshots ds"

type DashboardSnapshotRepository interface {
	Upsert(date time.Time, payload domain.SnapshotPayload) error
	GetLatest() (*domain.DashboardSnapshot, error)
}

type dashboardSnapshotRepository struct {
	conn *postgres.Connection
}

func NewDashboardSnapshotRepository(conn *postgres.Connection) DashboardSnapshotRepository {
	return &dashboardSnapshotRepository{
		conn: conn,
	}
}

// Upsert grava o consolidado do dia; uma nova execução no mesmo dia substitui
// o payload anterior
func (r *dashboardSnapshotRepository) Upsert(date time.Time, payload domain.SnapshotPayload) error {
	id, err := utils.GenerateID()
	if err != nil {
		return fmt.Errorf("erro ao gerar id: %w", err)
	}

	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar payload do consolidado: %w", err)
	}

	query, args, err := squirrel.
		Insert("dashboard_snapshots").
		Columns("id", "snapshot_date", "payload").
		Values(id, date.Format("2006-01-02"), raw).
		Suffix("ON CONFLICT (snapshot_date) DO UPDATE SET payload = EXCLUDED.payload").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar consolidado do painel: %w", err)
	}

	return nil
}

func (r *dashboardSnapshotRepository) GetLatest() (*domain.DashboardSnapshot, error) {
	query, args, err := squirrel.
		Select("ds.id", "ds.snapshot_date", "ds.payload", "ds.created_at").
		From(snapshotsTable).
		OrderBy("ds.snapshot_date DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	snapshot := &domain.DashboardSnapshot{}
	var raw []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&snapshot.ID,
		&snapshot.Date,
		&raw,
		&snapshot.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao escanear consolidado do painel: %w", err)
	}

	snapshot.Payload = json.RawMessage(raw)

	return snapshot, nil
}
