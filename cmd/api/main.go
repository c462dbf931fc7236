package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shareholder-campaign-api/infrastructure/database/postgres"
	"github.com/vfg2006/shareholder-campaign-api/infrastructure/repository"
	"github.com/vfg2006/shareholder-campaign-api/internal/api"
	"github.com/vfg2006/shareholder-campaign-api/internal/config"
	"github.com/vfg2006/shareholder-campaign-api/internal/metrics"
	"github.com/vfg2006/shareholder-campaign-api/internal/scheduler"
	"github.com/vfg2006/shareholder-campaign-api/internal/usecases/analyzing"
	"github.com/vfg2006/shareholder-campaign-api/internal/usecases/dashboarding"
	"github.com/vfg2006/shareholder-campaign-api/internal/usecases/invoicing"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if cfg.Metrics.Enabled {
		metrics.NewMetrics(cfg.Metrics.Namespace)
		logrus.WithField("namespace", cfg.Metrics.Namespace).Info("Métricas Prometheus habilitadas")
	}

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	campaignRepo := repository.NewCampaignRepository(pgConn)
	shareHolderRepo := repository.NewShareHolderRepository(pgConn)
	shareRepo := repository.NewShareRepository(pgConn)
	brokerRepo := repository.NewBrokerRepository(pgConn)
	eventRepo := repository.NewCampaignEventRepository(pgConn)
	deliveryMethodRepo := repository.NewDeliveryMethodRepository(pgConn)
	invoiceRepo := repository.NewInvoiceRepository(pgConn)
	snapshotRepo := repository.NewDashboardSnapshotRepository(pgConn)

	dashboardService := dashboarding.NewService(
		campaignRepo,
		shareHolderRepo,
		shareRepo,
		eventRepo,
		deliveryMethodRepo,
	)

	analyticsService := analyzing.NewService(
		campaignRepo,
		shareHolderRepo,
		brokerRepo,
		eventRepo,
	)

	invoiceService := invoicing.NewService(invoiceRepo, campaignRepo)

	snapshotSyncService := scheduler.NewDashboardSnapshotService(
		dashboardService,
		snapshotRepo,
		cfg,
	)

	if err := snapshotSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de snapshots do dashboard")
	} else {
		logrus.Info("Agendador de snapshots do dashboard iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		dashboardService,
		analyticsService,
		invoiceService,
		snapshotRepo,
		snapshotSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
