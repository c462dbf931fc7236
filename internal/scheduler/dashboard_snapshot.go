package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shareholder-campaign-api/infrastructure/repository"
	"github.com/vfg2006/shareholder-campaign-api/internal/config"
	"github.com/vfg2006/shareholder-campaign-api/internal/domain"
	"github.com/vfg2006/shareholder-campaign-api/internal/metrics"
	"github.com/vfg2006/shareholder-campaign-api/internal/usecases/dashboarding"
)

// DashboardSnapshotConfig representa a configuração do agendador de snapshots
// do dashboard
type DashboardSnapshotConfig struct {
	CronSchedule string
	LookbackDays int
	Enabled      bool
}

// DashboardSnapshotService computa periodicamente todos os cards do dashboard
// e persiste a fotografia do dia
type DashboardSnapshotService struct {
	scheduler    *gocron.Scheduler
	config       DashboardSnapshotConfig
	dashboarder  dashboarding.Dashboarder
	snapshotRepo repository.DashboardSnapshotRepository
	running      bool
	runMutex     sync.Mutex
	lastRunAt    time.Time
}

// NewDashboardSnapshotService cria uma nova instância do serviço de snapshots
func NewDashboardSnapshotService(
	dashboarder dashboarding.Dashboarder,
	snapshotRepo repository.DashboardSnapshotRepository,
	appConfig *config.Config,
) *DashboardSnapshotService {
	snapshotConfig := DashboardSnapshotConfig{
		CronSchedule: appConfig.DashboardSnapshotSync.CronSchedule,
		LookbackDays: appConfig.DashboardSnapshotSync.LookbackDays,
		Enabled:      appConfig.DashboardSnapshotSync.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": snapshotConfig.CronSchedule,
		"lookback_days": snapshotConfig.LookbackDays,
		"enabled":       snapshotConfig.Enabled,
	}).Info("Configuração do agendador de snapshots do dashboard carregada")

	return &DashboardSnapshotService{
		scheduler:    scheduler,
		config:       snapshotConfig,
		dashboarder:  dashboarder,
		snapshotRepo: snapshotRepo,
	}
}

// Start inicia o agendador
func (s *DashboardSnapshotService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Snapshot do dashboard desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de snapshots do dashboard")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		if err := s.RunNow(); err != nil {
			logrus.WithError(err).Error("Erro ao gerar snapshot do dashboard")
		}
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar snapshot do dashboard: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador de snapshots do dashboard")
		s.scheduler.Stop()
	}()

	return nil
}

// RunNow computa todos os cards e persiste o snapshot do dia. Também atende o
// disparo manual via API.
func (s *DashboardSnapshotService) RunNow() error {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Snapshot do dashboard já em andamento, ignorando")
		return nil
	}
	s.running = true
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.runMutex.Unlock()
	}()

	startTime := time.Now()
	s.lastRunAt = startTime

	logrus.WithField("lookback_days", s.config.LookbackDays).Info("Iniciando geração do snapshot do dashboard")

	payload, err := s.buildPayload()
	if err != nil {
		s.observeRun(startTime, err)
		return err
	}

	if err := s.snapshotRepo.Upsert(startTime, *payload); err != nil {
		s.observeRun(startTime, err)
		return fmt.Errorf("erro ao persistir snapshot do dashboard: %w", err)
	}

	s.observeRun(startTime, nil)

	logrus.WithFields(logrus.Fields{
		"duration":      time.Since(startTime).String(),
		"lookback_days": s.config.LookbackDays,
	}).Info("Snapshot do dashboard concluído")

	return nil
}

// buildPayload computa os seis cards com a janela configurada
func (s *DashboardSnapshotService) buildPayload() (*domain.SnapshotPayload, error) {
	filter := domain.DashboardFilter{Days: s.config.LookbackDays}

	stats, err := s.dashboarder.GetCampaignStatsCard(filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao computar card de estatísticas: %w", err)
	}

	if metrics.DefaultMetrics != nil {
		metrics.DefaultMetrics.ActiveCampaigns.Set(float64(stats.ActiveCampaignCount))
	}

	cost, err := s.dashboarder.GetCampaignCostCard(filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao computar card de custo: %w", err)
	}

	concentration, err := s.dashboarder.GetShareholderConcentration(filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao computar card de concentração: %w", err)
	}

	countries, err := s.dashboarder.GetShareholdersByCountry(filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao computar card de países: %w", err)
	}

	notifications, err := s.dashboarder.GetNotificationCard(filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao computar card de notificações: %w", err)
	}

	spending, err := s.dashboarder.GetShareholderSpendingCard(filter)
	if err != nil {
		return nil, fmt.Errorf("erro ao computar card de gastos: %w", err)
	}

	return &domain.SnapshotPayload{
		Stats:         stats,
		Cost:          cost,
		Concentration: concentration,
		Countries:     countries,
		Notifications: notifications,
		Spending:      spending,
	}, nil
}

func (s *DashboardSnapshotService) observeRun(start time.Time, err error) {
	if metrics.DefaultMetrics == nil {
		return
	}

	status := "success"
	if err != nil {
		status = "failure"
	}

	metrics.DefaultMetrics.SnapshotRuns.WithLabelValues(status).Inc()
	metrics.DefaultMetrics.SnapshotLatency.Observe(time.Since(start).Seconds())
}
