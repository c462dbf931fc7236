package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shareholder-campaign-api/infrastructure/repository"
	"github.com/vfg2006/shareholder-campaign-api/internal/api/handler"
	"github.com/vfg2006/shareholder-campaign-api/internal/api/handler/router"
	"github.com/vfg2006/shareholder-campaign-api/internal/config"
	"github.com/vfg2006/shareholder-campaign-api/internal/scheduler"
	"github.com/vfg2006/shareholder-campaign-api/internal/usecases/analyzing"
	"github.com/vfg2006/shareholder-campaign-api/internal/usecases/dashboarding"
	"github.com/vfg2006/shareholder-campaign-api/internal/usecases/invoicing"
	"github.com/vfg2006/shareholder-campaign-api/pkg/middleware"
)

type Server struct {
	httpServer *http.Server
}

func New(
	config *config.Config,
	dashboardService dashboarding.Dashboarder,
	analyticsService analyzing.Analyzer,
	invoiceService invoicing.Invoicer,
	snapshotRepo repository.DashboardSnapshotRepository,
	snapshotSyncService *scheduler.DashboardSnapshotService,
) (*Server, error) {
	configs := []router.ConfigRouter{
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Dashboard(dashboardService, snapshotRepo)...),
		router.WithRoutes(handler.CampaignAnalytics(analyticsService)...),
		router.WithRoutes(handler.CampaignEvents(analyticsService)...),
		router.WithRoutes(handler.Invoices(invoiceService)...),
		router.WithRoutes(handler.CronJobs(snapshotSyncService)...),
	}

	if config.Metrics.Enabled {
		configs = append(configs, router.WithRoutes(handler.Metrics()...))
	}

	rt := router.New(configs...)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.MetricsMiddleware(),
		middleware.Cors(),
	}

	chained := alice.New(middlewares...).Then(rt)

	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", config.Server.Host, config.Server.Port),
			Handler:           chained,
			ReadHeaderTimeout: 2 * time.Second,
		},
	}

	return srv, nil
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		logrus.WithFields(logrus.Fields{
			"address": s.httpServer.Addr,
		}).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Error("Erro durante a execução do servidor")
		}
	}()

	// Canal para aguardar sinais de término
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		logrus.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		logrus.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	logrus.WithFields(logrus.Fields{
		"timeout": "15s",
	}).Info("Iniciando desligamento gracioso do servidor")

	if err := s.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Erro durante o desligamento do servidor")
		return err
	}

	logrus.Info("Servidor desligado com sucesso")
	return nil
}

func (s Server) Shutdown(ctx context.Context) error {
	err := s.httpServer.Shutdown(ctx)
	if err != nil {
		return err
	}

	logrus.Info("Servidor HTTP desligado com sucesso")
	return nil
}
