package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shareholder-campaign-api/internal/scheduler"
	"github.com/vfg2006/shareholder-campaign-api/pkg/apiErrors"
)

// RunDashboardSnapshot dispara manualmente a geração do snapshot do dashboard
func RunDashboardSnapshot(service *scheduler.DashboardSnapshotService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunDashboardSnapshot")

		if service == nil {
			respondError(w, &apiErrors.APIError{
				Code:    apiErrors.ErrInternalServer,
				Message: "serviço de snapshot não disponível",
			})
			return
		}

		if err := service.RunNow(); err != nil {
			logrus.WithError(err).Error("Erro ao executar snapshot do dashboard")
			respondError(w, err)
			return
		}

		respond(w, http.StatusOK, map[string]string{
			"message": "snapshot do dashboard gerado com sucesso",
		})
	})
}
