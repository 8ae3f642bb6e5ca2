package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vfg2006/ads-finance-api/internal/scheduler"
	"github.com/vfg2006/ads-finance-api/pkg/apiErrors"
	"github.com/vfg2006/ads-finance-api/pkg/log"
)

// RunExchangeRateSync dispara manualmente a atualização do canal de custo a
// partir do feed, sem esperar o próximo tick do agendador
func RunExchangeRateSync(service *scheduler.ExchangeRateSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador de cotações não disponível", nil)
			return
		}

		logger.Info("cron: sincronização de cotações disparada manualmente")
		service.RunNow()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]string{
			"message": "Sincronização de cotações iniciada com sucesso",
		})
	})
}

// GetCronStatus retorna os instantes da última execução do agendador
func GetCronStatus(service *scheduler.ExchangeRateSyncService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if service == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Agendador de cotações não disponível", nil)
			return
		}

		startedAt, completedAt := service.LastSync()

		status := map[string]string{}
		if !startedAt.IsZero() {
			status["last_sync_started_at"] = startedAt.Format(time.RFC3339)
		}
		if !completedAt.IsZero() {
			status["last_sync_completed_at"] = completedAt.Format(time.RFC3339)
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(status)
	})
}
