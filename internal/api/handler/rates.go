package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/ads-finance-api/internal/usecases/exchanging"
	"github.com/vfg2006/ads-finance-api/pkg/apiErrors"
	"github.com/vfg2006/ads-finance-api/pkg/log"
)

// RevenueRateRequest é o payload de ajuste manual do canal de receita
type RevenueRateRequest struct {
	Currency string  `json:"currency"`
	Rate     float64 `json:"rate"`
}

// GetRates retorna o snapshot corrente dos dois canais de cotação
func GetRates(service exchanging.RateManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		snapshot := service.Snapshot()

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(snapshot)
	})
}

// SetRevenueRate ajusta a cotação manual do canal de receita/reembolso. O
// canal de custo não é ajustável por aqui: ele segue o feed de mercado.
func SetRevenueRate(service exchanging.RateManager) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var req RevenueRateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		currency := strings.ToUpper(req.Currency)

		if err := service.SetRevenueRate(currency, req.Rate); err != nil {
			logger.WithError(err).WithFields(log.Fields{
				"currency": currency,
				"rate":     req.Rate,
			}).Warn("câmbio: ajuste manual de cotação rejeitado")

			if errors.Is(err, exchanging.ErrInvalidCurrency) {
				apiErrors.WriteError(w, apiErrors.ErrInvalidCurrency, err.Error(), nil)
				return
			}

			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(service.Snapshot())
	})
}
