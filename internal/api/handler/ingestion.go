package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/ads-finance-api/internal/config"
	"github.com/vfg2006/ads-finance-api/internal/usecases/ingesting"
	"github.com/vfg2006/ads-finance-api/pkg/apiErrors"
	"github.com/vfg2006/ads-finance-api/pkg/log"
)

// IngestResponse é o ack devolvido ao exportador
type IngestResponse struct {
	Status    string `json:"status"`
	ProductID string `json:"product_id,omitempty"`
}

// IngestMetrics recebe o payload bruto do exportador da plataforma de
// anúncios. Semântica de status: 400 para payload inválido, 500 para falha de
// persistência, 200 em sucesso. A rota é isenta de JWT e valida o token
// compartilhado de ingestão quando configurado.
func IngestMetrics(service ingesting.Ingester, cfg *config.Config) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if cfg.Ingestion.Token != "" && r.Header.Get("X-Ingest-Token") != cfg.Ingestion.Token {
			logger.Warn("ingestão: token de ingestão inválido")
			apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de ingestão inválido", nil)
			return
		}

		var payload ingesting.IngestPayload
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			logger.WithError(err).Warn("ingestão: payload ilegível")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Formato de requisição inválido", nil)
			return
		}

		logger.WithFields(log.Fields{
			"user_id":  payload.UserID,
			"campaign": payload.CampaignName,
			"date":     payload.Date,
		}).Info("ingestão: payload recebido")

		product, err := service.Ingest(&payload)
		if err != nil {
			handleIngestError(w, r, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(IngestResponse{
			Status:    "ok",
			ProductID: product.ID,
		})
	})
}

func handleIngestError(w http.ResponseWriter, r *http.Request, err error) {
	logger := log.ForContext(r.Context())

	var ingestErr *ingesting.IngestError
	if errors.As(err, &ingestErr) {
		if ingesting.IsValidationError(err) {
			logger.WithError(err).Warn("ingestão: payload rejeitado na validação")
		} else {
			logger.WithError(err).Error("ingestão: falha ao processar payload")
		}

		apiErrors.WriteError(w, ingestErr.Code, ingestErr.Error(), nil)
		return
	}

	logger.WithError(err).Error("ingestão: erro inesperado")
	apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno ao processar ingestão", nil)
}
