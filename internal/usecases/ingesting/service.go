package ingesting

import (
	"time"

	"github.com/vfg2006/ads-finance-api/infrastructure/repository"
	"github.com/vfg2006/ads-finance-api/internal/domain"
	"github.com/vfg2006/ads-finance-api/pkg/apiErrors"
	"github.com/vfg2006/ads-finance-api/pkg/log"
	"github.com/vfg2006/ads-finance-api/pkg/utils"
)

// microUnit é o fator das micro-unidades monetárias da plataforma de anúncios
const microUnit = 1_000_000

// defaultImpressionShare é o valor formatado usado quando o exportador não
// envia as métricas de parcela de impressão
const defaultImpressionShare = "0%"

// Ingester normaliza um payload bruto do exportador em um registro canônico
// por produto por dia. A operação é idempotente: reenviar o mesmo payload N
// vezes resulta em exatamente um produto e uma linha de métrica para a chave
// (produto, data).
type Ingester interface {
	Ingest(payload *IngestPayload) (*domain.Product, error)
}

type Service struct {
	productRepo repository.ProductRepository
	metricRepo  repository.DailyMetricRepository
}

func NewService(
	productRepo repository.ProductRepository,
	metricRepo repository.DailyMetricRepository,
) Ingester {
	return &Service{
		productRepo: productRepo,
		metricRepo:  metricRepo,
	}
}

// Ingest valida o payload, resolve o produto dono e grava a métrica do dia.
// A resolução do produto e o upsert da métrica são duas operações de escrita
// separadas, não transacionais: se a segunda falhar depois da primeira, o
// produto permanece e o reenvio do mesmo payload é seguro, porque ambas as
// escritas são chaveadas.
func (s *Service) Ingest(payload *IngestPayload) (*domain.Product, error) {
	if err := validate(payload); err != nil {
		return nil, err
	}

	date, err := time.Parse("2006-01-02", payload.Date)
	if err != nil {
		return nil, NewCampaignIngestError(ErrInvalidDate, apiErrors.ErrInvalidDate, payload.CampaignName, payload.Date)
	}

	product, err := s.resolveProduct(payload)
	if err != nil {
		return nil, err
	}

	metric := normalizeMetrics(payload, product, date)

	if err := s.metricRepo.UpsertAdMetrics(metric); err != nil {
		log.L.WithError(err).WithFields(log.Fields{
			"product_id": product.ID,
			"date":       payload.Date,
		}).Error("ingestão: falha ao gravar métrica diária")

		return nil, NewCampaignIngestError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, payload.CampaignName, err.Error())
	}

	log.L.WithFields(log.Fields{
		"product_id": product.ID,
		"campaign":   payload.CampaignName,
		"date":       payload.Date,
	}).Debug("ingestão: métrica diária gravada")

	return product, nil
}

// validate rejeita o payload antes de qualquer escrita quando os campos
// obrigatórios estão ausentes
func validate(payload *IngestPayload) error {
	if payload.UserID == 0 {
		return NewIngestError(ErrMissingUserID, apiErrors.ErrMissingRequiredData, "")
	}

	if payload.CampaignName == "" {
		return NewIngestError(ErrMissingCampaignName, apiErrors.ErrMissingRequiredData, "")
	}

	return nil
}

// resolveProduct encontra ou cria o produto dono pela chave
// (user_id, campaign_name). Na criação, a moeda vem do payload (padrão BRL),
// a plataforma é fixada na origem automatizada e os rótulos de agrupamento
// recebem sentinelas quando ausentes. Em payloads subsequentes apenas os
// rótulos são atualizados.
func (s *Service) resolveProduct(payload *IngestPayload) (*domain.Product, error) {
	id, err := utils.GenerateID()
	if err != nil {
		return nil, NewCampaignIngestError(ErrGenerateID, apiErrors.ErrInternalServer, payload.CampaignName, err.Error())
	}

	currency := payload.CurrencyCode
	if currency == "" {
		currency = domain.DefaultCurrency
	}

	accountName := payload.AccountName
	if accountName == "" {
		accountName = domain.UnknownAccountName
	}

	mccName := payload.MCCName
	if mccName == "" {
		mccName = domain.NoGroupName
	}

	candidate := &domain.Product{
		ID:           id,
		UserID:       payload.UserID,
		Name:         payload.CampaignName,
		CampaignName: payload.CampaignName,
		Currency:     currency,
		Platform:     domain.PlatformGoogleAds,
		Status:       domain.ProductStatusActive,
		AccountName:  accountName,
		MCCName:      mccName,
	}

	product, err := s.productRepo.FindOrCreate(candidate)
	if err != nil {
		log.L.WithError(err).WithFields(log.Fields{
			"user_id":  payload.UserID,
			"campaign": payload.CampaignName,
		}).Error("ingestão: falha ao resolver produto")

		return nil, NewCampaignIngestError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, payload.CampaignName, err.Error())
	}

	return product, nil
}

// normalizeMetrics coage o payload dinâmico do exportador no registro interno
// estrito: micro-unidades divididas, CTR reescalado para 0-100 e parcelas de
// impressão mantidas como strings formatadas
func normalizeMetrics(payload *IngestPayload, product *domain.Product, date time.Time) *domain.DailyMetric {
	m := payload.Metrics

	searchShare := m.SearchImpressionShare
	if searchShare == "" {
		searchShare = defaultImpressionShare
	}

	searchTopShare := m.SearchTopImpressionShare
	if searchTopShare == "" {
		searchTopShare = defaultImpressionShare
	}

	searchAbsTopShare := m.SearchAbsTopShare
	if searchAbsTopShare == "" {
		searchAbsTopShare = defaultImpressionShare
	}

	return &domain.DailyMetric{
		ProductID:                product.ID,
		Date:                     date,
		Impressions:              m.Impressions,
		Clicks:                   m.Clicks,
		CTR:                      m.CTR.Percent(),
		Cost:                     float64(m.CostMicros) / microUnit,
		AverageCPC:               float64(m.AverageCPCMicros) / microUnit,
		TargetValue:              m.TargetValue,
		Status:                   m.Status,
		FinalURL:                 m.FinalURL,
		BiddingStrategy:          m.BiddingStrategyType,
		BudgetMicros:             m.BudgetMicros,
		SearchImpressionShare:    searchShare,
		SearchTopImpressionShare: searchTopShare,
		SearchAbsTopShare:        searchAbsTopShare,
		Currency:                 product.Currency,
	}
}
