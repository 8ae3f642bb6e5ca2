package domain

import (
	"time"
)

// DailyMetric representa a observação de um dia-calendário para um produto.
// A chave composta (ProductID, Date) é única: toda escrita é um upsert, nunca
// um append. Os campos de anúncio e os campos de funil são escritos por
// atores diferentes (ingestão automática vs. entrada manual) e precisam
// coexistir na mesma linha.
type DailyMetric struct {
	ID        int64     `json:"id"`
	ProductID string    `json:"product_id"`
	Date      time.Time `json:"date"`

	// Campos de anúncio (escritos pela ingestão automática)
	Impressions              int64   `json:"impressions"`
	Clicks                   int64   `json:"clicks"`
	CTR                      float64 `json:"ctr"` // percentual, escala 0-100
	Cost                     float64 `json:"cost"`
	AverageCPC               float64 `json:"average_cpc"`
	TargetValue              float64 `json:"target_value"`
	Status                   string  `json:"status"`
	FinalURL                 string  `json:"final_url"`
	BiddingStrategy          string  `json:"bidding_strategy"`
	BudgetMicros             int64   `json:"budget_micros"`
	SearchImpressionShare    string  `json:"search_impression_share"`
	SearchTopImpressionShare string  `json:"search_top_impression_share"`
	SearchAbsTopShare        string  `json:"search_abs_top_share"`

	// Campos de funil (escritos pela entrada manual do operador)
	Visits          int64   `json:"visits"`
	Checkouts       int64   `json:"checkouts"`
	Conversions     float64 `json:"conversions"`
	ConversionValue float64 `json:"conversion_value"` // receita bruta
	Refunds         float64 `json:"refunds"`

	Currency  string    `json:"currency"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FunnelEntry é a fatia de funil de um DailyMetric, gravada pela entrada
// manual. O campo de receita externa ("revenue") já chega aqui renomeado para
// ConversionValue, o nome canônico lido pela agregação.
type FunnelEntry struct {
	ProductID       string    `json:"product_id"`
	Date            time.Time `json:"date"`
	Visits          int64     `json:"visits"`
	Checkouts       int64     `json:"checkouts"`
	Conversions     float64   `json:"conversions"`
	ConversionValue float64   `json:"conversion_value"`
	Refunds         float64   `json:"refunds"`
	Currency        string    `json:"currency"`
}

// ProductDayMetric é a linha de métrica diária já associada ao produto dono,
// usada pela agregação para resolver moeda e identidade
type ProductDayMetric struct {
	DailyMetric
	ProductName     string `json:"product_name"`
	ProductCurrency string `json:"product_currency"`
}

// ReportCurrency resolve a moeda efetiva da linha: a moeda registrada na
// métrica quando presente, senão a moeda de relatório do produto
func (m *ProductDayMetric) ReportCurrency() string {
	if m.Currency != "" {
		return m.Currency
	}
	if m.ProductCurrency != "" {
		return m.ProductCurrency
	}
	return DefaultCurrency
}
