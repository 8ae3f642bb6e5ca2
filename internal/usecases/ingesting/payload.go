package ingesting

import (
	"encoding/json"
	"strconv"
	"strings"
)

// IngestPayload é o payload bruto produzido pelo exportador da plataforma de
// anúncios. Os campos numéricos monetários chegam em micro-unidades (valor
// inteiro escalado por 1.000.000).
type IngestPayload struct {
	UserID       int            `json:"user_id"`
	CampaignName string         `json:"campaign_name"`
	Date         string         `json:"date"` // YYYY-MM-DD
	CurrencyCode string         `json:"currency_code"`
	AccountName  string         `json:"account_name"`
	MCCName      string         `json:"mcc_name"`
	Metrics      PayloadMetrics `json:"metrics"`
}

type PayloadMetrics struct {
	Impressions              int64      `json:"impressions"`
	Clicks                   int64      `json:"clicks"`
	CostMicros               int64      `json:"cost_micros"`
	CTR                      FlexNumber `json:"ctr"`
	AverageCPCMicros         int64      `json:"average_cpc"`
	TargetValue              float64    `json:"target_value"`
	FinalURL                 string     `json:"final_url"`
	Status                   string     `json:"status"`
	SearchImpressionShare    string     `json:"search_impression_share"`
	SearchTopImpressionShare string     `json:"search_top_impression_share"`
	SearchAbsTopShare        string     `json:"search_abs_top_share"`
	BudgetMicros             int64      `json:"budget_micros"`
	BiddingStrategyType      string     `json:"bidding_strategy_type"`
}

// FlexNumber aceita um número JSON ou uma string formatada (possivelmente com
// sinal de porcentagem, ex: "5.33%"). O exportador não é consistente no tipo
// que emite para o CTR.
type FlexNumber struct {
	raw string
}

func (f *FlexNumber) UnmarshalJSON(data []byte) error {
	var asString string
	if err := json.Unmarshal(data, &asString); err == nil {
		f.raw = asString
		return nil
	}

	var asNumber json.Number
	if err := json.Unmarshal(data, &asNumber); err == nil {
		f.raw = asNumber.String()
		return nil
	}

	// null ou tipo inesperado: trata como ausente
	f.raw = ""
	return nil
}

func (f FlexNumber) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.raw)
}

// String devolve o valor cru como recebido
func (f FlexNumber) String() string {
	return f.raw
}

// NewFlexNumber constrói um FlexNumber a partir do valor cru (usado em testes
// e na construção manual de payloads)
func NewFlexNumber(raw string) FlexNumber {
	return FlexNumber{raw: raw}
}

// Percent normaliza o valor para a escala percentual 0-100: remove o sinal de
// porcentagem, interpreta como decimal e, se o resultado estiver estritamente
// entre 0 e 1, assume que era uma fração e reescala por 100. Valores ausentes,
// zerados ou não numéricos normalizam para 0.
func (f FlexNumber) Percent() float64 {
	raw := strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(f.raw), "%"))
	if raw == "" {
		return 0
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}

	if value > 0 && value < 1 {
		return value * 100
	}

	return value
}
