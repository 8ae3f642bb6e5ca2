package domain

import (
	"time"

	"github.com/vfg2006/ads-finance-api/pkg/utils"
)

// ReportFilters delimita o intervalo e a moeda de visualização de um relatório
type ReportFilters struct {
	StartDate *time.Time
	EndDate   *time.Time
	Currency  string
}

// CostLineItem é um item de custo avulso exibido no drill-down de um bucket,
// já convertido para a moeda de visualização
type CostLineItem struct {
	ID          int64   `json:"id"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
}

// DailyBucket agrega os valores financeiros de uma data, todos já
// normalizados para a moeda de visualização
type DailyBucket struct {
	Date      string          `json:"date"` // YYYY-MM-DD
	Revenue   float64         `json:"revenue"`
	AdCost    float64         `json:"ad_cost"`
	ExtraCost float64         `json:"extra_cost"`
	Refunds   float64         `json:"refunds"`
	Profit    float64         `json:"profit"`
	ROI       float64         `json:"roi"`
	ROAS      float64         `json:"roas"`
	CostItems []*CostLineItem `json:"cost_items"`
}

// ReportTotals acumula os componentes do intervalo. ROI e ROAS são calculados
// a partir dos totais, nunca como média dos buckets, para evitar a distorção
// de divisões por valores pequenos.
type ReportTotals struct {
	Revenue   float64 `json:"revenue"`
	AdCost    float64 `json:"ad_cost"`
	ExtraCost float64 `json:"extra_cost"`
	Refunds   float64 `json:"refunds"`
	Profit    float64 `json:"profit"`
	ROI       float64 `json:"roi"`
	ROAS      float64 `json:"roas"`
}

// GoalProgress relaciona os totais do período com a meta mensal
type GoalProgress struct {
	RevenueProgress float64 `json:"revenue_progress"` // percentual
	ProfitProgress  float64 `json:"profit_progress"`  // percentual
	SpendUsage      float64 `json:"spend_usage"`      // percentual do teto de gasto
}

// IncomeReport é o relatório estilo DRE de um intervalo: buckets diários em
// ordem ascendente de data, totais e projeção de fim de mês
type IncomeReport struct {
	Buckets          []*DailyBucket `json:"buckets"`
	Totals           *ReportTotals  `json:"totals"`
	ProjectedRevenue float64        `json:"projected_revenue"`
	GoalProgress     *GoalProgress  `json:"goal_progress,omitempty"`
	Currency         string         `json:"currency"`
}

// AccumulatedPoint é um ponto da série acumulada usada nos gráficos
type AccumulatedPoint struct {
	Date      string  `json:"date"`
	Revenue   float64 `json:"revenue"`
	Profit    float64 `json:"profit"`
	IdealPace float64 `json:"ideal_pace"`
}

// AccumulatedReport compara a receita acumulada real com a reta ideal de
// atingimento linear da meta no mês
type AccumulatedReport struct {
	Points   []*AccumulatedPoint `json:"points"`
	Currency string              `json:"currency"`
}

// ComputeDerived calcula lucro, ROI e ROAS de um bucket. Um bucket sem gasto
// de anúncio reporta ROI e ROAS como 0, nunca NaN ou infinito.
func (b *DailyBucket) ComputeDerived() {
	b.Profit = utils.RoundWithTwoDecimalPlace(b.Revenue - b.AdCost - b.ExtraCost - b.Refunds)

	if b.AdCost > 0 {
		b.ROI = utils.RoundWithTwoDecimalPlace(b.Profit / b.AdCost * 100)
		b.ROAS = utils.RoundWithTwoDecimalPlace(b.Revenue / b.AdCost)
	} else {
		b.ROI = 0
		b.ROAS = 0
	}
}

// ComputeDerived calcula os derivados dos totais a partir dos componentes
// somados do intervalo
func (t *ReportTotals) ComputeDerived() {
	t.Profit = utils.RoundWithTwoDecimalPlace(t.Revenue - t.AdCost - t.ExtraCost - t.Refunds)

	if t.AdCost > 0 {
		t.ROI = utils.RoundWithTwoDecimalPlace(t.Profit / t.AdCost * 100)
		t.ROAS = utils.RoundWithTwoDecimalPlace(t.Revenue / t.AdCost)
	} else {
		t.ROI = 0
		t.ROAS = 0
	}
}

// ComputeGoalProgress calcula a razão de progresso em relação à meta. Metas
// zeradas reportam progresso 0 em vez de dividir por zero.
func ComputeGoalProgress(totals *ReportTotals, goal *FinancialGoal) *GoalProgress {
	if goal == nil || totals == nil {
		return nil
	}

	progress := &GoalProgress{}

	if goal.RevenueGoal > 0 {
		progress.RevenueProgress = utils.RoundWithTwoDecimalPlace(totals.Revenue / goal.RevenueGoal * 100)
	}

	if goal.ProfitGoal > 0 {
		progress.ProfitProgress = utils.RoundWithTwoDecimalPlace(totals.Profit / goal.ProfitGoal * 100)
	}

	if goal.SpendCeiling > 0 {
		spend := totals.AdCost + totals.ExtraCost
		progress.SpendUsage = utils.RoundWithTwoDecimalPlace(spend / goal.SpendCeiling * 100)
	}

	return progress
}
