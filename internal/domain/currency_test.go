package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	rates := Rates{
		"BRL": 1,
		"USD": 5.0,
		"EUR": 6.25,
	}

	tests := []struct {
		name   string
		amount float64
		from   string
		to     string
		want   float64
	}{
		{
			name:   "moeda estrangeira para a base multiplica pela cotação",
			amount: 100,
			from:   "USD",
			to:     "BRL",
			want:   500,
		},
		{
			name:   "base para moeda estrangeira divide pela cotação",
			amount: 500,
			from:   "BRL",
			to:     "USD",
			want:   100,
		},
		{
			name:   "entre estrangeiras passa pela base",
			amount: 100,
			from:   "EUR",
			to:     "USD",
			want:   125,
		},
		{
			name:   "mesma moeda é no-op",
			amount: 123.45,
			from:   "USD",
			to:     "USD",
			want:   123.45,
		},
		{
			name:   "moeda desconhecida vale paridade com a base",
			amount: 80,
			from:   "XYZ",
			to:     "BRL",
			want:   80,
		},
		{
			name:   "valor zero não converte",
			amount: 0,
			from:   "USD",
			to:     "BRL",
			want:   0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.amount, tt.from, tt.to, rates)
			assert.InDelta(t, tt.want, got, 0.0001)
		})
	}
}

func TestNormalize_RoundTrip(t *testing.T) {
	rates := Rates{
		"BRL": 1,
		"USD": 5.0,
		"EUR": 6.25,
	}

	pairs := []struct {
		name string
		from string
		to   string
	}{
		{name: "estrangeira e base", from: "USD", to: "BRL"},
		{name: "base e estrangeira", from: "BRL", to: "EUR"},
		{name: "estrangeiras via base", from: "EUR", to: "USD"},
	}

	amount := 137.42

	// Ida e volta entre qualquer par devolve o valor original
	for _, tt := range pairs {
		t.Run(tt.name, func(t *testing.T) {
			converted := Normalize(amount, tt.from, tt.to, rates)
			back := Normalize(converted, tt.to, tt.from, rates)

			assert.InDelta(t, amount, back, 0.0001)
		})
	}
}

func TestRateSnapshot_Channels(t *testing.T) {
	snapshot := RateSnapshot{
		Base:    "BRL",
		Cost:    Rates{"BRL": 1, "USD": 5.0},
		Revenue: Rates{"BRL": 1, "USD": 4.8},
	}

	// Mesmo valor e mesma moeda, canais distintos: as cotações nunca se
	// misturam entre gasto e receita
	assert.InDelta(t, 500.0, snapshot.NormalizeCost(100, "USD", "BRL"), 0.0001)
	assert.InDelta(t, 480.0, snapshot.NormalizeRevenue(100, "USD", "BRL"), 0.0001)
}

func TestComputeGoalProgress(t *testing.T) {
	totals := &ReportTotals{
		Revenue:   150,
		AdCost:    25,
		ExtraCost: 50,
		Profit:    65,
	}

	t.Run("sem meta retorna nil", func(t *testing.T) {
		assert.Nil(t, ComputeGoalProgress(totals, nil))
		assert.Nil(t, ComputeGoalProgress(nil, &FinancialGoal{RevenueGoal: 1000}))
	})

	t.Run("meta zerada não divide", func(t *testing.T) {
		progress := ComputeGoalProgress(totals, &FinancialGoal{})

		assert.NotNil(t, progress)
		assert.Equal(t, 0.0, progress.RevenueProgress)
		assert.Equal(t, 0.0, progress.ProfitProgress)
		assert.Equal(t, 0.0, progress.SpendUsage)
	})

	t.Run("progresso calculado por campo", func(t *testing.T) {
		progress := ComputeGoalProgress(totals, &FinancialGoal{
			RevenueGoal:  1000,
			ProfitGoal:   100,
			SpendCeiling: 300,
		})

		assert.Equal(t, 15.0, progress.RevenueProgress)
		assert.Equal(t, 65.0, progress.ProfitProgress)
		assert.Equal(t, 25.0, progress.SpendUsage)
	})
}
