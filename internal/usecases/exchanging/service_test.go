package exchanging

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-finance-api/infrastructure/integrator/exchange/mocks"
	"github.com/vfg2006/ads-finance-api/internal/config"
	"go.uber.org/mock/gomock"
)

func exchangeConfig() *config.Config {
	return &config.Config{
		Exchange: config.Exchange{
			BaseCurrency:       "BRL",
			ForeignCurrency:    "USD",
			DefaultCostRate:    5.0,
			DefaultRevenueRate: 4.8,
		},
	}
}

func TestService_Snapshot(t *testing.T) {
	service := NewService(exchangeConfig(), nil)

	snapshot := service.Snapshot()

	assert.Equal(t, "BRL", snapshot.Base)
	assert.Equal(t, 1.0, snapshot.Cost["BRL"])
	assert.Equal(t, 5.0, snapshot.Cost["USD"])
	assert.Equal(t, 4.8, snapshot.Revenue["USD"])

	// O snapshot é uma cópia: mutações no mapa retornado não vazam de volta
	snapshot.Cost["USD"] = 999
	assert.Equal(t, 5.0, service.Snapshot().Cost["USD"])
}

func TestService_Snapshot_Isolation(t *testing.T) {
	service := NewService(exchangeConfig(), nil)

	before := service.Snapshot()

	err := service.SetRevenueRate("USD", 5.2)
	assert.NoError(t, err)

	// Um snapshot tirado antes do ajuste segue imutável
	assert.Equal(t, 4.8, before.Revenue["USD"])
	assert.Equal(t, 5.2, service.Snapshot().Revenue["USD"])
}

func TestService_SetRevenueRate(t *testing.T) {
	tests := []struct {
		name     string
		currency string
		rate     float64
		wantErr  error
	}{
		{
			name:     "ajuste válido",
			currency: "USD",
			rate:     5.15,
		},
		{
			name:     "moeda com tamanho inválido",
			currency: "DOLAR",
			rate:     5.0,
			wantErr:  ErrInvalidCurrency,
		},
		{
			name:     "cotação zero",
			currency: "USD",
			rate:     0,
			wantErr:  ErrInvalidRate,
		},
		{
			name:     "cotação negativa",
			currency: "EUR",
			rate:     -1.2,
			wantErr:  ErrInvalidRate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewService(exchangeConfig(), nil)

			err := service.SetRevenueRate(tt.currency, tt.rate)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			assert.NoError(t, err)
			snapshot := service.Snapshot()
			assert.Equal(t, tt.rate, snapshot.Revenue[tt.currency])
			// O ajuste manual nunca toca o canal de custo
			assert.Equal(t, 5.0, snapshot.Cost["USD"])
		})
	}
}

func TestService_RefreshCostRate(t *testing.T) {
	tests := []struct {
		name     string
		setup    func(fetcher *mocks.MockRateFetcher)
		wantCost float64
	}{
		{
			name: "feed atualiza o canal de custo",
			setup: func(fetcher *mocks.MockRateFetcher) {
				fetcher.EXPECT().GetCurrentRate("USD", "BRL").Return(5.37, nil)
			},
			wantCost: 5.37,
		},
		{
			name: "falha no feed mantém o último valor conhecido",
			setup: func(fetcher *mocks.MockRateFetcher) {
				fetcher.EXPECT().
					GetCurrentRate("USD", "BRL").
					Return(0.0, errors.New("timeout ao consultar feed"))
			},
			wantCost: 5.0,
		},
		{
			name: "cotação não positiva do feed é rejeitada",
			setup: func(fetcher *mocks.MockRateFetcher) {
				fetcher.EXPECT().GetCurrentRate("USD", "BRL").Return(0.0, nil)
			},
			wantCost: 5.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockFetcher := mocks.NewMockRateFetcher(ctrl)
			tt.setup(mockFetcher)

			service := NewService(exchangeConfig(), mockFetcher)
			service.RefreshCostRate()

			snapshot := service.Snapshot()
			assert.Equal(t, tt.wantCost, snapshot.Cost["USD"])
			// O feed nunca toca o canal de receita
			assert.Equal(t, 4.8, snapshot.Revenue["USD"])
		})
	}
}

func TestService_RefreshCostRate_NoFetcher(t *testing.T) {
	service := NewService(exchangeConfig(), nil)

	// Sem feed configurado a atualização é um no-op silencioso
	service.RefreshCostRate()

	assert.Equal(t, 5.0, service.Snapshot().Cost["USD"])
}
