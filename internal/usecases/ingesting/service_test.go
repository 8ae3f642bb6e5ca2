package ingesting

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-finance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-finance-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_Ingest_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// Nenhuma expectativa nos mocks: payload inválido é rejeitado antes de
	// qualquer escrita
	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)

	service := NewService(mockProductRepo, mockMetricRepo)

	tests := []struct {
		name     string
		payload  *IngestPayload
		expected error
	}{
		{
			name: "user_id ausente deve ser rejeitado antes de qualquer escrita",
			payload: &IngestPayload{
				CampaignName: "Campanha X",
				Date:         "2024-03-10",
			},
			expected: ErrMissingUserID,
		},
		{
			name: "campaign_name ausente deve ser rejeitado antes de qualquer escrita",
			payload: &IngestPayload{
				UserID: 42,
				Date:   "2024-03-10",
			},
			expected: ErrMissingCampaignName,
		},
		{
			name: "data inválida deve ser rejeitada antes de resolver o produto",
			payload: &IngestPayload{
				UserID:       42,
				CampaignName: "Campanha X",
				Date:         "10/03/2024",
			},
			expected: ErrInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := service.Ingest(tt.payload)

			assert.Nil(t, product)
			assert.ErrorIs(t, err, tt.expected)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestService_Ingest_Normalization(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)

	service := NewService(mockProductRepo, mockMetricRepo)

	resolvedProduct := &domain.Product{
		ID:           "Ab3xYz",
		UserID:       42,
		Name:         "Campanha X",
		CampaignName: "Campanha X",
		Currency:     "USD",
		Platform:     domain.PlatformGoogleAds,
		Status:       domain.ProductStatusActive,
	}

	tests := []struct {
		name     string
		payload  *IngestPayload
		setup    func()
		validate func(t *testing.T, saved *domain.DailyMetric)
	}{
		{
			name: "micro-unidades divididas por 1e6 e CTR com sinal de porcentagem",
			payload: &IngestPayload{
				UserID:       42,
				CampaignName: "Campanha X",
				Date:         "2024-03-10",
				CurrencyCode: "USD",
				Metrics: PayloadMetrics{
					Impressions:      1000,
					Clicks:           53,
					CostMicros:       25_000_000,
					AverageCPCMicros: 312_500,
					CTR:              NewFlexNumber("5.33%"),
					BudgetMicros:     50_000_000,
				},
			},
			validate: func(t *testing.T, saved *domain.DailyMetric) {
				assert.Equal(t, 25.0, saved.Cost)
				assert.Equal(t, 0.3125, saved.AverageCPC)
				assert.Equal(t, 5.33, saved.CTR)
				// Orçamento permanece em micro-unidades
				assert.Equal(t, int64(50_000_000), saved.BudgetMicros)
				assert.Equal(t, "USD", saved.Currency)
			},
		},
		{
			name: "CTR fracionário entre 0 e 1 é reescalado para 0-100",
			payload: &IngestPayload{
				UserID:       42,
				CampaignName: "Campanha X",
				Date:         "2024-03-10",
				Metrics: PayloadMetrics{
					CTR: NewFlexNumber("0.0533"),
				},
			},
			validate: func(t *testing.T, saved *domain.DailyMetric) {
				assert.InDelta(t, 5.33, saved.CTR, 1e-9)
			},
		},
		{
			name: "CTR ausente normaliza para zero e parcelas de impressão recebem 0%",
			payload: &IngestPayload{
				UserID:       42,
				CampaignName: "Campanha X",
				Date:         "2024-03-10",
				Metrics:      PayloadMetrics{},
			},
			validate: func(t *testing.T, saved *domain.DailyMetric) {
				assert.Equal(t, 0.0, saved.CTR)
				assert.Equal(t, "0%", saved.SearchImpressionShare)
				assert.Equal(t, "0%", saved.SearchTopImpressionShare)
				assert.Equal(t, "0%", saved.SearchAbsTopShare)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockProductRepo.EXPECT().
				FindOrCreate(gomock.Any()).
				Return(resolvedProduct, nil)

			var saved *domain.DailyMetric
			mockMetricRepo.EXPECT().
				UpsertAdMetrics(gomock.Any()).
				DoAndReturn(func(metric *domain.DailyMetric) error {
					saved = metric
					return nil
				})

			product, err := service.Ingest(tt.payload)

			assert.NoError(t, err)
			assert.Equal(t, resolvedProduct.ID, product.ID)
			assert.NotNil(t, saved)
			assert.Equal(t, resolvedProduct.ID, saved.ProductID)

			tt.validate(t, saved)
		})
	}
}

func TestService_Ingest_ProductDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)

	service := NewService(mockProductRepo, mockMetricRepo)

	var candidate *domain.Product
	mockProductRepo.EXPECT().
		FindOrCreate(gomock.Any()).
		DoAndReturn(func(p *domain.Product) (*domain.Product, error) {
			candidate = p
			return p, nil
		})

	mockMetricRepo.EXPECT().UpsertAdMetrics(gomock.Any()).Return(nil)

	// Payload sem moeda nem rótulos de agrupamento
	_, err := service.Ingest(&IngestPayload{
		UserID:       42,
		CampaignName: "Campanha Sem Rótulos",
		Date:         "2024-03-10",
	})

	assert.NoError(t, err)
	assert.NotNil(t, candidate)
	assert.Len(t, candidate.ID, 6)
	assert.Equal(t, domain.DefaultCurrency, candidate.Currency)
	assert.Equal(t, domain.PlatformGoogleAds, candidate.Platform)
	assert.Equal(t, domain.ProductStatusActive, candidate.Status)
	assert.Equal(t, domain.UnknownAccountName, candidate.AccountName)
	assert.Equal(t, domain.NoGroupName, candidate.MCCName)
	assert.Equal(t, "Campanha Sem Rótulos", candidate.Name)
}

func TestService_Ingest_Idempotence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)

	service := NewService(mockProductRepo, mockMetricRepo)

	existing := &domain.Product{
		ID:           "Ab3xYz",
		UserID:       42,
		CampaignName: "Campanha X",
		Currency:     "BRL",
	}

	// O upsert condicional resolve sempre o mesmo produto; o reenvio grava a
	// métrica na mesma chave (produto, data)
	mockProductRepo.EXPECT().FindOrCreate(gomock.Any()).Return(existing, nil).Times(2)
	mockMetricRepo.EXPECT().UpsertAdMetrics(gomock.Any()).Return(nil).Times(2)

	payload := &IngestPayload{
		UserID:       42,
		CampaignName: "Campanha X",
		Date:         "2024-03-10",
	}

	first, err := service.Ingest(payload)
	assert.NoError(t, err)

	second, err := service.Ingest(payload)
	assert.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
}

func TestFlexNumber_Percent(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected float64
	}{
		{
			name:     "String com sinal de porcentagem",
			raw:      "5.33%",
			expected: 5.33,
		},
		{
			name:     "Fração entre 0 e 1 reescalada por 100",
			raw:      "0.0533",
			expected: 5.33,
		},
		{
			name:     "Valor já em escala percentual mantido",
			raw:      "12.5",
			expected: 12.5,
		},
		{
			name:     "Valor ausente normaliza para zero",
			raw:      "",
			expected: 0,
		},
		{
			name:     "Valor zerado permanece zero",
			raw:      "0",
			expected: 0,
		},
		{
			name:     "Valor não numérico normaliza para zero",
			raw:      "--",
			expected: 0,
		},
		{
			name:     "Espaços e porcentagem são tolerados",
			raw:      " 7.1% ",
			expected: 7.1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, NewFlexNumber(tt.raw).Percent(), 1e-9)
		})
	}
}

func TestFlexNumber_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected float64
	}{
		{
			name:     "CTR como número JSON",
			body:     `{"ctr": 0.0533}`,
			expected: 5.33,
		},
		{
			name:     "CTR como string formatada",
			body:     `{"ctr": "5.33%"}`,
			expected: 5.33,
		},
		{
			name:     "CTR nulo tratado como ausente",
			body:     `{"ctr": null}`,
			expected: 0,
		},
		{
			name:     "CTR ausente no payload",
			body:     `{}`,
			expected: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var metrics PayloadMetrics
			err := json.Unmarshal([]byte(tt.body), &metrics)

			assert.NoError(t, err)
			assert.InDelta(t, tt.expected, metrics.CTR.Percent(), 1e-9)
		})
	}
}
