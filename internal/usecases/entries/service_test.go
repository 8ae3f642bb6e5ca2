package entries

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-finance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-finance-api/internal/domain"
	"github.com/vfg2006/ads-finance-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func TestService_SaveManualEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockCostRepo := mocks.NewMockAdditionalCostRepository(ctrl)
	mockGoalRepo := mocks.NewMockFinancialGoalRepository(ctrl)

	service := NewService(mockProductRepo, mockMetricRepo, mockCostRepo, mockGoalRepo)

	ownedProduct := &domain.Product{
		ID:       "Ab3xYz",
		UserID:   42,
		Currency: "USD",
	}

	var saved *domain.FunnelEntry
	captureFunnel := func() {
		mockMetricRepo.EXPECT().
			UpsertFunnel(gomock.Any()).
			DoAndReturn(func(entry *domain.FunnelEntry) error {
				saved = entry
				return nil
			})
	}

	tests := []struct {
		name     string
		userID   int
		request  *ManualEntryRequest
		setup    func()
		validate func(t *testing.T, err error, saved *domain.FunnelEntry)
	}{
		{
			name:   "produto inexistente deve falhar antes de qualquer escrita",
			userID: 42,
			request: &ManualEntryRequest{
				ProductID: "naoEx1",
				Date:      "2024-03-10",
				Revenue:   100,
			},
			setup: func() {
				// Nenhuma expectativa de UpsertFunnel: a falha precede a escrita
				mockProductRepo.EXPECT().GetByID("naoEx1").Return(nil, nil)
			},
			validate: func(t *testing.T, err error, saved *domain.FunnelEntry) {
				assert.ErrorIs(t, err, ErrProductNotFound)
				assert.Nil(t, saved)
			},
		},
		{
			name:   "produto de outro usuário é tratado como inexistente",
			userID: 99,
			request: &ManualEntryRequest{
				ProductID: "Ab3xYz",
				Date:      "2024-03-10",
				Revenue:   100,
			},
			setup: func() {
				mockProductRepo.EXPECT().GetByID("Ab3xYz").Return(ownedProduct, nil)
			},
			validate: func(t *testing.T, err error, saved *domain.FunnelEntry) {
				assert.ErrorIs(t, err, ErrProductNotFound)
				assert.Nil(t, saved)
			},
		},
		{
			name:   "revenue é gravado sob o nome canônico conversion_value",
			userID: 42,
			request: &ManualEntryRequest{
				ProductID:   "Ab3xYz",
				Date:        "2024-03-10",
				Visits:      500,
				Checkouts:   40,
				Conversions: 12,
				Revenue:     1234.56,
				Refunds:     78.9,
				Currency:    "EUR",
			},
			setup: func() {
				mockProductRepo.EXPECT().GetByID("Ab3xYz").Return(ownedProduct, nil)
				captureFunnel()
			},
			validate: func(t *testing.T, err error, saved *domain.FunnelEntry) {
				assert.NoError(t, err)
				assert.NotNil(t, saved)
				assert.Equal(t, 1234.56, saved.ConversionValue)
				assert.Equal(t, 78.9, saved.Refunds)
				assert.Equal(t, int64(500), saved.Visits)
				assert.Equal(t, int64(40), saved.Checkouts)
				assert.Equal(t, 12.0, saved.Conversions)
				assert.Equal(t, "EUR", saved.Currency)
			},
		},
		{
			name:   "moeda ausente herda a moeda do produto",
			userID: 42,
			request: &ManualEntryRequest{
				ProductID: "Ab3xYz",
				Date:      "2024-03-10",
				Revenue:   10,
			},
			setup: func() {
				mockProductRepo.EXPECT().GetByID("Ab3xYz").Return(ownedProduct, nil)
				captureFunnel()
			},
			validate: func(t *testing.T, err error, saved *domain.FunnelEntry) {
				assert.NoError(t, err)
				assert.Equal(t, "USD", saved.Currency)
			},
		},
		{
			name:   "data inválida rejeitada antes de consultar o produto",
			userID: 42,
			request: &ManualEntryRequest{
				ProductID: "Ab3xYz",
				Date:      "10/03/2024",
			},
			setup: func() {},
			validate: func(t *testing.T, err error, saved *domain.FunnelEntry) {
				assert.ErrorIs(t, err, ErrInvalidDate)
				assert.Nil(t, saved)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			saved = nil
			tt.setup()

			err := service.SaveManualEntry(tt.userID, tt.request)
			tt.validate(t, err, saved)
		})
	}
}

func TestService_GetDailyMetric(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockCostRepo := mocks.NewMockAdditionalCostRepository(ctrl)
	mockGoalRepo := mocks.NewMockFinancialGoalRepository(ctrl)

	service := NewService(mockProductRepo, mockMetricRepo, mockCostRepo, mockGoalRepo)

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	product := &domain.Product{ID: "Ab3xYz", UserID: 42, Currency: "BRL"}

	t.Run("data inválida", func(t *testing.T) {
		_, err := service.GetDailyMetric(42, "Ab3xYz", "10/03/2024")

		assert.ErrorIs(t, err, ErrInvalidDate)
	})

	t.Run("produto de outro usuário", func(t *testing.T) {
		mockProductRepo.EXPECT().GetByID("Ab3xYz").Return(product, nil)

		_, err := service.GetDailyMetric(99, "Ab3xYz", "2024-03-10")

		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("dia sem registro", func(t *testing.T) {
		mockProductRepo.EXPECT().GetByID("Ab3xYz").Return(product, nil)
		mockMetricRepo.EXPECT().GetByProductAndDate("Ab3xYz", day).Return(nil, nil)

		_, err := service.GetDailyMetric(42, "Ab3xYz", "2024-03-10")

		assert.ErrorIs(t, err, ErrMetricNotFound)

		var entryErr *EntryError
		assert.ErrorAs(t, err, &entryErr)
		assert.Equal(t, apiErrors.ErrMetricNotFound, entryErr.Code)
	})

	t.Run("retorna a linha consolidada", func(t *testing.T) {
		stored := &domain.DailyMetric{
			ProductID:       "Ab3xYz",
			Date:            day,
			Cost:            25.0,
			Visits:          310,
			ConversionValue: 150.0,
		}

		mockProductRepo.EXPECT().GetByID("Ab3xYz").Return(product, nil)
		mockMetricRepo.EXPECT().GetByProductAndDate("Ab3xYz", day).Return(stored, nil)

		metric, err := service.GetDailyMetric(42, "Ab3xYz", "2024-03-10")

		assert.NoError(t, err)
		assert.Equal(t, 25.0, metric.Cost)
		assert.Equal(t, int64(310), metric.Visits)
		assert.Equal(t, 150.0, metric.ConversionValue)
	})
}

func TestService_Goals(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockCostRepo := mocks.NewMockAdditionalCostRepository(ctrl)
	mockGoalRepo := mocks.NewMockFinancialGoalRepository(ctrl)

	service := NewService(mockProductRepo, mockMetricRepo, mockCostRepo, mockGoalRepo)

	t.Run("mês inválido rejeitado no upsert de meta", func(t *testing.T) {
		err := service.SaveGoal(42, &GoalRequest{Month: "03-2024", RevenueGoal: 1000})
		assert.ErrorIs(t, err, ErrInvalidMonth)
	})

	t.Run("meta válida é gravada com upsert por (usuário, mês)", func(t *testing.T) {
		var saved *domain.FinancialGoal
		mockGoalRepo.EXPECT().
			SaveOrUpdate(gomock.Any()).
			DoAndReturn(func(goal *domain.FinancialGoal) error {
				saved = goal
				return nil
			})

		err := service.SaveGoal(42, &GoalRequest{
			Month:        "2024-03",
			RevenueGoal:  10000,
			ProfitGoal:   4000,
			SpendCeiling: 3000,
		})

		assert.NoError(t, err)
		assert.Equal(t, 42, saved.UserID)
		assert.Equal(t, "2024-03", saved.Month)
		assert.Equal(t, 10000.0, saved.RevenueGoal)
	})

	t.Run("mês sem meta definida retorna nil sem erro", func(t *testing.T) {
		mockGoalRepo.EXPECT().GetByUserAndMonth(42, "2024-04").Return(nil, nil)

		goal, err := service.GetGoal(42, "2024-04")

		assert.NoError(t, err)
		assert.Nil(t, goal)
	})
}

func TestService_AdditionalCosts(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockProductRepo := mocks.NewMockProductRepository(ctrl)
	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockCostRepo := mocks.NewMockAdditionalCostRepository(ctrl)
	mockGoalRepo := mocks.NewMockFinancialGoalRepository(ctrl)

	service := NewService(mockProductRepo, mockMetricRepo, mockCostRepo, mockGoalRepo)

	t.Run("descrição obrigatória", func(t *testing.T) {
		_, err := service.CreateAdditionalCost(42, &AdditionalCostRequest{
			Date:   "2024-03-10",
			Amount: 50,
		})

		assert.ErrorIs(t, err, ErrDescriptionMissing)
	})

	t.Run("moeda ausente recebe a moeda padrão", func(t *testing.T) {
		var saved *domain.AdditionalCost
		mockCostRepo.EXPECT().
			Create(gomock.Any()).
			DoAndReturn(func(cost *domain.AdditionalCost) (*domain.AdditionalCost, error) {
				saved = cost
				return cost, nil
			})

		_, err := service.CreateAdditionalCost(42, &AdditionalCostRequest{
			Date:        "2024-03-10",
			Description: "Ferramenta de email",
			Amount:      97.0,
		})

		assert.NoError(t, err)
		assert.Equal(t, domain.DefaultCurrency, saved.Currency)
		assert.Equal(t, 42, saved.UserID)
	})

	t.Run("remoção de custo inexistente", func(t *testing.T) {
		mockCostRepo.EXPECT().Delete(42, int64(7)).Return(sql.ErrNoRows)

		err := service.DeleteAdditionalCost(42, 7)

		assert.ErrorIs(t, err, ErrCostNotFound)

		var entryErr *EntryError
		assert.ErrorAs(t, err, &entryErr)
		assert.Equal(t, apiErrors.ErrCostNotFound, entryErr.Code)
	})

	t.Run("falha de banco na remoção não vira não-encontrado", func(t *testing.T) {
		mockCostRepo.EXPECT().
			Delete(42, int64(7)).
			Return(errors.New("erro ao executar a query: connection refused"))

		err := service.DeleteAdditionalCost(42, 7)

		assert.ErrorIs(t, err, ErrDatabaseOperation)
		assert.NotErrorIs(t, err, ErrCostNotFound)

		var entryErr *EntryError
		assert.ErrorAs(t, err, &entryErr)
		assert.Equal(t, apiErrors.ErrDatabaseOperation, entryErr.Code)
	})

	t.Run("remoção bem sucedida", func(t *testing.T) {
		mockCostRepo.EXPECT().Delete(42, int64(7)).Return(nil)

		assert.NoError(t, service.DeleteAdditionalCost(42, 7))
	})
}
