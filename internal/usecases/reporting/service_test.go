package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-finance-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ads-finance-api/internal/domain"
	"go.uber.org/mock/gomock"
)

// staticRates entrega um snapshot fixo para os testes, sem feed nem estado
type staticRates struct {
	snapshot domain.RateSnapshot
}

func (s staticRates) Snapshot() domain.RateSnapshot {
	return s.snapshot
}

func identityRates() staticRates {
	return staticRates{
		snapshot: domain.RateSnapshot{
			Base:    "BRL",
			Cost:    domain.Rates{"BRL": 1},
			Revenue: domain.Rates{"BRL": 1},
		},
	}
}

func datePtr(t time.Time) *time.Time {
	return &t
}

func metricOn(date time.Time, currency string, revenue, adCost, refunds float64) *domain.ProductDayMetric {
	return &domain.ProductDayMetric{
		DailyMetric: domain.DailyMetric{
			ProductID:       "Ab3xYz",
			Date:            date,
			Cost:            adCost,
			ConversionValue: revenue,
			Refunds:         refunds,
			Currency:        currency,
		},
	}
}

func TestService_IncomeReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockCostRepo := mocks.NewMockAdditionalCostRepository(ctrl)
	mockGoalRepo := mocks.NewMockFinancialGoalRepository(ctrl)

	startDate := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 12, 0, 0, 0, 0, time.UTC)

	service := &Service{
		metricRepo: mockMetricRepo,
		costRepo:   mockCostRepo,
		goalRepo:   mockGoalRepo,
		rates:      identityRates(),
		// Data de referência fora de março: a projeção reporta o próprio total
		now: func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) },
	}

	mockMetricRepo.EXPECT().
		GetByUserAndDateRange(42, startDate, endDate).
		Return([]*domain.ProductDayMetric{
			metricOn(startDate, "BRL", 150, 25, 10),
		}, nil)

	mockCostRepo.EXPECT().
		GetByUserAndDateRange(42, startDate, endDate).
		Return([]*domain.AdditionalCost{
			{ID: 1, UserID: 42, Date: startDate, Description: "Ferramenta de email", Amount: 50, Currency: "BRL"},
		}, nil)

	mockGoalRepo.EXPECT().
		GetByUserAndMonth(42, "2024-03").
		Return(&domain.FinancialGoal{UserID: 42, Month: "2024-03", RevenueGoal: 1000, ProfitGoal: 100, SpendCeiling: 300}, nil)

	report, err := service.IncomeReport(42, &domain.ReportFilters{
		StartDate: datePtr(startDate),
		EndDate:   datePtr(endDate),
		Currency:  "BRL",
	})

	assert.NoError(t, err)
	assert.Len(t, report.Buckets, 3)

	// Bucket do dia com movimento: lucro = 150 - 25 - 50 - 10 = 65
	day := report.Buckets[0]
	assert.Equal(t, "2024-03-10", day.Date)
	assert.Equal(t, 150.0, day.Revenue)
	assert.Equal(t, 25.0, day.AdCost)
	assert.Equal(t, 50.0, day.ExtraCost)
	assert.Equal(t, 10.0, day.Refunds)
	assert.Equal(t, 65.0, day.Profit)
	assert.Equal(t, 260.0, day.ROI)
	assert.Equal(t, 6.0, day.ROAS)
	assert.Len(t, day.CostItems, 1)
	assert.Equal(t, "Ferramenta de email", day.CostItems[0].Description)

	// Dias sem movimento existem na série com valores zerados
	empty := report.Buckets[1]
	assert.Equal(t, "2024-03-11", empty.Date)
	assert.Equal(t, 0.0, empty.Revenue)
	assert.Equal(t, 0.0, empty.ROI)
	assert.Equal(t, 0.0, empty.ROAS)

	// Totais derivados dos componentes somados
	assert.Equal(t, 65.0, report.Totals.Profit)
	assert.Equal(t, 260.0, report.Totals.ROI)
	assert.Equal(t, 6.0, report.Totals.ROAS)

	// Intervalo fora do mês corrente: projeção == total, sem extrapolação
	assert.Equal(t, report.Totals.Revenue, report.ProjectedRevenue)

	// Progresso de meta: 150/1000 = 15%, lucro 65/100 = 65%, gasto 75/300 = 25%
	assert.NotNil(t, report.GoalProgress)
	assert.Equal(t, 15.0, report.GoalProgress.RevenueProgress)
	assert.Equal(t, 65.0, report.GoalProgress.ProfitProgress)
	assert.Equal(t, 25.0, report.GoalProgress.SpendUsage)
}

func TestService_IncomeReport_ZeroAdCost(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockCostRepo := mocks.NewMockAdditionalCostRepository(ctrl)
	mockGoalRepo := mocks.NewMockFinancialGoalRepository(ctrl)

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	service := &Service{
		metricRepo: mockMetricRepo,
		costRepo:   mockCostRepo,
		goalRepo:   mockGoalRepo,
		rates:      identityRates(),
		now:        func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) },
	}

	mockMetricRepo.EXPECT().
		GetByUserAndDateRange(42, day, day).
		Return([]*domain.ProductDayMetric{
			metricOn(day, "BRL", 100, 0, 0),
		}, nil)

	mockCostRepo.EXPECT().
		GetByUserAndDateRange(42, day, day).
		Return([]*domain.AdditionalCost{}, nil)

	mockGoalRepo.EXPECT().GetByUserAndMonth(42, "2024-03").Return(nil, nil)

	report, err := service.IncomeReport(42, &domain.ReportFilters{
		StartDate: datePtr(day),
		EndDate:   datePtr(day),
	})

	assert.NoError(t, err)

	// Receita sem gasto de anúncio: ROI e ROAS reportam 0, nunca NaN/Inf
	bucket := report.Buckets[0]
	assert.Equal(t, 100.0, bucket.Revenue)
	assert.Equal(t, 100.0, bucket.Profit)
	assert.Equal(t, 0.0, bucket.ROI)
	assert.Equal(t, 0.0, bucket.ROAS)
	assert.Equal(t, 0.0, report.Totals.ROI)
	assert.Equal(t, 0.0, report.Totals.ROAS)

	// Sem meta definida no mês, o relatório omite o progresso
	assert.Nil(t, report.GoalProgress)
}

func TestService_IncomeReport_DualRateChannels(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockCostRepo := mocks.NewMockAdditionalCostRepository(ctrl)
	mockGoalRepo := mocks.NewMockFinancialGoalRepository(ctrl)

	day := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)

	// Canais independentes: custo segue o feed (5.00), receita segue o ajuste
	// do operador (4.80)
	rates := staticRates{
		snapshot: domain.RateSnapshot{
			Base:    "BRL",
			Cost:    domain.Rates{"BRL": 1, "USD": 5.0},
			Revenue: domain.Rates{"BRL": 1, "USD": 4.8},
		},
	}

	service := &Service{
		metricRepo: mockMetricRepo,
		costRepo:   mockCostRepo,
		goalRepo:   mockGoalRepo,
		rates:      rates,
		now:        func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) },
	}

	mockMetricRepo.EXPECT().
		GetByUserAndDateRange(42, day, day).
		Return([]*domain.ProductDayMetric{
			metricOn(day, "USD", 100, 10, 0),
		}, nil)

	mockCostRepo.EXPECT().
		GetByUserAndDateRange(42, day, day).
		Return([]*domain.AdditionalCost{
			{ID: 7, UserID: 42, Date: day, Description: "Consultoria", Amount: 20, Currency: "USD"},
		}, nil)

	mockGoalRepo.EXPECT().GetByUserAndMonth(42, "2024-03").Return(nil, nil)

	report, err := service.IncomeReport(42, &domain.ReportFilters{
		StartDate: datePtr(day),
		EndDate:   datePtr(day),
		Currency:  "BRL",
	})

	assert.NoError(t, err)

	bucket := report.Buckets[0]
	// Receita convertida pelo canal de receita: 100 * 4.80 = 480
	assert.Equal(t, 480.0, bucket.Revenue)
	// Gastos convertidos pelo canal de custo: 10 * 5.00 = 50 e 20 * 5.00 = 100
	assert.Equal(t, 50.0, bucket.AdCost)
	assert.Equal(t, 100.0, bucket.ExtraCost)
	assert.Equal(t, 330.0, bucket.Profit)
	assert.Equal(t, 100.0, bucket.CostItems[0].Amount)
}

func TestService_IncomeReport_CurrentMonthProjection(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockCostRepo := mocks.NewMockAdditionalCostRepository(ctrl)
	mockGoalRepo := mocks.NewMockFinancialGoalRepository(ctrl)

	startDate := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	endDate := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)

	service := &Service{
		metricRepo: mockMetricRepo,
		costRepo:   mockCostRepo,
		goalRepo:   mockGoalRepo,
		rates:      identityRates(),
		// Dia 15 do próprio mês do intervalo: extrapola pelo ritmo diário
		now: func() time.Time { return time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC) },
	}

	mockMetricRepo.EXPECT().
		GetByUserAndDateRange(42, startDate, endDate).
		Return([]*domain.ProductDayMetric{
			metricOn(startDate, "BRL", 150, 0, 0),
		}, nil)

	mockCostRepo.EXPECT().
		GetByUserAndDateRange(42, startDate, endDate).
		Return([]*domain.AdditionalCost{}, nil)

	mockGoalRepo.EXPECT().GetByUserAndMonth(42, "2024-03").Return(nil, nil)

	report, err := service.IncomeReport(42, &domain.ReportFilters{
		StartDate: datePtr(startDate),
		EndDate:   datePtr(endDate),
	})

	assert.NoError(t, err)

	// 150 de receita em 15 dias corridos, março tem 31: 150/15*31 = 310
	assert.Equal(t, 150.0, report.Totals.Revenue)
	assert.Equal(t, 310.0, report.ProjectedRevenue)
}

func TestService_IncomeReport_InvalidPeriod(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &Service{
		metricRepo: mocks.NewMockDailyMetricRepository(ctrl),
		costRepo:   mocks.NewMockAdditionalCostRepository(ctrl),
		goalRepo:   mocks.NewMockFinancialGoalRepository(ctrl),
		rates:      identityRates(),
		now:        time.Now,
	}

	t.Run("intervalo ausente", func(t *testing.T) {
		_, err := service.IncomeReport(42, nil)
		assert.ErrorIs(t, err, ErrMissingPeriod)
	})

	t.Run("fim antes do início", func(t *testing.T) {
		start := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
		end := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

		_, err := service.IncomeReport(42, &domain.ReportFilters{
			StartDate: datePtr(start),
			EndDate:   datePtr(end),
		})
		assert.ErrorIs(t, err, ErrInvalidPeriod)
	})
}

func TestService_AccumulatedReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockMetricRepo := mocks.NewMockDailyMetricRepository(ctrl)
	mockCostRepo := mocks.NewMockAdditionalCostRepository(ctrl)
	mockGoalRepo := mocks.NewMockFinancialGoalRepository(ctrl)

	monthStart := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	monthEnd := time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC)
	secondDay := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)

	service := &Service{
		metricRepo: mockMetricRepo,
		costRepo:   mockCostRepo,
		goalRepo:   mockGoalRepo,
		rates:      identityRates(),
		now:        time.Now,
	}

	mockMetricRepo.EXPECT().
		GetByUserAndDateRange(42, monthStart, monthEnd).
		Return([]*domain.ProductDayMetric{
			metricOn(monthStart, "BRL", 100, 0, 0),
			metricOn(secondDay, "BRL", 50, 0, 0),
		}, nil)

	mockCostRepo.EXPECT().
		GetByUserAndDateRange(42, monthStart, monthEnd).
		Return([]*domain.AdditionalCost{}, nil)

	// Meta de 3100 em um mês de 31 dias: ritmo ideal de 100 por dia
	mockGoalRepo.EXPECT().
		GetByUserAndMonth(42, "2024-03").
		Return(&domain.FinancialGoal{UserID: 42, Month: "2024-03", RevenueGoal: 3100}, nil)

	report, err := service.AccumulatedReport(42, "2024-03", "BRL")

	assert.NoError(t, err)
	assert.Len(t, report.Points, 31)

	assert.Equal(t, "2024-03-01", report.Points[0].Date)
	assert.Equal(t, 100.0, report.Points[0].Revenue)
	assert.Equal(t, 100.0, report.Points[0].IdealPace)

	assert.Equal(t, "2024-03-02", report.Points[1].Date)
	assert.Equal(t, 150.0, report.Points[1].Revenue)
	assert.Equal(t, 200.0, report.Points[1].IdealPace)

	// Dias sem movimento mantêm o acumulado e a reta ideal segue crescendo
	assert.Equal(t, 150.0, report.Points[30].Revenue)
	assert.Equal(t, 3100.0, report.Points[30].IdealPace)
}

func TestService_AccumulatedReport_InvalidMonth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := &Service{
		metricRepo: mocks.NewMockDailyMetricRepository(ctrl),
		costRepo:   mocks.NewMockAdditionalCostRepository(ctrl),
		goalRepo:   mocks.NewMockFinancialGoalRepository(ctrl),
		rates:      identityRates(),
		now:        time.Now,
	}

	_, err := service.AccumulatedReport(42, "março-2024", "BRL")
	assert.ErrorIs(t, err, ErrInvalidMonth)
}
