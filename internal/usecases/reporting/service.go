package reporting

import (
	"time"

	"github.com/vfg2006/ads-finance-api/infrastructure/repository"
	"github.com/vfg2006/ads-finance-api/internal/domain"
	"github.com/vfg2006/ads-finance-api/internal/usecases/exchanging"
	"github.com/vfg2006/ads-finance-api/pkg/apiErrors"
	"github.com/vfg2006/ads-finance-api/pkg/utils"
)

// Reporter produz os agregados financeiros por intervalo de datas, já
// normalizados para a moeda de visualização
type Reporter interface {
	// IncomeReport produz o DRE do intervalo: buckets diários ascendentes,
	// totais e projeção de fim de mês
	IncomeReport(userID int, filters *domain.ReportFilters) (*domain.IncomeReport, error)

	// AccumulatedReport produz a série acumulada do mês com a reta ideal de
	// atingimento linear da meta
	AccumulatedReport(userID int, month string, currency string) (*domain.AccumulatedReport, error)
}

type Service struct {
	metricRepo repository.DailyMetricRepository
	costRepo   repository.AdditionalCostRepository
	goalRepo   repository.FinancialGoalRepository
	rates      exchanging.Snapshotter

	// now é injetável para tornar a projeção testável
	now func() time.Time
}

func NewService(
	metricRepo repository.DailyMetricRepository,
	costRepo repository.AdditionalCostRepository,
	goalRepo repository.FinancialGoalRepository,
	rates exchanging.Snapshotter,
) Reporter {
	return &Service{
		metricRepo: metricRepo,
		costRepo:   costRepo,
		goalRepo:   goalRepo,
		rates:      rates,
		now:        time.Now,
	}
}

func (s *Service) IncomeReport(userID int, filters *domain.ReportFilters) (*domain.IncomeReport, error) {
	if filters == nil || filters.StartDate == nil || filters.EndDate == nil {
		return nil, NewReportError(ErrMissingPeriod, apiErrors.ErrMissingRequiredData, "")
	}

	startDate := *filters.StartDate
	endDate := *filters.EndDate
	if endDate.Before(startDate) {
		return nil, NewReportError(ErrInvalidPeriod, apiErrors.ErrInvalidDate, "")
	}

	viewCurrency := filters.Currency
	if viewCurrency == "" {
		viewCurrency = domain.DefaultCurrency
	}

	// Snapshot único das cotações no início do cálculo: nunca reler no meio,
	// para não misturar cotações antigas e novas em um mesmo relatório
	snapshot := s.rates.Snapshot()

	buckets, err := s.buildBuckets(userID, startDate, endDate, viewCurrency, snapshot)
	if err != nil {
		return nil, err
	}

	totals := &domain.ReportTotals{}
	for _, bucket := range buckets {
		totals.Revenue += bucket.Revenue
		totals.AdCost += bucket.AdCost
		totals.ExtraCost += bucket.ExtraCost
		totals.Refunds += bucket.Refunds
	}
	totals.Revenue = utils.RoundWithTwoDecimalPlace(totals.Revenue)
	totals.AdCost = utils.RoundWithTwoDecimalPlace(totals.AdCost)
	totals.ExtraCost = utils.RoundWithTwoDecimalPlace(totals.ExtraCost)
	totals.Refunds = utils.RoundWithTwoDecimalPlace(totals.Refunds)
	totals.ComputeDerived()

	report := &domain.IncomeReport{
		Buckets:          buckets,
		Totals:           totals,
		ProjectedRevenue: s.projectRevenue(totals.Revenue, startDate, endDate),
		Currency:         viewCurrency,
	}

	// Progresso de meta só faz sentido quando o intervalo cabe em um mês
	if sameMonth(startDate, endDate) {
		goal, err := s.goalRepo.GetByUserAndMonth(userID, startDate.Format(domain.MonthKeyLayout))
		if err != nil {
			return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
		}
		report.GoalProgress = domain.ComputeGoalProgress(totals, goal)
	}

	return report, nil
}

func (s *Service) AccumulatedReport(userID int, month string, currency string) (*domain.AccumulatedReport, error) {
	monthStart, err := time.Parse(domain.MonthKeyLayout, month)
	if err != nil {
		return nil, NewReportError(ErrInvalidMonth, apiErrors.ErrInvalidDate, month)
	}

	viewCurrency := currency
	if viewCurrency == "" {
		viewCurrency = domain.DefaultCurrency
	}

	monthEnd := monthStart.AddDate(0, 1, -1)
	daysInMonth := monthEnd.Day()

	snapshot := s.rates.Snapshot()

	buckets, err := s.buildBuckets(userID, monthStart, monthEnd, viewCurrency, snapshot)
	if err != nil {
		return nil, err
	}

	goal, err := s.goalRepo.GetByUserAndMonth(userID, month)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	var revenueGoal float64
	if goal != nil {
		revenueGoal = goal.RevenueGoal
	}

	points := make([]*domain.AccumulatedPoint, 0, len(buckets))
	var accRevenue, accProfit float64

	for i, bucket := range buckets {
		accRevenue += bucket.Revenue
		accProfit += bucket.Profit

		dayNumber := i + 1
		idealPace := 0.0
		if revenueGoal > 0 {
			idealPace = utils.RoundWithTwoDecimalPlace(revenueGoal / float64(daysInMonth) * float64(dayNumber))
		}

		points = append(points, &domain.AccumulatedPoint{
			Date:      bucket.Date,
			Revenue:   utils.RoundWithTwoDecimalPlace(accRevenue),
			Profit:    utils.RoundWithTwoDecimalPlace(accProfit),
			IdealPace: idealPace,
		})
	}

	return &domain.AccumulatedReport{
		Points:   points,
		Currency: viewCurrency,
	}, nil
}

// buildBuckets monta um bucket por dia-calendário do intervalo, em ordem
// ascendente de data, somando métricas e custos avulsos já convertidos para a
// moeda de visualização. Receita e reembolsos usam o canal de receita do
// snapshot; gasto de anúncio e custos avulsos usam o canal de custo.
func (s *Service) buildBuckets(
	userID int,
	startDate, endDate time.Time,
	viewCurrency string,
	snapshot domain.RateSnapshot,
) ([]*domain.DailyBucket, error) {
	metrics, err := s.metricRepo.GetByUserAndDateRange(userID, startDate, endDate)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	costs, err := s.costRepo.GetByUserAndDateRange(userID, startDate, endDate)
	if err != nil {
		return nil, NewReportError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, err.Error())
	}

	byDate := make(map[string]*domain.DailyBucket)
	buckets := make([]*domain.DailyBucket, 0)

	for day := startDate; !day.After(endDate); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		bucket := &domain.DailyBucket{
			Date:      key,
			CostItems: make([]*domain.CostLineItem, 0),
		}
		byDate[key] = bucket
		buckets = append(buckets, bucket)
	}

	for _, metric := range metrics {
		bucket, ok := byDate[metric.Date.Format("2006-01-02")]
		if !ok {
			continue
		}

		rowCurrency := metric.ReportCurrency()
		bucket.Revenue += snapshot.NormalizeRevenue(metric.ConversionValue, rowCurrency, viewCurrency)
		bucket.Refunds += snapshot.NormalizeRevenue(metric.Refunds, rowCurrency, viewCurrency)
		bucket.AdCost += snapshot.NormalizeCost(metric.Cost, rowCurrency, viewCurrency)
	}

	for _, cost := range costs {
		bucket, ok := byDate[cost.Date.Format("2006-01-02")]
		if !ok {
			continue
		}

		amount := snapshot.NormalizeCost(cost.Amount, cost.Currency, viewCurrency)
		bucket.ExtraCost += amount

		// Itens preservam a ordem de inserção dentro do dia
		bucket.CostItems = append(bucket.CostItems, &domain.CostLineItem{
			ID:          cost.ID,
			Description: cost.Description,
			Amount:      utils.RoundWithTwoDecimalPlace(amount),
		})
	}

	for _, bucket := range buckets {
		bucket.Revenue = utils.RoundWithTwoDecimalPlace(bucket.Revenue)
		bucket.AdCost = utils.RoundWithTwoDecimalPlace(bucket.AdCost)
		bucket.ExtraCost = utils.RoundWithTwoDecimalPlace(bucket.ExtraCost)
		bucket.Refunds = utils.RoundWithTwoDecimalPlace(bucket.Refunds)
		bucket.ComputeDerived()
	}

	return buckets, nil
}

// projectRevenue extrapola a receita do mês corrente pelo ritmo diário até
// aqui. Intervalos fora do mês corrente reportam o próprio total, sem fator
// de extrapolação.
func (s *Service) projectRevenue(totalRevenue float64, startDate, endDate time.Time) float64 {
	today := s.now()

	if !sameMonth(startDate, today) || !sameMonth(endDate, today) {
		return totalRevenue
	}

	daysElapsed := today.Day()
	if daysElapsed < 1 {
		daysElapsed = 1
	}

	daysInMonth := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location()).
		AddDate(0, 1, -1).Day()

	projected := totalRevenue / float64(daysElapsed) * float64(daysInMonth)
	return utils.RoundWithTwoDecimalPlace(projected)
}

func sameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}
