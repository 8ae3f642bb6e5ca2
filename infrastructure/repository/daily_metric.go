package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-finance-api/internal/domain"
)

const (
	dailyMetricsTable   = "daily_metrics dm"
	dailyMetricsColumns = `dm.id, dm.product_id, dm.date, dm.impressions, dm.clicks, dm.ctr, dm.cost,
		dm.average_cpc, dm.target_value, dm.status, dm.final_url, dm.bidding_strategy, dm.budget_micros,
		dm.search_impr_share, dm.search_top_impr_share, dm.search_abs_top_impr_share,
		dm.visits, dm.checkouts, dm.conversions, dm.conversion_value, dm.refunds,
		dm.currency, dm.created_at, dm.updated_at`
)

// DailyMetricRepository persiste as observações diárias. Os dois upserts são
// deliberadamente separados: cada um lista no DO UPDATE SET apenas os campos
// que o seu caminho de escrita possui, de modo que a ingestão automática e a
// entrada manual nunca zerem os campos uma da outra na mesma linha
// (product_id, date).
type DailyMetricRepository interface {
	UpsertAdMetrics(metric *domain.DailyMetric) error
	UpsertFunnel(entry *domain.FunnelEntry) error
	GetByProductAndDate(productID string, date time.Time) (*domain.DailyMetric, error)
	GetByUserAndDateRange(userID int, startDate, endDate time.Time) ([]*domain.ProductDayMetric, error)
}

type dailyMetricRepository struct {
	conn *postgres.Connection
}

func NewDailyMetricRepository(conn *postgres.Connection) DailyMetricRepository {
	return &dailyMetricRepository{
		conn: conn,
	}
}

func (r *dailyMetricRepository) UpsertAdMetrics(metric *domain.DailyMetric) error {
	query := squirrel.StatementBuilder.
		Insert("daily_metrics").
		Columns(
			"product_id", "date", "impressions", "clicks", "ctr", "cost", "average_cpc",
			"target_value", "status", "final_url", "bidding_strategy", "budget_micros",
			"search_impr_share", "search_top_impr_share", "search_abs_top_impr_share", "currency",
		).
		Values(
			metric.ProductID,
			metric.Date.Format("2006-01-02"),
			metric.Impressions,
			metric.Clicks,
			metric.CTR,
			metric.Cost,
			metric.AverageCPC,
			metric.TargetValue,
			metric.Status,
			metric.FinalURL,
			metric.BiddingStrategy,
			metric.BudgetMicros,
			metric.SearchImpressionShare,
			metric.SearchTopImpressionShare,
			metric.SearchAbsTopShare,
			metric.Currency,
		).
		Suffix(`
			ON CONFLICT (product_id, date) DO UPDATE SET
				impressions = EXCLUDED.impressions,
				clicks = EXCLUDED.clicks,
				ctr = EXCLUDED.ctr,
				cost = EXCLUDED.cost,
				average_cpc = EXCLUDED.average_cpc,
				target_value = EXCLUDED.target_value,
				status = EXCLUDED.status,
				final_url = EXCLUDED.final_url,
				bidding_strategy = EXCLUDED.bidding_strategy,
				budget_micros = EXCLUDED.budget_micros,
				search_impr_share = EXCLUDED.search_impr_share,
				search_top_impr_share = EXCLUDED.search_top_impr_share,
				search_abs_top_impr_share = EXCLUDED.search_abs_top_impr_share,
				currency = EXCLUDED.currency,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dailyMetricRepository) UpsertFunnel(entry *domain.FunnelEntry) error {
	query := squirrel.StatementBuilder.
		Insert("daily_metrics").
		Columns("product_id", "date", "visits", "checkouts", "conversions", "conversion_value", "refunds", "currency").
		Values(
			entry.ProductID,
			entry.Date.Format("2006-01-02"),
			entry.Visits,
			entry.Checkouts,
			entry.Conversions,
			entry.ConversionValue,
			entry.Refunds,
			entry.Currency,
		).
		Suffix(`
			ON CONFLICT (product_id, date) DO UPDATE SET
				visits = EXCLUDED.visits,
				checkouts = EXCLUDED.checkouts,
				conversions = EXCLUDED.conversions,
				conversion_value = EXCLUDED.conversion_value,
				refunds = EXCLUDED.refunds,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *dailyMetricRepository) GetByProductAndDate(productID string, date time.Time) (*domain.DailyMetric, error) {
	query, args, err := squirrel.
		Select(dailyMetricsColumns).
		From(dailyMetricsTable).
		Where(squirrel.Eq{"dm.product_id": productID, "dm.date": date.Format("2006-01-02")}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	metric := &domain.DailyMetric{}
	err = row.Scan(metricScanTargets(metric)...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear métrica diária: %w", err)
	}

	return metric, nil
}

func (r *dailyMetricRepository) GetByUserAndDateRange(userID int, startDate, endDate time.Time) ([]*domain.ProductDayMetric, error) {
	query, args, err := squirrel.
		Select(dailyMetricsColumns + ", p.name, p.currency").
		From(dailyMetricsTable).
		Join("products p ON p.id = dm.product_id").
		Where(squirrel.Eq{"p.user_id": userID}).
		Where(squirrel.GtOrEq{"dm.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"dm.date": endDate.Format("2006-01-02")}).
		OrderBy("dm.date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]*domain.ProductDayMetric, 0)
	for rows.Next() {
		metric := &domain.ProductDayMetric{}
		targets := append(metricScanTargets(&metric.DailyMetric), &metric.ProductName, &metric.ProductCurrency)
		if err := rows.Scan(targets...); err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas diárias: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}

func metricScanTargets(metric *domain.DailyMetric) []interface{} {
	return []interface{}{
		&metric.ID,
		&metric.ProductID,
		&metric.Date,
		&metric.Impressions,
		&metric.Clicks,
		&metric.CTR,
		&metric.Cost,
		&metric.AverageCPC,
		&metric.TargetValue,
		&metric.Status,
		&metric.FinalURL,
		&metric.BiddingStrategy,
		&metric.BudgetMicros,
		&metric.SearchImpressionShare,
		&metric.SearchTopImpressionShare,
		&metric.SearchAbsTopShare,
		&metric.Visits,
		&metric.Checkouts,
		&metric.Conversions,
		&metric.ConversionValue,
		&metric.Refunds,
		&metric.Currency,
		&metric.CreatedAt,
		&metric.UpdatedAt,
	}
}
