package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ads-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-finance-api/internal/domain"
)

const (
	financialGoalsTable = "financial_goals fg"
)

type FinancialGoalRepository interface {
	// SaveOrUpdate grava a meta com upsert na chave (user_id, month)
	SaveOrUpdate(goal *domain.FinancialGoal) error
	GetByUserAndMonth(userID int, month string) (*domain.FinancialGoal, error)
}

type financialGoalRepository struct {
	conn *postgres.Connection
}

func NewFinancialGoalRepository(conn *postgres.Connection) FinancialGoalRepository {
	return &financialGoalRepository{
		conn: conn,
	}
}

func (r *financialGoalRepository) SaveOrUpdate(goal *domain.FinancialGoal) error {
	query := squirrel.StatementBuilder.
		Insert("financial_goals").
		Columns("user_id", "month", "revenue_goal", "profit_goal", "spend_ceiling").
		Values(
			goal.UserID,
			goal.Month,
			goal.RevenueGoal,
			goal.ProfitGoal,
			goal.SpendCeiling,
		).
		Suffix(`
			ON CONFLICT (user_id, month) DO UPDATE SET
				revenue_goal = EXCLUDED.revenue_goal,
				profit_goal = EXCLUDED.profit_goal,
				spend_ceiling = EXCLUDED.spend_ceiling,
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

func (r *financialGoalRepository) GetByUserAndMonth(userID int, month string) (*domain.FinancialGoal, error) {
	query, args, err := squirrel.
		Select("fg.id, fg.user_id, fg.month, fg.revenue_goal, fg.profit_goal, fg.spend_ceiling, fg.created_at, fg.updated_at").
		From(financialGoalsTable).
		Where(squirrel.Eq{"fg.user_id": userID, "fg.month": month}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	goal := &domain.FinancialGoal{}
	row := r.conn.QueryRow(query, args...)
	err = row.Scan(
		&goal.ID,
		&goal.UserID,
		&goal.Month,
		&goal.RevenueGoal,
		&goal.ProfitGoal,
		&goal.SpendCeiling,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear meta financeira: %w", err)
	}

	return goal, nil
}
