package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ads-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-finance-api/internal/domain"
)

const (
	additionalCostsTable = "additional_costs ac"
)

// AdditionalCostRepository persiste custos avulsos. Não há chave de unicidade:
// várias entradas por data são permitidas, sempre inseridas (nunca upsert).
type AdditionalCostRepository interface {
	Create(cost *domain.AdditionalCost) (*domain.AdditionalCost, error)
	GetByUserAndDateRange(userID int, startDate, endDate time.Time) ([]*domain.AdditionalCost, error)
	Delete(userID int, id int64) error
}

type additionalCostRepository struct {
	conn *postgres.Connection
}

func NewAdditionalCostRepository(conn *postgres.Connection) AdditionalCostRepository {
	return &additionalCostRepository{
		conn: conn,
	}
}

func (r *additionalCostRepository) Create(cost *domain.AdditionalCost) (*domain.AdditionalCost, error) {
	query, args, err := squirrel.StatementBuilder.
		Insert("additional_costs").
		Columns("user_id", "date", "description", "amount", "currency").
		Values(
			cost.UserID,
			cost.Date.Format("2006-01-02"),
			cost.Description,
			cost.Amount,
			cost.Currency,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&cost.ID, &cost.CreatedAt); err != nil {
		return nil, fmt.Errorf("erro ao inserir custo avulso: %w", err)
	}

	return cost, nil
}

func (r *additionalCostRepository) GetByUserAndDateRange(userID int, startDate, endDate time.Time) ([]*domain.AdditionalCost, error) {
	// Ordenação secundária por id preserva a ordem de inserção dentro da data
	query, args, err := squirrel.
		Select("ac.id, ac.user_id, ac.date, ac.description, ac.amount, ac.currency, ac.created_at").
		From(additionalCostsTable).
		Where(squirrel.Eq{"ac.user_id": userID}).
		Where(squirrel.GtOrEq{"ac.date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"ac.date": endDate.Format("2006-01-02")}).
		OrderBy("ac.date ASC", "ac.id ASC").
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

	costs := make([]*domain.AdditionalCost, 0)
	for rows.Next() {
		cost := &domain.AdditionalCost{}
		err := rows.Scan(
			&cost.ID,
			&cost.UserID,
			&cost.Date,
			&cost.Description,
			&cost.Amount,
			&cost.Currency,
			&cost.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear custos avulsos: %w", err)
		}
		costs = append(costs, cost)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return costs, nil
}

func (r *additionalCostRepository) Delete(userID int, id int64) error {
	query, args, err := squirrel.
		Delete("additional_costs").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}
