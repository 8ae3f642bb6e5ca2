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
	productsTable   = "products p"
	productsColumns = "p.id, p.user_id, p.name, p.campaign_name, p.currency, p.platform, p.status, p.hidden, p.account_name, p.mcc_name, p.created_at, p.updated_at"
)

type ProductRepository interface {
	// FindOrCreate resolve um produto pela chave (user_id, campaign_name) em um
	// único upsert condicional: cria quando ausente; quando presente, atualiza
	// apenas os rótulos de agrupamento, e só quando o payload traz valores
	// reais: os sentinelas nunca sobrescrevem rótulos já aprendidos. Moeda e
	// demais campos de identidade são imutáveis após a criação.
	FindOrCreate(product *domain.Product) (*domain.Product, error)
	GetByID(id string) (*domain.Product, error)
	ListByUser(userID int, includeHidden bool) ([]*domain.Product, error)
	Update(product *domain.Product) error
	// Delete remove o produto e, por cascata, suas métricas diárias
	Delete(userID int, id string) error
}

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) FindOrCreate(product *domain.Product) (*domain.Product, error) {
	query := squirrel.StatementBuilder.
		Insert("products").
		Columns("id", "user_id", "name", "campaign_name", "currency", "platform", "status", "hidden", "account_name", "mcc_name").
		Values(
			product.ID,
			product.UserID,
			product.Name,
			product.CampaignName,
			product.Currency,
			product.Platform,
			product.Status,
			product.Hidden,
			product.AccountName,
			product.MCCName,
		).
		Suffix(`
			ON CONFLICT (user_id, campaign_name) DO UPDATE SET
				account_name = COALESCE(NULLIF(EXCLUDED.account_name, ?), products.account_name),
				mcc_name = COALESCE(NULLIF(EXCLUDED.mcc_name, ?), products.mcc_name),
				updated_at = NOW()
			RETURNING id, user_id, name, campaign_name, currency, platform, status, hidden, account_name, mcc_name, created_at, updated_at
		`, domain.UnknownAccountName, domain.NoGroupName).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(sqlQuery, args...)
	resolved, err := r.scanProduct(row)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return nil, fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return nil, fmt.Errorf("erro ao resolver produto: %w", err)
	}

	return resolved, nil
}

func (r *productRepository) GetByID(id string) (*domain.Product, error) {
	query, args, err := squirrel.
		Select(productsColumns).
		From(productsTable).
		Where(squirrel.Eq{"p.id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	product, err := r.scanProduct(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	return product, nil
}

func (r *productRepository) ListByUser(userID int, includeHidden bool) ([]*domain.Product, error) {
	builder := squirrel.
		Select(productsColumns).
		From(productsTable).
		Where(squirrel.Eq{"p.user_id": userID}).
		OrderBy("p.name ASC").
		PlaceholderFormat(squirrel.Dollar)

	if !includeHidden {
		builder = builder.Where(squirrel.Eq{"p.hidden": false})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	products := make([]*domain.Product, 0)
	for rows.Next() {
		product := &domain.Product{}
		err := rows.Scan(
			&product.ID,
			&product.UserID,
			&product.Name,
			&product.CampaignName,
			&product.Currency,
			&product.Platform,
			&product.Status,
			&product.Hidden,
			&product.AccountName,
			&product.MCCName,
			&product.CreatedAt,
			&product.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear produtos: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return products, nil
}

func (r *productRepository) Update(product *domain.Product) error {
	query, args, err := squirrel.
		Update("products").
		Set("name", product.Name).
		Set("status", product.Status).
		Set("hidden", product.Hidden).
		Set("account_name", product.AccountName).
		Set("mcc_name", product.MCCName).
		Set("updated_at", time.Now()).
		Where(squirrel.Eq{"id": product.ID, "user_id": product.UserID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(query, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *productRepository) Delete(userID int, id string) error {
	query, args, err := squirrel.
		Delete("products").
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

func (r *productRepository) scanProduct(row *sql.Row) (*domain.Product, error) {
	product := &domain.Product{}

	err := row.Scan(
		&product.ID,
		&product.UserID,
		&product.Name,
		&product.CampaignName,
		&product.Currency,
		&product.Platform,
		&product.Status,
		&product.Hidden,
		&product.AccountName,
		&product.MCCName,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return product, nil
}
