package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/shop-pnl-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
)

const (
	productCostsTable = "product_costs pc"
)

type productCostRepository struct {
	conn *postgres.Connection
}

func NewProductCostRepository(conn *postgres.Connection) ProductCostRepository {
	return &productCostRepository{
		conn: conn,
	}
}

func (r *productCostRepository) List(ctx context.Context) ([]*domain.ProductCost, error) {
	query, args, err := squirrel.
		Select("pc.id, pc.product_id, pc.variant_id, pc.cost_per_unit, pc.updated_at").
		From(productCostsTable).
		OrderBy("pc.product_id ASC", "pc.variant_id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	costs := make([]*domain.ProductCost, 0)
	for rows.Next() {
		cost := &domain.ProductCost{}
		if err := rows.Scan(&cost.ID, &cost.ProductID, &cost.VariantID, &cost.CostPerUnit, &cost.UpdatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear custo: %w", err)
		}
		costs = append(costs, cost)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return costs, nil
}

// Upsert grava o custo unitário do par produto/variante
func (r *productCostRepository) Upsert(ctx context.Context, cost *domain.ProductCost) error {
	query, args, err := squirrel.StatementBuilder.
		Insert("product_costs").
		Columns("id", "product_id", "variant_id", "cost_per_unit", "updated_at").
		Values(cost.ID, cost.ProductID, cost.VariantID, cost.CostPerUnit, cost.UpdatedAt).
		Suffix(`
			ON CONFLICT (product_id, variant_id) DO UPDATE SET
				cost_per_unit = EXCLUDED.cost_per_unit,
				updated_at = EXCLUDED.updated_at
			RETURNING id
		`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if err := r.conn.QueryRowContext(ctx, query, args...).Scan(&cost.ID); err != nil {
		return fmt.Errorf("erro ao gravar custo: %w", err)
	}

	return nil
}
