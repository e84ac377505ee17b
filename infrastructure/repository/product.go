package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/shop-pnl-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
)

const (
	productsTable = "products p"
	variantsTable = "product_variants pv"
)

type productRepository struct {
	conn *postgres.Connection
}

func NewProductRepository(conn *postgres.Connection) ProductRepository {
	return &productRepository{
		conn: conn,
	}
}

func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.name, p.created_at").
		From(productsTable).
		OrderBy("p.name ASC").
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

	products := make([]*domain.Product, 0)
	productsByID := make(map[string]*domain.Product)

	for rows.Next() {
		product := &domain.Product{}
		if err := rows.Scan(&product.ID, &product.Name, &product.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear produto: %w", err)
		}
		products = append(products, product)
		productsByID[product.ID] = product
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	if len(products) == 0 {
		return products, nil
	}

	variants, err := r.listVariants(ctx, nil)
	if err != nil {
		return nil, err
	}

	for _, variant := range variants {
		if product, ok := productsByID[variant.ProductID]; ok {
			product.Variants = append(product.Variants, variant)
		}
	}

	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return r.getOne(ctx, squirrel.Eq{"p.id": id})
}

// GetByName busca o produto pelo nome sem diferenciar maiúsculas
func (r *productRepository) GetByName(ctx context.Context, name string) (*domain.Product, error) {
	return r.getOne(ctx, squirrel.Expr("LOWER(p.name) = ?", strings.ToLower(strings.TrimSpace(name))))
}

func (r *productRepository) getOne(ctx context.Context, where squirrel.Sqlizer) (*domain.Product, error) {
	query, args, err := squirrel.
		Select("p.id, p.name, p.created_at").
		From(productsTable).
		Where(where).
		OrderBy("p.created_at ASC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	product := &domain.Product{}
	err = r.conn.QueryRowContext(ctx, query, args...).Scan(&product.ID, &product.Name, &product.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear produto: %w", err)
	}

	product.Variants, err = r.listVariants(ctx, squirrel.Eq{"pv.product_id": product.ID})
	if err != nil {
		return nil, err
	}

	return product, nil
}

func (r *productRepository) listVariants(ctx context.Context, where squirrel.Sqlizer) ([]*domain.Variant, error) {
	queryBuilder := squirrel.
		Select("pv.id, pv.product_id, pv.name, pv.sku, pv.created_at").
		From(variantsTable).
		OrderBy("pv.created_at ASC", "pv.id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if where != nil {
		queryBuilder = queryBuilder.Where(where)
	}

	query, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar variantes: %w", err)
	}
	defer rows.Close()

	variants := make([]*domain.Variant, 0)
	for rows.Next() {
		variant := &domain.Variant{}
		var sku sql.NullString
		if err := rows.Scan(&variant.ID, &variant.ProductID, &variant.Name, &sku, &variant.CreatedAt); err != nil {
			return nil, fmt.Errorf("erro ao escanear variante: %w", err)
		}
		if sku.Valid {
			variant.SKU = &sku.String
		}
		variants = append(variants, variant)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return variants, nil
}

// Create insere o produto e suas variantes na mesma transação
func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		query, args, err := squirrel.
			Insert("products").
			Columns("id", "name", "created_at").
			Values(product.ID, product.Name, product.CreatedAt).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir query de inserção: %w", err)
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("erro ao inserir produto: %w", err)
		}

		for _, variant := range product.Variants {
			if err := r.insertVariant(ctx, tx, variant); err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *productRepository) AddVariant(ctx context.Context, variant *domain.Variant) error {
	return r.insertVariant(ctx, r.conn, variant)
}

func (r *productRepository) insertVariant(ctx context.Context, q postgres.Queryer, variant *domain.Variant) error {
	query, args, err := squirrel.
		Insert("product_variants").
		Columns("id", "product_id", "name", "sku", "created_at").
		Values(variant.ID, variant.ProductID, variant.Name, variant.SKU, variant.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao inserir variante: %w", err)
	}

	return nil
}

// Delete remove o produto; variantes, custos e registros são removidos em cascata
func (r *productRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete("products").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover produto: %w", err)
	}

	return expectAffected(result)
}
