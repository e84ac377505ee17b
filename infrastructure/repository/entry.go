package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/shop-pnl-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-pnl-api/internal/domain"
)

const (
	entriesTable = "entries e"
)

var entryColumns = []string{
	"e.id",
	"e.product_id",
	"e.variant_id",
	"to_char(e.date, 'YYYY-MM-DD')",
	"e.gmv",
	"e.videos_posted",
	"e.views",
	"e.shipping",
	"e.affiliate",
	"e.ads",
	"e.units_sold",
	"e.source",
	"e.created_at",
	"e.updated_at",
	"p.name",
}

type entryRepository struct {
	conn *postgres.Connection
}

func NewEntryRepository(conn *postgres.Connection) EntryRepository {
	return &entryRepository{
		conn: conn,
	}
}

func selectEntries() squirrel.SelectBuilder {
	return squirrel.
		Select(entryColumns...).
		From(entriesTable).
		LeftJoin("products p ON p.id = e.product_id").
		PlaceholderFormat(squirrel.Dollar)
}

// listEntriesQuery monta a consulta de listagem, mais recentes primeiro
func listEntriesQuery(filters domain.EntryFilters) squirrel.SelectBuilder {
	queryBuilder := selectEntries().OrderBy("e.date DESC", "e.created_at DESC")

	if filters.DateFrom != nil {
		queryBuilder = queryBuilder.Where(squirrel.GtOrEq{"e.date": *filters.DateFrom})
	}
	if filters.DateTo != nil {
		queryBuilder = queryBuilder.Where(squirrel.LtOrEq{"e.date": *filters.DateTo})
	}
	if filters.HasProduct() {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"e.product_id": filters.ProductID})
	}

	return queryBuilder
}

func (r *entryRepository) List(ctx context.Context, filters domain.EntryFilters) ([]*domain.Entry, error) {
	query, args, err := listEntriesQuery(filters).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.Entry, 0)
	for rows.Next() {
		entry, err := r.scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear registro: %w", err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entries, nil
}

func (r *entryRepository) GetByID(ctx context.Context, id string) (*domain.Entry, error) {
	return r.getOne(ctx, squirrel.Eq{"e.id": id})
}

func (r *entryRepository) GetPlatformEntry(ctx context.Context, productID, date string) (*domain.Entry, error) {
	return r.getOne(ctx, squirrel.Eq{
		"e.product_id": productID,
		"e.date":       date,
		"e.source":     domain.EntrySourcePlatform,
	})
}

func (r *entryRepository) getOne(ctx context.Context, where squirrel.Eq) (*domain.Entry, error) {
	query, args, err := selectEntries().Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	entry, err := r.scanEntry(r.conn.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear registro: %w", err)
	}

	return entry, nil
}

func (r *entryRepository) Create(ctx context.Context, entry *domain.Entry) error {
	return r.insert(ctx, r.conn, []*domain.Entry{entry})
}

// BulkCreate insere todos os registros em uma única transação
func (r *entryRepository) BulkCreate(ctx context.Context, entries []*domain.Entry) error {
	if len(entries) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		return r.insert(ctx, tx, entries)
	})
}

func (r *entryRepository) insert(ctx context.Context, q postgres.Queryer, entries []*domain.Entry) error {
	query := squirrel.StatementBuilder.
		Insert("entries").
		Columns(
			"id",
			"product_id",
			"variant_id",
			"date",
			"gmv",
			"videos_posted",
			"views",
			"shipping",
			"affiliate",
			"ads",
			"units_sold",
			"source",
			"created_at",
			"updated_at",
		).
		PlaceholderFormat(squirrel.Dollar)

	for _, entry := range entries {
		query = query.Values(
			entry.ID,
			entry.ProductID,
			entry.VariantID,
			entry.Date,
			entry.GMV,
			entry.VideosPosted,
			entry.Views,
			entry.Shipping,
			entry.Affiliate,
			entry.Ads,
			entry.UnitsSold,
			entry.Source,
			entry.CreatedAt,
			entry.UpdatedAt,
		)
	}

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := q.ExecContext(ctx, sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return nil
}

func (r *entryRepository) Update(ctx context.Context, entry *domain.Entry) error {
	query, args, err := squirrel.
		Update("entries").
		SetMap(map[string]any{
			"product_id":    entry.ProductID,
			"variant_id":    entry.VariantID,
			"date":          entry.Date,
			"gmv":           entry.GMV,
			"videos_posted": entry.VideosPosted,
			"views":         entry.Views,
			"shipping":      entry.Shipping,
			"affiliate":     entry.Affiliate,
			"ads":           entry.Ads,
			"units_sold":    entry.UnitsSold,
			"updated_at":    entry.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": entry.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar registro: %w", err)
	}

	return expectAffected(result)
}

func (r *entryRepository) Delete(ctx context.Context, id string) error {
	query, args, err := squirrel.
		Delete("entries").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de remoção: %w", err)
	}

	result, err := r.conn.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("erro ao remover registro: %w", err)
	}

	return expectAffected(result)
}

func (r *entryRepository) scanEntry(row scanner) (*domain.Entry, error) {
	entry := &domain.Entry{}
	var (
		source      string
		productName sql.NullString
		createdAt   time.Time
		updatedAt   time.Time
	)

	err := row.Scan(
		&entry.ID,
		&entry.ProductID,
		&entry.VariantID,
		&entry.Date,
		&entry.GMV,
		&entry.VideosPosted,
		&entry.Views,
		&entry.Shipping,
		&entry.Affiliate,
		&entry.Ads,
		&entry.UnitsSold,
		&source,
		&createdAt,
		&updatedAt,
		&productName,
	)
	if err != nil {
		return nil, err
	}

	entry.Source = domain.EntrySource(source)
	entry.CreatedAt = createdAt
	entry.UpdatedAt = updatedAt

	if productName.Valid {
		entry.Product = &domain.Product{ID: entry.ProductID, Name: productName.String}
	}

	return entry, nil
}

func expectAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("erro ao obter linhas afetadas: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
