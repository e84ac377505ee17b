// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

//go:generate mockgen -source=repository.go -destination=mocks/repository.go -package=mocks

import (
	"context"
	"errors"

	"github.com/vfg2006/shop-pnl-api/internal/domain"
)

// ErrNotFound é retornado por operações de escrita quando o registro não existe.
// Consultas retornam nil, nil nesse caso.
var ErrNotFound = errors.New("registro não encontrado")

type EntryRepository interface {
	List(ctx context.Context, filters domain.EntryFilters) ([]*domain.Entry, error)
	GetByID(ctx context.Context, id string) (*domain.Entry, error)
	GetPlatformEntry(ctx context.Context, productID, date string) (*domain.Entry, error)
	Create(ctx context.Context, entry *domain.Entry) error
	BulkCreate(ctx context.Context, entries []*domain.Entry) error
	Update(ctx context.Context, entry *domain.Entry) error
	Delete(ctx context.Context, id string) error
}

type ProductRepository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	GetByName(ctx context.Context, name string) (*domain.Product, error)
	Create(ctx context.Context, product *domain.Product) error
	AddVariant(ctx context.Context, variant *domain.Variant) error
	Delete(ctx context.Context, id string) error
}

type ProductCostRepository interface {
	List(ctx context.Context) ([]*domain.ProductCost, error)
	Upsert(ctx context.Context, cost *domain.ProductCost) error
}

type SyncLogRepository interface {
	Create(ctx context.Context, log *domain.SyncLog) error
	Finish(ctx context.Context, log *domain.SyncLog) error
	Latest(ctx context.Context) (*domain.SyncLog, error)
}

// scanner é atendido por *sql.Row e *sql.Rows
type scanner interface {
	Scan(dest ...any) error
}
