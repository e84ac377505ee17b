package demo

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-pnl-api/infrastructure/repository"
)

// Seed grava a loja de demonstração nos repositórios informados
func Seed(
	ctx context.Context,
	products repository.ProductRepository,
	costs repository.ProductCostRepository,
	entries repository.EntryRepository,
	now time.Time,
) (*Dataset, error) {
	dataset := Generate(now)

	for _, product := range dataset.Products {
		if err := products.Create(ctx, product); err != nil {
			return nil, fmt.Errorf("erro ao gravar produto %s: %w", product.ID, err)
		}
	}

	for _, cost := range dataset.Costs {
		if err := costs.Upsert(ctx, cost); err != nil {
			return nil, fmt.Errorf("erro ao gravar custo %s: %w", cost.Key(), err)
		}
	}

	if err := entries.BulkCreate(ctx, dataset.Entries); err != nil {
		return nil, fmt.Errorf("erro ao gravar registros: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"products": len(dataset.Products),
		"costs":    len(dataset.Costs),
		"orders":   len(dataset.Orders),
		"entries":  len(dataset.Entries),
	}).Info("Loja de demonstração carregada")

	return dataset, nil
}
