// Comando seed grava a loja de demonstração no PostgreSQL configurado
package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-pnl-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-pnl-api/infrastructure/demo"
	"github.com/vfg2006/shop-pnl-api/infrastructure/repository"
	"github.com/vfg2006/shop-pnl-api/internal/config"
	"github.com/vfg2006/shop-pnl-api/pkg/log"
)

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)
	logrus.Info("Iniciando carga da loja de demonstração...")
	startTime := time.Now()

	ctx := context.Background()

	if err := postgres.RunMigrations(cfg.Database.DSN); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar migrações")
	}

	conn, err := postgres.NewConnection(ctx, cfg.Database)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}
	defer conn.Close()

	products := repository.NewProductRepository(conn)

	existing, err := products.List(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao verificar produtos existentes")
	}

	if len(existing) > 0 {
		logrus.Infof("Banco já possui %d produtos, carga ignorada", len(existing))
		return
	}

	dataset, err := demo.Seed(
		ctx,
		products,
		repository.NewProductCostRepository(conn),
		repository.NewEntryRepository(conn),
		time.Now().In(cfg.App.Location()),
	)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao gravar loja de demonstração")
	}

	logrus.Infof("Carga concluída em %v. Produtos: %d, Registros: %d",
		time.Since(startTime), len(dataset.Products), len(dataset.Entries))
}
