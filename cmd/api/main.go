package main

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-pnl-api/infrastructure/database/postgres"
	"github.com/vfg2006/shop-pnl-api/infrastructure/demo"
	"github.com/vfg2006/shop-pnl-api/infrastructure/integrator/shop"
	"github.com/vfg2006/shop-pnl-api/infrastructure/integrator/shop/shopclient"
	"github.com/vfg2006/shop-pnl-api/infrastructure/repository"
	"github.com/vfg2006/shop-pnl-api/infrastructure/repository/memory"
	"github.com/vfg2006/shop-pnl-api/internal/api"
	"github.com/vfg2006/shop-pnl-api/internal/config"
	"github.com/vfg2006/shop-pnl-api/internal/scheduler"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/cataloging"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/recording"
	"github.com/vfg2006/shop-pnl-api/internal/usecases/reporting"
	"github.com/vfg2006/shop-pnl-api/pkg/log"
)

// repositories agrupa os repositórios do driver de armazenamento escolhido
type repositories struct {
	entries  repository.EntryRepository
	products repository.ProductRepository
	costs    repository.ProductCostRepository
	syncLogs repository.SyncLogRepository
	close    func()
}

func main() {
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	log.Setup(cfg.App.LogLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loc := cfg.App.Location()

	repos := newRepositories(ctx, cfg, loc)
	defer repos.close()

	shopService := shop.New(newShopClient(cfg), loc)

	recorder := recording.NewService(repos.entries, repos.products, repos.costs, loc)
	cataloger := cataloging.NewService(repos.products, repos.costs)
	reporter := reporting.NewService(repos.entries, repos.costs, loc)

	platformSyncService := scheduler.NewPlatformSyncService(
		shopService,
		cataloger,
		recorder,
		repos.syncLogs,
		cfg,
	)

	if err := platformSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização da loja")
	} else {
		logrus.Info("Agendador de sincronização da loja iniciado com sucesso")
	}

	server := api.New(cfg, api.Services{
		Recorder:     recorder,
		Cataloger:    cataloger,
		Reporter:     reporter,
		PlatformSync: platformSyncService,
	})

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

func newRepositories(ctx context.Context, cfg *config.Config, loc *time.Location) repositories {
	if cfg.Storage.Driver == config.StoragePostgres {
		if cfg.Database.MigrationsEnabled {
			if err := postgres.RunMigrations(cfg.Database.DSN); err != nil {
				logrus.WithError(err).Fatal("Erro ao aplicar migrações")
			}
		}

		conn := pgconn(ctx, cfg.Database)

		return repositories{
			entries:  repository.NewEntryRepository(conn),
			products: repository.NewProductRepository(conn),
			costs:    repository.NewProductCostRepository(conn),
			syncLogs: repository.NewSyncLogRepository(conn),
			close:    func() { _ = conn.Close() },
		}
	}

	store := memory.NewStore()
	repos := repositories{
		entries:  store.Entries(),
		products: store.Products(),
		costs:    store.ProductCosts(),
		syncLogs: store.SyncLogs(),
		close:    func() {},
	}

	if cfg.Demo.Enabled {
		if _, err := demo.Seed(ctx, repos.products, repos.costs, repos.entries, time.Now().In(loc)); err != nil {
			logrus.WithError(err).Fatal("Erro ao carregar dados de demonstração")
		}
	}

	logrus.Info("Usando armazenamento em memória")
	return repos
}

func newShopClient(cfg *config.Config) shopclient.Client {
	if cfg.Shop.Client == config.ShopClientHTTP {
		return shopclient.NewClient(cfg)
	}
	return shopclient.NewDemoClient(time.Now)
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
