package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-finance-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-finance-api/infrastructure/integrator/exchange"
	"github.com/vfg2006/ads-finance-api/infrastructure/integrator/exchange/exchangeclient"
	"github.com/vfg2006/ads-finance-api/infrastructure/repository"
	"github.com/vfg2006/ads-finance-api/internal/api"
	"github.com/vfg2006/ads-finance-api/internal/config"
	"github.com/vfg2006/ads-finance-api/internal/scheduler"
	"github.com/vfg2006/ads-finance-api/internal/usecases/authenticating"
	"github.com/vfg2006/ads-finance-api/internal/usecases/entries"
	"github.com/vfg2006/ads-finance-api/internal/usecases/exchanging"
	"github.com/vfg2006/ads-finance-api/internal/usecases/ingesting"
	"github.com/vfg2006/ads-finance-api/internal/usecases/products"
	"github.com/vfg2006/ads-finance-api/internal/usecases/reporting"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	productRepo := repository.NewProductRepository(pgConn)
	metricRepo := repository.NewDailyMetricRepository(pgConn)
	costRepo := repository.NewAdditionalCostRepository(pgConn)
	goalRepo := repository.NewFinancialGoalRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	exchangeClient := exchangeclient.NewClient(cfg)
	rateFetcher := exchange.New(cfg, exchangeClient)
	rateService := exchanging.NewService(cfg, rateFetcher)

	ingestService := ingesting.NewService(productRepo, metricRepo)
	entryService := entries.NewService(productRepo, metricRepo, costRepo, goalRepo)
	productService := products.NewService(productRepo)
	reportService := reporting.NewService(metricRepo, costRepo, goalRepo, rateService)

	// Agendador de cotações: mantém o canal de custo alinhado ao feed
	rateSyncService := scheduler.NewExchangeRateSyncService(rateService, cfg)
	if err := rateSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de sincronização de cotações")
	} else {
		logrus.Info("Agendador de sincronização de cotações iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		ingestService,
		entryService,
		productService,
		reportService,
		rateService,
		rateSyncService,
		authenticator,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
